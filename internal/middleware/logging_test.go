package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var (
		ctxLogger *slog.Logger
		ginLogger *slog.Logger
		requestID string
		hasID     bool
	)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(base))
	r.GET("/ping", func(c *gin.Context) {
		ctxLogger = GetLoggerFromCtx(c.Request.Context())
		ginLogger = GetLoggerFromContext(c)
		requestID, hasID = GetRequestIDFromCtx(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	assert.True(t, hasID)
	assert.Equal(t, "req-123", requestID)
	assert.NotNil(t, ctxLogger)
	assert.Same(t, ctxLogger, ginLogger)
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"status":204`)
}

func TestStructuredLoggingMiddleware_GeneratesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), GetLoggerFromCtx(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

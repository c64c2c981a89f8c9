package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/middleware"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}

// statusForError maps an error kind onto an HTTP status code.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrRetryable):
		return http.StatusServiceUnavailable
	case errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 600:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err in the standard error shape. 5xx bodies never
// carry the underlying error text.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusForError(err)

	message := err.Error()
	switch {
	case status == http.StatusServiceUnavailable:
		logger.Warn("Transient store failure", slog.String("error", err.Error()))
		message = "The request could not be completed due to a temporary conflict, please retry"
	case status >= http.StatusInternalServerError:
		logger.Error("Unexpected error", slog.String("error", err.Error()))
		message = "An unexpected error occurred"
	default:
		logger.Warn("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
	}

	c.AbortWithStatusJSON(status, newErrorResponse(c, status, message))
}

// respondBadRequest reports malformed input that never reached a service.
func respondBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, newErrorResponse(c, http.StatusBadRequest, message))
}

func newErrorResponse(c *gin.Context, status int, message string) ErrorResponse {
	return ErrorResponse{
		Error:     http.StatusText(status),
		Message:   message,
		Status:    status,
		Timestamp: time.Now().UTC(),
		Path:      c.Request.URL.Path,
	}
}

package gormsql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{Dialect: DialectMySQL, MaxOpenConns: 50}.withDefaults()

	assert.Equal(t, 50, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, 10, cfg.ConnectRetries)
	assert.Equal(t, 2*time.Second, cfg.RetryInterval)
}

func TestNewClient_UnsupportedDialect(t *testing.T) {
	_, err := NewClient(Config{Dialect: "sqlite", DSN: "file::memory:"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported gorm dialect")
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"info", "warn", "error", "silent", ""} {
		assert.NotNil(t, newLogger(level), level)
	}
}

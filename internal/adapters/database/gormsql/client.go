// Package gormsql implements the repository ports with gorm, for either a
// Postgres or a MySQL database.
package gormsql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SscSPs/wallet_ledger/internal/models"
)

// Dialect selects the gorm driver.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
)

// Config defines the connection and pool settings.
type Config struct {
	Dialect Dialect
	DSN     string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// ConnectRetries is the number of open+ping attempts before giving up.
	ConnectRetries int
	RetryInterval  time.Duration

	// LogLevel is one of "silent", "error", "warn", "info".
	LogLevel string
}

func (c Config) withDefaults() Config {
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = 25
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = 5
	}
	if c.ConnMaxLifetime <= 0 {
		c.ConnMaxLifetime = 30 * time.Minute
	}
	if c.ConnectRetries <= 0 {
		c.ConnectRetries = 10
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = 2 * time.Second
	}
	return c
}

// Client wraps the gorm DB instance.
type Client struct {
	db      *gorm.DB
	dialect Dialect
}

// NewClient opens the database, retrying until it answers a ping.
func NewClient(cfg Config) (*Client, error) {
	cfg = cfg.withDefaults()

	var dialector gorm.Dialector
	switch cfg.Dialect {
	case DialectPostgres:
		dialector = postgres.Open(cfg.DSN)
	case DialectMySQL:
		dialector = mysql.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported gorm dialect %q", cfg.Dialect)
	}

	gormConfig := &gorm.Config{
		// Single statements run without a wrapping transaction; the unit of
		// work opens one explicitly.
		SkipDefaultTransaction: true,
		// Unique violations come back as gorm.ErrDuplicatedKey.
		TranslateError: true,
		Logger:         newLogger(cfg.LogLevel),
	}

	var db *gorm.DB
	var err error
	for i := 0; i < cfg.ConnectRetries; i++ {
		db, err = gorm.Open(dialector, gormConfig)
		if err == nil {
			rawDB, dbErr := db.DB()
			if dbErr == nil {
				if err = rawDB.Ping(); err == nil {
					break
				}
			} else {
				err = dbErr
			}
		}

		if i < cfg.ConnectRetries-1 {
			slog.Warn("Failed to connect to database, retrying",
				slog.String("dialect", string(cfg.Dialect)),
				slog.Int("attempt", i+1),
				slog.Int("max_attempts", cfg.ConnectRetries),
				slog.String("error", err.Error()))
			time.Sleep(cfg.RetryInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s after %d attempts: %w", cfg.Dialect, cfg.ConnectRetries, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &Client{db: db, dialect: cfg.Dialect}, nil
}

// DB returns the underlying *gorm.DB.
func (c *Client) DB() *gorm.DB {
	return c.db
}

// Dialect reports which driver the client was opened with.
func (c *Client) Dialect() Dialect {
	return c.dialect
}

// AutoMigrate creates or updates the ledger tables from the models.
func (c *Client) AutoMigrate(ctx context.Context) error {
	if err := c.db.WithContext(ctx).AutoMigrate(&models.Account{}, &models.JournalEntry{}, &models.IdempotencyKey{}); err != nil {
		return fmt.Errorf("gorm automigrate failed: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// newLogger maps a level name to a gorm logger.
func newLogger(level string) logger.Interface {
	var logLevel logger.LogLevel
	switch level {
	case "info":
		logLevel = logger.Info
	case "warn":
		logLevel = logger.Warn
	case "error":
		logLevel = logger.Error
	case "silent":
		logLevel = logger.Silent
	default:
		logLevel = logger.Error
	}
	return logger.Default.LogMode(logLevel)
}

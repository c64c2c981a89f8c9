// Package storage opens the repository provider selected by DB_DRIVER.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/wallet_ledger/internal/adapters/database/gormsql"
	"github.com/SscSPs/wallet_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/wallet_ledger/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger/internal/platform/config"
	"github.com/SscSPs/wallet_ledger/migrations"
	"github.com/SscSPs/wallet_ledger/pkg/database"
)

// Open connects to the configured store, applies schema changes when
// cfg.RunMigrations is set, and returns its repositories.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	logger = logger.With(slog.String("db_driver", cfg.DBDriver))

	switch cfg.DBDriver {
	case config.DriverMemory:
		logger.Warn("Using in-memory store, data is lost on exit")
		return memory.NewRepositoryProvider(memory.NewStore(memory.WithLockTimeout(cfg.LockTimeout))), nil

	case config.DriverPostgres:
		if cfg.RunMigrations {
			logger.Info("Running database migrations...")
			if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, logger); err != nil {
				return portsrepo.RepositoryProvider{}, err
			}
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(dbPool, cfg.LockTimeout, cfg.StatementTimeout), nil

	case config.DriverGormPostgres, config.DriverGormMySQL:
		gormCfg := gormsql.Config{Dialect: gormsql.DialectPostgres, DSN: cfg.DatabaseURL, LogLevel: cfg.LogLevel}
		if cfg.DBDriver == config.DriverGormMySQL {
			gormCfg.Dialect = gormsql.DialectMySQL
			gormCfg.DSN = cfg.MySQLDSN
		}
		client, err := gormsql.NewClient(gormCfg)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		if cfg.RunMigrations {
			if err := client.AutoMigrate(ctx); err != nil {
				_ = client.Close()
				return portsrepo.RepositoryProvider{}, err
			}
			logger.Info("Schema auto-migrated.")
		}
		return gormsql.NewRepositoryProvider(client, cfg.LockTimeout), nil

	default:
		return portsrepo.RepositoryProvider{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

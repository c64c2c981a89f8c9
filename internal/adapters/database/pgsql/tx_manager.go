package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/wallet_ledger/internal/adapters/database/dberrors"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger/internal/middleware"
)

// PgxTransactionManager runs units of work on a pgx transaction with
// transaction-local lock and statement timeouts.
type PgxTransactionManager struct {
	BaseRepository
	lockTimeout      time.Duration
	statementTimeout time.Duration
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

func newPgxTransactionManager(pool *pgxpool.Pool, lockTimeout, statementTimeout time.Duration) *PgxTransactionManager {
	return &PgxTransactionManager{
		BaseRepository:   BaseRepository{Pool: pool},
		lockTimeout:      lockTimeout,
		statementTimeout: statementTimeout,
	}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise.
func (m *PgxTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// Rollback after a successful commit is a no-op (ErrTxClosed).
		if rbErr := m.Rollback(context.WithoutCancel(ctx), tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to rollback transaction", slog.String("error", rbErr.Error()))
		}
	}()

	if err := m.applyTimeouts(ctx, tx); err != nil {
		return err
	}

	if err := fn(ctx, &pgxUnitOfWork{tx: tx}); err != nil {
		return err
	}

	return m.Commit(ctx, tx)
}

func (m *PgxTransactionManager) applyTimeouts(ctx context.Context, tx pgx.Tx) error {
	if m.lockTimeout > 0 {
		if _, err := tx.Exec(ctx, `SELECT set_config('lock_timeout', $1, true);`, durationSetting(m.lockTimeout)); err != nil {
			return dberrors.Classify(err, "failed to set lock_timeout")
		}
	}
	if m.statementTimeout > 0 {
		if _, err := tx.Exec(ctx, `SELECT set_config('statement_timeout', $1, true);`, durationSetting(m.statementTimeout)); err != nil {
			return dberrors.Classify(err, "failed to set statement_timeout")
		}
	}
	return nil
}

// durationSetting renders d in milliseconds, the unit Postgres assumes.
func durationSetting(d time.Duration) string {
	return fmt.Sprintf("%d", d.Milliseconds())
}

type pgxUnitOfWork struct {
	tx pgx.Tx
}

var _ portsrepo.UnitOfWork = (*pgxUnitOfWork)(nil)

func (u *pgxUnitOfWork) Accounts() portsrepo.TxAccountRepository {
	return &PgxAccountRepository{db: u.tx}
}

func (u *pgxUnitOfWork) Journal() portsrepo.JournalWriter {
	return &PgxJournalRepository{db: u.tx}
}

func (u *pgxUnitOfWork) Idempotency() portsrepo.IdempotencyRepository {
	return &PgxIdempotencyRepository{db: u.tx}
}

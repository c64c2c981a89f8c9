package pgsql

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgx repositories onto dbPool.
func NewRepositoryProvider(dbPool *pgxpool.Pool, lockTimeout, statementTimeout time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: &PgxAccountRepository{db: dbPool},
		JournalRepo: &PgxJournalRepository{db: dbPool},
		TxManager:   newPgxTransactionManager(dbPool, lockTimeout, statementTimeout),
		Close: func() error {
			dbPool.Close()
			return nil
		},
	}
}

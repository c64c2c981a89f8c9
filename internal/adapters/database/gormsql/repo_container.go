package gormsql

import (
	"time"

	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the gorm repositories onto client.
func NewRepositoryProvider(client *Client, lockTimeout time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: &GormAccountRepository{db: client.DB()},
		JournalRepo: &GormJournalRepository{db: client.DB()},
		TxManager:   &GormTransactionManager{client: client, lockTimeout: lockTimeout},
		Close:       client.Close,
	}
}

package memory

import (
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every port onto a single in-process store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: &accountRepository{store: store},
		JournalRepo: &journalRepository{store: store},
		TxManager:   store,
	}
}

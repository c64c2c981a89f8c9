package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
)

type journalRepository struct {
	store *Store
}

var _ portsrepo.JournalRepositoryFacade = (*journalRepository)(nil)

func (r *journalRepository) SaveJournalEntry(_ context.Context, entry *domain.JournalEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.accounts[entry.AccountID]; !ok {
		return fmt.Errorf("journal entry references unknown account %d: %w", entry.AccountID, domain.ErrAccountNotFound)
	}
	entry.ID = r.store.nextEntryID.Add(1)
	r.store.entries = append(r.store.entries, *entry)
	return nil
}

func (r *journalRepository) FindJournalEntriesByTransactionID(_ context.Context, transactionID string) ([]domain.JournalEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var found []domain.JournalEntry
	for _, e := range r.store.entries {
		if e.TransactionID == transactionID {
			found = append(found, e)
		}
	}
	slices.SortFunc(found, func(a, b domain.JournalEntry) int { return cmp.Compare(a.ID, b.ID) })
	return found, nil
}

func (r *journalRepository) ListJournalEntriesByAccountDesc(_ context.Context, accountID int64) ([]domain.JournalEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	found := make([]domain.JournalEntry, 0)
	for _, e := range r.store.entries {
		if e.AccountID == accountID {
			found = append(found, e)
		}
	}
	slices.SortFunc(found, newestFirst)
	return found, nil
}

// newestFirst orders by created_at desc, then id desc.
func newestFirst(a, b domain.JournalEntry) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

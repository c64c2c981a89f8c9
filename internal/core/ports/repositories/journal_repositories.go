package repositories

import (
	"context"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
)

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindJournalEntriesByTransactionID returns both legs of one transfer.
	FindJournalEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error)

	// ListJournalEntriesByAccountDesc returns every entry owned by the account,
	// newest first (created_at desc, id desc).
	ListJournalEntriesByAccountDesc(ctx context.Context, accountID int64) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal entries.
// Entries are append-only: there is no update or delete.
type JournalWriter interface {
	// SaveJournalEntry appends an entry and sets its generated ID.
	SaveJournalEntry(ctx context.Context, entry *domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

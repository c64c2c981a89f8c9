package mapping

import (
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/SscSPs/wallet_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		ID:            d.ID,
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Amount:        d.Amount,
		EntryType:     models.EntryType(d.EntryType),
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Amount:        m.Amount,
		EntryType:     domain.EntryType(m.EntryType),
		Description:   m.Description,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

// ToDomainJournalEntries converts a slice of model entries.
func ToDomainJournalEntries(ms []models.JournalEntry) []domain.JournalEntry {
	out := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainJournalEntry(m)
	}
	return out
}

// ToModelIdempotencyKey converts a domain IdempotencyRecord to its row.
func ToModelIdempotencyKey(d domain.IdempotencyRecord) models.IdempotencyKey {
	return models.IdempotencyKey{
		Key:               d.Key,
		TransactionID:     d.TransactionID,
		FromAccountNumber: d.FromAccountNumber,
		ToAccountNumber:   d.ToAccountNumber,
		Amount:            d.Amount,
		CreatedAt:         d.CreatedAt,
	}
}

// ToDomainIdempotencyRecord converts an idempotency_keys row.
func ToDomainIdempotencyRecord(m models.IdempotencyKey) domain.IdempotencyRecord {
	return domain.IdempotencyRecord{
		Key:               m.Key,
		TransactionID:     m.TransactionID,
		FromAccountNumber: m.FromAccountNumber,
		ToAccountNumber:   m.ToAccountNumber,
		Amount:            m.Amount,
		CreatedAt:         m.CreatedAt.UTC(),
	}
}

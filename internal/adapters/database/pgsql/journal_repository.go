package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/wallet_ledger/internal/adapters/database/dberrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger/internal/models"
	"github.com/SscSPs/wallet_ledger/internal/utils/mapping"
)

const journalColumns = `id, transaction_id, account_id, amount, entry_type, description, created_at`

// PgxJournalRepository appends and reads journal entries.
type PgxJournalRepository struct {
	db querier
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveJournalEntry appends one entry and sets its generated id.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry *domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(*entry)
	query := `
		INSERT INTO journal_entries (transaction_id, account_id, amount, entry_type, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.Amount,
		m.EntryType,
		m.Description,
		m.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return dberrors.Classify(err, fmt.Sprintf("failed to save journal entry for transaction %s", m.TransactionID))
	}
	return nil
}

// FindJournalEntriesByTransactionID returns the legs of one transfer.
func (r *PgxJournalRepository) FindJournalEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE transaction_id = $1 ORDER BY id;`
	rows, err := r.db.Query(ctx, query, transactionID)
	if err != nil {
		return nil, dberrors.Classify(err, "failed to query journal entries for transaction "+transactionID)
	}
	return collectJournalEntries(rows)
}

// ListJournalEntriesByAccountDesc returns the account's entries newest first.
func (r *PgxJournalRepository) ListJournalEntriesByAccountDesc(ctx context.Context, accountID int64) ([]domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE account_id = $1 ORDER BY created_at DESC, id DESC;`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, dberrors.Classify(err, fmt.Sprintf("failed to query journal entries for account %d", accountID))
	}
	return collectJournalEntries(rows)
}

func collectJournalEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(
			&e.ID,
			&e.TransactionID,
			&e.AccountID,
			&e.Amount,
			&e.EntryType,
			&e.Description,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dberrors.Classify(err, "error iterating journal entry rows")
	}
	return mapping.ToDomainJournalEntries(entries), nil
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/wallet_ledger/internal/adapters/database/dberrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger/internal/models"
	"github.com/SscSPs/wallet_ledger/internal/utils/mapping"
)

// PgxIdempotencyRepository claims idempotency keys inside a transaction.
// A concurrent claim of the same key blocks on the primary key until the
// first transaction ends, then sees its row (or claims it after a rollback).
type PgxIdempotencyRepository struct {
	db querier
}

var _ portsrepo.IdempotencyRepository = (*PgxIdempotencyRepository)(nil)

func (r *PgxIdempotencyRepository) ClaimIdempotencyKey(ctx context.Context, record domain.IdempotencyRecord) (*domain.IdempotencyRecord, bool, error) {
	m := mapping.ToModelIdempotencyKey(record)
	tag, err := r.db.Exec(ctx, `
		INSERT INTO idempotency_keys (key, transaction_id, from_account_number, to_account_number, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (key) DO NOTHING;
	`, m.Key, m.TransactionID, m.FromAccountNumber, m.ToAccountNumber, m.Amount, m.CreatedAt)
	if err != nil {
		return nil, false, dberrors.Classify(err, "failed to claim idempotency key")
	}
	if tag.RowsAffected() == 1 {
		return nil, true, nil
	}

	var existing models.IdempotencyKey
	err = r.db.QueryRow(ctx, `
		SELECT key, transaction_id, from_account_number, to_account_number, amount, created_at
		FROM idempotency_keys WHERE key = $1;
	`, m.Key).Scan(
		&existing.Key,
		&existing.TransactionID,
		&existing.FromAccountNumber,
		&existing.ToAccountNumber,
		&existing.Amount,
		&existing.CreatedAt,
	)
	if err != nil {
		return nil, false, dberrors.Classify(err, fmt.Sprintf("failed to load idempotency key %s", m.Key))
	}
	rec := mapping.ToDomainIdempotencyRecord(existing)
	return &rec, false, nil
}

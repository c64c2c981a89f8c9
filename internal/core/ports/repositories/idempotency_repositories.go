package repositories

import (
	"context"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
)

// IdempotencyRepository records transfer idempotency keys. Only reachable
// through a UnitOfWork so a claim is rolled back with a failed transfer.
type IdempotencyRepository interface {
	// ClaimIdempotencyKey stores record unless its key is already taken.
	// claimed is false when the key exists; existing then holds the stored record.
	ClaimIdempotencyKey(ctx context.Context, record domain.IdempotencyRecord) (existing *domain.IdempotencyRecord, claimed bool, err error)
}

package gormsql

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SscSPs/wallet_ledger/internal/adapters/database/dberrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger/internal/models"
	"github.com/SscSPs/wallet_ledger/internal/utils/mapping"
)

// GormJournalRepository appends and reads journal entries.
type GormJournalRepository struct {
	db *gorm.DB
}

var _ portsrepo.JournalRepositoryFacade = (*GormJournalRepository)(nil)

func (r *GormJournalRepository) SaveJournalEntry(ctx context.Context, entry *domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(*entry)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return dberrors.Classify(err, fmt.Sprintf("failed to save journal entry for transaction %s", m.TransactionID))
	}
	entry.ID = m.ID
	return nil
}

func (r *GormJournalRepository) FindJournalEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	var rows []models.JournalEntry
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, dberrors.Classify(err, "failed to query journal entries for transaction "+transactionID)
	}
	return mapping.ToDomainJournalEntries(rows), nil
}

func (r *GormJournalRepository) ListJournalEntriesByAccountDesc(ctx context.Context, accountID int64) ([]domain.JournalEntry, error) {
	var rows []models.JournalEntry
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, dberrors.Classify(err, fmt.Sprintf("failed to query journal entries for account %d", accountID))
	}
	return mapping.ToDomainJournalEntries(rows), nil
}

// GormIdempotencyRepository claims idempotency keys inside a transaction.
type GormIdempotencyRepository struct {
	db *gorm.DB
}

var _ portsrepo.IdempotencyRepository = (*GormIdempotencyRepository)(nil)

func (r *GormIdempotencyRepository) ClaimIdempotencyKey(ctx context.Context, record domain.IdempotencyRecord) (*domain.IdempotencyRecord, bool, error) {
	m := mapping.ToModelIdempotencyKey(record)
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
	if res.Error != nil {
		return nil, false, dberrors.Classify(res.Error, "failed to claim idempotency key")
	}
	if res.RowsAffected == 1 {
		return nil, true, nil
	}

	var existing models.IdempotencyKey
	if err := r.db.WithContext(ctx).Where(&models.IdempotencyKey{Key: m.Key}).First(&existing).Error; err != nil {
		return nil, false, dberrors.Classify(err, fmt.Sprintf("failed to load idempotency key %s", m.Key))
	}
	rec := mapping.ToDomainIdempotencyRecord(existing)
	return &rec, false, nil
}

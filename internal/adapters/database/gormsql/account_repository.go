package gormsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SscSPs/wallet_ledger/internal/adapters/database/dberrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger/internal/models"
	"github.com/SscSPs/wallet_ledger/internal/utils/mapping"
)

// GormAccountRepository implements the account ports on a *gorm.DB, which is
// either the pool or a transaction handle.
type GormAccountRepository struct {
	db *gorm.DB
}

var _ portsrepo.TxAccountRepository = (*GormAccountRepository)(nil)

func (r *GormAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	m := mapping.ToModelAccount(*account)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return dberrors.Classify(err, fmt.Sprintf("failed to save account %s", m.AccountNumber))
	}
	account.ID = m.ID
	return nil
}

func (r *GormAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	return r.first(r.db.WithContext(ctx).Where("account_number = ?", accountNumber), accountNumber)
}

func (r *GormAccountRepository) FindAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id), fmt.Sprintf("id %d", id))
}

func (r *GormAccountRepository) FindAccountByNumberForUpdate(ctx context.Context, accountNumber string) (*domain.Account, error) {
	q := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_number = ?", accountNumber)
	return r.first(q, accountNumber)
}

func (r *GormAccountRepository) AccountNumberExists(ctx context.Context, accountNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).Where("account_number = ?", accountNumber).Count(&count).Error
	if err != nil {
		return false, dberrors.Classify(err, "failed to check account number")
	}
	return count > 0, nil
}

func (r *GormAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	res := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"balance": account.Balance,
			"status":  string(account.Status),
		})
	if res.Error != nil {
		return dberrors.Classify(res.Error, fmt.Sprintf("failed to update account %s", account.AccountNumber))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, account.AccountNumber)
	}
	return nil
}

// IncrementBalance updates in place and reads the row back within one
// transaction; MySQL has no RETURNING clause.
func (r *GormAccountRepository) IncrementBalance(ctx context.Context, accountNumber string, delta decimal.Decimal) (*domain.Account, error) {
	var updated *domain.Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Account{}).
			Where("account_number = ?", accountNumber).
			Update("balance", gorm.Expr("balance + ?", delta))
		if res.Error != nil {
			return dberrors.Classify(res.Error, fmt.Sprintf("failed to fund account %s", accountNumber))
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountNumber)
		}
		account, err := (&GormAccountRepository{db: tx}).FindAccountByNumber(ctx, accountNumber)
		if err != nil {
			return err
		}
		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *GormAccountRepository) first(q *gorm.DB, ref string) (*domain.Account, error) {
	var m models.Account
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, ref)
		}
		return nil, dberrors.Classify(err, fmt.Sprintf("failed to load account %s", ref))
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

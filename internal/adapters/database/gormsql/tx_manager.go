package gormsql

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/SscSPs/wallet_ledger/internal/adapters/database/dberrors"
	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
)

// GormTransactionManager runs units of work inside db.Transaction.
type GormTransactionManager struct {
	client      *Client
	lockTimeout time.Duration
}

var _ portsrepo.TransactionManager = (*GormTransactionManager)(nil)

func (m *GormTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	err := m.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := m.applyLockTimeout(tx); err != nil {
			return err
		}
		return fn(ctx, &gormUnitOfWork{tx: tx})
	})
	alreadyClassified := errors.Is(err, apperrors.ErrRetryable) || errors.Is(err, apperrors.ErrDuplicate)
	if err != nil && !alreadyClassified && (dberrors.IsRetryable(err) || dberrors.IsUniqueViolation(err)) {
		// Commit failures surface unwrapped from gorm.
		return dberrors.Classify(err, "transaction failed")
	}
	return err
}

func (m *GormTransactionManager) applyLockTimeout(tx *gorm.DB) error {
	if m.lockTimeout <= 0 {
		return nil
	}
	var err error
	switch m.client.Dialect() {
	case DialectPostgres:
		err = tx.Exec("SELECT set_config('lock_timeout', ?, true)", fmt.Sprintf("%d", m.lockTimeout.Milliseconds())).Error
	case DialectMySQL:
		// innodb_lock_wait_timeout has a one second resolution.
		secs := int(math.Max(1, math.Ceil(m.lockTimeout.Seconds())))
		err = tx.Exec("SET SESSION innodb_lock_wait_timeout = ?", secs).Error
	}
	if err != nil {
		return dberrors.Classify(err, "failed to set lock timeout")
	}
	return nil
}

type gormUnitOfWork struct {
	tx *gorm.DB
}

var _ portsrepo.UnitOfWork = (*gormUnitOfWork)(nil)

func (u *gormUnitOfWork) Accounts() portsrepo.TxAccountRepository {
	return &GormAccountRepository{db: u.tx}
}

func (u *gormUnitOfWork) Journal() portsrepo.JournalWriter {
	return &GormJournalRepository{db: u.tx}
}

func (u *gormUnitOfWork) Idempotency() portsrepo.IdempotencyRepository {
	return &GormIdempotencyRepository{db: u.tx}
}

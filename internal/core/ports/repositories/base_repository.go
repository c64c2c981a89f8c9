package repositories

import (
	"context"
)

// UnitOfWork exposes the repositories bound to one store transaction.
type UnitOfWork interface {
	Accounts() TxAccountRepository
	Journal() JournalWriter
	Idempotency() IdempotencyRepository
}

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// WithinTransaction runs fn inside a single store transaction. The
	// transaction commits when fn returns nil and rolls back otherwise,
	// releasing every row lock taken through the UnitOfWork.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}

package repositories

import (
	"context"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountNumberChecker is the read the account number allocator needs.
type AccountNumberChecker interface {
	// AccountNumberExists reports whether any account already uses number.
	AccountNumberExists(ctx context.Context, accountNumber string) (bool, error)
}

// AccountReader defines read operations for account data
type AccountReader interface {
	AccountNumberChecker

	// FindAccountByNumber retrieves an account by its public account number.
	// Returns domain.ErrAccountNotFound when no row matches.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// FindAccountByID retrieves an account by its internal identifier.
	FindAccountByID(ctx context.Context, id int64) (*domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account and sets its generated ID.
	// A clash on account_number is reported as apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account *domain.Account) error

	// UpdateAccount writes the balance and status of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// IncrementBalance atomically adds delta to the stored balance and
	// returns the account as persisted afterwards.
	IncrementBalance(ctx context.Context, accountNumber string, delta decimal.Decimal) (*domain.Account, error)
}

// AccountLocker selects accounts with an exclusive row lock held until the
// surrounding unit of work ends. Only reachable through a UnitOfWork.
type AccountLocker interface {
	FindAccountByNumberForUpdate(ctx context.Context, accountNumber string) (*domain.Account, error)
}

// AccountRepositoryFacade combines the account operations usable outside a unit of work.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// TxAccountRepository is the account view handed out inside a unit of work.
type TxAccountRepository interface {
	AccountRepositoryFacade
	AccountLocker
}

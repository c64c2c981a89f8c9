package domain

import (
	"fmt"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound        = apperrors.Sentinel(apperrors.ErrNotFound, "account not found")
	ErrTransactionNotFound    = apperrors.Sentinel(apperrors.ErrNotFound, "transaction not found")
	ErrInvalidAmount          = apperrors.Sentinel(apperrors.ErrValidation, "amount must be greater than zero")
	ErrInvalidName            = apperrors.Sentinel(apperrors.ErrValidation, "name is required")
	ErrInvalidCurrency        = apperrors.Sentinel(apperrors.ErrValidation, "currency must be a 3 letter code")
	ErrInvalidAccountNumber   = apperrors.Sentinel(apperrors.ErrValidation, "invalid account number format")
	ErrSameAccount            = apperrors.Sentinel(apperrors.ErrValidation, "source and destination accounts must differ")
	ErrDuplicateAccountNumber = apperrors.Sentinel(apperrors.ErrDuplicate, "unable to create wallet: account number already exists, please try again")
	ErrAllocationExhausted    = apperrors.Sentinel(apperrors.ErrDuplicate, "unable to generate a unique account number")
	ErrIdempotencyConflict    = apperrors.Sentinel(apperrors.ErrDuplicate, "idempotency key already used with different transfer parameters")
)

// InsufficientFundsError is returned when a locked source balance cannot cover a debit.
type InsufficientFundsError struct {
	AccountNumber string
	Balance       decimal.Decimal
	Required      decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("Insufficient balance. Current balance: %s, Required: %s",
		e.Balance.StringFixed(MoneyScale), e.Required.StringFixed(MoneyScale))
}

func (e *InsufficientFundsError) Unwrap() error {
	return apperrors.ErrInsufficientFunds
}

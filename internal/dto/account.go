package dto

import (
	"time"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest defines the data needed to create a new wallet.
type CreateWalletRequest struct {
	Name     string `json:"name" binding:"required,notblank,max=255"`
	Currency string `json:"currency" binding:"omitempty,alpha,len=3"` // Optional, defaults to USD
}

// DepositRequest defines the data needed to fund a wallet.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
}

// AccountResponse defines the data returned for a wallet.
type AccountResponse struct {
	ID            int64                `json:"id"`
	AccountNumber string               `json:"accountNumber"`
	Name          string               `json:"name"`
	Balance       decimal.Decimal      `json:"balance" swaggertype:"string" example:"0.00"`
	Currency      string               `json:"currency"`
	Status        domain.AccountStatus `json:"status"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:            acc.ID,
		AccountNumber: acc.AccountNumber,
		Name:          acc.Name,
		Balance:       acc.Balance.Round(domain.MoneyScale),
		Currency:      acc.CurrencyCode,
		Status:        acc.Status,
		CreatedAt:     acc.CreatedAt,
	}
}

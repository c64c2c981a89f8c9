package dto

import (
	"time"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest defines the data needed to move money between wallets.
type TransferRequest struct {
	FromAccountNumber string          `json:"fromAccountNumber" binding:"required"`
	ToAccountNumber   string          `json:"toAccountNumber" binding:"required"`
	Amount            decimal.Decimal `json:"amount" swaggertype:"string" example:"25.50"`
	// IdempotencyKey comes from the Idempotency-Key header, not the body.
	IdempotencyKey string `json:"-"`
}

// TransferResponse is returned for a successful (or replayed) transfer.
type TransferResponse struct {
	Message       string `json:"message"`
	TransactionID string `json:"transactionID"`
}

// HistoryEntryResponse is one line of a wallet's transaction history.
type HistoryEntryResponse struct {
	TransactionID string           `json:"transactionID"`
	AccountNumber string           `json:"accountNumber"`
	Type          domain.EntryType `json:"type"`
	Amount        decimal.Decimal  `json:"amount" swaggertype:"string" example:"25.50"`
	Currency      string           `json:"currency"`
	Timestamp     time.Time        `json:"timestamp"`
	Description   string           `json:"description"`
}

// ToTransferResponse converts a domain.Transfer to TransferResponse DTO
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	msg := "Transfer successful"
	if t.Replayed {
		msg = "Transfer already processed"
	}
	return TransferResponse{Message: msg, TransactionID: t.TransactionID}
}

// ToHistoryResponse converts history entries to their DTO form.
func ToHistoryResponse(entries []domain.HistoryEntry) []HistoryEntryResponse {
	resp := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = HistoryEntryResponse{
			TransactionID: e.TransactionID,
			AccountNumber: e.AccountNumber,
			Type:          e.EntryType,
			Amount:        e.Amount.Round(domain.MoneyScale),
			Currency:      e.CurrencyCode,
			Timestamp:     e.Timestamp,
			Description:   e.Description,
		}
	}
	return resp
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates which side of a transfer a journal entry records.
// DEBIT is money leaving the account, CREDIT is money arriving.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// JournalEntry is one immutable leg of a money movement.
type JournalEntry struct {
	ID            int64           `json:"id"`
	TransactionID string          `json:"transactionID"` // Shared by both legs of one transfer
	AccountID     int64           `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"` // Always positive
	EntryType     EntryType       `json:"entryType"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// HistoryEntry is the read-model of a journal entry as seen from its account.
type HistoryEntry struct {
	TransactionID string          `json:"transactionID"`
	AccountNumber string          `json:"accountNumber"`
	EntryType     EntryType       `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currency"`
	Timestamp     time.Time       `json:"timestamp"`
	Description   string          `json:"description"`
}

// Transfer is the outcome of a completed (or replayed) transfer.
type Transfer struct {
	TransactionID     string          `json:"transactionID"`
	FromAccountNumber string          `json:"fromAccountNumber"`
	ToAccountNumber   string          `json:"toAccountNumber"`
	Amount            decimal.Decimal `json:"amount"`
	CreatedAt         time.Time       `json:"createdAt"`
	Replayed          bool            `json:"replayed"`
}

// IdempotencyRecord binds a caller supplied key to the transfer it produced.
type IdempotencyRecord struct {
	Key               string
	TransactionID     string
	FromAccountNumber string
	ToAccountNumber   string
	Amount            decimal.Decimal
	CreatedAt         time.Time
}

// Matches reports whether a replayed request carries the same parameters.
func (r IdempotencyRecord) Matches(from, to string, amount decimal.Decimal) bool {
	return r.FromAccountNumber == from && r.ToAccountNumber == to && r.Amount.Equal(amount)
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType mirrors the journal_entries.entry_type column.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// JournalEntry is a row of the append-only journal_entries table.
type JournalEntry struct {
	ID            int64           `db:"id" gorm:"primaryKey;autoIncrement"`
	TransactionID string          `db:"transaction_id" gorm:"type:varchar(64);not null;index:idx_journal_entries_transaction_id"`
	AccountID     int64           `db:"account_id" gorm:"not null;index:idx_journal_entries_account_created,priority:1"`
	Account       *Account        `db:"-" gorm:"foreignKey:AccountID;constraint:OnDelete:RESTRICT"`
	Amount        decimal.Decimal `db:"amount" gorm:"type:numeric(19,2);not null"`
	EntryType     EntryType       `db:"entry_type" gorm:"type:varchar(6);not null"`
	Description   string          `db:"description" gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time       `db:"created_at" gorm:"not null;autoCreateTime:false;index:idx_journal_entries_account_created,priority:2"`
}

// TableName overrides the gorm default.
func (JournalEntry) TableName() string { return "journal_entries" }

// IdempotencyKey is a row of the idempotency_keys table.
type IdempotencyKey struct {
	Key               string          `db:"key" gorm:"column:key;primaryKey;type:varchar(128)"`
	TransactionID     string          `db:"transaction_id" gorm:"type:varchar(64);not null"`
	FromAccountNumber string          `db:"from_account_number" gorm:"type:varchar(10);not null"`
	ToAccountNumber   string          `db:"to_account_number" gorm:"type:varchar(10);not null"`
	Amount            decimal.Decimal `db:"amount" gorm:"type:numeric(19,2);not null"`
	CreatedAt         time.Time       `db:"created_at" gorm:"not null;autoCreateTime:false"`
}

// TableName overrides the gorm default.
func (IdempotencyKey) TableName() string { return "idempotency_keys" }

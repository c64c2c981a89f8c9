package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus mirrors the accounts.status column.
type AccountStatus string

const (
	StatusActive AccountStatus = "ACTIVE"
	StatusClosed AccountStatus = "CLOSED"
	StatusFrozen AccountStatus = "FROZEN"
)

// Account is a row of the accounts table.
// The gorm tags describe the same schema as migrations/000001 for the ORM adapters.
type Account struct {
	ID            int64           `db:"id" gorm:"primaryKey;autoIncrement"`
	AccountNumber string          `db:"account_number" gorm:"type:varchar(10);not null;uniqueIndex:uq_accounts_account_number"`
	Name          string          `db:"name" gorm:"type:varchar(255);not null"`
	Balance       decimal.Decimal `db:"balance" gorm:"type:numeric(19,2);not null;default:0"`
	CurrencyCode  string          `db:"currency_code" gorm:"type:char(3);not null;default:USD"`
	Status        AccountStatus   `db:"status" gorm:"type:varchar(16);not null;default:ACTIVE"`
	CreatedAt     time.Time       `db:"created_at" gorm:"not null;autoCreateTime:false"`
}

// TableName overrides the gorm default.
func (Account) TableName() string { return "accounts" }

package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus describes the lifecycle state of a wallet account.
type AccountStatus string

const (
	AccountActive AccountStatus = "ACTIVE"
	AccountClosed AccountStatus = "CLOSED"
	AccountFrozen AccountStatus = "FROZEN"
)

const (
	// AccountNumberPrefix is the fixed leading part of every account number.
	AccountNumberPrefix = "2026"
	// AccountNumberSuffixDigits is the count of random digits after the prefix.
	AccountNumberSuffixDigits = 6
	// AccountNumberLength is the full length of an account number.
	AccountNumberLength = len(AccountNumberPrefix) + AccountNumberSuffixDigits

	// DefaultCurrencyCode is used when a wallet is created without a currency.
	DefaultCurrencyCode = "USD"

	// MoneyScale is the number of decimal places balances and amounts carry.
	MoneyScale = 2
)

var (
	accountNumberPattern = regexp.MustCompile(`^` + AccountNumberPrefix + `\d{6}$`)
	currencyCodePattern  = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Account represents a wallet in the ledger.
// ID is the internal row identifier; AccountNumber is the public one.
type Account struct {
	ID            int64           `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	CurrencyCode  string          `json:"currencyCode"`
	Status        AccountStatus   `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// FormatAccountNumber composes the fixed prefix with a numeric suffix.
func FormatAccountNumber(suffix int) string {
	return fmt.Sprintf("%s%06d", AccountNumberPrefix, suffix)
}

// ValidateAccountNumber checks the 10 character "2026" + 6 digits format.
func ValidateAccountNumber(number string) error {
	if len(number) != AccountNumberLength || !accountNumberPattern.MatchString(number) {
		return fmt.Errorf("%w: got %q", ErrInvalidAccountNumber, number)
	}
	return nil
}

// NormalizeCurrencyCode trims and upper-cases code, substituting fallback when blank.
func NormalizeCurrencyCode(code string, fallback string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = fallback
	}
	if !currencyCodePattern.MatchString(code) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	return code, nil
}

// ValidateAmount enforces a strictly positive amount with at most MoneyScale decimals.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return fmt.Errorf("%w: at most %d decimal places allowed, got %s", ErrInvalidAmount, MoneyScale, amount.String())
	}
	return nil
}

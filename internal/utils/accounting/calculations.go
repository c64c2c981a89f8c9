package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
)

// SignedAmount returns the effect of an entry on its account's balance:
// CREDIT adds, DEBIT subtracts.
func SignedAmount(entry domain.JournalEntry) (decimal.Decimal, error) {
	switch entry.EntryType {
	case domain.Credit:
		return entry.Amount, nil
	case domain.Debit:
		return entry.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown entry type '%s' for transaction %s", entry.EntryType, entry.TransactionID)
	}
}

// ValidateJournalBalance checks that the legs of one transaction are
// positive, share a transaction id and sum to zero.
func ValidateJournalBalance(entries []domain.JournalEntry) error {
	if len(entries) < 2 {
		return fmt.Errorf("journal must have at least two entries")
	}

	sum := decimal.Zero
	for _, e := range entries {
		if e.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("entry amount must be positive for transaction %s", e.TransactionID)
		}
		if e.TransactionID != entries[0].TransactionID {
			return fmt.Errorf("entries span transactions %s and %s", entries[0].TransactionID, e.TransactionID)
		}
		signed, err := SignedAmount(e)
		if err != nil {
			return err
		}
		sum = sum.Add(signed)
	}

	if !sum.IsZero() {
		return fmt.Errorf("journal entries for transaction %s do not balance: %s", entries[0].TransactionID, sum.String())
	}
	return nil
}

// ReplayBalance applies entries to an opening balance.
func ReplayBalance(opening decimal.Decimal, entries []domain.JournalEntry) (decimal.Decimal, error) {
	balance := opening
	for _, e := range entries {
		signed, err := SignedAmount(e)
		if err != nil {
			return decimal.Zero, err
		}
		balance = balance.Add(signed)
	}
	return balance, nil
}

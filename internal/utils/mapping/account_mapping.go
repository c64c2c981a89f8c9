package mapping

import (
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/SscSPs/wallet_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:            d.ID,
		AccountNumber: d.AccountNumber,
		Name:          d.Name,
		Balance:       d.Balance,
		CurrencyCode:  d.CurrencyCode,
		Status:        models.AccountStatus(d.Status),
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:            m.ID,
		AccountNumber: m.AccountNumber,
		Name:          m.Name,
		Balance:       m.Balance,
		CurrencyCode:  m.CurrencyCode,
		Status:        domain.AccountStatus(m.Status),
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/dto"
)

// SeedFile is the YAML layout accepted by the seed tool.
//
//	wallets:
//	  - name: Alice
//	    currency: USD
//	    fund: "1000.00"
type SeedFile struct {
	Wallets []SeedWallet `yaml:"wallets"`
}

// SeedWallet describes one wallet to create and, optionally, fund.
type SeedWallet struct {
	Name     string          `yaml:"name"`
	Currency string          `yaml:"currency"`
	Fund     decimal.Decimal `yaml:"fund"`
}

// SeededWallet pairs an input name with the account number it received.
type SeededWallet struct {
	Name          string
	AccountNumber string
	Balance       decimal.Decimal
}

func parseSeedFile(data []byte) (*SeedFile, error) {
	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(f.Wallets) == 0 {
		return nil, fmt.Errorf("seed file declares no wallets")
	}
	return &f, nil
}

// seedWallets creates every wallet in order, funding those with a positive
// fund amount. It stops at the first failure.
func seedWallets(ctx context.Context, ledger portssvc.LedgerSvcFacade, f *SeedFile, logger *slog.Logger) ([]SeededWallet, error) {
	seeded := make([]SeededWallet, 0, len(f.Wallets))
	for i, w := range f.Wallets {
		account, err := ledger.CreateWallet(ctx, dto.CreateWalletRequest{Name: w.Name, Currency: w.Currency})
		if err != nil {
			return seeded, fmt.Errorf("wallet %d (%s): %w", i, w.Name, err)
		}

		if w.Fund.IsPositive() {
			account, err = ledger.FundWallet(ctx, account.AccountNumber, w.Fund)
			if err != nil {
				return seeded, fmt.Errorf("funding wallet %d (%s): %w", i, w.Name, err)
			}
		}

		logger.Info("Seeded wallet",
			slog.String("name", account.Name),
			slog.String("account_number", account.AccountNumber),
			slog.String("balance", account.Balance.StringFixed(2)))
		seeded = append(seeded, SeededWallet{Name: account.Name, AccountNumber: account.AccountNumber, Balance: account.Balance})
	}
	return seeded, nil
}

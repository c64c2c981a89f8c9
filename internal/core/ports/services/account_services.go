package services

import (
	"context"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/SscSPs/wallet_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// WalletReaderSvc defines read operations for wallets
type WalletReaderSvc interface {
	// GetWallet retrieves a wallet by its account number.
	GetWallet(ctx context.Context, accountNumber string) (*domain.Account, error)
}

// WalletWriterSvc defines write operations for wallets
type WalletWriterSvc interface {
	// CreateWallet allocates an account number and persists an empty ACTIVE wallet.
	CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*domain.Account, error)

	// FundWallet adds amount to the wallet balance. No journal entry is written.
	FundWallet(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.Account, error)
}

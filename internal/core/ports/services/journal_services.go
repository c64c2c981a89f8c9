package services

import (
	"context"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/SscSPs/wallet_ledger/internal/dto"
)

// TransferSvc moves money between two wallets.
type TransferSvc interface {
	// Transfer debits the source and credits the destination in one unit of
	// work, appending a DEBIT and a CREDIT journal entry that share one
	// transaction id.
	Transfer(ctx context.Context, req dto.TransferRequest) (*domain.Transfer, error)
}

// LedgerSvcFacade combines every balance-mutating operation.
// It is the only writer of balances and journal entries.
type LedgerSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
	TransferSvc
}

// HistorySvc projects journal entries into a read-only view.
type HistorySvc interface {
	// GetHistory lists the wallet's entries, newest first.
	GetHistory(ctx context.Context, accountNumber string) ([]domain.HistoryEntry, error)

	// GetTransaction returns both legs of one transfer.
	GetTransaction(ctx context.Context, transactionID string) ([]domain.HistoryEntry, error)
}

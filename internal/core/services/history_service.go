package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
)

// historyService is a read-only projection of the journal.
type historyService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalReader
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader) portssvc.HistorySvc {
	return &historyService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
	}
}

var _ portssvc.HistorySvc = (*historyService)(nil)

func (s *historyService) GetHistory(ctx context.Context, accountNumber string) ([]domain.HistoryEntry, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for history", slog.String("account_number", accountNumber))
		}
		return nil, err
	}

	entries, err := s.journalRepo.ListJournalEntriesByAccountDesc(ctx, account.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("account_number", accountNumber))
		return nil, err
	}

	history := make([]domain.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		history = append(history, toHistoryEntry(e, account))
	}
	return history, nil
}

func (s *historyService) GetTransaction(ctx context.Context, transactionID string) ([]domain.HistoryEntry, error) {
	entries, err := s.journalRepo.FindJournalEntriesByTransactionID(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find journal entries", slog.String("transaction_id", transactionID))
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrTransactionNotFound
	}

	accounts := make(map[int64]*domain.Account, 2)
	legs := make([]domain.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		account, ok := accounts[e.AccountID]
		if !ok {
			account, err = s.accountRepo.FindAccountByID(ctx, e.AccountID)
			if err != nil {
				s.LogError(ctx, err, "Journal entry references unknown account",
					slog.String("transaction_id", transactionID),
					slog.Int64("account_id", e.AccountID))
				return nil, err
			}
			accounts[e.AccountID] = account
		}
		legs = append(legs, toHistoryEntry(e, account))
	}
	return legs, nil
}

func toHistoryEntry(e domain.JournalEntry, account *domain.Account) domain.HistoryEntry {
	return domain.HistoryEntry{
		TransactionID: e.TransactionID,
		AccountNumber: account.AccountNumber,
		EntryType:     e.EntryType,
		Amount:        e.Amount,
		CurrencyCode:  account.CurrencyCode,
		Timestamp:     e.CreatedAt,
		Description:   e.Description,
	}
}

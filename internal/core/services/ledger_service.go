package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/dto"
	"github.com/SscSPs/wallet_ledger/internal/utils/accounting"
)

// DefaultCreateWalletMaxRetries bounds the allocate-and-insert cycles of CreateWallet.
const DefaultCreateWalletMaxRetries = 5

// ledgerService owns every balance and journal mutation.
type ledgerService struct {
	BaseService
	accountRepo      portsrepo.AccountRepositoryFacade
	txManager        portsrepo.TransactionManager
	allocator        *AccountNumberAllocator
	defaultCurrency  string
	createMaxRetries int
	newTransactionID func() string
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithAllocator replaces the default account number allocator.
func WithAllocator(a *AccountNumberAllocator) LedgerServiceOption {
	return func(s *ledgerService) {
		if a != nil {
			s.allocator = a
		}
	}
}

// WithDefaultCurrency sets the currency used when a request leaves it blank.
func WithDefaultCurrency(code string) LedgerServiceOption {
	return func(s *ledgerService) {
		if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
			s.defaultCurrency = code
		}
	}
}

// WithCreateMaxRetries overrides DefaultCreateWalletMaxRetries.
func WithCreateMaxRetries(n int) LedgerServiceOption {
	return func(s *ledgerService) {
		if n > 0 {
			s.createMaxRetries = n
		}
	}
}

// WithClock injects the time source used for created_at stamps.
func WithClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// WithTransactionIDGenerator injects the transfer id generator.
func WithTransactionIDGenerator(gen func() string) LedgerServiceOption {
	return func(s *ledgerService) {
		if gen != nil {
			s.newTransactionID = gen
		}
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, txManager portsrepo.TransactionManager, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		accountRepo:      accountRepo,
		txManager:        txManager,
		allocator:        NewAccountNumberAllocator(),
		defaultCurrency:  domain.DefaultCurrencyCode,
		createMaxRetries: DefaultCreateWalletMaxRetries,
		newTransactionID: uuid.NewString,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	currency, err := domain.NormalizeCurrencyCode(req.Currency, s.defaultCurrency)
	if err != nil {
		s.LogWarn(ctx, err, "Rejected wallet currency", slog.String("currency", req.Currency))
		return nil, err
	}

	for attempt := 1; attempt <= s.createMaxRetries; attempt++ {
		accountNumber, err := s.allocator.Allocate(ctx, s.accountRepo)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateAccountNumber(accountNumber); err != nil {
			s.LogError(ctx, err, "Allocator produced malformed account number")
			return nil, err
		}

		account := domain.Account{
			AccountNumber: accountNumber,
			Name:          name,
			Balance:       decimal.Zero,
			CurrencyCode:  currency,
			Status:        domain.AccountActive,
			CreatedAt:     s.Now(),
		}

		err = s.accountRepo.SaveAccount(ctx, &account)
		if err == nil {
			s.LogInfo(ctx, "Wallet created",
				slog.String("account_number", account.AccountNumber),
				slog.String("currency", account.CurrencyCode))
			return &account, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save wallet", slog.String("account_number", accountNumber))
			return nil, err
		}
		s.LogDebug(ctx, "Account number taken concurrently, retrying",
			slog.String("account_number", accountNumber),
			slog.Int("attempt", attempt))
	}

	s.LogWarn(ctx, domain.ErrDuplicateAccountNumber, "Wallet creation retries exhausted", slog.Int("max_retries", s.createMaxRetries))
	return nil, domain.ErrDuplicateAccountNumber
}

func (s *ledgerService) GetWallet(ctx context.Context, accountNumber string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find wallet", slog.String("account_number", accountNumber))
		}
		return nil, err
	}
	return account, nil
}

func (s *ledgerService) FundWallet(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.Account, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.IncrementBalance(ctx, accountNumber, amount)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fund wallet", slog.String("account_number", accountNumber))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Wallet funded",
		slog.String("account_number", accountNumber),
		slog.String("amount", amount.StringFixed(domain.MoneyScale)))
	return account, nil
}

func (s *ledgerService) Transfer(ctx context.Context, req dto.TransferRequest) (*domain.Transfer, error) {
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if req.FromAccountNumber == req.ToAccountNumber {
		return nil, domain.ErrSameAccount
	}

	logger := s.GetLogger(ctx).With(
		slog.String("from_account", req.FromAccountNumber),
		slog.String("to_account", req.ToAccountNumber),
		slog.String("amount", req.Amount.StringFixed(domain.MoneyScale)),
	)

	transactionID := s.newTransactionID()
	var result *domain.Transfer

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		now := s.Now()

		if req.IdempotencyKey != "" {
			existing, claimed, err := uow.Idempotency().ClaimIdempotencyKey(ctx, domain.IdempotencyRecord{
				Key:               req.IdempotencyKey,
				TransactionID:     transactionID,
				FromAccountNumber: req.FromAccountNumber,
				ToAccountNumber:   req.ToAccountNumber,
				Amount:            req.Amount,
				CreatedAt:         now,
			})
			if err != nil {
				return err
			}
			if !claimed {
				if !existing.Matches(req.FromAccountNumber, req.ToAccountNumber, req.Amount) {
					return domain.ErrIdempotencyConflict
				}
				result = &domain.Transfer{
					TransactionID:     existing.TransactionID,
					FromAccountNumber: existing.FromAccountNumber,
					ToAccountNumber:   existing.ToAccountNumber,
					Amount:            existing.Amount,
					CreatedAt:         existing.CreatedAt,
					Replayed:          true,
				}
				return nil
			}
		}

		source, destination, err := lockTransferAccounts(ctx, uow.Accounts(), req.FromAccountNumber, req.ToAccountNumber)
		if err != nil {
			return err
		}

		if source.Balance.LessThan(req.Amount) {
			return &domain.InsufficientFundsError{
				AccountNumber: source.AccountNumber,
				Balance:       source.Balance,
				Required:      req.Amount,
			}
		}

		source.Balance = source.Balance.Sub(req.Amount)
		destination.Balance = destination.Balance.Add(req.Amount)

		if err := uow.Accounts().UpdateAccount(ctx, *source); err != nil {
			return err
		}
		if err := uow.Accounts().UpdateAccount(ctx, *destination); err != nil {
			return err
		}

		debit := domain.JournalEntry{
			TransactionID: transactionID,
			AccountID:     source.ID,
			Amount:        req.Amount,
			EntryType:     domain.Debit,
			Description:   fmt.Sprintf("Transfer to account %s", destination.AccountNumber),
			CreatedAt:     now,
		}
		credit := domain.JournalEntry{
			TransactionID: transactionID,
			AccountID:     destination.ID,
			Amount:        req.Amount,
			EntryType:     domain.Credit,
			Description:   fmt.Sprintf("Transfer from account %s", source.AccountNumber),
			CreatedAt:     now,
		}
		if err := accounting.ValidateJournalBalance([]domain.JournalEntry{debit, credit}); err != nil {
			return err
		}
		if err := uow.Journal().SaveJournalEntry(ctx, &debit); err != nil {
			return err
		}
		if err := uow.Journal().SaveJournalEntry(ctx, &credit); err != nil {
			return err
		}

		result = &domain.Transfer{
			TransactionID:     transactionID,
			FromAccountNumber: source.AccountNumber,
			ToAccountNumber:   destination.AccountNumber,
			Amount:            req.Amount,
			CreatedAt:         now,
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound),
			errors.Is(err, apperrors.ErrInsufficientFunds),
			errors.Is(err, apperrors.ErrDuplicate),
			errors.Is(err, apperrors.ErrRetryable):
			logger.Warn("Transfer rejected", slog.String("error", err.Error()))
		default:
			logger.Error("Transfer failed", slog.String("error", err.Error()))
		}
		return nil, err
	}

	if result.Replayed {
		logger.Info("Transfer replayed from idempotency key", slog.String("transaction_id", result.TransactionID))
	} else {
		logger.Info("Transfer completed", slog.String("transaction_id", result.TransactionID))
	}
	return result, nil
}

// lockTransferAccounts takes both row locks in ascending account number
// order so that opposite-direction transfers cannot deadlock.
func lockTransferAccounts(ctx context.Context, accounts portsrepo.AccountLocker, from, to string) (source, destination *domain.Account, err error) {
	first, second := from, to
	if second < first {
		first, second = second, first
	}

	locked := make(map[string]*domain.Account, 2)
	for _, number := range []string{first, second} {
		account, err := accounts.FindAccountByNumberForUpdate(ctx, number)
		if err != nil {
			return nil, nil, err
		}
		locked[number] = account
	}
	return locked[from], locked[to], nil
}

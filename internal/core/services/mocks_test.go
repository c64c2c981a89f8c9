package services_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) AccountNumberExists(ctx context.Context, accountNumber string) (bool, error) {
	args := m.Called(ctx, accountNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) IncrementBalance(ctx context.Context, accountNumber string, delta decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindJournalEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListJournalEntriesByAccountDesc(ctx context.Context, accountID int64) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) SaveJournalEntry(ctx context.Context, entry *domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

// --- Mock TransactionManager ---
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

var _ portsrepo.TransactionManager = (*MockTransactionManager)(nil)

// sequenceSource replays fixed draws, then repeats the last one.
type sequenceSource struct {
	mu    sync.Mutex
	draws []int
	calls int
}

func (s *sequenceSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := min(s.calls, len(s.draws)-1)
	s.calls++
	return s.draws[i] % n
}

// takenNumbers is an AccountNumberChecker backed by a set.
type takenNumbers map[string]bool

func (t takenNumbers) AccountNumberExists(_ context.Context, accountNumber string) (bool, error) {
	return t[accountNumber], nil
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/core/services"
)

type HistoryServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockJournalRepo *MockJournalRepository
	service         portssvc.HistorySvc
}

func (suite *HistoryServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.service = services.NewHistoryService(suite.mockAccountRepo, suite.mockJournalRepo)
}

func (suite *HistoryServiceTestSuite) TearDownTest() {
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestGetHistory_MapsEntries() {
	ctx := context.Background()
	account := &domain.Account{ID: 7, AccountNumber: "2026000007", CurrencyCode: "EUR"}
	ts := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "2026000007").Return(account, nil).Once()
	suite.mockJournalRepo.On("ListJournalEntriesByAccountDesc", ctx, int64(7)).Return([]domain.JournalEntry{
		{ID: 2, TransactionID: "tx-2", AccountID: 7, Amount: decimal.NewFromInt(3), EntryType: domain.Credit, Description: "Transfer from account 2026000001", CreatedAt: ts.Add(time.Second)},
		{ID: 1, TransactionID: "tx-1", AccountID: 7, Amount: decimal.NewFromInt(5), EntryType: domain.Debit, Description: "Transfer to account 2026000001", CreatedAt: ts},
	}, nil).Once()

	history, err := suite.service.GetHistory(ctx, "2026000007")

	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal("tx-2", history[0].TransactionID)
	suite.Equal("2026000007", history[0].AccountNumber)
	suite.Equal("EUR", history[0].CurrencyCode)
	suite.Equal(domain.Credit, history[0].EntryType)
	suite.Equal(ts.Add(time.Second), history[0].Timestamp)
	suite.Equal(domain.Debit, history[1].EntryType)
}

func (suite *HistoryServiceTestSuite) TestGetHistory_UnknownAccount() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "2026000404").Return(nil, domain.ErrAccountNotFound).Once()

	history, err := suite.service.GetHistory(ctx, "2026000404")

	suite.Nil(history)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *HistoryServiceTestSuite) TestGetHistory_NoEntries() {
	ctx := context.Background()
	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "2026000007").Return(&domain.Account{ID: 7}, nil).Once()
	suite.mockJournalRepo.On("ListJournalEntriesByAccountDesc", ctx, int64(7)).Return([]domain.JournalEntry{}, nil).Once()

	history, err := suite.service.GetHistory(ctx, "2026000007")

	suite.Require().NoError(err)
	suite.NotNil(history)
	suite.Empty(history)
}

func (suite *HistoryServiceTestSuite) TestGetTransaction_BothLegs() {
	ctx := context.Background()
	suite.mockJournalRepo.On("FindJournalEntriesByTransactionID", ctx, "tx-1").Return([]domain.JournalEntry{
		{ID: 1, TransactionID: "tx-1", AccountID: 1, Amount: decimal.NewFromInt(5), EntryType: domain.Debit},
		{ID: 2, TransactionID: "tx-1", AccountID: 2, Amount: decimal.NewFromInt(5), EntryType: domain.Credit},
	}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(1)).Return(&domain.Account{ID: 1, AccountNumber: "2026000001"}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(2)).Return(&domain.Account{ID: 2, AccountNumber: "2026000002"}, nil).Once()

	legs, err := suite.service.GetTransaction(ctx, "tx-1")

	suite.Require().NoError(err)
	suite.Require().Len(legs, 2)
	suite.Equal("2026000001", legs[0].AccountNumber)
	suite.Equal(domain.Debit, legs[0].EntryType)
	suite.Equal("2026000002", legs[1].AccountNumber)
	suite.Equal(domain.Credit, legs[1].EntryType)
}

func (suite *HistoryServiceTestSuite) TestGetTransaction_NotFound() {
	ctx := context.Background()
	suite.mockJournalRepo.On("FindJournalEntriesByTransactionID", ctx, "missing").Return([]domain.JournalEntry{}, nil).Once()

	_, err := suite.service.GetTransaction(ctx, "missing")

	suite.ErrorIs(err, domain.ErrTransactionNotFound)
}

func (suite *HistoryServiceTestSuite) TestGetTransaction_RepoError() {
	ctx := context.Background()
	suite.mockJournalRepo.On("FindJournalEntriesByTransactionID", ctx, "tx-1").Return(nil, assert.AnError).Once()

	_, err := suite.service.GetTransaction(ctx, "tx-1")

	suite.ErrorIs(err, assert.AnError)
}

func TestHistoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}

package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/dto"
	"github.com/SscSPs/wallet_ledger/internal/handlers"
	"github.com/SscSPs/wallet_ledger/internal/platform/config"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetWallet(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) FundWallet(ctx context.Context, accountNumber string, amount decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) Transfer(ctx context.Context, req dto.TransferRequest) (*domain.Transfer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock HistoryService ---
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) GetHistory(ctx context.Context, accountNumber string) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

func (m *MockHistoryService) GetTransaction(ctx context.Context, transactionID string) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

var _ portssvc.HistorySvc = (*MockHistoryService)(nil)

// --- Test Suite Setup ---
type WalletHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockLedgerService  *MockLedgerService
	mockHistoryService *MockHistoryService
}

func (suite *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockLedgerService = new(MockLedgerService)
	suite.mockHistoryService = new(MockHistoryService)

	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Ledger:  suite.mockLedgerService,
		History: suite.mockHistoryService,
	})
}

func (suite *WalletHandlerTestSuite) TearDownTest() {
	suite.mockLedgerService.AssertExpectations(suite.T())
	suite.mockHistoryService.AssertExpectations(suite.T())
}

func (suite *WalletHandlerTestSuite) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, handlers.APIBasePath+path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *WalletHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) handlers.ErrorResponse {
	var body handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decimalEq(expected string) interface{} {
	want := decimal.RequireFromString(expected)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func sampleAccount() *domain.Account {
	return &domain.Account{
		ID:            1,
		AccountNumber: "2026000042",
		Name:          "Alice",
		Balance:       decimal.RequireFromString("100"),
		CurrencyCode:  "USD",
		Status:        domain.AccountActive,
		CreatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// --- Tests ---

func (suite *WalletHandlerTestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *WalletHandlerTestSuite) TestCreateWallet_Success() {
	suite.mockLedgerService.On("CreateWallet", mock.Anything, dto.CreateWalletRequest{Name: "Alice", Currency: "usd"}).
		Return(sampleAccount(), nil).Once()

	w := suite.do(http.MethodPost, "/wallets", `{"name":"Alice","currency":"usd"}`, nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2026000042", resp.AccountNumber)
	suite.Equal("USD", resp.Currency)
	suite.Equal(domain.AccountActive, resp.Status)
	suite.True(decimal.RequireFromString("100").Equal(resp.Balance))
}

func (suite *WalletHandlerTestSuite) TestCreateWallet_MissingName() {
	w := suite.do(http.MethodPost, "/wallets", `{"currency":"USD"}`, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decodeError(w)
	suite.Equal(http.StatusBadRequest, body.Status)
	suite.Equal("Bad Request", body.Error)
	suite.Equal(handlers.APIBasePath+"/wallets", body.Path)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateWallet", mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestCreateWallet_BlankName() {
	w := suite.do(http.MethodPost, "/wallets", `{"name":"   "}`, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateWallet", mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestCreateWallet_BadCurrency() {
	w := suite.do(http.MethodPost, "/wallets", `{"name":"Alice","currency":"US1"}`, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *WalletHandlerTestSuite) TestCreateWallet_AllocationConflict() {
	suite.mockLedgerService.On("CreateWallet", mock.Anything, mock.Anything).
		Return(nil, domain.ErrDuplicateAccountNumber).Once()

	w := suite.do(http.MethodPost, "/wallets", `{"name":"Alice"}`, nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal(domain.ErrDuplicateAccountNumber.Error(), suite.decodeError(w).Message)
}

func (suite *WalletHandlerTestSuite) TestGetWallet_NotFound() {
	suite.mockLedgerService.On("GetWallet", mock.Anything, "2026999999").
		Return(nil, domain.ErrAccountNotFound).Once()

	w := suite.do(http.MethodGet, "/wallets/2026999999", "", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	body := suite.decodeError(w)
	suite.Equal("Not Found", body.Error)
	suite.Equal(http.StatusNotFound, body.Status)
	suite.False(body.Timestamp.IsZero())
}

func (suite *WalletHandlerTestSuite) TestFundWallet_Success() {
	funded := sampleAccount()
	funded.Balance = decimal.RequireFromString("150.25")
	suite.mockLedgerService.On("FundWallet", mock.Anything, "2026000042", decimalEq("50.25")).
		Return(funded, nil).Once()

	w := suite.do(http.MethodPost, "/wallets/2026000042/deposit", `{"amount":"50.25"}`, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(decimal.RequireFromString("150.25").Equal(resp.Balance))
}

func (suite *WalletHandlerTestSuite) TestFundWallet_InvalidAmount() {
	suite.mockLedgerService.On("FundWallet", mock.Anything, "2026000042", decimalEq("-5")).
		Return(nil, domain.ErrInvalidAmount).Once()

	w := suite.do(http.MethodPost, "/wallets/2026000042/deposit", `{"amount":-5}`, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(domain.ErrInvalidAmount.Error(), suite.decodeError(w).Message)
}

func (suite *WalletHandlerTestSuite) TestFundWallet_MalformedBody() {
	w := suite.do(http.MethodPost, "/wallets/2026000042/deposit", `{"amount":`, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *WalletHandlerTestSuite) TestTransfer_Success() {
	suite.mockLedgerService.On("Transfer", mock.Anything, mock.MatchedBy(func(req dto.TransferRequest) bool {
		return req.FromAccountNumber == "2026000001" &&
			req.ToAccountNumber == "2026000002" &&
			req.Amount.Equal(decimal.RequireFromString("25.50")) &&
			req.IdempotencyKey == "abc-123"
	})).Return(&domain.Transfer{TransactionID: "tx-1"}, nil).Once()

	w := suite.do(http.MethodPost, "/transfer",
		`{"fromAccountNumber":"2026000001","toAccountNumber":"2026000002","amount":"25.50"}`,
		map[string]string{handlers.IdempotencyKeyHeader: "abc-123"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Transfer successful", resp.Message)
	suite.Equal("tx-1", resp.TransactionID)
}

func (suite *WalletHandlerTestSuite) TestTransfer_Replayed() {
	suite.mockLedgerService.On("Transfer", mock.Anything, mock.Anything).
		Return(&domain.Transfer{TransactionID: "tx-1", Replayed: true}, nil).Once()

	w := suite.do(http.MethodPost, "/transfer",
		`{"fromAccountNumber":"2026000001","toAccountNumber":"2026000002","amount":1}`,
		map[string]string{handlers.IdempotencyKeyHeader: "abc-123"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Transfer already processed", resp.Message)
	suite.Equal("tx-1", resp.TransactionID)
}

func (suite *WalletHandlerTestSuite) TestTransfer_InsufficientFunds() {
	suite.mockLedgerService.On("Transfer", mock.Anything, mock.Anything).
		Return(nil, &domain.InsufficientFundsError{
			AccountNumber: "2026000001",
			Balance:       decimal.RequireFromString("10"),
			Required:      decimal.RequireFromString("25.5"),
		}).Once()

	w := suite.do(http.MethodPost, "/transfer",
		`{"fromAccountNumber":"2026000001","toAccountNumber":"2026000002","amount":"25.50"}`, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Insufficient balance. Current balance: 10.00, Required: 25.50", suite.decodeError(w).Message)
}

func (suite *WalletHandlerTestSuite) TestTransfer_MissingAccount() {
	w := suite.do(http.MethodPost, "/transfer", `{"fromAccountNumber":"2026000001","amount":"1"}`, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "Transfer", mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestTransfer_InvalidIdempotencyKey() {
	w := suite.do(http.MethodPost, "/transfer",
		`{"fromAccountNumber":"2026000001","toAccountNumber":"2026000002","amount":"1"}`,
		map[string]string{handlers.IdempotencyKeyHeader: strings.Repeat("k", 129)})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "Transfer", mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestTransfer_IdempotencyConflict() {
	suite.mockLedgerService.On("Transfer", mock.Anything, mock.Anything).
		Return(nil, domain.ErrIdempotencyConflict).Once()

	w := suite.do(http.MethodPost, "/transfer",
		`{"fromAccountNumber":"2026000001","toAccountNumber":"2026000002","amount":"1"}`,
		map[string]string{handlers.IdempotencyKeyHeader: "abc-123"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *WalletHandlerTestSuite) TestTransfer_Retryable() {
	suite.mockLedgerService.On("Transfer", mock.Anything, mock.Anything).
		Return(nil, errors.Join(apperrors.ErrRetryable, errors.New("lock timeout on account:2026000001"))).Once()

	w := suite.do(http.MethodPost, "/transfer",
		`{"fromAccountNumber":"2026000001","toAccountNumber":"2026000002","amount":"1"}`, nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.NotContains(suite.decodeError(w).Message, "account:2026000001")
}

func (suite *WalletHandlerTestSuite) TestTransfer_InternalErrorIsGeneric() {
	suite.mockLedgerService.On("Transfer", mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection reset by peer")).Once()

	w := suite.do(http.MethodPost, "/transfer",
		`{"fromAccountNumber":"2026000001","toAccountNumber":"2026000002","amount":"1"}`, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	body := suite.decodeError(w)
	suite.Equal("An unexpected error occurred", body.Message)
	suite.Equal("Internal Server Error", body.Error)
}

func (suite *WalletHandlerTestSuite) TestGetHistory_Success() {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.mockHistoryService.On("GetHistory", mock.Anything, "2026000042").Return([]domain.HistoryEntry{
		{TransactionID: "tx-2", AccountNumber: "2026000042", EntryType: domain.Credit, Amount: decimal.RequireFromString("5"), CurrencyCode: "USD", Timestamp: ts.Add(time.Minute)},
		{TransactionID: "tx-1", AccountNumber: "2026000042", EntryType: domain.Debit, Amount: decimal.RequireFromString("10"), CurrencyCode: "USD", Timestamp: ts},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/wallets/2026000042/transactions", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.HistoryEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("tx-2", resp[0].TransactionID)
	suite.Equal(domain.Credit, resp[0].Type)
	suite.Equal(domain.Debit, resp[1].Type)
}

func (suite *WalletHandlerTestSuite) TestGetHistory_EmptyIsArray() {
	suite.mockHistoryService.On("GetHistory", mock.Anything, "2026000042").Return([]domain.HistoryEntry{}, nil).Once()

	w := suite.do(http.MethodGet, "/wallets/2026000042/transactions", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *WalletHandlerTestSuite) TestGetTransaction_NotFound() {
	suite.mockHistoryService.On("GetTransaction", mock.Anything, "missing").
		Return(nil, domain.ErrTransactionNotFound).Once()

	w := suite.do(http.MethodGet, "/transactions/missing", "", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestWalletHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

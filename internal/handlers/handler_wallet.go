package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/dto"
	"github.com/SscSPs/wallet_ledger/internal/middleware"
)

// walletHandler handles HTTP requests related to wallets.
type walletHandler struct {
	ledgerService  portssvc.LedgerSvcFacade
	historyService portssvc.HistorySvc
}

// newWalletHandler creates a new walletHandler.
func newWalletHandler(ls portssvc.LedgerSvcFacade, hs portssvc.HistorySvc) *walletHandler {
	return &walletHandler{
		ledgerService:  ls,
		historyService: hs,
	}
}

// registerWalletRoutes registers routes related to wallets.
func registerWalletRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, historyService portssvc.HistorySvc) {
	h := newWalletHandler(ledgerService, historyService)

	wallets := rg.Group("/wallets")
	{
		wallets.POST("", h.createWallet)
		wallets.GET("/:accountNumber", h.getWallet)
		wallets.POST("/:accountNumber/deposit", h.fundWallet)
		wallets.GET("/:accountNumber/transactions", h.getHistory)
	}
}

// createWallet godoc
// @Summary Create a new wallet
// @Description Creates a wallet with a freshly allocated account number and a zero balance
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   wallet body dto.CreateWalletRequest true "Wallet details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Account number could not be allocated"
// @Failure 500 {object} ErrorResponse "Failed to create wallet"
// @Router /wallets [post]
func (h *walletHandler) createWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWallet", slog.String("error", err.Error()))
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	logger.Info("Received request to create wallet", slog.String("name", req.Name), slog.String("currency", req.Currency))

	account, err := h.ledgerService.CreateWallet(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getWallet godoc
// @Summary Get a wallet
// @Description Retrieves a wallet and its current balance by account number
// @Tags wallets
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} ErrorResponse "Wallet not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve wallet"
// @Router /wallets/{accountNumber} [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	account, err := h.ledgerService.GetWallet(c.Request.Context(), accountNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// fundWallet godoc
// @Summary Fund a wallet
// @Description Adds money to a wallet from outside the ledger. No journal entry is recorded.
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Param   deposit body dto.DepositRequest true "Amount to add"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 404 {object} ErrorResponse "Wallet not found"
// @Failure 503 {object} ErrorResponse "Wallet is busy, retry"
// @Router /wallets/{accountNumber}/deposit [post]
func (h *walletHandler) fundWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FundWallet", slog.String("error", err.Error()))
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	account, err := h.ledgerService.FundWallet(c.Request.Context(), accountNumber, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getHistory godoc
// @Summary List wallet transactions
// @Description Lists the wallet's journal entries, newest first
// @Tags wallets
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Success 200 {array} dto.HistoryEntryResponse
// @Failure 404 {object} ErrorResponse "Wallet not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve history"
// @Router /wallets/{accountNumber}/transactions [get]
func (h *walletHandler) getHistory(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	entries, err := h.historyService.GetHistory(c.Request.Context(), accountNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponse(entries))
}

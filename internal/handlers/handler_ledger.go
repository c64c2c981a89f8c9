package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/dto"
	"github.com/SscSPs/wallet_ledger/internal/middleware"
)

// ledgerHandler handles transfers and transaction lookups.
type ledgerHandler struct {
	transferService portssvc.TransferSvc
	historyService  portssvc.HistorySvc
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ts portssvc.TransferSvc, hs portssvc.HistorySvc) *ledgerHandler {
	return &ledgerHandler{
		transferService: ts,
		historyService:  hs,
	}
}

// registerLedgerRoutes registers the transfer and transaction routes.
func registerLedgerRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvc, historyService portssvc.HistorySvc) {
	h := newLedgerHandler(transferService, historyService)

	rg.POST("/transfer", h.transfer)
	rg.GET("/transactions/:transactionID", h.getTransaction)
}

// transfer godoc
// @Summary Transfer between wallets
// @Description Debits the source wallet and credits the destination atomically, recording one journal entry on each side
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string false "Makes retries of the same transfer safe"
// @Param   transfer body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Failure 404 {object} ErrorResponse "Wallet not found"
// @Failure 409 {object} ErrorResponse "Idempotency key reused with different parameters"
// @Failure 503 {object} ErrorResponse "Wallets are busy, retry"
// @Router /transfer [post]
func (h *ledgerHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	req.IdempotencyKey = c.GetHeader(IdempotencyKeyHeader)
	if err := validateIdempotencyKey(req.IdempotencyKey); err != nil {
		logger.Warn("Invalid idempotency key", slog.String("error", err.Error()))
		respondBadRequest(c, "Invalid "+IdempotencyKeyHeader+" header: must be at most 128 printable ASCII characters")
		return
	}

	result, err := h.transferService.Transfer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(result))
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Returns the debit and credit legs recorded for one transfer
// @Tags transfers
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {array} dto.HistoryEntryResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve transaction"
// @Router /transactions/{transactionID} [get]
func (h *ledgerHandler) getTransaction(c *gin.Context) {
	transactionID := c.Param("transactionID")

	legs, err := h.historyService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponse(legs))
}

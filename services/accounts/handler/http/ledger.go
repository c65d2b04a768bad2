package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paysetu/bbps-account/internal/pkg/logger"
	"github.com/paysetu/bbps-account/internal/pkg/models"
	"github.com/paysetu/bbps-account/internal/utils"
	"github.com/paysetu/bbps-account/services/accounts"
)

// LedgerHandler handles HTTP requests for client-facing ledger records
type LedgerHandler struct {
	accountUC accounts.AccountUC
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(accountUC accounts.AccountUC) *LedgerHandler {
	return &LedgerHandler{
		accountUC: accountUC,
	}
}

// ActingClientID returns the identity resolved by the bearer-token
// middleware for this request
func ActingClientID(c echo.Context) string {
	clientID, _ := c.Get("client_id").(string)
	return clientID
}

// CreateTopUp handles POST /topups for the acting client
func (h *LedgerHandler) CreateTopUp(c echo.Context) error {
	var req models.TopUpRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for top-up", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	clientID := ActingClientID(c)
	topUp, err := h.accountUC.RecordTopUp(c.Request().Context(), clientID, &req)
	if err != nil {
		if errors.Is(err, accounts.ErrSessionRequired) {
			return utils.UnauthorizedResponse(c, accounts.ErrSessionRequired.Error())
		}
		logger.Error("Failed to insert top-up",
			logger.String("client_id", clientID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to insert top-up")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Top-up inserted",
		"client_id": topUp.ClientID,
		"topup_id":  topUp.ID,
	})
}

// CreateBankAccount handles POST /client-bank for the acting client
func (h *LedgerHandler) CreateBankAccount(c echo.Context) error {
	var req models.BankAccountRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for bank account", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	clientID := ActingClientID(c)
	bank, err := h.accountUC.RecordBankAccount(c.Request().Context(), clientID, &req)
	if err != nil {
		if errors.Is(err, accounts.ErrSessionRequired) {
			return utils.UnauthorizedResponse(c, accounts.ErrSessionRequired.Error())
		}
		logger.Error("Failed to insert bank account",
			logger.String("client_id", clientID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to insert bank account")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Bank detail inserted",
		"client_id": bank.ClientID,
	})
}

// ListTransactions handles GET /transactions, filtered to the acting client
func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	clientID := ActingClientID(c)

	txns, err := h.accountUC.ListTransactions(c.Request().Context(), clientID)
	if err != nil {
		if errors.Is(err, accounts.ErrSessionRequired) {
			return utils.UnauthorizedResponse(c, accounts.ErrSessionRequired.Error())
		}
		logger.Error("Failed to list transactions",
			logger.String("client_id", clientID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}
	if txns == nil {
		txns = []models.Transaction{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"transactions": txns,
	})
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paysetu/bbps-account/internal/pkg/logger"
	"github.com/paysetu/bbps-account/internal/pkg/models"
	"github.com/paysetu/bbps-account/internal/utils"
	"github.com/paysetu/bbps-account/services/accounts"
)

// AdminHandler handles the administrative surface: the cross-client record
// dump and provider-callback transaction recording. Routes using it sit
// behind the admin capability-token middleware.
type AdminHandler struct {
	accountUC accounts.AccountUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(accountUC accounts.AccountUC) *AdminHandler {
	return &AdminHandler{
		accountUC: accountUC,
	}
}

// GetAllRecords handles GET /get: every credential, top-up and bank account
// across all clients, unfiltered
func (h *AdminHandler) GetAllRecords(c echo.Context) error {
	dump, err := h.accountUC.AllRecords(c.Request().Context())
	if err != nil {
		logger.Error("Failed to assemble record dump", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to load records")
	}

	if dump.Users == nil {
		dump.Users = []models.Credential{}
	}
	if dump.TopUps == nil {
		dump.TopUps = []models.TopUp{}
	}
	if dump.ClientBanks == nil {
		dump.ClientBanks = []models.BankAccount{}
	}

	return c.JSON(http.StatusOK, dump)
}

// RecordTransaction handles POST /transactions from the payment provider
// callback integration
func (h *AdminHandler) RecordTransaction(c echo.Context) error {
	var req models.TransactionRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for transaction", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Client == "" {
		return utils.BadRequestResponse(c, "client is required")
	}

	txn, err := h.accountUC.RecordTransaction(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to record transaction",
			logger.String("client_id", req.Client),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to record transaction")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction recorded", txn)
}

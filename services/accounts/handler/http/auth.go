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

// AccountHandler handles HTTP requests for registration and login
type AccountHandler struct {
	accountUC accounts.AccountUC
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUC accounts.AccountUC) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
	}
}

// Register handles POST /login: creates a credential with a fresh bearer
// token and returns any ledger history already stored for the username
func (h *AccountHandler) Register(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for registration", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Username == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "username and password are required")
	}

	result, err := h.accountUC.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, accounts.ErrDuplicateIdentity) {
			return utils.BadRequestResponse(c, accounts.ErrDuplicateIdentity.Error())
		}
		logger.Error("Failed to register account",
			logger.String("client_id", req.Username),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to register account")
	}

	topUps := result.TopUps
	if topUps == nil {
		topUps = []models.TopUp{}
	}
	banks := result.ClientBanks
	if banks == nil {
		banks = []models.BankAccount{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":      "User logged in",
		"bear_token":   result.BearToken,
		"topups":       topUps,
		"client_banks": banks,
	})
}

// Login handles GET /login: exact-match credential check returning the
// stored bearer token
func (h *AccountHandler) Login(c echo.Context) error {
	username := c.QueryParam("username")
	password := c.QueryParam("password")
	if username == "" || password == "" {
		return utils.BadRequestResponse(c, "username and password are required")
	}

	cred, err := h.accountUC.Login(c.Request().Context(), username, password)
	if err != nil {
		if errors.Is(err, accounts.ErrBadCredentials) {
			return utils.UnauthorizedResponse(c, accounts.ErrBadCredentials.Error())
		}
		logger.Error("Failed to verify credentials", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to verify credentials")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"username":   cred.Username,
		"bear_token": cred.BearToken,
	})
}

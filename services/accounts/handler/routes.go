package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/paysetu/bbps-account/internal/pkg/jwt"
	"github.com/paysetu/bbps-account/internal/pkg/logger"
	"github.com/paysetu/bbps-account/internal/pkg/models"
	"github.com/paysetu/bbps-account/internal/utils"
	"github.com/paysetu/bbps-account/services/accounts"
	handlerhttp "github.com/paysetu/bbps-account/services/accounts/handler/http"
)

// Handler composes the HTTP handlers for the accounts service
type Handler struct {
	accountHandler   *handlerhttp.AccountHandler
	ledgerHandler    *handlerhttp.LedgerHandler
	dashboardHandler *handlerhttp.DashboardHandler
	adminHandler     *handlerhttp.AdminHandler
	accountUC        accounts.AccountUC
	cfg              *models.Config
}

// NewHandler creates a new handler with all dependencies
func NewHandler(accountUC accounts.AccountUC, cfg *models.Config) *Handler {
	return &Handler{
		accountHandler:   handlerhttp.NewAccountHandler(accountUC),
		ledgerHandler:    handlerhttp.NewLedgerHandler(accountUC),
		dashboardHandler: handlerhttp.NewDashboardHandler(accountUC),
		adminHandler:     handlerhttp.NewAdminHandler(accountUC),
		accountUC:        accountUC,
		cfg:              cfg,
	}
}

// RegisterRoutes registers all routes for the accounts service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public auth endpoints
	e.POST("/login", h.accountHandler.Register)
	e.GET("/login", h.accountHandler.Login)

	// Client endpoints, each resolving its own identity from the request
	client := e.Group("", h.BearerTokenMiddleware)
	client.POST("/topups", h.ledgerHandler.CreateTopUp)
	client.POST("/client-bank", h.ledgerHandler.CreateBankAccount)
	client.GET("/dashboard", h.dashboardHandler.GetDashboard)
	client.GET("/transactions", h.ledgerHandler.ListTransactions)

	// Administrative endpoints behind the capability token
	admin := e.Group("", h.AdminJWTMiddleware)
	admin.GET("/get", h.adminHandler.GetAllRecords)
	admin.POST("/transactions", h.adminHandler.RecordTransaction)
}

// BearerTokenMiddleware resolves the acting client for each request from the
// bearer_token query parameter or the Authorization header. Identity is never
// shared between requests.
func (h *Handler) BearerTokenMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.QueryParam("bearer_token")
		if token == "" {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		clientID, err := h.accountUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, accounts.ErrSessionRequired) {
				return utils.UnauthorizedResponse(c, accounts.ErrSessionRequired.Error())
			}
			if errors.Is(err, accounts.ErrInvalidToken) {
				return utils.UnauthorizedResponse(c, accounts.ErrInvalidToken.Error())
			}
			logger.Error("Failed to resolve bearer token", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to resolve session")
		}

		c.Set("client_id", clientID)
		return next(c)
	}
}

// AdminJWTMiddleware validates the signed admin capability token and requires
// the admin role claim
func (h *Handler) AdminJWTMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(auth, "Bearer ") {
			return utils.UnauthorizedResponse(c, "admin token required")
		}
		tokenString := strings.TrimPrefix(auth, "Bearer ")

		claims, err := jwtpkg.ValidateToken(tokenString, h.cfg.Auth.AdminSecret)
		if err != nil {
			logger.Warn("Rejected admin token", logger.Err(err))
			return utils.UnauthorizedResponse(c, "invalid admin token")
		}

		role, _ := claims["role"].(string)
		if role != jwtpkg.AdminRole {
			return utils.ErrorResponseHandler(c, http.StatusForbidden, "admin role required")
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set("admin_subject", sub)
		}
		return next(c)
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paysetu/bbps-account/internal/pkg/logger"
	"github.com/paysetu/bbps-account/internal/utils"
	"github.com/paysetu/bbps-account/services/accounts"
)

// DashboardHandler handles HTTP requests for the client dashboard
type DashboardHandler struct {
	accountUC accounts.AccountUC
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(accountUC accounts.AccountUC) *DashboardHandler {
	return &DashboardHandler{
		accountUC: accountUC,
	}
}

// GetDashboard handles GET /dashboard for the acting client. An empty
// dashboard is a 200 with a message; a persistently failing backend is a
// 502 once the retry budget is spent.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	clientID := ActingClientID(c)

	data, err := h.accountUC.Dashboard(c.Request().Context(), clientID)
	if err != nil {
		if errors.Is(err, accounts.ErrNoDashboardData) {
			return c.JSON(http.StatusOK, echo.Map{
				"message": "No dashboard data found for this client_id",
			})
		}
		logger.Error("Dashboard request failed",
			logger.String("client_id", clientID),
			logger.Err(err))
		if errors.Is(err, accounts.ErrDashboardUnavailable) {
			return utils.BadGatewayResponse(c, accounts.ErrDashboardUnavailable.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to load dashboard")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"dashboard_data": data,
	})
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paysetu/bbps-account/internal/pkg/logger"
	"github.com/paysetu/bbps-account/internal/pkg/models"
	"github.com/paysetu/bbps-account/services/accounts"
)

// Dashboard runs the aggregation procedure for the given client under a
// bounded retry budget. Transient read failures are retried with backoff;
// an empty dashboard short-circuits as ErrNoDashboardData. When the budget
// is exhausted the failure surfaces as ErrDashboardUnavailable rather than
// looping forever.
func (u *AccountUC) Dashboard(ctx context.Context, clientID string) ([]models.DashboardRow, error) {
	if clientID == "" {
		return nil, accounts.ErrSessionRequired
	}

	if u.cfg.Dashboard.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(u.cfg.Dashboard.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	var data []models.DashboardRow
	err := u.dashRetrier.Execute(ctx, func(ctx context.Context) error {
		rows, err := u.accountRepo.FetchDashboard(ctx, clientID)
		if err != nil {
			return err
		}
		data = rows
		return nil
	})
	if err != nil {
		if errors.Is(err, accounts.ErrNoDashboardData) {
			return nil, accounts.ErrNoDashboardData
		}
		logger.Error("Dashboard aggregation failed",
			logger.String("client_id", clientID),
			logger.Err(err))
		return nil, fmt.Errorf("%w: %v", accounts.ErrDashboardUnavailable, err)
	}

	return data, nil
}

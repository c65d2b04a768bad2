package usecase

import (
	"errors"
	"time"

	"github.com/paysetu/bbps-account/internal/pkg/logger"
	"github.com/paysetu/bbps-account/internal/pkg/models"
	"github.com/paysetu/bbps-account/internal/pkg/retry"
	"github.com/paysetu/bbps-account/services/accounts"
)

// AccountUC implements the account usecase interface
type AccountUC struct {
	accountRepo accounts.AccountRepo
	accountGW   accounts.AccountGW
	cfg         *models.Config
	dashRetrier *retry.Retrier
}

// NewAccountUC creates a new account usecase instance
func NewAccountUC(
	accountRepo accounts.AccountRepo,
	accountGW accounts.AccountGW,
	cfg *models.Config,
) *AccountUC {
	retryCfg := retry.DefaultConfig()
	if cfg.Dashboard.MaxAttempts > 0 {
		retryCfg.MaxRetries = cfg.Dashboard.MaxAttempts - 1
	}
	if cfg.Dashboard.BaseDelayMs > 0 {
		retryCfg.BaseDelay = time.Duration(cfg.Dashboard.BaseDelayMs) * time.Millisecond
	}
	// An empty dashboard is an answer, not a fault
	retryCfg.RetryableFunc = func(err error) bool {
		return !errors.Is(err, accounts.ErrNoDashboardData)
	}

	return &AccountUC{
		accountRepo: accountRepo,
		accountGW:   accountGW,
		cfg:         cfg,
		dashRetrier: retry.New(retryCfg, logger.GetGlobalLogger()),
	}
}

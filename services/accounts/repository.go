package accounts

import (
	"context"

	"github.com/paysetu/bbps-account/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/paysetu/bbps-account/services/accounts AccountRepo

// AccountRepo represents the account store interface
type AccountRepo interface {
	// credentials
	CreateCredential(ctx context.Context, cred *models.Credential) error
	GetCredentialByUsername(ctx context.Context, username string) (*models.Credential, error)
	GetCredentialByToken(ctx context.Context, token string) (*models.Credential, error)
	// ResolveToken maps a bearer token to its owning username, consulting the
	// session cache before the store
	ResolveToken(ctx context.Context, token string) (string, error)

	// ledger rows
	InsertTopUp(ctx context.Context, topUp *models.TopUp) error
	ListTopUps(ctx context.Context, clientID string) ([]models.TopUp, error)
	InsertBankAccount(ctx context.Context, bank *models.BankAccount) error
	ListBankAccounts(ctx context.Context, clientID string) ([]models.BankAccount, error)
	InsertTransaction(ctx context.Context, txn *models.Transaction) error
	ListTransactions(ctx context.Context, clientID string) ([]models.Transaction, error)

	// administrative dump
	ListAllCredentials(ctx context.Context) ([]models.Credential, error)
	ListAllTopUps(ctx context.Context) ([]models.TopUp, error)
	ListAllBankAccounts(ctx context.Context) ([]models.BankAccount, error)

	// dashboard aggregation
	FetchDashboard(ctx context.Context, clientID string) ([]models.DashboardRow, error)
}

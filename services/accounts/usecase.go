package accounts

import (
	"context"

	"github.com/paysetu/bbps-account/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/paysetu/bbps-account/services/accounts AccountUC

// AccountUC represents the account usecase interface
type AccountUC interface {
	// Register creates a credential with a fresh bearer token and returns any
	// ledger history already recorded under the username
	Register(ctx context.Context, username, password string) (*models.RegisterResult, error)
	// Login verifies a username/password pair and returns the stored credential
	Login(ctx context.Context, username, password string) (*models.Credential, error)
	// Authenticate resolves a bearer token to the acting client identity
	Authenticate(ctx context.Context, bearerToken string) (string, error)

	RecordTopUp(ctx context.Context, clientID string, req *models.TopUpRequest) (*models.TopUp, error)
	RecordBankAccount(ctx context.Context, clientID string, req *models.BankAccountRequest) (*models.BankAccount, error)
	RecordTransaction(ctx context.Context, req *models.TransactionRequest) (*models.Transaction, error)
	ListTransactions(ctx context.Context, clientID string) ([]models.Transaction, error)

	Dashboard(ctx context.Context, clientID string) ([]models.DashboardRow, error)
	AllRecords(ctx context.Context) (*models.AdminDump, error)
}

package accounts

import (
	"context"

	"github.com/paysetu/bbps-account/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/paysetu/bbps-account/services/accounts AccountGW

// AccountGW defines the account gateways interface (ledger event publishing)
type AccountGW interface {
	PublishAccountRegistered(ctx context.Context, username string) error
	PublishTopUpCreated(ctx context.Context, topUp *models.TopUp) error
	PublishBankLinked(ctx context.Context, bank *models.BankAccount) error
	PublishTransactionRecorded(ctx context.Context, txn *models.Transaction) error
}

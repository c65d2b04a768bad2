package gateway

import (
	"context"
	"time"

	"github.com/paysetu/bbps-account/internal/pkg/logger"
	"github.com/paysetu/bbps-account/internal/pkg/models"
)

// AccountRegisteredEvent is published when a new credential is created
type AccountRegisteredEvent struct {
	Username     string    `json:"username"`
	RegisteredAt time.Time `json:"registered_at"`
}

func (g *AccountGW) publish(topic string, message interface{}) error {
	if g.producer == nil {
		logger.Debug("Event publishing disabled, dropping message", logger.String("topic", topic))
		return nil
	}
	return g.producer.Publish(topic, message)
}

// PublishAccountRegistered publishes an account registration event
func (g *AccountGW) PublishAccountRegistered(_ context.Context, username string) error {
	return g.publish(TopicAccountRegistered, AccountRegisteredEvent{
		Username:     username,
		RegisteredAt: models.Now(),
	})
}

// PublishTopUpCreated publishes a top-up created event
func (g *AccountGW) PublishTopUpCreated(_ context.Context, topUp *models.TopUp) error {
	return g.publish(TopicTopUpCreated, topUp)
}

// PublishBankLinked publishes a bank account linked event
func (g *AccountGW) PublishBankLinked(_ context.Context, bank *models.BankAccount) error {
	return g.publish(TopicBankLinked, bank)
}

// PublishTransactionRecorded publishes a transaction recorded event
func (g *AccountGW) PublishTransactionRecorded(_ context.Context, txn *models.Transaction) error {
	return g.publish(TopicTransactionRecorded, txn)
}

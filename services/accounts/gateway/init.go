package gateway

import (
	nsqpkg "github.com/paysetu/bbps-account/internal/pkg/nsq"
)

// NSQ topics for ledger events
const (
	TopicAccountRegistered   = "account.registered"
	TopicTopUpCreated        = "topup.created"
	TopicBankLinked          = "bank.linked"
	TopicTransactionRecorded = "transaction.recorded"
)

// AccountGW implements the account gateway interface over NSQ
type AccountGW struct {
	producer *nsqpkg.Producer
}

// NewAccountGW creates a new account gateway instance. A nil producer
// disables publishing (events are dropped with a debug log), which keeps
// the service runnable without a broker in local setups.
func NewAccountGW(producer *nsqpkg.Producer) *AccountGW {
	return &AccountGW{producer: producer}
}

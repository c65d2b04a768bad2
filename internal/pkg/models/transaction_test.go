package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionRequest_AmountKeptExact(t *testing.T) {
	// Amounts beyond float64 precision must survive a round trip unchanged
	var req TransactionRequest
	err := json.Unmarshal([]byte(`{"client": "alice", "amount": 99999999999999.99}`), &req)
	assert.NoError(t, err)
	assert.True(t, req.Amount.Valid)
	assert.True(t, decimal.RequireFromString("99999999999999.99").Equal(req.Amount.Decimal))

	data, err := json.Marshal(req.Amount)
	assert.NoError(t, err)
	assert.Equal(t, "99999999999999.99", string(data))
}

func TestTransactionRequest_AmountNull(t *testing.T) {
	var req TransactionRequest
	err := json.Unmarshal([]byte(`{"client": "alice", "amount": null}`), &req)
	assert.NoError(t, err)
	assert.False(t, req.Amount.Valid)

	data, err := json.Marshal(req.Amount)
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestTopUp_AmountEmittedAsNumber(t *testing.T) {
	topUp := TopUp{
		ID:       1,
		TopUpBy:  "alice",
		Amount:   decimal.RequireFromString("500.25"),
		ClientID: "alice",
	}

	data, err := json.Marshal(topUp)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"amount":500.25`)
}

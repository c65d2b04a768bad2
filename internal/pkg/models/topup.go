package models

import "github.com/shopspring/decimal"

// TopUp represents a wallet recharge recorded against a client. Immutable
// once created; JSON field names follow the BBPS wire contract.
type TopUp struct {
	ID                  int64           `json:"id" db:"id"`
	TopUpBy             string          `json:"top_up_by" db:"top_up_by"`
	Amount              decimal.Decimal `json:"amount" db:"amount"`
	RechargeDate        LedgerTime      `json:"recharge_date" db:"recharge_date"`
	RechargeStatus      int             `json:"recharge_status" db:"recharge_status"`
	RechargeReferenceNo string          `json:"recharge_reference_no" db:"recharge_reference_no"`
	ClientID            string          `json:"client_id" db:"client_id"`
}

// TopUpRequest is the insertion payload. Any client-supplied client_id is
// ignored; ownership is stamped from the authenticated identity.
type TopUpRequest struct {
	TopUpBy             string          `json:"top_up_by"`
	Amount              decimal.Decimal `json:"amount"`
	RechargeDate        LedgerTime      `json:"recharge_date"`
	RechargeStatus      int             `json:"recharge_status"`
	RechargeReferenceNo string          `json:"recharge_reference_no"`
	ClientID            string          `json:"client_id,omitempty"`
}

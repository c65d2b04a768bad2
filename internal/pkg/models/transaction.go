package models

import "github.com/shopspring/decimal"

// Amounts travel as JSON numbers on the wire, matching what billers send.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is an append-only bill-payment ledger entry. Amount and
// TransactionDate are nullable and serialize as JSON null when absent.
type Transaction struct {
	ID                     int64               `json:"id" db:"id"`
	Client                 string              `json:"client" db:"client"`
	UserMobileNo           string              `json:"user_mobileno" db:"user_mobileno"`
	UserFullName           string              `json:"user_fullname" db:"user_fullname"`
	Amount                 decimal.NullDecimal `json:"amount" db:"amount"`
	TransactionDate        *LedgerTime         `json:"transaction_date" db:"transaction_date"`
	TransactionStatus      bool                `json:"transaction_status" db:"transaction_status"`
	TransactionReferenceNo string              `json:"transaction_reference_no" db:"transaction_reference_no"`
	TransactionXMLResponse string              `json:"transaction_xml_response" db:"transaction_xml_response"`
	ApprovalRefNumber      string              `json:"approvalRefNumber" db:"approval_ref_number"`
	SentReferenceNo        string              `json:"sent_reference_no" db:"sent_reference_no"`
	InternalReferenceNo    string              `json:"internal_reference_no" db:"internal_reference_no"`
}

// TransactionRequest is the provider-callback recording payload. The
// internal reference number is generated server-side.
type TransactionRequest struct {
	Client                 string              `json:"client"`
	UserMobileNo           string              `json:"user_mobileno"`
	UserFullName           string              `json:"user_fullname"`
	Amount                 decimal.NullDecimal `json:"amount"`
	TransactionDate        *LedgerTime         `json:"transaction_date"`
	TransactionStatus      bool                `json:"transaction_status"`
	TransactionReferenceNo string              `json:"transaction_reference_no"`
	TransactionXMLResponse string              `json:"transaction_xml_response"`
	ApprovalRefNumber      string              `json:"approvalRefNumber"`
	SentReferenceNo        string              `json:"sent_reference_no"`
}

// DashboardRow is one flattened row of a dashboard result set
type DashboardRow = map[string]interface{}

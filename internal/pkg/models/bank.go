package models

// BankAccount represents a bank account linked to a client for virtual
// account settlement. JSON field names follow the BBPS wire contract.
type BankAccount struct {
	SrNo              int64      `json:"Sr_No" db:"sr_no"`
	ClientID          string     `json:"client_id" db:"client_id"`
	BankName          string     `json:"bank_name" db:"bank_name"`
	VirtualAccountNo  string     `json:"virtual_accountNo" db:"virtual_account_no"`
	IFSCCode          string     `json:"IFSC_code" db:"ifsc_code"`
	AccountHolderName string     `json:"Accountholder_name" db:"account_holder_name"`
	ApprovalDate      LedgerTime `json:"Approval_date" db:"approval_date"`
	Status            int        `json:"status" db:"status"`
}

// BankAccountRequest is the insertion payload. Any client-supplied client_id
// is ignored; ownership is stamped from the authenticated identity.
type BankAccountRequest struct {
	BankName          string     `json:"bank_name"`
	VirtualAccountNo  string     `json:"virtual_accountNo"`
	IFSCCode          string     `json:"IFSC_code"`
	AccountHolderName string     `json:"Accountholder_name"`
	ApprovalDate      LedgerTime `json:"Approval_date"`
	Status            int        `json:"status"`
	ClientID          string     `json:"client_id,omitempty"`
}

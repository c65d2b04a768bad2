package repository

import (
	"context"
	"fmt"

	"github.com/paysetu/bbps-account/internal/pkg/models"
)

// InsertTopUp inserts a top-up row. The owning client_id must already be
// stamped by the caller; the generated id is written back onto the model.
func (r *AccountRepo) InsertTopUp(ctx context.Context, topUp *models.TopUp) error {
	query := `
		INSERT INTO top_up_details (top_up_by, amount, recharge_date, recharge_status, recharge_reference_no, client_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		topUp.TopUpBy,
		topUp.Amount,
		topUp.RechargeDate,
		topUp.RechargeStatus,
		topUp.RechargeReferenceNo,
		topUp.ClientID,
	).Scan(&topUp.ID)
	if err != nil {
		return fmt.Errorf("failed to insert top-up: %w", err)
	}

	return nil
}

// ListTopUps returns all top-ups owned by the given client
func (r *AccountRepo) ListTopUps(ctx context.Context, clientID string) ([]models.TopUp, error) {
	query := `
		SELECT id, top_up_by, amount, recharge_date, recharge_status, recharge_reference_no, client_id
		FROM top_up_details
		WHERE client_id = $1
	`

	var topUps []models.TopUp
	if err := r.db.SelectContext(ctx, &topUps, query, clientID); err != nil {
		return nil, fmt.Errorf("failed to list top-ups: %w", err)
	}
	return topUps, nil
}

// ListAllTopUps returns every top-up row across all clients
func (r *AccountRepo) ListAllTopUps(ctx context.Context) ([]models.TopUp, error) {
	query := `
		SELECT id, top_up_by, amount, recharge_date, recharge_status, recharge_reference_no, client_id
		FROM top_up_details
	`

	var topUps []models.TopUp
	if err := r.db.SelectContext(ctx, &topUps, query); err != nil {
		return nil, fmt.Errorf("failed to list top-ups: %w", err)
	}
	return topUps, nil
}

// InsertBankAccount inserts a linked bank account row and writes the
// generated sequence number back onto the model
func (r *AccountRepo) InsertBankAccount(ctx context.Context, bank *models.BankAccount) error {
	query := `
		INSERT INTO client_bank_details (client_id, bank_name, virtual_account_no, ifsc_code, account_holder_name, approval_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING sr_no
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		bank.ClientID,
		bank.BankName,
		bank.VirtualAccountNo,
		bank.IFSCCode,
		bank.AccountHolderName,
		bank.ApprovalDate,
		bank.Status,
	).Scan(&bank.SrNo)
	if err != nil {
		return fmt.Errorf("failed to insert bank account: %w", err)
	}

	return nil
}

// ListBankAccounts returns all bank accounts owned by the given client
func (r *AccountRepo) ListBankAccounts(ctx context.Context, clientID string) ([]models.BankAccount, error) {
	query := `
		SELECT sr_no, client_id, bank_name, virtual_account_no, ifsc_code, account_holder_name, approval_date, status
		FROM client_bank_details
		WHERE client_id = $1
	`

	var banks []models.BankAccount
	if err := r.db.SelectContext(ctx, &banks, query, clientID); err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	return banks, nil
}

// ListAllBankAccounts returns every bank account row across all clients
func (r *AccountRepo) ListAllBankAccounts(ctx context.Context) ([]models.BankAccount, error) {
	query := `
		SELECT sr_no, client_id, bank_name, virtual_account_no, ifsc_code, account_holder_name, approval_date, status
		FROM client_bank_details
	`

	var banks []models.BankAccount
	if err := r.db.SelectContext(ctx, &banks, query); err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	return banks, nil
}

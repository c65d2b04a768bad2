package repository

import (
	"context"
	"fmt"

	"github.com/paysetu/bbps-account/internal/pkg/models"
)

// InsertTransaction appends a bill-payment ledger entry. Rows are never
// updated or deleted afterwards.
func (r *AccountRepo) InsertTransaction(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO bbps_transactions (
			client, user_mobileno, user_fullname, amount, transaction_date,
			transaction_status, transaction_reference_no, transaction_xml_response,
			approval_ref_number, sent_reference_no, internal_reference_no
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		txn.Client,
		txn.UserMobileNo,
		txn.UserFullName,
		txn.Amount,
		txn.TransactionDate,
		txn.TransactionStatus,
		txn.TransactionReferenceNo,
		txn.TransactionXMLResponse,
		txn.ApprovalRefNumber,
		txn.SentReferenceNo,
		txn.InternalReferenceNo,
	).Scan(&txn.ID)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// ListTransactions returns all transactions owned by the given client
func (r *AccountRepo) ListTransactions(ctx context.Context, clientID string) ([]models.Transaction, error) {
	query := `
		SELECT id, client, user_mobileno, user_fullname, amount, transaction_date,
			transaction_status, transaction_reference_no, transaction_xml_response,
			approval_ref_number, sent_reference_no, internal_reference_no
		FROM bbps_transactions
		WHERE client = $1
	`

	var txns []models.Transaction
	if err := r.db.SelectContext(ctx, &txns, query, clientID); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

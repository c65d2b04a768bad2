package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/paysetu/bbps-account/internal/pkg/models"
	"github.com/paysetu/bbps-account/services/accounts/repository"
)

func TestInsertTransaction_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db, nil)

	amount := decimal.NewNullDecimal(decimal.RequireFromString("199.50"))
	txnDate := models.NewLedgerTime(time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC))
	txn := &models.Transaction{
		Client:                 "alice",
		UserMobileNo:           "9876543210",
		UserFullName:           "Alice K",
		Amount:                 amount,
		TransactionDate:        &txnDate,
		TransactionStatus:      true,
		TransactionReferenceNo: "TXN-100",
		ApprovalRefNumber:      "APR-55",
		SentReferenceNo:        "SENT-9",
		InternalReferenceNo:    "internal-uuid",
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bbps_transactions")).
		WithArgs(
			txn.Client, txn.UserMobileNo, txn.UserFullName, txn.Amount, sqlmock.AnyArg(),
			txn.TransactionStatus, txn.TransactionReferenceNo, txn.TransactionXMLResponse,
			txn.ApprovalRefNumber, txn.SentReferenceNo, txn.InternalReferenceNo,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	err := repo.InsertTransaction(context.Background(), txn)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), txn.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTransactions_FiltersByClient(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db, nil)

	rows := sqlmock.NewRows([]string{
		"id", "client", "user_mobileno", "user_fullname", "amount", "transaction_date",
		"transaction_status", "transaction_reference_no", "transaction_xml_response",
		"approval_ref_number", "sent_reference_no", "internal_reference_no",
	}).AddRow(int64(11), "alice", "9876543210", "Alice K", "199.50", time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
		true, "TXN-100", "", "APR-55", "SENT-9", "internal-uuid")

	mock.ExpectQuery(regexp.QuoteMeta("FROM bbps_transactions")).
		WithArgs("alice").
		WillReturnRows(rows)

	txns, err := repo.ListTransactions(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Len(t, txns, 1)
	assert.Equal(t, "TXN-100", txns[0].TransactionReferenceNo)
	assert.True(t, txns[0].Amount.Valid)
	assert.True(t, decimal.RequireFromString("199.50").Equal(txns[0].Amount.Decimal))
}

func TestListTransactions_NullableFields(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewAccountRepo(&models.Config{}, db, nil)

	rows := sqlmock.NewRows([]string{
		"id", "client", "user_mobileno", "user_fullname", "amount", "transaction_date",
		"transaction_status", "transaction_reference_no", "transaction_xml_response",
		"approval_ref_number", "sent_reference_no", "internal_reference_no",
	}).AddRow(int64(12), "alice", "", "", nil, nil,
		false, "", "", "", "", "internal-uuid-2")

	mock.ExpectQuery(regexp.QuoteMeta("FROM bbps_transactions")).
		WithArgs("alice").
		WillReturnRows(rows)

	txns, err := repo.ListTransactions(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Len(t, txns, 1)
	assert.False(t, txns[0].Amount.Valid)
	assert.Nil(t, txns[0].TransactionDate)
}

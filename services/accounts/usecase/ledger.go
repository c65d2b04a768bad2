package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/paysetu/bbps-account/internal/pkg/logger"
	"github.com/paysetu/bbps-account/internal/pkg/models"
	"github.com/paysetu/bbps-account/services/accounts"
)

// RecordTopUp inserts a top-up owned by the acting client. Ownership is
// stamped from the resolved identity; any client_id in the payload is
// discarded so ownership cannot be forged.
func (u *AccountUC) RecordTopUp(ctx context.Context, clientID string, req *models.TopUpRequest) (*models.TopUp, error) {
	if clientID == "" {
		return nil, accounts.ErrSessionRequired
	}

	topUp := &models.TopUp{
		TopUpBy:             req.TopUpBy,
		Amount:              req.Amount,
		RechargeDate:        req.RechargeDate,
		RechargeStatus:      req.RechargeStatus,
		RechargeReferenceNo: req.RechargeReferenceNo,
		ClientID:            clientID,
	}
	if err := u.accountRepo.InsertTopUp(ctx, topUp); err != nil {
		return nil, err
	}

	if err := u.accountGW.PublishTopUpCreated(ctx, topUp); err != nil {
		logger.Warn("Failed to publish top-up created event",
			logger.String("client_id", clientID),
			logger.Int64("topup_id", topUp.ID),
			logger.Err(err))
	}

	return topUp, nil
}

// RecordBankAccount links a bank account to the acting client, with the
// same server-side ownership stamping as top-ups
func (u *AccountUC) RecordBankAccount(ctx context.Context, clientID string, req *models.BankAccountRequest) (*models.BankAccount, error) {
	if clientID == "" {
		return nil, accounts.ErrSessionRequired
	}

	bank := &models.BankAccount{
		ClientID:          clientID,
		BankName:          req.BankName,
		VirtualAccountNo:  req.VirtualAccountNo,
		IFSCCode:          req.IFSCCode,
		AccountHolderName: req.AccountHolderName,
		ApprovalDate:      req.ApprovalDate,
		Status:            req.Status,
	}
	if err := u.accountRepo.InsertBankAccount(ctx, bank); err != nil {
		return nil, err
	}

	if err := u.accountGW.PublishBankLinked(ctx, bank); err != nil {
		logger.Warn("Failed to publish bank linked event",
			logger.String("client_id", clientID),
			logger.Err(err))
	}

	return bank, nil
}

// RecordTransaction appends a bill-payment ledger entry from a provider
// callback. The internal reference number is always generated server-side.
func (u *AccountUC) RecordTransaction(ctx context.Context, req *models.TransactionRequest) (*models.Transaction, error) {
	if req.Client == "" {
		return nil, fmt.Errorf("client identity is required")
	}

	txn := &models.Transaction{
		Client:                 req.Client,
		UserMobileNo:           req.UserMobileNo,
		UserFullName:           req.UserFullName,
		Amount:                 req.Amount,
		TransactionDate:        req.TransactionDate,
		TransactionStatus:      req.TransactionStatus,
		TransactionReferenceNo: req.TransactionReferenceNo,
		TransactionXMLResponse: req.TransactionXMLResponse,
		ApprovalRefNumber:      req.ApprovalRefNumber,
		SentReferenceNo:        req.SentReferenceNo,
		InternalReferenceNo:    uuid.New().String(),
	}
	if err := u.accountRepo.InsertTransaction(ctx, txn); err != nil {
		return nil, err
	}

	if err := u.accountGW.PublishTransactionRecorded(ctx, txn); err != nil {
		logger.Warn("Failed to publish transaction recorded event",
			logger.String("client_id", txn.Client),
			logger.Int64("transaction_id", txn.ID),
			logger.Err(err))
	}

	return txn, nil
}

// ListTransactions returns the transactions owned by the given client
func (u *AccountUC) ListTransactions(ctx context.Context, clientID string) ([]models.Transaction, error) {
	if clientID == "" {
		return nil, accounts.ErrSessionRequired
	}
	return u.accountRepo.ListTransactions(ctx, clientID)
}

// AllRecords assembles the full cross-client dump for the administrative
// surface
func (u *AccountUC) AllRecords(ctx context.Context) (*models.AdminDump, error) {
	creds, err := u.accountRepo.ListAllCredentials(ctx)
	if err != nil {
		return nil, err
	}
	topUps, err := u.accountRepo.ListAllTopUps(ctx)
	if err != nil {
		return nil, err
	}
	banks, err := u.accountRepo.ListAllBankAccounts(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AdminDump{
		Users:       creds,
		TopUps:      topUps,
		ClientBanks: banks,
	}, nil
}

package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/paysetu/bbps-account/internal/pkg/logger"
	"github.com/paysetu/bbps-account/internal/pkg/models"
	"github.com/paysetu/bbps-account/internal/pkg/token"
	"github.com/paysetu/bbps-account/services/accounts"
)

// Register creates a credential with a freshly issued bearer token. The
// password is stored as a bcrypt hash, never in cleartext. Returns any
// ledger history already recorded under the username, which is empty for a
// brand-new identity.
func (u *AccountUC) Register(ctx context.Context, username, password string) (*models.RegisterResult, error) {
	bearToken, err := token.Issue()
	if err != nil {
		return nil, fmt.Errorf("failed to issue bearer token: %w", err)
	}

	cost := u.cfg.Auth.BCryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	cred := &models.Credential{
		Username:  username,
		Password:  string(hash),
		BearToken: bearToken,
	}
	if err := u.accountRepo.CreateCredential(ctx, cred); err != nil {
		return nil, err
	}

	topUps, err := u.accountRepo.ListTopUps(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load top-up history: %w", err)
	}
	banks, err := u.accountRepo.ListBankAccounts(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load bank account history: %w", err)
	}

	if err := u.accountGW.PublishAccountRegistered(ctx, username); err != nil {
		logger.Warn("Failed to publish account registered event",
			logger.String("client_id", username),
			logger.Err(err))
	}

	return &models.RegisterResult{
		BearToken:   bearToken,
		TopUps:      topUps,
		ClientBanks: banks,
	}, nil
}

// Login verifies a username/password pair against the stored bcrypt hash
// and returns the stored credential. Failures surface a single
// BadCredentials error regardless of which field was wrong.
func (u *AccountUC) Login(ctx context.Context, username, password string) (*models.Credential, error) {
	cred, err := u.accountRepo.GetCredentialByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.Password), []byte(password)); err != nil {
		return nil, accounts.ErrBadCredentials
	}

	return cred, nil
}

// Authenticate resolves a bearer token to the acting client identity
func (u *AccountUC) Authenticate(ctx context.Context, bearerToken string) (string, error) {
	if bearerToken == "" {
		return "", accounts.ErrSessionRequired
	}
	return u.accountRepo.ResolveToken(ctx, bearerToken)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"

	"github.com/paysetu/bbps-account/internal/pkg/models"
	"github.com/paysetu/bbps-account/services/accounts"
)

const uniqueViolationCode = "23505"

// CreateCredential creates a new credential row. The insert runs inside a
// transaction so a duplicate username leaves no partial write behind.
func (r *AccountRepo) CreateCredential(ctx context.Context, cred *models.Credential) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO user_info (username, password, bear_token)
		VALUES (:username, :password, :bear_token)
	`
	_, err = tx.NamedExecContext(ctx, query, cred)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return accounts.ErrDuplicateIdentity
		}
		return fmt.Errorf("failed to insert credential: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetCredentialByUsername retrieves a credential by username
func (r *AccountRepo) GetCredentialByUsername(ctx context.Context, username string) (*models.Credential, error) {
	query := `
		SELECT username, password, bear_token
		FROM user_info
		WHERE username = $1
	`

	var cred models.Credential
	err := r.db.GetContext(ctx, &cred, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accounts.ErrBadCredentials
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	return &cred, nil
}

// GetCredentialByToken retrieves the credential whose stored bearer token
// equals the presented value
func (r *AccountRepo) GetCredentialByToken(ctx context.Context, token string) (*models.Credential, error) {
	query := `
		SELECT username, password, bear_token
		FROM user_info
		WHERE bear_token = $1
	`

	var cred models.Credential
	err := r.db.GetContext(ctx, &cred, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accounts.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to get credential by token: %w", err)
	}

	return &cred, nil
}

// ListAllCredentials returns every credential row across all clients
func (r *AccountRepo) ListAllCredentials(ctx context.Context) ([]models.Credential, error) {
	query := `SELECT username, password, bear_token FROM user_info`

	var creds []models.Credential
	if err := r.db.SelectContext(ctx, &creds, query); err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	return creds, nil
}

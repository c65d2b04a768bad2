package repository

import (
	"context"
	"time"

	"github.com/paysetu/bbps-account/internal/pkg/logger"
	"github.com/paysetu/bbps-account/services/accounts"
)

const tokenCacheKeyPrefix = "session:token:"

// ResolveToken maps a bearer token to its owning username. Redis serves as
// a read-through session cache; the credentials table stays the source of
// truth, so a cache miss or cache outage falls back to the store.
func (r *AccountRepo) ResolveToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", accounts.ErrSessionRequired
	}

	if r.redisClient != nil {
		username, err := r.redisClient.Get(ctx, tokenCacheKeyPrefix+token)
		if err == nil && username != "" {
			return username, nil
		}
	}

	cred, err := r.GetCredentialByToken(ctx, token)
	if err != nil {
		return "", err
	}

	r.cacheToken(ctx, token, cred.Username)
	return cred.Username, nil
}

// cacheToken stores a token->username binding with the configured TTL.
// Failures are logged only; the session cache is best-effort.
func (r *AccountRepo) cacheToken(ctx context.Context, token, username string) {
	if r.redisClient == nil {
		return
	}

	ttl := time.Duration(r.cfg.Auth.TokenCacheTTL) * time.Minute
	if err := r.redisClient.Set(ctx, tokenCacheKeyPrefix+token, username, ttl); err != nil {
		logger.Warn("Failed to cache session token",
			logger.String("client_id", username),
			logger.Err(err))
	}
}

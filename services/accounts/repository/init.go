package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/paysetu/bbps-account/internal/pkg/database"
	"github.com/paysetu/bbps-account/internal/pkg/models"
)

// AccountRepo implements the account repository interface
type AccountRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAccountRepo creates a new account repository instance. redisClient may
// be nil, in which case token resolution always goes to the store.
func NewAccountRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AccountRepo {
	return &AccountRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

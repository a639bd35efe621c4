package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/tumpang/internal/pkg/database"
	"github.com/piresc/tumpang/internal/pkg/models"
)

// UserRepo implements the users.UserRepo interface on postgres
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// SessionRepo implements the users.SessionRepo interface on redis
type SessionRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(cfg *models.Config, redisClient *database.RedisClient) *SessionRepo {
	return &SessionRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

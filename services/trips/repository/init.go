package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/tumpang/internal/pkg/database"
	"github.com/piresc/tumpang/internal/pkg/models"
)

// TripRepo implements the trips.TripRepo interface
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepo creates a new trip repository
func NewTripRepo(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// StatsCache implements the trips.StatsCache interface
type StatsCache struct {
	redisClient *database.RedisClient
}

// NewStatsCache creates a new driver stats cache
func NewStatsCache(redisClient *database.RedisClient) *StatsCache {
	return &StatsCache{redisClient: redisClient}
}

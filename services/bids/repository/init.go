package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/tumpang/internal/pkg/models"
)

// BidRepo implements the bids.BidRepo interface
type BidRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBidRepo creates a new bid repository
func NewBidRepo(cfg *models.Config, db *sqlx.DB) *BidRepo {
	return &BidRepo{
		cfg: cfg,
		db:  db,
	}
}

package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/tumpang/internal/pkg/models"
)

// BookingRepo implements the bookings.BookingRepo interface
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepo creates a new booking repository
func NewBookingRepo(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

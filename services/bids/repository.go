package bids

import (
	"context"

	"github.com/piresc/tumpang/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/tumpang/services/bids BidRepo

// BidRepo defines the bid persistence interface
type BidRepo interface {
	// CreateBid locks the trip and inserts the bid when the rider may still bid on it
	CreateBid(ctx context.Context, bid *models.Bid) error
	GetBidByID(ctx context.Context, id string) (*models.Bid, error)
	IncreaseBidAmount(ctx context.Context, id, riderID string, amount float64) error
	DeleteBid(ctx context.Context, id, riderID string) error
	// AcceptBid takes a seat on the trip and accepts the bid in one transaction
	AcceptBid(ctx context.Context, id, tripID string) error
	RejectBid(ctx context.Context, id string) error

	ListBidsByRider(ctx context.Context, riderID string) ([]*models.Bid, error)
	ListTripIDsByDriver(ctx context.Context, driverID string) ([]string, error)
	ListBidsByTrips(ctx context.Context, tripIDs []string) ([]*models.Bid, error)
}

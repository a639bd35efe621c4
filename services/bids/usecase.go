package bids

import (
	"context"

	"github.com/piresc/tumpang/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/tumpang/services/bids BidUC

// BidUC represents the bid usecase interface
type BidUC interface {
	PlaceBid(ctx context.Context, riderID string, req *models.PlaceBidRequest) (*models.Bid, error)
	IncreaseBid(ctx context.Context, riderID, bidID string, req *models.IncreaseBidRequest) (*models.Bid, error)
	WithdrawBid(ctx context.Context, riderID, bidID string) error
	RespondToBid(ctx context.Context, driverID, bidID string, accept bool) (*models.Bid, error)

	ListMyBids(ctx context.Context, riderID string) ([]*models.Bid, error)
	ListTripBids(ctx context.Context, driverID, tripID string) ([]*models.Bid, error)
}

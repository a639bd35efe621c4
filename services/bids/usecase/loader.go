package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/tumpang/internal/pkg/models"
)

// ListMyBids lists the rider's bids
func (uc *BidUC) ListMyBids(ctx context.Context, riderID string) ([]*models.Bid, error) {
	return uc.bidRepo.ListBidsByRider(ctx, riderID)
}

// ListTripBids lists the bids received on the driver's trips, or on tripID
// alone when it is set
func (uc *BidUC) ListTripBids(ctx context.Context, driverID, tripID string) ([]*models.Bid, error) {
	owned, err := uc.bidRepo.ListTripIDsByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if tripID != "" {
		if !contains(owned, tripID) {
			return nil, fmt.Errorf("trip not found: %w", models.ErrNotFound)
		}
		owned = []string{tripID}
	}

	return uc.bidRepo.ListBidsByTrips(ctx, owned)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

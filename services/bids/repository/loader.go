package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/tumpang/internal/pkg/models"
)

// ListBidsByRider returns the rider's bids, newest first
func (r *BidRepo) ListBidsByRider(ctx context.Context, riderID string) ([]*models.Bid, error) {
	result := []*models.Bid{}
	query := bidSelect + ` WHERE b.rider_id = $1 ORDER BY b.created_at DESC`
	if err := r.db.SelectContext(ctx, &result, query, riderID); err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	return result, nil
}

// ListTripIDsByDriver returns the ids of the driver's trips
func (r *BidRepo) ListTripIDsByDriver(ctx context.Context, driverID string) ([]string, error) {
	ids := []string{}
	if err := r.db.SelectContext(ctx, &ids, `SELECT id FROM trips WHERE driver_id = $1`, driverID); err != nil {
		return nil, fmt.Errorf("failed to list driver trip ids: %w", err)
	}
	return ids, nil
}

// ListBidsByTrips returns the bids placed on any of tripIDs, newest first
func (r *BidRepo) ListBidsByTrips(ctx context.Context, tripIDs []string) ([]*models.Bid, error) {
	result := []*models.Bid{}
	if len(tripIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(bidSelect+` WHERE b.trip_id IN (?) ORDER BY b.created_at DESC`, tripIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build trip bids query: %w", err)
	}

	if err := r.db.SelectContext(ctx, &result, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list trip bids: %w", err)
	}
	return result, nil
}

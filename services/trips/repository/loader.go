package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/tumpang/internal/pkg/models"
)

// ListBrowsableTrips returns active trips from fromDate on that still have seats
func (r *TripRepo) ListBrowsableTrips(ctx context.Context, fromDate string) ([]*models.Trip, error) {
	query := tripSelect + `
		WHERE t.status = 'active' AND t.available_seats > 0 AND t.trip_date >= $1
		ORDER BY t.trip_date ASC, t.trip_time ASC
	`

	trips := []*models.Trip{}
	if err := r.db.SelectContext(ctx, &trips, query, fromDate); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

// ListTripsByDriver returns a driver's trips, newest trip date first
func (r *TripRepo) ListTripsByDriver(ctx context.Context, driverID string) ([]*models.Trip, error) {
	query := tripSelect + `
		WHERE t.driver_id = $1
		ORDER BY t.trip_date DESC, t.trip_time DESC
	`

	trips := []*models.Trip{}
	if err := r.db.SelectContext(ctx, &trips, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list driver trips: %w", err)
	}
	return trips, nil
}

// CountPendingBids counts pending bids per trip in one grouped query
func (r *TripRepo) CountPendingBids(ctx context.Context, tripIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(tripIDs))
	if len(tripIDs) == 0 {
		return counts, nil
	}

	query, args, err := sqlx.In(`
		SELECT trip_id, COUNT(*) AS pending
		FROM bids
		WHERE status = 'pending' AND trip_id IN (?)
		GROUP BY trip_id
	`, tripIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build pending bid query: %w", err)
	}

	var rows []struct {
		TripID  string `db:"trip_id"`
		Pending int    `db:"pending"`
	}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to count pending bids: %w", err)
	}

	for _, row := range rows {
		counts[row.TripID] = row.Pending
	}
	return counts, nil
}

// ListBidTripIDs returns the ids of trips the rider has bid on
func (r *TripRepo) ListBidTripIDs(ctx context.Context, riderID string) ([]string, error) {
	ids := []string{}
	if err := r.db.SelectContext(ctx, &ids, `SELECT trip_id FROM bids WHERE rider_id = $1`, riderID); err != nil {
		return nil, fmt.Errorf("failed to list bid trip ids: %w", err)
	}
	return ids, nil
}

// ListBookingTripIDs returns the ids of trips the rider has booked
func (r *TripRepo) ListBookingTripIDs(ctx context.Context, riderID string) ([]string, error) {
	ids := []string{}
	if err := r.db.SelectContext(ctx, &ids, `SELECT trip_id FROM bookings WHERE rider_id = $1`, riderID); err != nil {
		return nil, fmt.Errorf("failed to list booking trip ids: %w", err)
	}
	return ids, nil
}

// GetRiderBid returns the rider's bid on a trip
func (r *TripRepo) GetRiderBid(ctx context.Context, tripID, riderID string) (*models.Bid, error) {
	query := `
		SELECT id, trip_id, rider_id, amount::float8 AS amount, status, message, created_at, updated_at
		FROM bids
		WHERE trip_id = $1 AND rider_id = $2
	`

	var bid models.Bid
	if err := r.db.GetContext(ctx, &bid, query, tripID, riderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("bid not found: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get bid: %w", err)
	}
	return &bid, nil
}

// GetRiderBooking returns the rider's booking on a trip
func (r *TripRepo) GetRiderBooking(ctx context.Context, tripID, riderID string) (*models.Booking, error) {
	query := `
		SELECT id, trip_id, rider_id, status, created_at, updated_at
		FROM bookings
		WHERE trip_id = $1 AND rider_id = $2
	`

	var booking models.Booking
	if err := r.db.GetContext(ctx, &booking, query, tripID, riderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking not found: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	booking.Status = booking.Status.Normalize()
	return &booking, nil
}

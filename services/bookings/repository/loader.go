package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/tumpang/internal/pkg/models"
)

// ListBookingsByRider returns the rider's bookings, newest first
func (r *BookingRepo) ListBookingsByRider(ctx context.Context, riderID string) ([]*models.Booking, error) {
	result := []*models.Booking{}
	query := bookingSelect + ` WHERE bk.rider_id = $1 ORDER BY bk.created_at DESC`
	if err := r.db.SelectContext(ctx, &result, query, riderID); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return normalize(result), nil
}

// ListTripIDsByDriver returns the ids of the driver's trips
func (r *BookingRepo) ListTripIDsByDriver(ctx context.Context, driverID string) ([]string, error) {
	ids := []string{}
	if err := r.db.SelectContext(ctx, &ids, `SELECT id FROM trips WHERE driver_id = $1`, driverID); err != nil {
		return nil, fmt.Errorf("failed to list driver trip ids: %w", err)
	}
	return ids, nil
}

// ListBookingsByTrips returns the bookings made on any of tripIDs, newest first
func (r *BookingRepo) ListBookingsByTrips(ctx context.Context, tripIDs []string) ([]*models.Booking, error) {
	result := []*models.Booking{}
	if len(tripIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(bookingSelect+` WHERE bk.trip_id IN (?) ORDER BY bk.created_at DESC`, tripIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build trip bookings query: %w", err)
	}

	if err := r.db.SelectContext(ctx, &result, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list trip bookings: %w", err)
	}
	return normalize(result), nil
}

func normalize(list []*models.Booking) []*models.Booking {
	for _, booking := range list {
		booking.Status = booking.Status.Normalize()
	}
	return list
}

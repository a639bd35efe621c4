package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/tumpang/internal/pkg/models"
)

// tripSelect reads trips with dates formatted the way clients send them and
// the driver's display name joined in
const tripSelect = `
	SELECT t.id, t.driver_id, t.from_location, t.to_location,
		to_char(t.trip_date, 'YYYY-MM-DD') AS trip_date,
		to_char(t.trip_time, 'HH24:MI') AS trip_time,
		t.price::float8 AS price, t.available_seats, t.total_seats, t.description, t.status, t.created_at,
		COALESCE(NULLIF(trim(dp.first_name || ' ' || dp.last_name), ''), p.full_name, '') AS driver_name
	FROM trips t
	LEFT JOIN driver_profiles dp ON dp.user_id = t.driver_id
	LEFT JOIN profiles p ON p.id = t.driver_id
`

// CreateTrip inserts a new trip
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	trip.CreatedAt = models.Now()

	query := `
		INSERT INTO trips (id, driver_id, from_location, to_location, trip_date, trip_time,
			price, available_seats, total_seats, description, status, created_at)
		VALUES (:id, :driver_id, :from_location, :to_location, :trip_date, :trip_time,
			:price, :available_seats, :total_seats, :description, :status, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, trip); err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	return nil
}

// GetTripByID retrieves a trip by id
func (r *TripRepo) GetTripByID(ctx context.Context, id string) (*models.Trip, error) {
	query := tripSelect + ` WHERE t.id = $1`

	var trip models.Trip
	if err := r.db.GetContext(ctx, &trip, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("trip not found: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &trip, nil
}

// UpdateTripStatus moves an open trip owned by driverID to status. Zero
// affected rows means the trip was closed concurrently.
func (r *TripRepo) UpdateTripStatus(ctx context.Context, id, driverID string, status models.TripStatus) error {
	query := `
		UPDATE trips
		SET status = $3
		WHERE id = $1 AND driver_id = $2 AND status IN ('active', 'pending')
	`
	result, err := r.db.ExecContext(ctx, query, id, driverID, status)
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("trip is no longer open: %w", models.ErrConflict)
	}

	return nil
}

// DeleteTrip removes a trip owned by driverID together with its bids and bookings
func (r *TripRepo) DeleteTrip(ctx context.Context, id, driverID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1 AND driver_id = $2`, id, driverID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("trip not found: %w", models.ErrNotFound)
	}

	return nil
}

// HasDriverProfile reports whether userID registered as a driver
func (r *TripRepo) HasDriverProfile(ctx context.Context, userID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM driver_profiles WHERE user_id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, userID); err != nil {
		return false, fmt.Errorf("failed to check driver profile: %w", err)
	}
	return exists, nil
}

// GetDriverStats calls the get_driver_stats function
func (r *TripRepo) GetDriverStats(ctx context.Context, driverID string) (*models.DriverStats, error) {
	query := `
		SELECT total_trips, active_trips, completed_trips, cancelled_trips, total_passengers,
			total_earnings::float8 AS total_earnings
		FROM get_driver_stats($1)
	`

	var stats models.DriverStats
	if err := r.db.GetContext(ctx, &stats, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to get driver stats: %w", err)
	}

	return &stats, nil
}

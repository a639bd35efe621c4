package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/tumpang/internal/pkg/database"
	"github.com/piresc/tumpang/internal/pkg/models"
)

const bookingSelect = `
	SELECT bk.id, bk.trip_id, bk.rider_id, bk.status, bk.created_at, bk.updated_at,
		t.driver_id, t.from_location, t.to_location,
		to_char(t.trip_date, 'YYYY-MM-DD') AS trip_date,
		to_char(t.trip_time, 'HH24:MI') AS trip_time,
		t.price::float8 AS trip_price,
		COALESCE(p.full_name, '') AS rider_name
	FROM bookings bk
	JOIN trips t ON t.id = bk.trip_id
	LEFT JOIN profiles p ON p.id = bk.rider_id
`

// CreateBooking inserts a pending booking while holding the trip row lock
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	now := models.Now()
	booking.Status = models.BookingStatusPending
	booking.CreatedAt = now
	booking.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := lockBookableTrip(ctx, tx, booking.TripID, booking.RiderID); err != nil {
		return err
	}

	query := `
		INSERT INTO bookings (id, trip_id, rider_id, status, created_at, updated_at)
		VALUES (:id, :trip_id, :rider_id, :status, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, booking); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("you already booked this trip: %w", models.ErrConflict)
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func lockBookableTrip(ctx context.Context, tx *sqlx.Tx, tripID, riderID string) error {
	var trip struct {
		DriverID       string            `db:"driver_id"`
		Status         models.TripStatus `db:"status"`
		AvailableSeats int               `db:"available_seats"`
	}
	err := tx.GetContext(ctx, &trip,
		`SELECT driver_id, status, available_seats FROM trips WHERE id = $1 FOR UPDATE`, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("trip not found: %w", models.ErrNotFound)
		}
		return fmt.Errorf("failed to lock trip: %w", err)
	}

	switch {
	case trip.DriverID == riderID:
		return fmt.Errorf("you cannot book your own trip: %w", models.ErrForbidden)
	case trip.Status != models.TripStatusActive:
		return fmt.Errorf("trip is %s: %w", trip.Status, models.ErrConflict)
	case trip.AvailableSeats <= 0:
		return fmt.Errorf("trip is full: %w", models.ErrConflict)
	}

	var bidding bool
	err = tx.GetContext(ctx, &bidding, `
		SELECT EXISTS (
			SELECT 1 FROM bids WHERE trip_id = $1 AND rider_id = $2 AND status <> 'rejected'
		)`, tripID, riderID)
	if err != nil {
		return fmt.Errorf("failed to check bids: %w", err)
	}
	if bidding {
		return fmt.Errorf("you already bid on this trip: %w", models.ErrConflict)
	}

	return nil
}

// GetBookingByID retrieves a booking with its trip summary
func (r *BookingRepo) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.GetContext(ctx, &booking, bookingSelect+` WHERE bk.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking not found: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	booking.Status = booking.Status.Normalize()
	return &booking, nil
}

// ConfirmBooking decrements the trip's free seats and confirms the booking
func (r *BookingRepo) ConfirmBooking(ctx context.Context, id, tripID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE trips
		SET available_seats = available_seats - 1
		WHERE id = $1 AND status = 'active' AND available_seats > 0
	`, tripID)
	if err != nil {
		return fmt.Errorf("failed to reserve seat: %w", err)
	}
	if err := database.ExpectAffected(result,
		fmt.Errorf("trip is full or closed: %w", models.ErrConflict)); err != nil {
		return err
	}

	result, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = 'confirmed', updated_at = $2 WHERE id = $1 AND status = 'pending'`,
		id, models.Now())
	if err != nil {
		return fmt.Errorf("failed to confirm booking: %w", err)
	}
	if err := database.ExpectAffected(result,
		fmt.Errorf("booking is no longer pending: %w", models.ErrConflict)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CancelBooking cancels the booking and returns a confirmed seat to its trip
func (r *BookingRepo) CancelBooking(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `SELECT cancel_booking_and_update_trip($1)`, id); err != nil {
		if database.IsNoDataFound(err) {
			return fmt.Errorf("booking not found: %w", models.ErrNotFound)
		}
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	return nil
}

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

const bidSelect = `
	SELECT b.id, b.trip_id, b.rider_id, b.amount::float8 AS amount, b.status, b.message, b.created_at, b.updated_at,
		t.driver_id, t.from_location, t.to_location,
		to_char(t.trip_date, 'YYYY-MM-DD') AS trip_date,
		to_char(t.trip_time, 'HH24:MI') AS trip_time,
		t.price::float8 AS trip_price,
		COALESCE(p.full_name, '') AS rider_name
	FROM bids b
	JOIN trips t ON t.id = b.trip_id
	LEFT JOIN profiles p ON p.id = b.rider_id
`

type lockedTrip struct {
	DriverID       string            `db:"driver_id"`
	Status         models.TripStatus `db:"status"`
	AvailableSeats int               `db:"available_seats"`
}

// CreateBid inserts a pending bid. The trip row stays locked until commit so a
// concurrent booking by the same rider cannot slip in between the check and the insert.
func (r *BidRepo) CreateBid(ctx context.Context, bid *models.Bid) error {
	if bid.ID == "" {
		bid.ID = uuid.NewString()
	}
	now := models.Now()
	bid.Status = models.BidStatusPending
	bid.CreatedAt = now
	bid.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := lockBiddableTrip(ctx, tx, bid.TripID, bid.RiderID); err != nil {
		return err
	}

	query := `
		INSERT INTO bids (id, trip_id, rider_id, amount, status, message, created_at, updated_at)
		VALUES (:id, :trip_id, :rider_id, :amount, :status, :message, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, bid); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("you already bid on this trip: %w", models.ErrConflict)
		}
		return fmt.Errorf("failed to insert bid: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func lockBiddableTrip(ctx context.Context, tx *sqlx.Tx, tripID, riderID string) error {
	var trip lockedTrip
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
		return fmt.Errorf("you cannot bid on your own trip: %w", models.ErrForbidden)
	case trip.Status != models.TripStatusActive:
		return fmt.Errorf("trip is %s: %w", trip.Status, models.ErrConflict)
	case trip.AvailableSeats <= 0:
		return fmt.Errorf("trip is full: %w", models.ErrConflict)
	}

	var booked bool
	err = tx.GetContext(ctx, &booked, `
		SELECT EXISTS (
			SELECT 1 FROM bookings WHERE trip_id = $1 AND rider_id = $2 AND status <> 'canceled'
		)`, tripID, riderID)
	if err != nil {
		return fmt.Errorf("failed to check bookings: %w", err)
	}
	if booked {
		return fmt.Errorf("you already booked this trip: %w", models.ErrConflict)
	}

	return nil
}

// GetBidByID retrieves a bid with its trip summary
func (r *BidRepo) GetBidByID(ctx context.Context, id string) (*models.Bid, error) {
	var bid models.Bid
	if err := r.db.GetContext(ctx, &bid, bidSelect+` WHERE b.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("bid not found: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get bid: %w", err)
	}
	return &bid, nil
}

// IncreaseBidAmount raises a pending bid. Zero affected rows means the bid was
// answered or raised concurrently.
func (r *BidRepo) IncreaseBidAmount(ctx context.Context, id, riderID string, amount float64) error {
	query := `
		UPDATE bids
		SET amount = $3, updated_at = $4
		WHERE id = $1 AND rider_id = $2 AND status = 'pending' AND amount < $3
	`
	result, err := r.db.ExecContext(ctx, query, id, riderID, amount, models.Now())
	if err != nil {
		return fmt.Errorf("failed to increase bid: %w", err)
	}

	return database.ExpectAffected(result,
		fmt.Errorf("bid changed before it could be raised: %w", models.ErrConflict))
}

// DeleteBid withdraws a pending bid
func (r *BidRepo) DeleteBid(ctx context.Context, id, riderID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM bids WHERE id = $1 AND rider_id = $2 AND status = 'pending'`, id, riderID)
	if err != nil {
		return fmt.Errorf("failed to delete bid: %w", err)
	}

	return database.ExpectAffected(result,
		fmt.Errorf("bid is no longer pending: %w", models.ErrConflict))
}

// AcceptBid decrements the trip's free seats and accepts the bid
func (r *BidRepo) AcceptBid(ctx context.Context, id, tripID string) error {
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
		`UPDATE bids SET status = 'accepted', updated_at = $2 WHERE id = $1 AND status = 'pending'`,
		id, models.Now())
	if err != nil {
		return fmt.Errorf("failed to accept bid: %w", err)
	}
	if err := database.ExpectAffected(result,
		fmt.Errorf("bid is no longer pending: %w", models.ErrConflict)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RejectBid rejects a pending bid
func (r *BidRepo) RejectBid(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE bids SET status = 'rejected', updated_at = $2 WHERE id = $1 AND status = 'pending'`,
		id, models.Now())
	if err != nil {
		return fmt.Errorf("failed to reject bid: %w", err)
	}

	return database.ExpectAffected(result,
		fmt.Errorf("bid is no longer pending: %w", models.ErrConflict))
}

package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/utils"
)

// CreateBooking reserves a seat request on a trip at its listed price
func (uc *BookingUC) CreateBooking(ctx context.Context, riderID string, req *models.CreateBookingRequest) (*models.Booking, error) {
	if req.TripID == "" {
		return nil, models.NewValidationError(map[string]string{"trip_id": "is required"})
	}
	if !utils.IsValidID(req.TripID) {
		return nil, models.NewValidationError(map[string]string{"trip_id": "must be a valid id"})
	}

	booking := &models.Booking{
		TripID:  req.TripID,
		RiderID: riderID,
	}
	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	logger.Info("Booking created",
		logger.String("booking_id", booking.ID),
		logger.String("trip_id", booking.TripID),
		logger.String("rider_id", riderID))

	return uc.refetchAndPublish(ctx, booking.ID, models.EventBookingCreated)
}

// ConfirmBooking lets the trip's driver confirm a pending booking, taking a seat
func (uc *BookingUC) ConfirmBooking(ctx context.Context, driverID, bookingID string) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.DriverID != driverID {
		return nil, fmt.Errorf("booking is on another driver's trip: %w", models.ErrForbidden)
	}
	if booking.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("booking is already %s: %w", booking.Status, models.ErrConflict)
	}

	if err := uc.bookingRepo.ConfirmBooking(ctx, bookingID, booking.TripID); err != nil {
		return nil, err
	}

	return uc.refetchAndPublish(ctx, bookingID, models.EventBookingConfirmed)
}

// CancelBooking cancels the rider's booking. Cancelling twice is a no-op.
func (uc *BookingUC) CancelBooking(ctx context.Context, riderID, bookingID string) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.RiderID != riderID {
		return nil, fmt.Errorf("booking belongs to another rider: %w", models.ErrForbidden)
	}
	if booking.Status == models.BookingStatusCanceled {
		return booking, nil
	}

	if err := uc.bookingRepo.CancelBooking(ctx, bookingID); err != nil {
		return nil, err
	}

	logger.Info("Booking canceled",
		logger.String("booking_id", bookingID),
		logger.String("previous_status", string(booking.Status)))

	return uc.refetchAndPublish(ctx, bookingID, models.EventBookingCanceled)
}

func (uc *BookingUC) refetchAndPublish(ctx context.Context, bookingID string, eventType models.EventType) (*models.Booking, error) {
	booking, err := uc.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	uc.publish(ctx, eventType, booking)
	return booking, nil
}

// ListMyBookings lists the rider's bookings
func (uc *BookingUC) ListMyBookings(ctx context.Context, riderID string) ([]*models.Booking, error) {
	return uc.bookingRepo.ListBookingsByRider(ctx, riderID)
}

// ListTripBookings lists bookings on the driver's trips, or on tripID alone when it is set
func (uc *BookingUC) ListTripBookings(ctx context.Context, driverID, tripID string) ([]*models.Booking, error) {
	owned, err := uc.bookingRepo.ListTripIDsByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if tripID != "" {
		found := false
		for _, id := range owned {
			if id == tripID {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("trip not found: %w", models.ErrNotFound)
		}
		owned = []string{tripID}
	}

	return uc.bookingRepo.ListBookingsByTrips(ctx, owned)
}

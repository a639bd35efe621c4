package bookings

import (
	"context"

	"github.com/piresc/tumpang/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/tumpang/services/bookings BookingRepo

// BookingRepo defines the booking persistence interface
type BookingRepo interface {
	// CreateBooking locks the trip and inserts the booking when the rider may still book it
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, id string) (*models.Booking, error)
	// ConfirmBooking takes a seat on the trip and confirms the booking in one transaction
	ConfirmBooking(ctx context.Context, id, tripID string) error
	// CancelBooking runs cancel_booking_and_update_trip
	CancelBooking(ctx context.Context, id string) error

	ListBookingsByRider(ctx context.Context, riderID string) ([]*models.Booking, error)
	ListTripIDsByDriver(ctx context.Context, driverID string) ([]string, error)
	ListBookingsByTrips(ctx context.Context, tripIDs []string) ([]*models.Booking, error)
}

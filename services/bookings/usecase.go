package bookings

import (
	"context"

	"github.com/piresc/tumpang/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/tumpang/services/bookings BookingUC

// BookingUC represents the booking usecase interface
type BookingUC interface {
	CreateBooking(ctx context.Context, riderID string, req *models.CreateBookingRequest) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, driverID, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, riderID, bookingID string) (*models.Booking, error)

	ListMyBookings(ctx context.Context, riderID string) ([]*models.Booking, error)
	ListTripBookings(ctx context.Context, driverID, tripID string) ([]*models.Booking, error)
}

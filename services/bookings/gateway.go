package bookings

import (
	"context"

	"github.com/piresc/tumpang/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/tumpang/services/bookings BookingGW

// BookingGW defines the booking gateway interface
type BookingGW interface {
	// NSQ Gateway
	PublishBookingEvent(ctx context.Context, event *models.Event) error
}

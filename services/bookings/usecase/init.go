package usecase

import (
	"context"
	"time"

	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/services/bookings"
)

type BookingUC struct {
	cfg         *models.Config
	bookingRepo bookings.BookingRepo
	bookingGW   bookings.BookingGW

	now func() time.Time
}

// NewBookingUC creates a new booking usecase instance
func NewBookingUC(cfg *models.Config, bookingRepo bookings.BookingRepo, bookingGW bookings.BookingGW) *BookingUC {
	return &BookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
		now:         time.Now,
	}
}

func (uc *BookingUC) publish(ctx context.Context, eventType models.EventType, booking *models.Booking) {
	event := &models.Event{
		Type:       eventType,
		TripID:     booking.TripID,
		DriverID:   booking.DriverID,
		RiderID:    booking.RiderID,
		EntityID:   booking.ID,
		Status:     string(booking.Status),
		OccurredAt: uc.now().UTC(),
	}
	if err := uc.bookingGW.PublishBookingEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish booking event",
			logger.String("event", string(eventType)),
			logger.String("booking_id", booking.ID),
			logger.Err(err))
	}
}

package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/tumpang/internal/pkg/constants"
	"github.com/piresc/tumpang/internal/pkg/models"
	nsqpkg "github.com/piresc/tumpang/internal/pkg/nsq"
)

// BookingGW publishes booking events to NSQ
type BookingGW struct {
	publisher *nsqpkg.JSONPublisher
}

// NewBookingGW creates a booking gateway. A nil publisher disables event publishing.
func NewBookingGW(publisher *nsqpkg.JSONPublisher) *BookingGW {
	return &BookingGW{publisher: publisher}
}

// PublishBookingEvent publishes event on the booking events topic
func (g *BookingGW) PublishBookingEvent(ctx context.Context, event *models.Event) error {
	if g.publisher == nil {
		return nil
	}

	if err := g.publisher.PublishJSON(ctx, constants.TopicBookingEvents, event); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/tumpang/internal/pkg/constants"
	"github.com/piresc/tumpang/internal/pkg/models"
	nsqpkg "github.com/piresc/tumpang/internal/pkg/nsq"
)

// TripGW publishes trip events to NSQ
type TripGW struct {
	publisher *nsqpkg.JSONPublisher
}

// NewTripGW creates a trip gateway. A nil publisher disables event publishing.
func NewTripGW(publisher *nsqpkg.JSONPublisher) *TripGW {
	return &TripGW{publisher: publisher}
}

// PublishTripEvent publishes event on the trip events topic
func (g *TripGW) PublishTripEvent(ctx context.Context, event *models.Event) error {
	if g.publisher == nil {
		return nil
	}

	if err := g.publisher.PublishJSON(ctx, constants.TopicTripEvents, event); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/tumpang/internal/pkg/constants"
	"github.com/piresc/tumpang/internal/pkg/models"
	nsqpkg "github.com/piresc/tumpang/internal/pkg/nsq"
)

// BidGW publishes bid events to NSQ
type BidGW struct {
	publisher *nsqpkg.JSONPublisher
}

// NewBidGW creates a bid gateway. A nil publisher disables event publishing.
func NewBidGW(publisher *nsqpkg.JSONPublisher) *BidGW {
	return &BidGW{publisher: publisher}
}

// PublishBidEvent publishes event on the bid events topic
func (g *BidGW) PublishBidEvent(ctx context.Context, event *models.Event) error {
	if g.publisher == nil {
		return nil
	}

	if err := g.publisher.PublishJSON(ctx, constants.TopicBidEvents, event); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

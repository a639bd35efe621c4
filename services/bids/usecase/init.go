package usecase

import (
	"context"
	"time"

	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/services/bids"
)

const maxMessageLength = 500

type BidUC struct {
	cfg     *models.Config
	bidRepo bids.BidRepo
	bidGW   bids.BidGW

	now func() time.Time
}

// NewBidUC creates a new bid usecase instance
func NewBidUC(cfg *models.Config, bidRepo bids.BidRepo, bidGW bids.BidGW) *BidUC {
	return &BidUC{
		cfg:     cfg,
		bidRepo: bidRepo,
		bidGW:   bidGW,
		now:     time.Now,
	}
}

func (uc *BidUC) publish(ctx context.Context, eventType models.EventType, bid *models.Bid) {
	event := &models.Event{
		Type:       eventType,
		TripID:     bid.TripID,
		DriverID:   bid.DriverID,
		RiderID:    bid.RiderID,
		EntityID:   bid.ID,
		Status:     string(bid.Status),
		OccurredAt: uc.now().UTC(),
	}
	if err := uc.bidGW.PublishBidEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish bid event",
			logger.String("event", string(eventType)),
			logger.String("bid_id", bid.ID),
			logger.Err(err))
	}
}

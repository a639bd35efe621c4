package bids

import (
	"context"

	"github.com/piresc/tumpang/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/tumpang/services/bids BidGW

// BidGW defines the bid gateway interface
type BidGW interface {
	// NSQ Gateway
	PublishBidEvent(ctx context.Context, event *models.Event) error
}

package trips

import (
	"context"

	"github.com/piresc/tumpang/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/tumpang/services/trips TripGW

// TripGW defines the trip gateway interface
type TripGW interface {
	// NSQ Gateway
	PublishTripEvent(ctx context.Context, event *models.Event) error
}

package usecase

import (
	"context"
	"time"

	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/services/trips"
)

const dateLayout = "2006-01-02"

type TripUC struct {
	cfg        *models.Config
	tripRepo   trips.TripRepo
	statsCache trips.StatsCache
	tripGW     trips.TripGW

	now func() time.Time
}

// NewTripUC creates a new trip usecase instance
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	statsCache trips.StatsCache,
	tripGW trips.TripGW,
) *TripUC {
	return &TripUC{
		cfg:        cfg,
		tripRepo:   tripRepo,
		statsCache: statsCache,
		tripGW:     tripGW,
		now:        time.Now,
	}
}

// today returns the current UTC date at midnight
func (uc *TripUC) today() time.Time {
	y, m, d := uc.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// publish sends a trip event. Failures are logged and never fail the request.
func (uc *TripUC) publish(ctx context.Context, eventType models.EventType, trip *models.Trip) {
	event := &models.Event{
		Type:       eventType,
		TripID:     trip.ID,
		DriverID:   trip.DriverID,
		EntityID:   trip.ID,
		Status:     string(trip.Status),
		OccurredAt: uc.now().UTC(),
	}
	if err := uc.tripGW.PublishTripEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish trip event",
			logger.String("event", string(eventType)),
			logger.String("trip_id", trip.ID),
			logger.Err(err))
	}
}

package trips

import (
	"context"
	"time"

	"github.com/piresc/tumpang/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/tumpang/services/trips TripRepo,StatsCache

// TripRepo defines the trip persistence interface
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTripByID(ctx context.Context, id string) (*models.Trip, error)
	UpdateTripStatus(ctx context.Context, id, driverID string, status models.TripStatus) error
	DeleteTrip(ctx context.Context, id, driverID string) error

	// loaders
	ListBrowsableTrips(ctx context.Context, fromDate string) ([]*models.Trip, error)
	ListTripsByDriver(ctx context.Context, driverID string) ([]*models.Trip, error)
	CountPendingBids(ctx context.Context, tripIDs []string) (map[string]int, error)
	ListBidTripIDs(ctx context.Context, riderID string) ([]string, error)
	ListBookingTripIDs(ctx context.Context, riderID string) ([]string, error)
	GetRiderBid(ctx context.Context, tripID, riderID string) (*models.Bid, error)
	GetRiderBooking(ctx context.Context, tripID, riderID string) (*models.Booking, error)

	HasDriverProfile(ctx context.Context, userID string) (bool, error)
	GetDriverStats(ctx context.Context, driverID string) (*models.DriverStats, error)
}

// StatsCache caches driver stats in redis
type StatsCache interface {
	GetDriverStats(ctx context.Context, driverID string) (*models.DriverStats, error)
	SetDriverStats(ctx context.Context, driverID string, stats *models.DriverStats, ttl time.Duration) error
	DeleteDriverStats(ctx context.Context, driverID string) error
}

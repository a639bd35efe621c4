package trips

import (
	"context"

	"github.com/piresc/tumpang/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/tumpang/services/trips TripUC

// TripUC represents the trip usecase interface
type TripUC interface {
	CreateTrip(ctx context.Context, driverID string, req *models.CreateTripRequest) (*models.Trip, error)
	CompleteTrip(ctx context.Context, driverID, tripID string) (*models.Trip, error)
	CancelTrip(ctx context.Context, driverID, tripID string) (*models.Trip, error)
	DeleteTrip(ctx context.Context, driverID, tripID string) error

	BrowseTrips(ctx context.Context, riderID, search string) ([]*models.Trip, error)
	ListMyTrips(ctx context.Context, driverID string) ([]*models.TripWithBidCount, error)
	GetTripDetail(ctx context.Context, userID, tripID string) (*models.TripDetail, error)

	GetDriverStats(ctx context.Context, driverID string) (*models.DriverStats, error)
	InvalidateDriverStats(ctx context.Context, driverID string) error
}

package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/services/trips/mocks"
)

type testDeps struct {
	repo  *mocks.MockTripRepo
	cache *mocks.MockStatsCache
	gw    *mocks.MockTripGW
}

var fixedNow = time.Date(2024, 5, 1, 13, 30, 0, 0, time.UTC)

func newTestUC(t *testing.T) (*TripUC, testDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := testDeps{
		repo:  mocks.NewMockTripRepo(ctrl),
		cache: mocks.NewMockStatsCache(ctrl),
		gw:    mocks.NewMockTripGW(ctrl),
	}

	cfg := &models.Config{Cache: models.CacheConfig{DriverStatsTTL: 300}}
	uc := NewTripUC(cfg, deps.repo, deps.cache, deps.gw)
	uc.now = func() time.Time { return fixedNow }
	return uc, deps
}

func newTrip(id, driverID, from, to, driverName string) *models.Trip {
	return &models.Trip{
		ID:             id,
		DriverID:       driverID,
		FromLocation:   from,
		ToLocation:     to,
		TripDate:       "2024-05-02",
		TripTime:       "08:00",
		Price:          50000,
		AvailableSeats: 2,
		TotalSeats:     3,
		Status:         models.TripStatusActive,
		DriverName:     driverName,
	}
}

package usecase

import (
	"context"
	"time"

	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
)

// GetDriverStats returns the driver's aggregates, served from redis when cached
func (uc *TripUC) GetDriverStats(ctx context.Context, driverID string) (*models.DriverStats, error) {
	cached, err := uc.statsCache.GetDriverStats(ctx, driverID)
	if err != nil {
		logger.Warn("Failed to read driver stats cache",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}
	if cached != nil {
		return cached, nil
	}

	stats, err := uc.tripRepo.GetDriverStats(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if ttl := time.Duration(uc.cfg.Cache.DriverStatsTTL) * time.Second; ttl > 0 {
		if err := uc.statsCache.SetDriverStats(ctx, driverID, stats, ttl); err != nil {
			logger.Warn("Failed to cache driver stats",
				logger.String("driver_id", driverID),
				logger.Err(err))
		}
	}

	return stats, nil
}

// InvalidateDriverStats drops the cached stats of a driver
func (uc *TripUC) InvalidateDriverStats(ctx context.Context, driverID string) error {
	return uc.statsCache.DeleteDriverStats(ctx, driverID)
}

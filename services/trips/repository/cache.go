package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/tumpang/internal/pkg/constants"
	"github.com/piresc/tumpang/internal/pkg/models"
)

// GetDriverStats returns cached stats, or nil on a cache miss
func (c *StatsCache) GetDriverStats(ctx context.Context, driverID string) (*models.DriverStats, error) {
	data, err := c.redisClient.Get(ctx, fmt.Sprintf(constants.KeyDriverStats, driverID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached driver stats: %w", err)
	}

	var stats models.DriverStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached driver stats: %w", err)
	}
	return &stats, nil
}

// SetDriverStats caches stats for ttl
func (c *StatsCache) SetDriverStats(ctx context.Context, driverID string, stats *models.DriverStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal driver stats: %w", err)
	}

	if err := c.redisClient.Set(ctx, fmt.Sprintf(constants.KeyDriverStats, driverID), data, ttl); err != nil {
		return fmt.Errorf("failed to cache driver stats: %w", err)
	}
	return nil
}

// DeleteDriverStats drops the cached stats of a driver
func (c *StatsCache) DeleteDriverStats(ctx context.Context, driverID string) error {
	if err := c.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyDriverStats, driverID)); err != nil {
		return fmt.Errorf("failed to invalidate driver stats: %w", err)
	}
	return nil
}

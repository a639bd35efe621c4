package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/tumpang/internal/pkg/models"
)

func TestListMyBids(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	ctx := context.Background()

	repo.EXPECT().ListBidsByRider(ctx, "rider-1").Return([]*models.Bid{pendingBid()}, nil)

	result, err := uc.ListMyBids(ctx, "rider-1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestListTripBids(t *testing.T) {
	t.Run("All owned trips", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)
		ctx := context.Background()

		repo.EXPECT().ListTripIDsByDriver(ctx, "driver-1").Return([]string{"trip-1", "trip-2"}, nil)
		repo.EXPECT().ListBidsByTrips(ctx, []string{"trip-1", "trip-2"}).Return([]*models.Bid{pendingBid()}, nil)

		result, err := uc.ListTripBids(ctx, "driver-1", "")

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("Single owned trip", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)
		ctx := context.Background()

		repo.EXPECT().ListTripIDsByDriver(ctx, "driver-1").Return([]string{"trip-1", "trip-2"}, nil)
		repo.EXPECT().ListBidsByTrips(ctx, []string{"trip-2"}).Return([]*models.Bid{}, nil)

		result, err := uc.ListTripBids(ctx, "driver-1", "trip-2")

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Trip of another driver", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)
		ctx := context.Background()

		repo.EXPECT().ListTripIDsByDriver(ctx, "driver-1").Return([]string{"trip-1"}, nil)

		_, err := uc.ListTripBids(ctx, "driver-1", "trip-9")

		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("Driver without trips", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)
		ctx := context.Background()

		repo.EXPECT().ListTripIDsByDriver(ctx, "driver-1").Return([]string{}, nil)
		repo.EXPECT().ListBidsByTrips(ctx, []string{}).Return([]*models.Bid{}, nil)

		result, err := uc.ListTripBids(ctx, "driver-1", "")

		require.NoError(t, err)
		assert.NotNil(t, result)
	})
}

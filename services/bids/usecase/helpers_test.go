package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/services/bids/mocks"
)

const tripUUID = "6f1c2a9e-4b7d-4c1e-9a2b-3d4e5f6a7b8c"

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestUC(t *testing.T) (*BidUC, *mocks.MockBidRepo, *mocks.MockBidGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockBidRepo(ctrl)
	gw := mocks.NewMockBidGW(ctrl)

	uc := NewBidUC(&models.Config{}, repo, gw)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, gw
}

func pendingBid() *models.Bid {
	return &models.Bid{
		ID:      "bid-1",
		TripID:  tripUUID,
		RiderID: "rider-1",
		Amount:  40000,
		Status:  models.BidStatusPending,
		TripSummary: models.TripSummary{
			DriverID:  "driver-1",
			TripPrice: 50000,
		},
	}
}

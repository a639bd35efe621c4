package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/piresc/tumpang/internal/pkg/constants"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/services/notifications/mocks"
)

func TestHandleEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mocks.NewMockStatsInvalidator(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	uc := NewNotificationUC(stats, notifier)

	event := &models.Event{
		Type:     models.EventBidAccepted,
		TripID:   "trip-1",
		DriverID: "driver-1",
		RiderID:  "rider-1",
		EntityID: "bid-1",
	}

	gomock.InOrder(
		stats.EXPECT().InvalidateDriverStats(gomock.Any(), "driver-1").Return(nil),
		notifier.EXPECT().NotifyClient("driver-1", constants.EventNotification, event).Return(true),
		notifier.EXPECT().NotifyClient("rider-1", constants.EventNotification, event).Return(false),
	)

	assert.NoError(t, uc.HandleEvent(context.Background(), event))
}

func TestHandleEvent_TripEventHasNoRider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mocks.NewMockStatsInvalidator(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	uc := NewNotificationUC(stats, notifier)

	event := &models.Event{Type: models.EventTripCreated, TripID: "trip-1", DriverID: "driver-1", EntityID: "trip-1"}

	stats.EXPECT().InvalidateDriverStats(gomock.Any(), "driver-1").Return(nil)
	notifier.EXPECT().NotifyClient("driver-1", constants.EventNotification, event).Return(true)

	assert.NoError(t, uc.HandleEvent(context.Background(), event))
}

func TestHandleEvent_InvalidationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mocks.NewMockStatsInvalidator(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	uc := NewNotificationUC(stats, notifier)

	stats.EXPECT().InvalidateDriverStats(gomock.Any(), "driver-1").Return(errors.New("redis down"))

	err := uc.HandleEvent(context.Background(), &models.Event{Type: models.EventTripCompleted, DriverID: "driver-1"})

	assert.EqualError(t, err, "redis down")
}

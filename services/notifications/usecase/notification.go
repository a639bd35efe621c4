package usecase

import (
	"context"

	"github.com/piresc/tumpang/internal/pkg/constants"
	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/services/notifications"
)

type NotificationUC struct {
	stats    notifications.StatsInvalidator
	notifier notifications.Notifier
}

// NewNotificationUC creates a new notification usecase instance
func NewNotificationUC(stats notifications.StatsInvalidator, notifier notifications.Notifier) *NotificationUC {
	return &NotificationUC{
		stats:    stats,
		notifier: notifier,
	}
}

// HandleEvent invalidates the driver's cached stats and pushes the event to
// the driver and rider. Only a failed invalidation is returned so NSQ
// requeues the message; offline users are skipped.
func (uc *NotificationUC) HandleEvent(ctx context.Context, event *models.Event) error {
	if event.DriverID != "" {
		if err := uc.stats.InvalidateDriverStats(ctx, event.DriverID); err != nil {
			return err
		}
	}

	delivered := 0
	for _, userID := range event.Recipients() {
		if uc.notifier.NotifyClient(userID, constants.EventNotification, event) {
			delivered++
		}
	}

	logger.Debug("Event fanned out",
		logger.String("event", string(event.Type)),
		logger.String("entity_id", event.EntityID),
		logger.Int("delivered", delivered))
	return nil
}

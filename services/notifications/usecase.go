package notifications

import (
	"context"

	"github.com/piresc/tumpang/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/tumpang/services/notifications NotificationUC,StatsInvalidator,Notifier

// NotificationUC reacts to domain events coming off NSQ
type NotificationUC interface {
	HandleEvent(ctx context.Context, event *models.Event) error
}

// StatsInvalidator drops cached driver stats
type StatsInvalidator interface {
	InvalidateDriverStats(ctx context.Context, driverID string) error
}

// Notifier pushes a message to a connected user
type Notifier interface {
	NotifyClient(userID string, event string, data interface{}) bool
}

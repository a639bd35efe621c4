package nsq

import (
	"context"

	"github.com/piresc/tumpang/internal/pkg/constants"
	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
	nsqpkg "github.com/piresc/tumpang/internal/pkg/nsq"
	"github.com/piresc/tumpang/services/notifications"
)

// EventHandler consumes trip, bid and booking events
type EventHandler struct {
	notificationUC notifications.NotificationUC
	cfg            models.NSQConfig
	consumers      []*nsqpkg.Consumer
}

// NewEventHandler creates a new notifications NSQ handler
func NewEventHandler(notificationUC notifications.NotificationUC, cfg models.NSQConfig) *EventHandler {
	return &EventHandler{
		notificationUC: notificationUC,
		cfg:            cfg,
	}
}

// InitNSQConsumers subscribes to every event topic on the configured channel
func (h *EventHandler) InitNSQConsumers() error {
	for _, topic := range constants.EventTopics {
		consumer, err := nsqpkg.NewConsumer(topic, h.cfg.Channel, h.handleEvent)
		if err != nil {
			h.Stop()
			return err
		}
		if err := consumer.Connect(h.cfg.Address, h.cfg.LookupdAddresses); err != nil {
			consumer.Stop()
			h.Stop()
			return err
		}
		h.consumers = append(h.consumers, consumer)
		logger.Info("Subscribed to event topic",
			logger.String("topic", topic),
			logger.String("channel", h.cfg.Channel))
	}
	return nil
}

// Stop stops all consumers
func (h *EventHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
	h.consumers = nil
}

// handleEvent drops malformed messages instead of requeueing them
func (h *EventHandler) handleEvent(body []byte) error {
	var event models.Event
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		logger.Error("Dropping malformed event", logger.Err(err))
		return nil
	}

	logger.Debug("Received event",
		logger.String("event", string(event.Type)),
		logger.String("entity_id", event.EntityID))

	return h.notificationUC.HandleEvent(context.Background(), &event)
}

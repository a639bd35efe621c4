package gateway

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/tumpang/internal/pkg/constants"
	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
	nsqpkg "github.com/piresc/tumpang/internal/pkg/nsq"
	"github.com/piresc/tumpang/internal/pkg/retry"
)

type capturePublisher struct {
	topic string
	body  []byte
}

func (p *capturePublisher) Publish(_ context.Context, topic string, body []byte) error {
	p.topic = topic
	p.body = body
	return nil
}

func TestPublishBidEvent(t *testing.T) {
	pub := &capturePublisher{}
	gw := NewBidGW(nsqpkg.NewJSONPublisher(pub,
		retry.New(retry.Config{BaseDelay: time.Millisecond}, logger.NewNopLogger())))

	err := gw.PublishBidEvent(context.Background(), &models.Event{
		Type:     models.EventBidPlaced,
		TripID:   "trip-1",
		DriverID: "driver-1",
		RiderID:  "rider-1",
		EntityID: "bid-1",
	})
	require.NoError(t, err)

	assert.Equal(t, constants.TopicBidEvents, pub.topic)
	var got models.Event
	require.NoError(t, json.Unmarshal(pub.body, &got))
	assert.Equal(t, []string{"driver-1", "rider-1"}, got.Recipients())
}

func TestPublishBidEvent_Disabled(t *testing.T) {
	assert.NoError(t, NewBidGW(nil).PublishBidEvent(context.Background(), &models.Event{}))
}

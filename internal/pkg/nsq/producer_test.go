package nsq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	failures int
	calls    int
	topic    string
	body     []byte
}

func (r *recordingPublisher) Publish(_ context.Context, topic string, body []byte) error {
	r.calls++
	if r.calls <= r.failures {
		return errors.New("nsqd unavailable")
	}
	r.topic = topic
	r.body = body
	return nil
}

func testRetrier() *retry.Retrier {
	return retry.New(retry.Config{MaxRetries: 2, BaseDelay: time.Millisecond, Multiplier: 2}, logger.NewNopLogger())
}

func TestJSONPublisher_PublishJSON(t *testing.T) {
	pub := &recordingPublisher{failures: 1}
	p := NewJSONPublisher(pub, testRetrier())

	err := p.PublishJSON(context.Background(), "trip.events", map[string]string{"type": "trip.created"})

	require.NoError(t, err)
	assert.Equal(t, 2, pub.calls)
	assert.Equal(t, "trip.events", pub.topic)

	var got map[string]string
	require.NoError(t, json.Unmarshal(pub.body, &got))
	assert.Equal(t, "trip.created", got["type"])
}

func TestJSONPublisher_GivesUp(t *testing.T) {
	pub := &recordingPublisher{failures: 10}
	p := NewJSONPublisher(pub, testRetrier())

	err := p.PublishJSON(context.Background(), "bid.events", struct{}{})

	assert.Error(t, err)
	assert.Equal(t, 3, pub.calls)
}

// stalledPublisher never hears back from nsqd
type stalledPublisher struct {
	calls int
}

func (s *stalledPublisher) Publish(ctx context.Context, _ string, _ []byte) error {
	s.calls++
	<-ctx.Done()
	return ctx.Err()
}

func TestJSONPublisher_BoundedByTimeout(t *testing.T) {
	pub := &stalledPublisher{}
	p := NewJSONPublisher(pub, testRetrier()).WithTimeout(20 * time.Millisecond)

	start := time.Now()
	err := p.PublishJSON(context.Background(), "trip.events", struct{}{})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 1, pub.calls)
}

func TestJSONPublisher_OutlivesCancelledRequest(t *testing.T) {
	pub := &recordingPublisher{}
	p := NewJSONPublisher(pub, testRetrier())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.PublishJSON(ctx, "booking.events", map[string]string{"type": "booking.created"}))
	assert.Equal(t, 1, pub.calls)
	assert.Equal(t, "booking.events", pub.topic)
}

func TestJSONPublisher_MarshalError(t *testing.T) {
	pub := &recordingPublisher{}
	p := NewJSONPublisher(pub, testRetrier())

	err := p.PublishJSON(context.Background(), "bid.events", make(chan int))

	assert.Error(t, err)
	assert.Zero(t, pub.calls)
}

func TestUnmarshalMessage(t *testing.T) {
	var v struct {
		Type string `json:"type"`
	}
	require.NoError(t, UnmarshalMessage([]byte(`{"type":"bid.placed"}`), &v))
	assert.Equal(t, "bid.placed", v.Type)

	assert.Error(t, UnmarshalMessage([]byte(`{`), &v))
}

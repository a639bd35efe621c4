package nsq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/retry"
)

// DefaultPublishTimeout bounds one PublishJSON call, retries included
const DefaultPublishTimeout = 2 * time.Second

// Publisher publishes raw bytes to a topic
type Publisher interface {
	Publish(ctx context.Context, topic string, body []byte) error
}

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
}

// NewProducer creates a new NSQ producer and pings nsqd
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// Publish sends a message body to the specified topic and waits for nsqd to
// acknowledge it or for ctx to end
func (p *Producer) Publish(ctx context.Context, topic string, body []byte) error {
	done := make(chan *nsq.ProducerTransaction, 1)
	if err := p.producer.PublishAsync(topic, body, done); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("failed to publish message: %w", ctx.Err())
	case tx := <-done:
		if tx.Error != nil {
			return fmt.Errorf("failed to publish message: %w", tx.Error)
		}
		return nil
	}
}

// Ping checks nsqd is reachable
func (p *Producer) Ping(_ context.Context) error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}

// JSONPublisher marshals messages to JSON and publishes them with retries
type JSONPublisher struct {
	publisher Publisher
	retrier   *retry.Retrier
	timeout   time.Duration
}

// NewJSONPublisher wraps publisher with JSON encoding and exponential backoff
func NewJSONPublisher(publisher Publisher, retrier *retry.Retrier) *JSONPublisher {
	if retrier == nil {
		retrier = retry.NewWithDefaults(nil)
	}
	return &JSONPublisher{publisher: publisher, retrier: retrier, timeout: DefaultPublishTimeout}
}

// WithTimeout sets how long one PublishJSON call may take. Non-positive
// values keep the current timeout.
func (p *JSONPublisher) WithTimeout(d time.Duration) *JSONPublisher {
	if d > 0 {
		p.timeout = d
	}
	return p
}

// PublishJSON encodes message and publishes it to topic. Cancelling ctx does
// not abort the publish; the publisher timeout bounds it instead.
func (p *JSONPublisher) PublishJSON(ctx context.Context, topic string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	err = p.retrier.Execute(ctx, func(ctx context.Context) error {
		return p.publisher.Publish(ctx, topic, body)
	})
	if err != nil {
		return err
	}

	logger.Debug("Published message", logger.String("topic", topic))
	return nil
}

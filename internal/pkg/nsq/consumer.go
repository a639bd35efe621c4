package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/tumpang/internal/pkg/logger"
)

// MessageHandler processes one NSQ message body. A returned error requeues
// the message.
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	topic    string
	consumer *nsq.Consumer
}

// NewConsumer creates a consumer for topic/channel. Call Connect to start it.
func NewConsumer(topic, channel string, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	config.MaxAttempts = 5

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)

	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		if err := handler(message.Body); err != nil {
			logger.Warn("Error processing message",
				logger.String("topic", topic),
				logger.Int("attempts", int(message.Attempts)),
				logger.ErrorField(err))
			return err
		}
		return nil
	}))

	return &Consumer{topic: topic, consumer: consumer}, nil
}

// Connect attaches the consumer to lookupd when addresses are given, and to
// nsqd directly otherwise
func (c *Consumer) Connect(nsqdAddress string, lookupdAddresses []string) error {
	if len(lookupdAddresses) > 0 {
		if err := c.consumer.ConnectToNSQLookupds(lookupdAddresses); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd: %w", err)
		}
		return nil
	}

	if err := c.consumer.ConnectToNSQD(nsqdAddress); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return nil
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer and waits for in-flight handlers
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}

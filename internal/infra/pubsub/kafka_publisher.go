package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"tracker/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic. Messages are keyed
// by delivery so events of one delivery stay in one partition, in order.
type kafkaPublisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on the given brokers
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}, topic, logger)
}

func newKafkaPublisher(writer messageWriter, topic string, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{writer: writer, topic: topic, logger: logger}
}

// PublishNotificationEvent writes the event as one JSON message
func (p *kafkaPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := eventAttributes(event)
	headers := make([]kafka.Header, 0, len(attributes))
	for key, value := range attributes {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(value)})
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.DeliveryID),
		Value:   data,
		Headers: headers,
	}); err != nil {
		return errors.Wrap(err, "kafka publish")
	}

	p.logger.Info("[Kafka] Event published",
		slog.String("topic", p.topic),
		slog.String("event_id", event.EventID),
		slog.Int("recipient_count", len(event.RecipientIDs)),
	)

	return nil
}

// Close flushes pending writes and releases connections
func (p *kafkaPublisher) Close() error {
	return errors.Wrap(p.writer.Close(), "kafka writer close")
}

// eventAttributes are the routing and tracing attributes sent next to the payload
func eventAttributes(event *service.NotificationEvent) map[string]string {
	attributes := map[string]string{
		"event_id":    event.EventID,
		"event_type":  event.Type,
		"delivery_id": event.DeliveryID,
	}
	if event.Status != "" {
		attributes["status"] = event.Status
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

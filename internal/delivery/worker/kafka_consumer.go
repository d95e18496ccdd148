package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"tracker/config"
	"tracker/internal/delivery"
	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/delivery/worker/handler"
	"tracker/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	defaultMaxAttempts  = 3
	defaultRetryBackoff = time.Second
)

// messageReader is the part of *kafka.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaConsumer struct {
	reader       messageReader
	processor    *handler.NotificationProcessor
	logger       *slog.Logger
	maxAttempts  int
	retryBackoff time.Duration
	// Readers without a consumer group cannot commit offsets.
	commit bool

	stopped  chan struct{}
	stopOnce sync.Once
}

// KafkaConsumerParams holds dependencies for the Kafka consumer
type KafkaConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.NotificationProcessor
}

// NewKafkaConsumer creates a consumer group reader on the notification topic
func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.Kafka
	if cfg == nil || len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, errors.New("kafka brokers and topic are required")
	}

	readerCfg := kafka.ReaderConfig{
		Brokers:           cfg.Brokers,
		GroupID:           cfg.GroupID,
		HeartbeatInterval: 3 * time.Second,
		SessionTimeout:    30 * time.Second,
	}
	if cfg.GroupID != "" {
		readerCfg.GroupTopics = []string{cfg.Topic}
	} else {
		readerCfg.Topic = cfg.Topic
	}

	consumer := newKafkaConsumer(kafka.NewReader(readerCfg), params.Processor, params.Logger)
	consumer.commit = cfg.GroupID != ""

	params.Lc.Append(fx.Hook{
		OnStop: consumer.stop,
	})

	return consumer, nil
}

func newKafkaConsumer(reader messageReader, processor *handler.NotificationProcessor, logger *slog.Logger) *kafkaConsumer {
	return &kafkaConsumer{
		reader:       reader,
		processor:    processor,
		logger:       logger,
		maxAttempts:  defaultMaxAttempts,
		retryBackoff: defaultRetryBackoff,
		commit:       true,
		stopped:      make(chan struct{}),
	}
}

// Serve consumes until the context ends or the consumer is stopped. With a
// consumer group, offsets are committed once a message is handled or given up on.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-k.stopped:
			cancel()
		case <-ctx.Done():
		}
	}()

	k.logger.Info("Starting Kafka notification consumer", slog.Bool("commit_offsets", k.commit))

	for {
		msg, err := k.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "fetch message")
		}

		k.handle(ctx, msg)

		if !k.commit {
			continue
		}
		if err := k.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "commit message")
		}
	}
}

func (k *kafkaConsumer) handle(ctx context.Context, msg kafka.Message) {
	var event service.NotificationEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		k.logger.Error("[Worker] Dropping malformed Kafka message",
			slog.Int("partition", msg.Partition),
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)

		return
	}

	requestID := headerValue(msg.Headers, "request_id")
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	ctx = deliverycontext.WithTrace(ctx, requestID, k.logger)
	logger := deliverycontext.GetLogger(ctx)

	for attempt := 1; attempt <= k.maxAttempts; attempt++ {
		_, err := k.processor.Process(ctx, &event)
		if err == nil {
			return
		}

		retryable := handler.IsRetryableError(err)
		logger.Error("[Worker] Failed to process notification",
			slog.String("event_id", event.EventID),
			slog.Int("attempt", attempt),
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		)
		if !retryable || attempt == k.maxAttempts {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(k.retryBackoff * time.Duration(attempt)):
		}
	}
}

func (k *kafkaConsumer) stop(context.Context) error {
	k.stopOnce.Do(func() { close(k.stopped) })
	k.logger.Info("Shutting down Kafka notification consumer")

	return errors.Wrap(k.reader.Close(), "kafka reader close")
}

func headerValue(headers []kafka.Header, key string) string {
	for _, header := range headers {
		if header.Key == key {
			return string(header.Value)
		}
	}

	return ""
}

package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"tracker/config"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultRelayChannel = "tracker:broadcast"

// relayEnvelope is what travels through the Redis channel.
type relayEnvelope struct {
	Origin  string          `json:"origin"`
	Type    string          `json:"type"`
	UserIDs []uuid.UUID     `json:"user_ids"`
	Payload json.RawMessage `json:"payload"`
}

// RedisRelay publishes broadcasts to a Redis channel so that every instance,
// this one included, delivers them to its local sessions.
type RedisRelay struct {
	client  *redis.Client
	channel string
	origin  string
	hub     *Hub
	logger  *slog.Logger
	pubsub  *redis.PubSub
	wg      sync.WaitGroup
}

// NewRedisRelay creates a relay over an existing client.
func NewRedisRelay(client *redis.Client, channel string, hub *Hub, logger *slog.Logger) *RedisRelay {
	if channel == "" {
		channel = defaultRelayChannel
	}

	return &RedisRelay{
		client:  client,
		channel: channel,
		origin:  uuid.NewString(),
		hub:     hub,
		logger:  logger,
	}
}

// Start subscribes to the channel and delivers incoming broadcasts until Stop.
func (r *RedisRelay) Start(ctx context.Context) error {
	r.pubsub = r.client.Subscribe(ctx, r.channel)

	// Wait for the subscription confirmation so no publish is missed.
	if _, err := r.pubsub.Receive(ctx); err != nil {
		_ = r.pubsub.Close()

		return errors.Wrap(err, "redis subscribe")
	}

	messages := r.pubsub.Channel()
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		for msg := range messages {
			r.handle(msg.Payload)
		}
	}()

	r.logger.Info("Redis broadcast relay subscribed", slog.String("channel", r.channel))

	return nil
}

// Stop unsubscribes and waits for the delivery loop to finish.
func (r *RedisRelay) Stop() error {
	if r.pubsub == nil {
		return nil
	}

	err := r.pubsub.Close()
	r.wg.Wait()

	return errors.Wrap(err, "redis unsubscribe")
}

// Broadcast publishes msg for all instances. When Redis is unreachable the
// message still reaches this instance's sessions.
func (r *RedisRelay) Broadcast(ctx context.Context, userIDs []uuid.UUID, msg entity.TrackingMessage) error {
	payload, err := msg.Encode()
	if err != nil {
		return errors.Wrap(err, "encode tracking message")
	}

	envelope, err := json.Marshal(relayEnvelope{
		Origin:  r.origin,
		Type:    string(msg.Type),
		UserIDs: userIDs,
		Payload: payload,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := r.client.Publish(ctx, r.channel, envelope).Err(); err != nil {
		r.logger.WarnContext(ctx, "Redis publish failed, delivering locally only",
			slog.String("channel", r.channel),
			slog.Any("error", err),
		)
		r.hub.deliver(ctx, userIDs, msg.Type, payload)
	}

	return nil
}

func (r *RedisRelay) handle(raw string) {
	var envelope relayEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		r.logger.Warn("Discarding malformed relay message", slog.Any("error", err))

		return
	}

	r.hub.deliver(context.Background(), envelope.UserIDs, entity.MessageType(envelope.Type), envelope.Payload)
}

// BroadcasterParams holds dependencies for choosing the broadcaster
type BroadcasterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Hub    *Hub
	Logger *slog.Logger
}

// NewBroadcaster returns the Redis relay when realtime.redis is enabled and the hub otherwise.
func NewBroadcaster(params BroadcasterParams) service.Broadcaster {
	cfg := params.Config.Realtime
	if cfg == nil || !cfg.Redis.Enabled {
		return params.Hub
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	relay := NewRedisRelay(client, cfg.Redis.Channel, params.Hub, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: relay.Start,
		OnStop: func(context.Context) error {
			stopErr := relay.Stop()
			if err := client.Close(); err != nil {
				params.Logger.Error("Failed to close redis client", slog.Any("error", err))
			}

			return stopErr
		},
	})

	return relay
}

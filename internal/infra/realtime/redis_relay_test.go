package realtime

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tracker/internal/domain/entity"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRelay(t *testing.T, addr string, hub *Hub) *RedisRelay {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisRelay(client, "test:broadcast", hub, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRedisRelay_DeliversAcrossInstances(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	hubA := newTestHub(t, nil, nil)
	hubB := newTestHub(t, nil, nil)
	relayA := newTestRelay(t, mr.Addr(), hubA)
	relayB := newTestRelay(t, mr.Addr(), hubB)

	require.NoError(t, relayA.Start(ctx))
	require.NoError(t, relayB.Start(ctx))
	t.Cleanup(func() {
		_ = relayA.Stop()
		_ = relayB.Stop()
	})

	customer := uuid.New()
	connA, connB := &fakeConn{}, &fakeConn{}
	hubA.Register(customer, entity.UserTypeCustomer, connA)
	hubB.Register(customer, entity.UserTypeCustomer, connB)

	msg := entity.TrackingMessage{Type: entity.MessageLocationUpdate, Data: map[string]float64{"latitude": 25.03}}
	require.NoError(t, relayA.Broadcast(ctx, []uuid.UUID{customer}, msg))

	want, err := msg.Encode()
	require.NoError(t, err)

	// Both instances deliver exactly once, including the publishing one.
	for _, conn := range []*fakeConn{connA, connB} {
		require.Eventually(t, func() bool { return len(conn.received()) == 1 }, 2*time.Second, 10*time.Millisecond)
		assert.JSONEq(t, string(want), string(conn.received()[0]))
	}

	time.Sleep(50 * time.Millisecond)
	assert.Len(t, connA.received(), 1)
}

func TestRedisRelay_FallsBackToLocalDelivery(t *testing.T) {
	mr := miniredis.RunT(t)
	hub := newTestHub(t, nil, nil)
	relay := newTestRelay(t, mr.Addr(), hub)
	mr.Close()

	userID := uuid.New()
	conn := &fakeConn{}
	hub.Register(userID, entity.UserTypeCourier, conn)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, relay.Broadcast(ctx, []uuid.UUID{userID}, entity.TrackingMessage{Type: entity.MessageStatusUpdate, Data: "x"}))
	require.Eventually(t, func() bool { return len(conn.received()) == 1 }, time.Second, 10*time.Millisecond)
}

func TestRedisRelay_IgnoresMalformedMessages(t *testing.T) {
	hub := newTestHub(t, nil, nil)
	relay := NewRedisRelay(nil, "", hub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NotPanics(t, func() { relay.handle("not json") })
	assert.Equal(t, defaultRelayChannel, relay.channel)
}

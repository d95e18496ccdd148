package realtime

import (
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReadConn feeds inbound frames from a channel; closing it ends the read loop.
type fakeReadConn struct {
	fakeConn

	inbound chan []byte

	mu          sync.Mutex
	readLimit   int64
	pongHandler func(string) error
}

func newFakeReadConn() *fakeReadConn {
	return &fakeReadConn{inbound: make(chan []byte)}
}

func (c *fakeReadConn) ReadMessage() (int, []byte, error) {
	frame, ok := <-c.inbound
	if !ok {
		return 0, nil, &websocket.CloseError{Code: websocket.CloseNormalClosure}
	}

	return websocket.TextMessage, frame, nil
}

func (c *fakeReadConn) SetReadLimit(limit int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.readLimit = limit
}

func (c *fakeReadConn) SetReadDeadline(time.Time) error { return nil }

func (c *fakeReadConn) SetPongHandler(h func(string) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pongHandler = h
}

func (c *fakeReadConn) pong() error {
	c.mu.Lock()
	h := c.pongHandler
	c.mu.Unlock()

	return h("")
}

func TestHub_AttachGreetsAndUnregisters(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	hub := newTestHub(t, nil, clock)
	userID := uuid.New()
	conn := newFakeReadConn()

	done := make(chan error, 1)
	go func() { done <- hub.Attach(userID, entity.UserTypeCourier, conn) }()

	require.Eventually(t, func() bool { return len(conn.received()) == 1 }, time.Second, 5*time.Millisecond)

	var hello struct {
		Type string                  `json:"type"`
		Data entity.ConnectedPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(conn.received()[0], &hello))
	assert.Equal(t, "connected", hello.Type)
	assert.Equal(t, userID, hello.Data.UserID)
	assert.Equal(t, entity.UserTypeCourier, hello.Data.UserType)
	assert.NotEmpty(t, hello.Data.SessionID)
	assert.Equal(t, 1, hub.SessionCount())

	conn.mu.Lock()
	assert.Equal(t, int64(maxMessageSize), conn.readLimit)
	conn.mu.Unlock()

	clock.Set(clock.Now().Add(time.Minute))
	require.NoError(t, conn.pong())
	sessions := hub.UserSessions(userID)
	require.Len(t, sessions, 1)
	assert.Equal(t, clock.Now(), sessions[0].LastActivityAt)

	conn.inbound <- []byte("keepalive")
	close(conn.inbound)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("attach did not return")
	}
	assert.Zero(t, hub.SessionCount())
	assert.True(t, conn.isClosed())
}

func TestHub_AttachReturnsWhenReaped(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	hub := newTestHub(t, nil, clock)
	conn := &reapableConn{fakeReadConn: newFakeReadConn()}

	done := make(chan error, 1)
	go func() { done <- hub.Attach(uuid.New(), entity.UserTypeCustomer, conn) }()
	require.Eventually(t, func() bool { return len(conn.received()) == 1 }, time.Second, 5*time.Millisecond)

	clock.Set(clock.Now().Add(time.Hour))
	assert.Equal(t, 1, hub.ReapIdle(clock.Now()))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("attach did not return after reap")
	}
}

// reapableConn makes ReadMessage fail once the hub closes the connection.
type reapableConn struct {
	*fakeReadConn
	closeOnce sync.Once
}

func (c *reapableConn) Close() error {
	c.closeOnce.Do(func() { close(c.inbound) })

	return c.fakeReadConn.Close()
}

func (c *reapableConn) ReadMessage() (int, []byte, error) {
	if _, _, err := c.fakeReadConn.ReadMessage(); err != nil {
		return 0, nil, io.ErrUnexpectedEOF
	}

	return websocket.TextMessage, nil, nil
}

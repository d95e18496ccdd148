package realtime

import (
	"sync"
	"sync/atomic"
	"time"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	defaultSendBuffer = 64
)

// Conn is the part of a websocket connection the hub writes to.
// *websocket.Conn satisfies it.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Session is one registered viewer connection. All writes to the connection
// happen on the session's writer goroutine, in enqueue order.
type Session struct {
	id          string
	userID      uuid.UUID
	userType    entity.UserType
	conn        Conn
	connectedAt time.Time

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once

	lastActivity atomic.Int64 // Unix nanoseconds.
}

func newSession(userID uuid.UUID, userType entity.UserType, conn Conn, buffer int, now time.Time) *Session {
	s := &Session{
		id:          uuid.NewString(),
		userID:      userID,
		userType:    userType,
		conn:        conn,
		connectedAt: now.UTC(),
		send:        make(chan []byte, buffer),
		done:        make(chan struct{}),
	}
	s.lastActivity.Store(now.UnixNano())

	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// UserID returns the owner of the session.
func (s *Session) UserID() uuid.UUID {
	return s.userID
}

// LastActivity returns the time of the last successful write or inbound frame, in UTC.
func (s *Session) LastActivity() time.Time {
	return time.Unix(0, s.lastActivity.Load()).UTC()
}

// Info describes the session.
func (s *Session) Info() entity.ViewerSession {
	return entity.ViewerSession{
		SessionID:      s.id,
		UserID:         s.userID,
		UserType:       s.userType,
		ConnectedAt:    s.connectedAt,
		LastActivityAt: s.LastActivity(),
		IsActive:       !s.closed(),
	}
}

// Done is closed when the session has been torn down.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) touch(now time.Time) {
	s.lastActivity.Store(now.UnixNano())
}

// enqueue never blocks. It reports false when the queue is full or the session is closed.
func (s *Session) enqueue(msg []byte) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.send <- msg:
		return true
	default:
		return false
	}
}

func (s *Session) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// close stops the writer and closes the connection. Safe to call more than once.
func (s *Session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

// writePump drains the outbound queue until the session closes or a write fails.
func (s *Session) writePump(h *Hub) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case msg := <-s.send:
			_ = s.conn.SetWriteDeadline(h.now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.drop(s, "write failed", err)

				return
			}
			s.touch(h.now())
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(h.now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.drop(s, "ping failed", err)

				return
			}
		}
	}
}

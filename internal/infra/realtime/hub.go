// Package realtime keeps live viewer connections and pushes tracking events to them.
package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultReapInterval = 5 * time.Minute
	defaultIdleTimeout  = 5 * time.Minute
)

// ErrSessionNotFound is returned when unregistering a session that is already gone.
var ErrSessionNotFound = domainerrors.ErrSessionNotFound

// userSessions holds the live sessions of one user. dead is set once the entry
// has been removed from the hub so late registrations retry with a fresh entry.
type userSessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
	dead     bool
}

// Hub tracks live sessions per user. Each user entry is locked independently,
// so traffic for different users never contends.
type Hub struct {
	users    sync.Map // uuid.UUID -> *userSessions
	sessions sync.Map // session id -> *Session

	sendBuffer   int
	idleTimeout  time.Duration
	reapInterval time.Duration
	logger       *slog.Logger
	now          func() time.Time

	stopReaper chan struct{}
	reaperDone chan struct{}
}

// HubParams holds dependencies for the hub
type HubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewHub creates a hub and ties its reaper to the application lifecycle.
func NewHub(params HubParams) *Hub {
	hub := NewHubWithOptions(params.Config.Realtime, params.Logger, time.Now)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			hub.StartReaper()

			return nil
		},
		OnStop: func(context.Context) error {
			hub.Close()

			return nil
		},
	})

	return hub
}

// NewHubWithOptions creates a hub without lifecycle wiring.
func NewHubWithOptions(cfg *config.RealtimeConfig, logger *slog.Logger, now func() time.Time) *Hub {
	h := &Hub{
		sendBuffer:   defaultSendBuffer,
		idleTimeout:  defaultIdleTimeout,
		reapInterval: defaultReapInterval,
		logger:       logger,
		now:          now,
	}

	if cfg != nil {
		if cfg.SendBuffer > 0 {
			h.sendBuffer = cfg.SendBuffer
		}
		if cfg.IdleTimeout > 0 {
			h.idleTimeout = cfg.IdleTimeout
		}
		if cfg.ReapInterval > 0 {
			h.reapInterval = cfg.ReapInterval
		}
	}

	return h
}

// Register adds a session for userID and starts its writer.
func (h *Hub) Register(userID uuid.UUID, userType entity.UserType, conn Conn) *Session {
	session := newSession(userID, userType, conn, h.sendBuffer, h.now())
	h.sessions.Store(session.id, session)

	for {
		value, _ := h.users.LoadOrStore(userID, &userSessions{sessions: make(map[string]*Session)})
		entry := value.(*userSessions)

		entry.mu.Lock()
		if entry.dead {
			entry.mu.Unlock()

			continue
		}
		entry.sessions[session.id] = session
		entry.mu.Unlock()

		break
	}

	go session.writePump(h)

	h.logger.Info("Viewer session registered",
		slog.String("session_id", session.id),
		slog.String("user_id", userID.String()),
		slog.String("user_type", userType.String()),
	)

	return session
}

// Unregister closes and forgets a session.
func (h *Hub) Unregister(sessionID string) error {
	value, ok := h.sessions.LoadAndDelete(sessionID)
	if !ok {
		return errors.Wrapf(ErrSessionNotFound, "session %s", sessionID)
	}

	h.detach(value.(*Session))

	return nil
}

// Touch refreshes the activity time of a session after an inbound frame.
func (h *Hub) Touch(sessionID string) {
	if value, ok := h.sessions.Load(sessionID); ok {
		value.(*Session).touch(h.now())
	}
}

// Send enqueues a raw message on every session of userID and returns how many accepted it.
// Sessions whose queue is full are torn down.
func (h *Hub) Send(userID uuid.UUID, msg []byte) int {
	value, ok := h.users.Load(userID)
	if !ok {
		return 0
	}
	entry := value.(*userSessions)

	entry.mu.Lock()
	targets := make([]*Session, 0, len(entry.sessions))
	for _, session := range entry.sessions {
		targets = append(targets, session)
	}
	entry.mu.Unlock()

	delivered := 0
	for _, session := range targets {
		if session.enqueue(msg) {
			delivered++

			continue
		}
		h.drop(session, "send queue full", nil)
	}

	return delivered
}

// Broadcast encodes msg once and sends it to every session of every user.
func (h *Hub) Broadcast(ctx context.Context, userIDs []uuid.UUID, msg entity.TrackingMessage) error {
	payload, err := msg.Encode()
	if err != nil {
		return errors.Wrap(err, "encode tracking message")
	}

	h.deliver(ctx, userIDs, msg.Type, payload)

	return nil
}

func (h *Hub) deliver(ctx context.Context, userIDs []uuid.UUID, msgType entity.MessageType, payload []byte) {
	delivered := 0
	for _, userID := range userIDs {
		delivered += h.Send(userID, payload)
	}

	h.logger.DebugContext(ctx, "Tracking message fanned out",
		slog.String("type", string(msgType)),
		slog.Int("users", len(userIDs)),
		slog.Int("sessions", delivered),
	)
}

// ReapIdle removes sessions idle for longer than the idle timeout at now.
func (h *Hub) ReapIdle(now time.Time) int {
	var idle []*Session

	h.sessions.Range(func(_, value any) bool {
		session := value.(*Session)
		if now.Sub(session.LastActivity()) > h.idleTimeout {
			idle = append(idle, session)
		}

		return true
	})

	reaped := 0
	for _, session := range idle {
		if _, ok := h.sessions.LoadAndDelete(session.id); ok {
			h.detach(session)
			reaped++
		}
	}

	if reaped > 0 {
		h.logger.Info("Reaped idle viewer sessions", slog.Int("count", reaped))
	}

	return reaped
}

// StartReaper runs ReapIdle every reap interval until Close.
func (h *Hub) StartReaper() {
	if h.stopReaper != nil {
		return
	}
	h.stopReaper = make(chan struct{})
	h.reaperDone = make(chan struct{})

	go func() {
		defer close(h.reaperDone)

		ticker := time.NewTicker(h.reapInterval)
		defer ticker.Stop()

		for {
			select {
			case <-h.stopReaper:
				return
			case <-ticker.C:
				h.ReapIdle(h.now())
			}
		}
	}()
}

// Close stops the reaper and closes every session.
func (h *Hub) Close() {
	if h.stopReaper != nil {
		close(h.stopReaper)
		<-h.reaperDone
		h.stopReaper = nil
	}

	h.DisconnectAll()
}

// DisconnectAll closes every session but leaves the reaper running.
// Safe to call concurrently with Close.
func (h *Hub) DisconnectAll() {
	h.sessions.Range(func(key, _ any) bool {
		if value, loaded := h.sessions.LoadAndDelete(key); loaded {
			h.detach(value.(*Session))
		}

		return true
	})
}

// UserSessions describes the live sessions of a user.
func (h *Hub) UserSessions(userID uuid.UUID) []entity.ViewerSession {
	value, ok := h.users.Load(userID)
	if !ok {
		return nil
	}
	entry := value.(*userSessions)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	infos := make([]entity.ViewerSession, 0, len(entry.sessions))
	for _, session := range entry.sessions {
		infos = append(infos, session.Info())
	}

	return infos
}

// SessionCount returns the number of live sessions.
func (h *Hub) SessionCount() int {
	count := 0
	h.sessions.Range(func(_, _ any) bool {
		count++

		return true
	})

	return count
}

// drop tears down a failed session. Only the first caller does the work.
func (h *Hub) drop(session *Session, reason string, err error) {
	if _, ok := h.sessions.LoadAndDelete(session.id); !ok {
		return
	}

	h.logger.Warn("Dropping viewer session",
		slog.String("session_id", session.id),
		slog.String("user_id", session.userID.String()),
		slog.String("reason", reason),
		slog.Any("error", err),
	)

	h.detach(session)
}

// detach removes the session from its user entry and closes it.
func (h *Hub) detach(session *Session) {
	if value, ok := h.users.Load(session.userID); ok {
		entry := value.(*userSessions)

		entry.mu.Lock()
		delete(entry.sessions, session.id)
		if len(entry.sessions) == 0 && !entry.dead {
			entry.dead = true
			h.users.CompareAndDelete(session.userID, entry)
		}
		entry.mu.Unlock()
	}

	session.close()
}

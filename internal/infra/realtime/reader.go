package realtime

import (
	"log/slog"
	"time"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// Maximum inbound frame size. Viewers only send keepalives.
const maxMessageSize = 512

// ReadConn is a websocket connection the hub both reads and writes.
// *websocket.Conn satisfies it.
type ReadConn interface {
	Conn
	ReadMessage() (messageType int, p []byte, err error)
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
}

// Attach registers conn, greets it with a connected message and reads until
// the peer disconnects or the session is reaped. The session is always
// unregistered on return.
func (h *Hub) Attach(userID uuid.UUID, userType entity.UserType, conn ReadConn) error {
	session := h.Register(userID, userType, conn)
	defer func() {
		if err := h.Unregister(session.id); err != nil && !errors.Is(err, ErrSessionNotFound) {
			h.logger.Warn("Failed to unregister session", slog.String("session_id", session.id), slog.Any("error", err))
		}
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(h.now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		h.Touch(session.id)

		return conn.SetReadDeadline(h.now().Add(pongWait))
	})

	hello, err := entity.TrackingMessage{
		Type: entity.MessageConnected,
		Data: entity.ConnectedPayload{
			SessionID: session.id,
			UserID:    userID,
			UserType:  userType,
			Timestamp: session.connectedAt,
		},
	}.Encode()
	if err != nil {
		return errors.Wrap(err, "encode connected message")
	}
	session.enqueue(hello)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && !session.closed() {
				h.logger.Debug("Viewer connection closed unexpectedly",
					slog.String("session_id", session.id),
					slog.Any("error", err),
				)
			}

			return nil
		}

		h.Touch(session.id)
		_ = conn.SetReadDeadline(h.now().Add(pongWait))
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"tracker/internal/delivery/api/middleware"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/infra/realtime"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WSHandlerParams holds dependencies for WSHandler, injected by Fx.
type WSHandlerParams struct {
	fx.In

	Hub    *realtime.Hub
	Logger *slog.Logger
}

// WSHandler upgrades viewers to websocket sessions on the hub
type WSHandler struct {
	hub      *realtime.Hub
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler is the constructor for WSHandler
func NewWSHandler(params WSHandlerParams) *WSHandler {
	return &WSHandler{
		hub:    params.Hub,
		logger: params.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Connect registers the caller on the hub for the lifetime of the connection
func (h *WSHandler) Connect(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	roles, _ := middleware.GetRoles(c)

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the client.
		h.logger.Warn("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}

	if err := h.hub.Attach(userID, entity.UserTypeFromRoles(roles), conn); err != nil {
		h.logger.Error("Websocket session ended with error",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

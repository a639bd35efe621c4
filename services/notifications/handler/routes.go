package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/services/notifications/handler/websocket"
)

// Handler coordinates the realtime endpoints of the notifications service
type Handler struct {
	wsHandler *websocket.WebSocketHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(wsHandler *websocket.WebSocketHandler) *Handler {
	return &Handler{
		wsHandler: wsHandler,
	}
}

// RegisterRoutes registers GET /ws behind session, which also accepts ?token=
func (h *Handler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	e.GET("/ws", h.wsHandler.HandleWebSocket, session)
}

package websocket

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/internal/pkg/middleware"
	wspkg "github.com/piresc/tumpang/internal/pkg/websocket"
)

// WebSocketHandler upgrades authenticated sessions to notification sockets
type WebSocketHandler struct {
	manager *wspkg.Manager
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(manager *wspkg.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
	}
}

// HandleWebSocket serves the connection until the client goes away
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, middleware.GetUserID(c))
}

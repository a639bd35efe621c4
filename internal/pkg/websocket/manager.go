package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpang/internal/pkg/constants"
	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Client is one authenticated websocket connection
type Client struct {
	UserID string
	conn   *websocket.Conn
	mu     sync.Mutex // serialises writes
	done   chan struct{}
}

func (cl *Client) write(messageType int, data []byte) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return cl.conn.WriteMessage(messageType, data)
}

// Manager tracks the live connection of every user
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades an already authenticated request and serves it
// until the peer disconnects
func (m *Manager) HandleConnection(c echo.Context, userID string) error {
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	conn, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{UserID: userID, conn: conn, done: make(chan struct{})}
	m.addClient(client)
	logger.Info("WebSocket client connected", logger.String("user_id", userID))

	go m.pingLoop(client)
	m.readLoop(client)

	m.removeClient(client)
	close(client.done)
	_ = conn.Close()
	logger.Info("WebSocket client disconnected", logger.String("user_id", userID))
	return nil
}

func (m *Manager) readLoop(client *Client) {
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg models.WSMessage
		if err := client.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return
		}

		switch msg.Event {
		case constants.EventPing:
			_ = m.send(client, constants.EventPong, nil)
		default:
			_ = m.send(client, constants.EventError, models.WSErrorMessage{
				Code:    "unsupported_event",
				Message: fmt.Sprintf("event %q is not supported", msg.Event),
			})
		}
	}
}

func (m *Manager) pingLoop(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-client.done:
			return
		case <-ticker.C:
			if err := client.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// addClient registers client, closing any older connection of the same user
func (m *Manager) addClient(client *Client) {
	m.Lock()
	old := m.clients[client.UserID]
	m.clients[client.UserID] = client
	m.Unlock()

	if old != nil {
		_ = old.conn.Close()
	}
}

func (m *Manager) removeClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	if m.clients[client.UserID] == client {
		delete(m.clients, client.UserID)
	}
}

// IsConnected reports whether userID has a live connection
func (m *Manager) IsConnected(userID string) bool {
	m.RLock()
	defer m.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

// ConnectedCount returns the number of live connections
func (m *Manager) ConnectedCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

func (m *Manager) send(client *Client, event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	payload, err := json.Marshal(models.WSMessage{Event: event, Data: rawData})
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	return client.write(websocket.TextMessage, payload)
}

// NotifyClient sends an event to userID if connected. It reports whether a
// message was written.
func (m *Manager) NotifyClient(userID string, event string, data interface{}) bool {
	m.RLock()
	client, exists := m.clients[userID]
	m.RUnlock()

	if !exists {
		return false
	}

	if err := m.send(client, event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.Err(err))
		return false
	}
	return true
}

// CloseAll disconnects every client, used on shutdown
func (m *Manager) CloseAll() {
	m.Lock()
	clients := m.clients
	m.clients = make(map[string]*Client)
	m.Unlock()

	for _, cl := range clients {
		cl.mu.Lock()
		_ = cl.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		cl.mu.Unlock()
		_ = cl.conn.Close()
	}
}

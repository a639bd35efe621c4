package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/tumpang/internal/pkg/constants"
	jwtpkg "github.com/piresc/tumpang/internal/pkg/jwt"
	"github.com/piresc/tumpang/internal/pkg/middleware"
	"github.com/piresc/tumpang/internal/pkg/models"
	wspkg "github.com/piresc/tumpang/internal/pkg/websocket"
	"github.com/piresc/tumpang/services/notifications/handler/websocket"
)

func newServer(t *testing.T, cfg *models.Config, manager *wspkg.Manager) string {
	e := echo.New()
	NewHandler(websocket.NewWebSocketHandler(manager)).
		RegisterRoutes(e, middleware.SessionMiddleware(cfg.JWT, nil))

	srv := httptest.NewServer(e)
	t.Cleanup(func() {
		manager.CloseAll()
		srv.Close()
	})
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func TestWebSocketRoute(t *testing.T) {
	cfg := &models.Config{JWT: models.JWTConfig{Secret: "ws-secret", Expiration: 5, Issuer: "tumpang-test"}}
	manager := wspkg.NewManager()
	url := newServer(t, cfg, manager)

	token, _, err := jwtpkg.GenerateToken("rider-1", "rider@example.com", models.AppPassenger, cfg)
	require.NoError(t, err)

	conn, _, err := gorillaws.DefaultDialer.Dial(url+"?token="+token, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return manager.IsConnected("rider-1") }, time.Second, 10*time.Millisecond)
	assert.True(t, manager.NotifyClient("rider-1", constants.EventNotification, models.Event{Type: models.EventBookingConfirmed}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventNotification, msg.Event)

	var event models.Event
	require.NoError(t, json.Unmarshal(msg.Data, &event))
	assert.Equal(t, models.EventBookingConfirmed, event.Type)
}

func TestWebSocketRoute_RequiresSession(t *testing.T) {
	cfg := &models.Config{JWT: models.JWTConfig{Secret: "ws-secret", Expiration: 5}}
	url := newServer(t, cfg, wspkg.NewManager())

	_, resp, err := gorillaws.DefaultDialer.Dial(url+"?token=garbage", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"roomchat/internal/events"
	"roomchat/internal/services"
	roomchat_errors "roomchat/pkg/errors"
	"roomchat/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

type stubTokenParser struct{}

func (stubTokenParser) ParseAccessToken(token string) (services.AccessClaims, error) {
	if token != "good" {
		return services.AccessClaims{}, roomchat_errors.ErrInvalidCredentials
	}
	return services.AccessClaims{
		Username:         "alice",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "5"},
	}, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := NewHub(logger.NewNop())
	engine := gin.New()
	engine.GET("/ws", NewHandler(stubTokenParser{}, hub, logger.NewNop()).Connect)

	srv := httptest.NewServer(engine)
	t.Cleanup(func() {
		hub.CloseAll()
		srv.Close()
	})
	return srv, hub
}

func wsURL(srv *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
}

func TestHandler_ConnectedClientReceivesNewMessage(t *testing.T) {
	req := require.New(t)
	srv, hub := newTestServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, ""), nil)
	req.NoError(err)
	defer conn.Close()

	req.Eventually(func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	req.NoError(hub.PublishMessage(context.Background(), events.MessageEvent{
		ID:        1,
		UserID:    5,
		Username:  "alice",
		Message:   "hi",
		Timestamp: time.Now().UTC(),
	}))

	req.NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, raw, err := conn.ReadMessage()
	req.NoError(err)

	var frame events.Envelope
	req.NoError(json.Unmarshal(raw, &frame))
	req.Equal(events.EventNewMessage, frame.Event)

	var evt events.MessageEvent
	req.NoError(json.Unmarshal(frame.Data, &evt))
	req.Equal("hi", evt.Message)
	req.Equal("alice", evt.Username)
}

func TestHandler_DisconnectRemovesChannel(t *testing.T) {
	req := require.New(t)
	srv, hub := newTestServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "?token=good"), nil)
	req.NoError(err)
	req.Eventually(func() bool { return hub.Count() == 1 }, 2*time.Second, 10*time.Millisecond)

	req.NoError(conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	_ = conn.Close()

	req.Eventually(func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
	req.NoError(hub.PublishMessage(context.Background(), events.MessageEvent{ID: 2}))
}

func TestHandler_RejectsInvalidToken(t *testing.T) {
	req := require.New(t)
	srv, hub := newTestServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "?token=bad"), nil)
	req.Error(err)
	req.NotNil(resp)
	req.Equal(http.StatusUnauthorized, resp.StatusCode)
	req.Zero(hub.Count())
}

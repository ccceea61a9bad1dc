package websocket

import (
	"net/http"

	"roomchat/internal/services"
	"roomchat/internal/transport/httpdto"
	"roomchat/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// TokenParser resolves an optional access token to its claims.
type TokenParser interface {
	ParseAccessToken(token string) (services.AccessClaims, error)
}

type Handler struct {
	auth     TokenParser
	hub      *Hub
	logger   *connLogger
	upgrader websocket.Upgrader
}

func NewHandler(auth TokenParser, hub *Hub, l *logger.Logger) *Handler {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Handler{
		auth:   auth,
		hub:    hub,
		logger: newConnLogger(l),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Connect upgrades the request and keeps the connection in the hub until
// the peer disconnects or a write fails. Browsers cannot set headers on a
// websocket, so a token may come as ?token=; an invalid one is rejected
// before the upgrade. Otherwise the user set by the bearer middleware, if
// any, is used.
func (h *Handler) Connect(c *gin.Context) {
	userID, _ := services.UserIDFromContext(c.Request.Context())
	if token := c.Query("token"); token != "" && h.auth != nil {
		claims, err := h.auth.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
			return
		}
		if id, err := claims.UserID(); err == nil {
			userID = id
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return
	}

	client := NewClient(conn, userID)
	h.hub.Add(client)
	h.logger.Info("connected", client, zap.Int("connections", h.hub.Count()))

	go func() {
		if err := client.WriteLoop(); err != nil {
			h.logger.Warn("write_failed", client, err)
		}
		h.hub.Remove(client)
		_ = conn.Close()
	}()

	if err := client.ReadLoop(); err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		h.logger.Warn("read_failed", client, err)
	}

	h.hub.Remove(client)
	h.logger.Info("disconnected", client)
}

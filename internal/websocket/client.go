package websocket

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
	sendBufferSize = 256
)

var (
	ErrChannelClosed = errors.New("channel closed")
	ErrSlowConsumer  = errors.New("send buffer full")
)

// Client represents a WebSocket client connection
type Client struct {
	id     string          // Unique client ID
	UserID uint64          // Authenticated user ID, 0 when anonymous
	Conn   *websocket.Conn // WebSocket connection
	send   chan []byte     // Outbound message channel

	mu     sync.Mutex // Protects closed and send
	closed bool
}

// NewClient creates a new WebSocket client
func NewClient(conn *websocket.Conn, userID uint64) *Client {
	return &Client{
		id:     uuid.New().String(),
		UserID: userID,
		Conn:   conn,
		send:   make(chan []byte, sendBufferSize),
	}
}

func (c *Client) ID() string {
	return c.id
}

// Deliver queues msg for the write loop without blocking.
func (c *Client) Deliver(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrChannelClosed
	}
	select {
	case c.send <- msg:
		return nil
	default:
		return ErrSlowConsumer
	}
}

// Close stops the write loop. Safe to call more than once.
func (c *Client) Close() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
	c.mu.Unlock()
}

// WriteLoop is the only writer on the connection. It returns when the send
// channel is closed or a write fails.
func (c *Client) WriteLoop() error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return nil
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}

// ReadLoop drains inbound frames so control frames are processed. The
// channel is push-only, so payloads are discarded. It returns on the first
// read error, which includes a normal close by the peer.
func (c *Client) ReadLoop() error {
	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return err
		}
		_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}

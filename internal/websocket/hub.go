package websocket

import (
	"context"
	"sync"

	"roomchat/internal/events"
	"roomchat/pkg/logger"

	"go.uber.org/zap"
)

// Channel is one open realtime connection the hub can push frames to.
type Channel interface {
	ID() string
	// Deliver queues payload without blocking. An error means the channel
	// cannot take more frames and must be dropped.
	Deliver(payload []byte) error
	Close()
}

// Hub is the broadcaster: it owns the set of connected channels and fans
// every published frame out to all of them.
//
// All mutations and broadcasts hold the same lock, so a broadcast sees a
// point-in-time snapshot and frames reach each channel in publish order.
type Hub struct {
	mu       sync.Mutex
	channels map[string]Channel
	logger   *logger.Logger
}

// NewHub creates an empty hub
func NewHub(l *logger.Logger) *Hub {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Hub{
		channels: make(map[string]Channel),
		logger:   l.Named("hub"),
	}
}

// Add registers ch; it receives every frame published from now on.
func (h *Hub) Add(ch Channel) {
	h.mu.Lock()
	h.channels[ch.ID()] = ch
	h.mu.Unlock()
}

// Remove drops ch and closes it. Removing an unknown or already removed
// channel is a no-op and reports false.
func (h *Hub) Remove(ch Channel) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.removeLocked(ch.ID())
}

// PublishMessage broadcasts a new_message frame. It satisfies events.Publisher.
func (h *Hub) PublishMessage(ctx context.Context, evt events.MessageEvent) error {
	return h.Publish(ctx, events.EventNewMessage, evt)
}

// Publish encodes data once under the event name and broadcasts it.
func (h *Hub) Publish(ctx context.Context, event string, data any) error {
	payload, err := events.Encode(event, data)
	if err != nil {
		return err
	}
	delivered := h.Broadcast(payload)
	h.logger.WithContext(ctx).Debug("event broadcast",
		zap.String("event", event),
		zap.Int("delivered", delivered),
	)
	return nil
}

// Broadcast hands payload to every channel connected right now and returns
// how many accepted it. Channels that refuse are removed.
func (h *Hub) Broadcast(payload []byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for id, ch := range h.channels {
		if err := ch.Deliver(payload); err != nil {
			h.logger.Logger.Warn("dropping channel after failed delivery",
				zap.String("channel_id", id),
				zap.Error(err),
			)
			h.removeLocked(id)
			continue
		}
		delivered++
	}
	return delivered
}

// Count returns the number of connected channels
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.channels)
}

// CloseAll removes and closes every channel. Used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id := range h.channels {
		h.removeLocked(id)
	}
}

func (h *Hub) removeLocked(id string) bool {
	ch, ok := h.channels[id]
	if !ok {
		return false
	}
	delete(h.channels, id)
	ch.Close()
	return true
}

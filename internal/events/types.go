package events

import "time"

// Event names pushed over the realtime channel.
const (
	EventNewMessage = "new_message"
)

// MessageEvent is the payload of a new_message frame.
type MessageEvent struct {
	ID        uint64    `json:"id"`
	ChatID    *uint64   `json:"chat_id,omitempty"`
	UserID    uint64    `json:"user_id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

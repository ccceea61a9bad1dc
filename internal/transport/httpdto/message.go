package httpdto

import "time"

// SendMessageRequest is used for POST /send_message and POST /chats/:id/messages.
// UserID may be omitted when the request carries a bearer token.
type SendMessageRequest struct {
	ChatID    *NumericID `json:"chat_id,omitempty"`
	UserID    NumericID  `json:"user_id,omitempty"`
	Content   string     `json:"content"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type MessageDTO struct {
	ID        uint64  `json:"id"`
	ChatID    *uint64 `json:"chat_id,omitempty"`
	UserID    uint64  `json:"user_id"`
	Username  string  `json:"username"`
	Content   string  `json:"content"`
	Timestamp string  `json:"timestamp"`
}

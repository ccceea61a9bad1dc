package chat

import (
	"time"
)

// MaxNameLength bounds the chat display name.
const MaxNameLength = 120

// Chat represents the chats table
type Chat struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:120;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

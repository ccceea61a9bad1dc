package message

import (
	"time"
)

// MaxContentLength is the content column size in characters. The configured
// message limit may not exceed it.
const MaxContentLength = 500

// Message represents the messages table. Rows are append-only: the id is
// the insertion order used by every listing.
type Message struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ChatID    *uint64   `gorm:"index"`
	UserID    uint64    `gorm:"not null;index"`
	Content   string    `gorm:"size:500;not null"`
	Timestamp time.Time `gorm:"not null"`
}

// View is a message joined with its author's username.
type View struct {
	ID        uint64
	ChatID    *uint64
	UserID    uint64
	Username  string
	Content   string
	Timestamp time.Time
}

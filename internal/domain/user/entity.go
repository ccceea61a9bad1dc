package user

import (
	"time"
)

// MaxUsernameLength bounds the username column.
const MaxUsernameLength = 80

// User represents the users table
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"size:80;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

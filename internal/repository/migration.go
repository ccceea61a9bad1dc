package repository

import (
	"fmt"

	"roomchat/internal/domain/chat"
	"roomchat/internal/domain/message"
	"roomchat/internal/domain/user"

	"gorm.io/gorm"
)

// InitSchema creates or updates the users, chats and messages tables.
func InitSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&chat.Chat{},
		&message.Message{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}

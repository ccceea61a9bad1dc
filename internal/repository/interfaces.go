package repository

import (
	"context"

	"roomchat/internal/domain/chat"
	"roomchat/internal/domain/message"
	"roomchat/internal/domain/user"
)

type UserRepository interface {
	// Create inserts u and fills its id. A taken username yields ErrDuplicateUser.
	Create(ctx context.Context, u *user.User) error
	GetUserByID(ctx context.Context, id uint64) (user.User, error)
	GetUserByUsername(ctx context.Context, username string) (user.User, error)
	Count(ctx context.Context) (int64, error)
}

type ChatRepository interface {
	Create(ctx context.Context, c *chat.Chat) error
	GetByID(ctx context.Context, id uint64) (chat.Chat, error)
	List(ctx context.Context) ([]chat.Chat, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *message.Message) error
	// List returns messages in insertion order; a nil chatID lists every chat.
	List(ctx context.Context, chatID *uint64) ([]message.View, error)
	Count(ctx context.Context) (int64, error)
}

package repository

import (
	"context"
	"errors"

	"roomchat/internal/domain/chat"
	roomchat_errors "roomchat/pkg/errors"

	"gorm.io/gorm"
)

type SQLChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &SQLChatRepository{db: db}
}

func (r *SQLChatRepository) Create(ctx context.Context, c *chat.Chat) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *SQLChatRepository) GetByID(ctx context.Context, id uint64) (chat.Chat, error) {
	var c chat.Chat
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return chat.Chat{}, roomchat_errors.ErrNotFound
		}
		return chat.Chat{}, err
	}
	return c, nil
}

func (r *SQLChatRepository) List(ctx context.Context) ([]chat.Chat, error) {
	var chats []chat.Chat
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

package repository

import (
	"context"

	"roomchat/internal/domain/message"

	"gorm.io/gorm"
)

type SQLMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &SQLMessageRepository{db: db}
}

func (r *SQLMessageRepository) Create(ctx context.Context, m *message.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *SQLMessageRepository) List(ctx context.Context, chatID *uint64) ([]message.View, error) {
	q := r.db.WithContext(ctx).
		Table("messages").
		Select("messages.id, messages.chat_id, messages.user_id, users.username, messages.content, messages.timestamp").
		Joins("JOIN users ON users.id = messages.user_id")

	if chatID != nil {
		q = q.Where("messages.chat_id = ?", *chatID)
	}

	views := make([]message.View, 0)
	if err := q.Order("messages.id ASC").Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *SQLMessageRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&message.Message{}).Count(&total).Error
	return total, err
}

package services

import (
	"context"

	"roomchat/internal/domain/chat"
	"roomchat/internal/repository"
	roomchat_errors "roomchat/pkg/errors"
)

type ChatService struct {
	chatRepo repository.ChatRepository
}

func NewChatService(chatRepo repository.ChatRepository) *ChatService {
	return &ChatService{chatRepo: chatRepo}
}

func (s *ChatService) Create(ctx context.Context, name string) (chat.Chat, error) {
	name = SanitizeText(name)
	if name == "" || runeLen(name) > chat.MaxNameLength {
		return chat.Chat{}, roomchat_errors.ErrInvalidInput
	}

	c := &chat.Chat{
		Name:      name,
		CreatedAt: roomchat_errors.NowUTC(),
	}
	if err := s.chatRepo.Create(ctx, c); err != nil {
		return chat.Chat{}, err
	}
	return *c, nil
}

func (s *ChatService) GetByID(ctx context.Context, id uint64) (chat.Chat, error) {
	return s.chatRepo.GetByID(ctx, id)
}

func (s *ChatService) List(ctx context.Context) ([]chat.Chat, error) {
	return s.chatRepo.List(ctx)
}

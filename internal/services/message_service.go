package services

import (
	"context"
	"time"

	"roomchat/internal/domain/message"
	"roomchat/internal/events"
	"roomchat/internal/repository"
	roomchat_errors "roomchat/pkg/errors"
	"roomchat/pkg/logger"

	"go.uber.org/zap"
)

type MessageService struct {
	messageRepo repository.MessageRepository
	chatRepo    repository.ChatRepository
	userRepo    repository.UserRepository
	publisher   events.Publisher
	maxLength   int
	logger      *logger.Logger
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	publisher events.Publisher,
	maxLength int,
	l *logger.Logger,
) *MessageService {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &MessageService{
		messageRepo: messageRepo,
		chatRepo:    chatRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		maxLength:   maxLength,
		logger:      l,
	}
}

type SendMessageInput struct {
	ChatID    *uint64
	UserID    uint64
	Content   string
	Timestamp *time.Time
}

// SendMessage validates and stores a message, then publishes it. Publishing
// happens only after the insert returned, and a publish error is logged
// without undoing the insert.
func (s *MessageService) SendMessage(ctx context.Context, in SendMessageInput) (message.View, error) {
	content := SanitizeText(in.Content)
	if content == "" || runeLen(content) > s.maxLength {
		return message.View{}, roomchat_errors.ErrInvalidContent
	}
	if in.UserID == 0 {
		return message.View{}, roomchat_errors.ErrInvalidInput
	}

	author, err := s.userRepo.GetUserByID(ctx, in.UserID)
	if err != nil {
		return message.View{}, err
	}
	if in.ChatID != nil {
		if _, err := s.chatRepo.GetByID(ctx, *in.ChatID); err != nil {
			return message.View{}, err
		}
	}

	ts := roomchat_errors.NowUTC()
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		ts = in.Timestamp.UTC().Truncate(time.Microsecond)
	}

	msg := &message.Message{
		ChatID:    in.ChatID,
		UserID:    author.ID,
		Content:   content,
		Timestamp: ts,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return message.View{}, err
	}

	view := message.View{
		ID:        msg.ID,
		ChatID:    msg.ChatID,
		UserID:    msg.UserID,
		Username:  author.Username,
		Content:   msg.Content,
		Timestamp: msg.Timestamp,
	}
	s.publish(ctx, view)
	return view, nil
}

// ListMessages returns every message when chatID is nil, otherwise only the
// messages of that chat, which must exist.
func (s *MessageService) ListMessages(ctx context.Context, chatID *uint64) ([]message.View, error) {
	if chatID != nil {
		if _, err := s.chatRepo.GetByID(ctx, *chatID); err != nil {
			return nil, err
		}
	}
	return s.messageRepo.List(ctx, chatID)
}

func (s *MessageService) publish(ctx context.Context, view message.View) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishMessage(ctx, events.MessageEvent{
		ID:        view.ID,
		ChatID:    view.ChatID,
		UserID:    view.UserID,
		Username:  view.Username,
		Message:   view.Content,
		Timestamp: view.Timestamp,
	})
	if err != nil {
		s.logger.WithContext(ctx).Warn("message stored but broadcast failed",
			zap.Uint64("message_id", view.ID),
			zap.Error(err),
		)
	}
}

package services

import (
	"testing"

	roomchat_errors "roomchat/pkg/errors"

	"github.com/stretchr/testify/require"
)

func TestChatService_Create(t *testing.T) {
	req := require.New(t)
	ctx := t.Context()
	f := newMessageFixture(t)
	svc := NewChatService(f.service.chatRepo)

	created, err := svc.Create(ctx, " random ")
	req.NoError(err)
	req.Equal("random", created.Name)
	req.NotZero(created.ID)

	_, err = svc.Create(ctx, "   ")
	req.ErrorIs(err, roomchat_errors.ErrInvalidInput)

	chats, err := svc.List(ctx)
	req.NoError(err)
	req.Len(chats, 2)
	req.Equal("general", chats[0].Name)
	req.Equal("random", chats[1].Name)

	found, err := svc.GetByID(ctx, created.ID)
	req.NoError(err)
	req.Equal(created.ID, found.ID)

	_, err = svc.GetByID(ctx, 777)
	req.ErrorIs(err, roomchat_errors.ErrNotFound)
}

func TestUserService_GetByID(t *testing.T) {
	req := require.New(t)
	f := newMessageFixture(t)
	svc := NewUserService(f.service.userRepo)

	info, err := svc.GetByID(t.Context(), f.author.ID)
	req.NoError(err)
	req.Equal("alice", info.Username)

	_, err = svc.GetByID(t.Context(), 777)
	req.ErrorIs(err, roomchat_errors.ErrNotFound)
}

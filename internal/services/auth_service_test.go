package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"roomchat/config"
	"roomchat/internal/domain/user"
	"roomchat/internal/repository"
	"roomchat/internal/testutil"
	roomchat_errors "roomchat/pkg/errors"

	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (*AuthService, repository.UserRepository) {
	t.Helper()
	userRepo := repository.NewUserRepository(testutil.NewSQLiteDB(t))
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryMin: 5}
	return NewAuthService(userRepo, cfg), userRepo
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("should store a bcrypt hash, never the password", func(t *testing.T) {
		req := require.New(t)
		svc, repo := newTestAuthService(t)

		info, err := svc.Register(ctx, "  alice ", "s3cret")
		req.NoError(err)
		req.NotZero(info.ID)
		req.Equal("alice", info.Username)

		stored, err := repo.GetUserByID(ctx, info.ID)
		req.NoError(err)
		req.NotEqual("s3cret", stored.PasswordHash)
		req.True(strings.HasPrefix(stored.PasswordHash, "$2"))
	})

	t.Run("should reject empty fields", func(t *testing.T) {
		req := require.New(t)
		svc, repo := newTestAuthService(t)

		_, err := svc.Register(ctx, "", "pw")
		req.ErrorIs(err, roomchat_errors.ErrInvalidInput)
		_, err = svc.Register(ctx, "   ", "pw")
		req.ErrorIs(err, roomchat_errors.ErrInvalidInput)
		_, err = svc.Register(ctx, "bob", "")
		req.ErrorIs(err, roomchat_errors.ErrInvalidInput)

		count, err := repo.Count(ctx)
		req.NoError(err)
		req.Zero(count)
	})

	t.Run("should reject a username that is too long", func(t *testing.T) {
		svc, _ := newTestAuthService(t)
		_, err := svc.Register(ctx, strings.Repeat("a", 81), "pw")
		require.ErrorIs(t, err, roomchat_errors.ErrInvalidInput)
	})

	t.Run("should report a duplicate and keep exactly one row", func(t *testing.T) {
		req := require.New(t)
		svc, repo := newTestAuthService(t)

		_, err := svc.Register(ctx, "alice", "first")
		req.NoError(err)
		_, err = svc.Register(ctx, "alice", "second")
		req.ErrorIs(err, roomchat_errors.ErrDuplicateUser)

		count, err := repo.Count(ctx)
		req.NoError(err)
		req.EqualValues(1, count)

		// the original password still works
		_, err = svc.Login(ctx, "alice", "first")
		req.NoError(err)
	})

	t.Run("should let exactly one concurrent registration of a name win", func(t *testing.T) {
		req := require.New(t)
		svc, repo := newTestAuthService(t)

		const attempts = 8
		var wg sync.WaitGroup
		var succeeded, duplicates atomic.Int32
		errs := make(chan error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Register(ctx, "racer", "pw")
				switch {
				case err == nil:
					succeeded.Add(1)
				case errors.Is(err, roomchat_errors.ErrDuplicateUser):
					duplicates.Add(1)
				default:
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			req.NoError(err)
		}
		req.EqualValues(1, succeeded.Load())
		req.EqualValues(attempts-1, duplicates.Load())

		count, err := repo.Count(ctx)
		req.NoError(err)
		req.EqualValues(1, count)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	registered, err := svc.Register(ctx, "carol", "correct horse")
	require.NoError(t, err)

	t.Run("should issue a token for the right password", func(t *testing.T) {
		req := require.New(t)
		result, err := svc.Login(ctx, "carol", "correct horse")
		req.NoError(err)
		req.Equal(registered.ID, result.User.ID)
		req.Equal("carol", result.User.Username)
		req.NotEmpty(result.AccessToken)
		req.EqualValues(300, result.ExpiresIn)

		claims, err := svc.ParseAccessToken(result.AccessToken)
		req.NoError(err)
		userID, err := claims.UserID()
		req.NoError(err)
		req.Equal(registered.ID, userID)
		req.Equal("carol", claims.Username)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "carol", "battery staple")
		require.ErrorIs(t, err, roomchat_errors.ErrInvalidCredentials)
	})

	t.Run("should reject an unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, "dave", "correct horse")
		require.ErrorIs(t, err, roomchat_errors.ErrInvalidCredentials)
	})

	t.Run("should reject empty credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "")
		require.ErrorIs(t, err, roomchat_errors.ErrInvalidCredentials)
	})
}

func TestAuthService_ParseAccessToken(t *testing.T) {
	req := require.New(t)
	svc, _ := newTestAuthService(t)

	_, err := svc.ParseAccessToken("")
	req.ErrorIs(err, roomchat_errors.ErrInvalidCredentials)
	_, err = svc.ParseAccessToken("not-a-jwt")
	req.ErrorIs(err, roomchat_errors.ErrInvalidCredentials)

	other := NewAuthService(nil, &config.Config{JWTSecret: "other-secret", JWTExpiryMin: 5})
	token, _, err := other.newAccessToken(user.User{ID: 7, Username: "mallory"})
	req.NoError(err)
	_, err = svc.ParseAccessToken(token)
	req.ErrorIs(err, roomchat_errors.ErrInvalidCredentials)
}

func TestHTTPStatus(t *testing.T) {
	cases := map[error]int{
		roomchat_errors.ErrInvalidInput:       400,
		roomchat_errors.ErrInvalidContent:     400,
		roomchat_errors.ErrInvalidCredentials: 401,
		roomchat_errors.ErrNotFound:           404,
		roomchat_errors.ErrDuplicateUser:      400,
		roomchat_errors.ErrRateLimited:        429,
		context.DeadlineExceeded:              500,
	}
	for err, want := range cases {
		require.Equal(t, want, HTTPStatus(err), err.Error())
	}
}

func TestUserIDFromContext(t *testing.T) {
	req := require.New(t)
	_, ok := UserIDFromContext(context.Background())
	req.False(ok)

	id, ok := UserIDFromContext(WithUserContext(context.Background(), 42))
	req.True(ok)
	req.EqualValues(42, id)
}

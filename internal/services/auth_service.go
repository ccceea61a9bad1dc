package services

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"roomchat/config"
	"roomchat/internal/domain/user"
	"roomchat/internal/repository"
	roomchat_errors "roomchat/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	accessTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		accessTTL: time.Duration(cfg.JWTExpiryMin) * time.Minute,
	}
}

type UserInfo struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResult struct {
	User        UserInfo
	AccessToken string
	ExpiresIn   int64
}

type AccessClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID returns the numeric id carried in the subject claim.
func (c AccessClaims) UserID() (uint64, error) {
	return strconv.ParseUint(c.Subject, 10, 64)
}

// Register stores a new user with a bcrypt hash. The unique index on
// username makes the duplicate check and the insert one atomic step.
func (s *AuthService) Register(ctx context.Context, username, password string) (UserInfo, error) {
	username = SanitizeText(username)
	if username == "" || password == "" {
		return UserInfo{}, roomchat_errors.ErrInvalidInput
	}
	if runeLen(username) > user.MaxUsernameLength {
		return UserInfo{}, roomchat_errors.ErrInvalidInput
	}

	hash, err := hashPassword(password)
	if err != nil {
		return UserInfo{}, err
	}

	newUser := &user.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    roomchat_errors.NowUTC(),
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return UserInfo{}, err
	}

	return toUserInfo(*newUser), nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = SanitizeText(username)
	if username == "" || password == "" {
		return LoginResult{}, roomchat_errors.ErrInvalidCredentials
	}

	u, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, roomchat_errors.ErrNotFound) {
			return LoginResult{}, roomchat_errors.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := comparePassword(u.PasswordHash, password); err != nil {
		return LoginResult{}, roomchat_errors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.newAccessToken(u)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		User:        toUserInfo(u),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

func (s *AuthService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, roomchat_errors.ErrInvalidCredentials
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, roomchat_errors.ErrInvalidCredentials
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return AccessClaims{}, roomchat_errors.ErrInvalidCredentials
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, roomchat_errors.ErrInvalidCredentials
	}

	return *claims, nil
}

func (s *AuthService) newAccessToken(u user.User) (string, int64, error) {
	now := time.Now()
	claims := AccessClaims{
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, err
	}
	return signed, int64(s.accessTTL.Seconds()), nil
}

// HTTPStatus maps service errors to response codes. Anything unrecognised
// is a storage failure.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, roomchat_errors.ErrInvalidInput),
		errors.Is(err, roomchat_errors.ErrInvalidContent),
		errors.Is(err, roomchat_errors.ErrDuplicateUser):
		return http.StatusBadRequest
	case errors.Is(err, roomchat_errors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, roomchat_errors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, roomchat_errors.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

type ctxKey string

var userIDKey ctxKey = "user_id"

func WithUserContext(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (uint64, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", roomchat_errors.ErrInvalidInput
		}
		return "", err
	}
	return string(hash), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func toUserInfo(u user.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

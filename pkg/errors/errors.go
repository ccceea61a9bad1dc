package roomchat_errors

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidContent     = errors.New("invalid message content")
	ErrNotFound           = errors.New("not found")
	ErrRateLimited        = errors.New("rate limited")
)

// NowUTC returns the current time truncated to microseconds, which is the
// precision both storage drivers round-trip.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

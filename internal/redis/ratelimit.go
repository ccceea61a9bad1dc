package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Key patterns, each expiring with its window:
//   ratelimit:{subject}:messages
//   ratelimit:auth:{ip}

// RateLimitConfig contains configuration for rate limiting
type RateLimitConfig struct {
	MessageLimit  int           // Max messages per window
	MessageWindow time.Duration // Message rate limit window
	AuthLimit     int           // Max auth attempts per window
	AuthWindow    time.Duration // Auth rate limit window
}

// DefaultRateLimitConfig returns sensible defaults
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MessageLimit:  60, // 60 messages per minute
		MessageWindow: 60 * time.Second,
		AuthLimit:     10, // 10 auth attempts per minute
		AuthWindow:    60 * time.Second,
	}
}

// WithOverrides replaces every positive field of o in c.
func (c RateLimitConfig) WithOverrides(o RateLimitConfig) RateLimitConfig {
	if o.MessageLimit > 0 {
		c.MessageLimit = o.MessageLimit
	}
	if o.MessageWindow > 0 {
		c.MessageWindow = o.MessageWindow
	}
	if o.AuthLimit > 0 {
		c.AuthLimit = o.AuthLimit
	}
	if o.AuthWindow > 0 {
		c.AuthWindow = o.AuthWindow
	}
	return c
}

// RateLimiter is a fixed-window counter kept in Redis
type RateLimiter struct {
	client *goredis.Client
	config RateLimitConfig
}

// RateLimitResult contains the result of a rate limit check
type RateLimitResult struct {
	Allowed   bool          // Whether the action is allowed
	Remaining int           // Remaining actions in the window
	ResetIn   time.Duration // Time until the window resets
	Limit     int           // The limit for this action
}

// INCR and EXPIRE in one script so the first hit of a window always sets the TTL.
var fixedWindowScript = goredis.NewScript(`
	local current = redis.call('INCR', KEYS[1])
	if current == 1 then
		redis.call('EXPIRE', KEYS[1], ARGV[2])
	end
	local ttl = redis.call('TTL', KEYS[1])
	local limit = tonumber(ARGV[1])
	if current > limit then
		return {0, 0, ttl}
	end
	return {1, limit - current, ttl}
`)

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(client *goredis.Client, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		client: client,
		config: config,
	}
}

// AllowMessage checks if subject (a user id or client IP) may send a message
func (r *RateLimiter) AllowMessage(ctx context.Context, subject string) (*RateLimitResult, error) {
	key := fmt.Sprintf("ratelimit:%s:messages", subject)
	return r.checkLimit(ctx, key, r.config.MessageLimit, r.config.MessageWindow)
}

// AllowAuth checks if an IP can make a register or login attempt
func (r *RateLimiter) AllowAuth(ctx context.Context, ip string) (*RateLimitResult, error) {
	key := fmt.Sprintf("ratelimit:auth:%s", ip)
	return r.checkLimit(ctx, key, r.config.AuthLimit, r.config.AuthWindow)
}

func (r *RateLimiter) checkLimit(ctx context.Context, key string, limit int, window time.Duration) (*RateLimitResult, error) {
	result, err := fixedWindowScript.Run(ctx, r.client, []string{key}, limit, int(window.Seconds())).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}
	if len(result) < 3 {
		return nil, fmt.Errorf("unexpected rate limit result format")
	}

	return &RateLimitResult{
		Allowed:   result[0] == 1,
		Remaining: int(result[1]),
		ResetIn:   time.Duration(result[2]) * time.Second,
		Limit:     limit,
	}, nil
}

package middleware

import (
	"context"
	"net/http"
	"strconv"

	"roomchat/internal/redis"
	"roomchat/internal/services"
	"roomchat/internal/transport/httpdto"
	"roomchat/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiter is satisfied by redis.RateLimiter.
type RateLimiter interface {
	AllowMessage(ctx context.Context, subject string) (*redis.RateLimitResult, error)
	AllowAuth(ctx context.Context, ip string) (*redis.RateLimitResult, error)
}

// MessageRateLimitMiddleware limits message sends per authenticated user,
// or per client IP for anonymous requests.
func MessageRateLimitMiddleware(limiter RateLimiter, l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := "ip:" + c.ClientIP()
		if userID, ok := services.UserIDFromContext(c.Request.Context()); ok {
			subject = "user:" + strconv.FormatUint(userID, 10)
		}
		result, err := limiter.AllowMessage(c.Request.Context(), subject)
		enforce(c, l, result, err, "message rate limit exceeded")
	}
}

// AuthRateLimitMiddleware limits register and login attempts per client IP.
func AuthRateLimitMiddleware(limiter RateLimiter, l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.AllowAuth(c.Request.Context(), c.ClientIP())
		enforce(c, l, result, err, "too many authentication attempts")
	}
}

// enforce lets the request through when the limiter itself fails, logging
// the failure.
func enforce(c *gin.Context, l *logger.Logger, result *redis.RateLimitResult, err error, denied string) {
	if err != nil {
		if l != nil {
			l.WithContext(c.Request.Context()).Warn("rate limiter unavailable", zap.Error(err))
		}
		c.Next()
		return
	}

	setRateLimitHeaders(c, result)

	if !result.Allowed {
		c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse(denied, "RATE_LIMITED"))
		c.Abort()
		return
	}

	c.Next()
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}

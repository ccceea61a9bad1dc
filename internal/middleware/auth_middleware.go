package middleware

import (
	"strconv"
	"strings"

	"roomchat/internal/services"
	"roomchat/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenParser resolves a bearer token to its claims.
type TokenParser interface {
	ParseAccessToken(token string) (services.AccessClaims, error)
}

// OptionalAuthMiddleware attaches the token subject to the request context
// when a valid bearer token is present. A missing, expired or malformed
// token leaves the request anonymous; handlers that need an author reject
// it themselves.
func OptionalAuthMiddleware(parser TokenParser, l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" || parser == nil {
			c.Next()
			return
		}

		claims, err := parser.ParseAccessToken(token)
		if err != nil {
			if l != nil {
				l.WithContext(c.Request.Context()).Debug("ignoring invalid bearer token", zap.Error(err))
			}
			c.Next()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.Next()
			return
		}

		ctx := services.WithUserContext(c.Request.Context(), userID)
		ctx = logger.WithUserID(ctx, strconv.FormatUint(userID, 10))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

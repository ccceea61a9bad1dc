package middleware

import (
	"roomchat/internal/transport/httpdto"
	"roomchat/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler logs errors attached by handlers. Handlers have already
// written a sanitized body; one is written here only if they did not.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if l != nil {
			l.WithContext(c.Request.Context()).Error("request error",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}
		if !c.Writer.Written() {
			c.JSON(500, httpdto.NewErrorResponse("internal server error", "INTERNAL_ERROR"))
		}
	}
}

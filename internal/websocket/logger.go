package websocket

import (
	"roomchat/pkg/logger"

	"go.uber.org/zap"
)

// connLogger provides structured logging for connection lifecycle events
type connLogger struct {
	logger *logger.Logger
}

func newConnLogger(l *logger.Logger) *connLogger {
	return &connLogger{logger: l.Named("websocket")}
}

func (l *connLogger) Info(event string, c *Client, fields ...zap.Field) {
	l.logger.Logger.Info("websocket_event", l.fields(event, c, fields)...)
}

func (l *connLogger) Warn(event string, c *Client, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	l.logger.Logger.Warn("websocket_warning", l.fields(event, c, fields)...)
}

func (l *connLogger) fields(event string, c *Client, extra []zap.Field) []zap.Field {
	return append([]zap.Field{
		zap.String("event", event),
		zap.String("client_id", c.ID()),
		zap.Uint64("user_id", c.UserID),
	}, extra...)
}

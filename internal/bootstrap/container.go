package bootstrap

import (
	"context"

	"roomchat/config"
	"roomchat/internal/handler"
	"roomchat/internal/middleware"
	"roomchat/internal/repository"
	"roomchat/internal/server"
	"roomchat/internal/services"
	"roomchat/internal/websocket"
	"roomchat/pkg/database"
	"roomchat/pkg/logger"

	"gorm.io/gorm"
)

// Container holds the wired application. Nothing in it is global: the
// database handle flows from here into each repository.
type Container struct {
	AuthService    *services.AuthService
	ChatService    *services.ChatService
	UserService    *services.UserService
	MessageService *services.MessageService
	Hub            *websocket.Hub
	Server         *server.Server
}

// NewContainer wires repositories, services, the broadcaster and the HTTP
// routes. limiter may be nil.
func NewContainer(db *gorm.DB, cfg *config.Config, l *logger.Logger, limiter middleware.RateLimiter) *Container {
	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	hub := websocket.NewHub(l)

	authService := services.NewAuthService(userRepo, cfg)
	chatService := services.NewChatService(chatRepo)
	userService := services.NewUserService(userRepo)
	messageService := services.NewMessageService(messageRepo, chatRepo, userRepo, hub, cfg.MessageMaxLength, l)

	srv := server.New(cfg, l)
	deps := server.Dependencies{
		Tokens:  authService,
		Limiter: limiter,
		Health: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
	}
	srv.SetupRoutes(&server.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Chat:    handler.NewChatHandler(chatService),
		Message: handler.NewMessageHandler(messageService),
		User:    handler.NewUserHandler(userService),
		WS:      websocket.NewHandler(authService, hub, l),
	}, deps)
	srv.OnShutdown(hub.CloseAll)

	return &Container{
		AuthService:    authService,
		ChatService:    chatService,
		UserService:    userService,
		MessageService: messageService,
		Hub:            hub,
		Server:         srv,
	}
}

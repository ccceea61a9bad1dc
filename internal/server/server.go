package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomchat/config"
	"roomchat/internal/handler"
	"roomchat/internal/middleware"
	"roomchat/internal/transport/httpdto"
	"roomchat/internal/websocket"
	"roomchat/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
	onShutdown []func()
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Chat    *handler.ChatHandler
	Message *handler.MessageHandler
	User    *handler.UserHandler
	WS      *websocket.Handler
}

// Dependencies are the collaborators the route table needs besides handlers.
type Dependencies struct {
	Tokens  middleware.TokenParser
	Limiter middleware.RateLimiter // nil disables rate limiting
	Health  func(ctx context.Context) error
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.AppPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// Engine exposes the router, mainly for httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// OnShutdown registers fn to run after the HTTP server stopped accepting requests.
func (s *Server) OnShutdown(fn func()) {
	s.onShutdown = append(s.onShutdown, fn)
}

func (s *Server) SetupRoutes(handlers *Handlers, deps Dependencies) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))
	s.engine.Use(middleware.OptionalAuthMiddleware(deps.Tokens, s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if deps.Health != nil {
			if err := deps.Health(c.Request.Context()); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse("storage unavailable", "UNHEALTHY"))
				return
			}
		}
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "healthy"}))
	})

	auth := []gin.HandlerFunc{}
	if deps.Limiter != nil {
		auth = append(auth, middleware.AuthRateLimitMiddleware(deps.Limiter, s.logger))
	}
	s.engine.POST("/register", append(auth, handlers.Auth.Register)...)
	s.engine.POST("/login", append(auth, handlers.Auth.Login)...)

	s.engine.GET("/user/:id", handlers.User.GetByID)

	s.engine.GET("/chats", handlers.Chat.List)
	s.engine.GET("/get_chats", handlers.Chat.List)
	s.engine.POST("/chats", handlers.Chat.Create)
	s.engine.POST("/create_chat", handlers.Chat.Create)
	s.engine.GET("/chat/:id", handlers.Chat.GetByID)

	send := []gin.HandlerFunc{}
	if deps.Limiter != nil {
		send = append(send, middleware.MessageRateLimitMiddleware(deps.Limiter, s.logger))
	}
	s.engine.POST("/send_message", append(send, handlers.Message.Send)...)
	s.engine.POST("/chats/:id/messages", append(send, handlers.Message.SendToChat)...)

	s.engine.GET("/messages", handlers.Message.List)
	s.engine.GET("/chats/:id/messages", handlers.Message.ListByChat)
	s.engine.GET("/get_messages/:id", handlers.Message.ListByChat)

	s.engine.GET("/ws", handlers.WS.Connect)
}

func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if s.logger != nil {
			s.logger.Errorf("Error in starting the server: %s", err)
		}
		return err
	case <-quit:
	}

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	for _, fn := range s.onShutdown {
		fn()
	}
	if err != nil {
		if s.logger != nil {
			s.logger.Errorf("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}

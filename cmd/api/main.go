package main

import (
	"context"
	"fmt"
	"os"

	"roomchat/config"
	"roomchat/internal/bootstrap"
	"roomchat/internal/middleware"
	"roomchat/internal/redis"
	"roomchat/internal/repository"
	"roomchat/pkg/database"
	"roomchat/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	mode := logger.DevelopmentMode
	if cfg.AppMode == "release" {
		mode = logger.ProductionMode
	}
	l := logger.New(mode, cfg.LogFile)
	logger.SetGlobalLogger(l)
	defer l.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = database.Close(db)
	}()
	l.Infof("Database connection established (%s)", cfg.DBDriver)

	if err := repository.InitSchema(db); err != nil {
		return err
	}

	var limiter middleware.RateLimiter
	if cfg.RedisEnabled {
		client, err := redis.NewClient(context.Background(), redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return err
		}
		defer client.Close()
		limits := redis.DefaultRateLimitConfig().WithOverrides(redis.RateLimitConfig{
			MessageLimit:  cfg.MessageRateLimit,
			MessageWindow: cfg.MessageRateWindow,
			AuthLimit:     cfg.AuthRateLimit,
			AuthWindow:    cfg.AuthRateWindow,
		})
		limiter = redis.NewRateLimiter(client, limits)
		l.Infof("Rate limiting enabled: %d messages per %s, %d auth attempts per %s",
			limits.MessageLimit, limits.MessageWindow, limits.AuthLimit, limits.AuthWindow)
	}

	app := bootstrap.NewContainer(db, cfg, l, limiter)
	return app.Server.Start()
}

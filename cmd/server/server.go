package main

import (
	"context"
	"fmt"

	"github.com/Prakul111/vibe-code-project/internal/config"
	"github.com/Prakul111/vibe-code-project/internal/logger"
	"github.com/Prakul111/vibe-code-project/internal/ratelimit"
	"github.com/Prakul111/vibe-code-project/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config, flags config.ServerFlags) (*Server, error) {
	db, err := storage.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if flags.Migrate {
		if err := storage.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info("database schema applied")
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	limitConfig := ratelimit.DefaultConfig()
	limitConfig.Rate = cfg.RateLimit

	limiter, err := ratelimit.NewRedis(limitConfig, redisClient)
	if err != nil {
		redisClient.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		db.Close()
		return nil, err
	}

	logger.Info("rate limiter initialized",
		"enabled", limitConfig.Enabled,
		"rate", limitConfig.Rate,
	)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		db:       db,
		redis:    redisClient,
		config:   cfg,
		services: InitializeServices(db, redisClient, cfg.JobsStream),
		limiter:  limiter,
		router:   router,
	}

	RegisterRoutes(router, server)

	return server, nil
}

// releases the database pool and redis connection
func (s *Server) Close() {
	s.redis.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	s.db.Close()
}

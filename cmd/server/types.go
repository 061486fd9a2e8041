package main

import (
	"github.com/Prakul111/vibe-code-project/internal/config"
	"github.com/Prakul111/vibe-code-project/internal/ratelimit"
	"github.com/Prakul111/vibe-code-project/vibe/messages"
	"github.com/Prakul111/vibe-code-project/vibe/projects"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	redis    *redis.Client
	config   *config.Config
	services *Services
	limiter  *ratelimit.Limiter
	router   *gin.Engine
}

// holds the procedure services behind the REST handlers
type Services struct {
	Projects *projects.Service
	Messages *messages.Service
}

// adapts the redis client to the health checker interface
type redisChecker struct {
	client *redis.Client
}

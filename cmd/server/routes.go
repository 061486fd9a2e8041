package main

import (
	"github.com/Prakul111/vibe-code-project/api/rest/fragments"
	"github.com/Prakul111/vibe-code-project/api/rest/health"
	"github.com/Prakul111/vibe-code-project/api/rest/messages"
	"github.com/Prakul111/vibe-code-project/api/rest/projects"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(RequestLogger())
	router.Use(CORSMiddleware(server.config.AllowedOrigins))

	router.GET("/health", health.Handler(map[string]health.Checker{
		"database": server.db,
		"redis":    redisChecker{client: server.redis},
	}))

	limit := server.limiter.Middleware()

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		projects.RegisterRoutes(v1, server.services.Projects, limit)
		messages.RegisterRoutes(v1, server.services.Messages, limit)
		fragments.RegisterRoutes(v1, server.services.Messages)
	}
}

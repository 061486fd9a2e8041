package main

import (
	"context"

	"github.com/Prakul111/vibe-code-project/internal/jobs"
	"github.com/Prakul111/vibe-code-project/vibe/messages"
	"github.com/Prakul111/vibe-code-project/vibe/projects"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// creates the repositories and services, both procedures share one dispatcher
func InitializeServices(db *pgxpool.Pool, redisClient *redis.Client, stream string) *Services {
	dispatcher := jobs.NewDispatcher(redisClient, stream)

	return &Services{
		Projects: projects.NewService(projects.NewRepository(db), dispatcher),
		Messages: messages.NewService(messages.NewRepository(db), dispatcher),
	}
}

func (r redisChecker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

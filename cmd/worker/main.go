package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Prakul111/vibe-code-project/internal/agent"
	"github.com/Prakul111/vibe-code-project/internal/config"
	"github.com/Prakul111/vibe-code-project/internal/jobs"
	"github.com/Prakul111/vibe-code-project/internal/llm"
	"github.com/Prakul111/vibe-code-project/internal/logger"
	"github.com/Prakul111/vibe-code-project/internal/sandbox"
	"github.com/Prakul111/vibe-code-project/internal/storage"
	"github.com/Prakul111/vibe-code-project/internal/worker"
	"github.com/Prakul111/vibe-code-project/vibe/messages"
	"github.com/redis/go-redis/v9"
)

func main() {
	flags := config.ParseWorkerFlags()

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	sandboxCfg, err := config.LoadSandboxConfig()
	if err != nil {
		logger.Fatal("failed to load sandbox configuration", "error", err)
	}

	logger.Configure(cfg.Environment)
	logger.Info("starting code agent worker", "consumer", flags.Consumer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	initCtx, initCancel := context.WithTimeout(ctx, 30*time.Second)
	defer initCancel()

	db, err := storage.NewPool(initCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()

	if flags.Migrate {
		if err := storage.Migrate(initCtx, db); err != nil {
			logger.Fatal("failed to migrate database", "error", err)
		}
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatal("failed to parse redis url", "error", err)
	}

	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close() //nolint:errcheck // best-effort cleanup on shutdown

	generator, err := llm.NewTextGenerator(initCtx)
	if err != nil {
		logger.Fatal("failed to create text generator", "error", err)
	}

	sandboxes := sandbox.NewClient(sandbox.Config{
		APIKey: sandboxCfg.APIKey,
		APIURL: sandboxCfg.APIURL,
		Domain: sandboxCfg.Domain,
	})

	runner := worker.NewCodeAgentRunner(
		sandboxes,
		agent.New(generator),
		messages.NewRepository(db),
		sandboxCfg.Template,
	)

	consumer := jobs.NewConsumer(redisClient, jobs.ConsumerConfig{
		Stream:   cfg.JobsStream,
		Group:    cfg.JobsGroup,
		Consumer: flags.Consumer,
	})
	runner.Register(consumer)

	initCancel()

	logger.Info("worker ready",
		"model", generator.Model(),
		"stream", cfg.JobsStream,
		"group", cfg.JobsGroup,
		"template", sandboxCfg.Template,
	)

	if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
		logger.ErrorErr(err, "consumer stopped")
		os.Exit(1)
	}

	logger.Info("worker stopped")
}

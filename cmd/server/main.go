package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Prakul111/vibe-code-project/internal/config"
	"github.com/Prakul111/vibe-code-project/internal/logger"
)

// @title Vibe API
// @version 1.0
// @description Projects and messages for the vibe code builder
// @description
// @description Features:
// @description - Create projects from a prompt, named with a random slug
// @description - Conversation messages with generated fragments
// @description - Sandbox preview pages for fragments

// @contact.name API Support
// @contact.url https://github.com/Prakul111/vibe-code-project

// @host localhost:8080

func main() {
	flags := config.ParseServerFlags()

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.Configure(cfg.Environment)
	logger.Info("starting vibe server", "environment", cfg.Environment)

	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	srv, err := NewServer(initCtx, cfg, flags)
	initCancel()
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	srv.Close()

	logger.Info("server stopped")
}

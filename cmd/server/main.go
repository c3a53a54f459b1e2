// Package main implements the entry point for the StudySnap API server,
// which turns uploaded study-material images into summaries, explanations,
// quizzes, and notes through a vision/text generation service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/studysnap/studysnap-api/internal/config"
	"github.com/studysnap/studysnap-api/internal/platform/logger"
)

func main() {
	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		app.logger.Error("Application exited with error", "error", err)
		app.cleanup()
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and builds the
// application with all its dependencies injected.
func initializeApp(ctx context.Context) (*application, error) {
	// A .env file is optional; environment variables win either way.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"store_backend", cfg.Store.Backend,
		"model", cfg.LLM.ModelName)

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return nil, err
	}

	return app, nil
}

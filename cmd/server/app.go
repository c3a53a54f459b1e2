package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/studysnap/studysnap-api/internal/config"
	"github.com/studysnap/studysnap-api/internal/generation"
	"github.com/studysnap/studysnap-api/internal/platform/gemini"
	"github.com/studysnap/studysnap-api/internal/platform/memstore"
	"github.com/studysnap/studysnap-api/internal/platform/postgres"
	"github.com/studysnap/studysnap-api/internal/service"
	"github.com/studysnap/studysnap-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil unless the postgres store backend is configured.
	db *sql.DB

	textStore    store.TextStore
	generator    generation.Generator
	studyService service.StudyService
}

// newApplication creates a new application instance with all dependencies
// initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if err := app.setupTextStore(ctx); err != nil {
		return nil, err
	}

	var err error
	app.generator, err = gemini.NewGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized", "model", cfg.LLM.ModelName)

	app.studyService, err = service.NewStudyService(app.textStore, app.generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create study service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupTextStore initializes the configured content store backend.
func (app *application) setupTextStore(ctx context.Context) error {
	switch app.config.Store.Backend {
	case "postgres":
		db, err := setupDatabase(ctx, app.config.Store.PostgresURL, app.logger)
		if err != nil {
			return fmt.Errorf("failed to set up database: %w", err)
		}

		if err := runMigrations(db, app.logger); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		app.db = db
		app.textStore = postgres.NewTextStore(db, app.logger.With("component", "text_store"))
		app.logger.Info("Content store initialized", "backend", "postgres")

	default:
		textStore, err := memstore.NewTextStore(app.config.Store.Capacity)
		if err != nil {
			return fmt.Errorf("failed to create in-memory store: %w", err)
		}

		app.textStore = textStore
		app.logger.Info("Content store initialized",
			"backend", "memory",
			"capacity", app.config.Store.Capacity)
	}

	return nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}

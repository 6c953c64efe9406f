package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskr-api/internal/config"
	"github.com/phrazzld/taskr-api/internal/events"
	"github.com/phrazzld/taskr-api/internal/platform/metrics"
	"github.com/phrazzld/taskr-api/internal/platform/postgres"
	"github.com/phrazzld/taskr-api/internal/redact"
	"github.com/phrazzld/taskr-api/internal/service"
	"github.com/phrazzld/taskr-api/internal/service/auth"
	"github.com/phrazzld/taskr-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	db      *sql.DB
	metrics *metrics.Registry

	// Stores
	userStore store.UserStore
	taskStore store.TaskStore

	// Services
	jwtService   auth.JWTService
	authService  auth.Service
	authStrategy *auth.JWTStrategy
	taskService  service.TaskService
}

// newApplication wires the stores and services over an open database.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	registry *metrics.Registry,
) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	userStore := postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger)
	taskStore := postgres.NewPostgresTaskStore(db, logger)

	app, err := newApplicationWithStores(cfg, logger, userStore, taskStore, registry)
	if err != nil {
		return nil, err
	}
	app.db = db

	logger.Info("application initialized",
		slog.Int("bcrypt_cost", cfg.Auth.BcryptCost),
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))
	return app, nil
}

// newApplicationWithStores builds the service graph over the given stores.
func newApplicationWithStores(
	cfg *config.Config,
	logger *slog.Logger,
	userStore store.UserStore,
	taskStore store.TaskStore,
	registry *metrics.Registry,
) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if registry == nil {
		registry = metrics.NewRegistry()
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(registry)

	authService, err := auth.NewService(userStore, jwtService, auth.NewBcryptVerifier(), emitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	taskService, err := service.NewTaskService(taskStore, emitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize task service: %w", err)
	}

	return &application{
		config:       cfg,
		logger:       logger,
		metrics:      registry,
		userStore:    userStore,
		taskStore:    taskStore,
		jwtService:   jwtService,
		authService:  authService,
		authStrategy: auth.NewJWTStrategy(jwtService, userStore),
		taskService:  taskService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", redact.ErrorAttr(err))
		}
	}

	app.logger.Info("application shutdown completed")
}

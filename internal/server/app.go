// Package server assembles the application: config, storage, services,
// and the HTTP API.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/akondrashov/stash/internal/logging"
	"github.com/akondrashov/stash/internal/server/config"
	"github.com/akondrashov/stash/internal/server/httpapi"
	"github.com/akondrashov/stash/internal/server/services"
	"github.com/akondrashov/stash/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  storage.Manager
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	store, err := storage.NewManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	users := services.NewUserService(store.Users(), cfg)
	items := services.NewItemService(store.Items())
	srv := httpapi.NewServer(cfg, logger, store, users, items)

	return &App{
		config: cfg,
		logger: logger,
		store:  store,
		server: srv,
	}, nil
}

// Run starts the HTTP server and blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.config.SecretKey == config.DefaultSecretKey {
		a.logger.Warn(ctx, "running with the default signing key, set JWT_SECRET in production")
	}

	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Error(ctx, "closing storage", "error", err.Error())
		}
	}()

	return a.server.Run(ctx)
}

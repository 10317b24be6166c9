// Package httpapi exposes the service over a JSON HTTP API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akondrashov/stash/internal/logging"
	"github.com/akondrashov/stash/internal/server/config"
	"github.com/akondrashov/stash/internal/server/services"
	"github.com/akondrashov/stash/internal/server/storage"
)

const shutdownTimeout = 5 * time.Second

// Server wires the services into a gin router and runs the HTTP listener.
type Server struct {
	config *config.Config
	logger logging.Logger
	store  storage.Manager
	users  *services.UserService
	items  *services.ItemService
	router *gin.Engine
}

func NewServer(cfg *config.Config, logger logging.Logger, store storage.Manager,
	users *services.UserService, items *services.ItemService) *Server {

	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		config: cfg,
		logger: logger,
		store:  store,
		users:  users,
		items:  items,
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	{
		api.POST("/auth/register", s.handleRegister)
		api.POST("/auth/login", s.handleLogin)
		api.GET("/profile", s.authRequired(), s.handleProfile)

		items := api.Group("/items")
		{
			items.GET("", s.handleItemList)
			items.GET("/:id", s.handleItemGet)
			items.POST("", s.authRequired(), s.handleItemCreate)
			items.PUT("/:id", s.authRequired(), s.handleItemUpdate)
			items.DELETE("/:id", s.authRequired(), s.handleItemDelete)
		}
	}

	s.router = router
	return s
}

// Handler exposes the router, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.config.Address,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "http server listening", "address", s.config.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

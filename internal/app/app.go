// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/packlist-service/config"
	"github.com/guttosm/packlist-service/internal/http"
	"github.com/guttosm/packlist-service/internal/middleware"
	"github.com/rs/zerolog/log"
)

// App is the wired service: the router plus the resources released on shutdown.
type App struct {
	Router *gin.Engine

	db          *DatabaseComponents
	auditLogger *middleware.AsyncLogger
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)

	services, err := InitializeServices(cfg, dbComponents)
	if err != nil {
		_ = dbComponents.Close(context.Background())
		return nil, err
	}

	var auditLogger *middleware.AsyncLogger
	if dbComponents != nil {
		auditLogger = middleware.NewAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	routerComponents := InitializeRouter(services, dbComponents, auditLogger, cfg)

	return &App{
		Router:      http.NewRouter(routerComponents.Handlers, routerComponents.HealthHandler, routerComponents.Config),
		db:          dbComponents,
		auditLogger: auditLogger,
	}, nil
}

// Close flushes pending audit entries and disconnects from MongoDB.
func (a *App) Close(ctx context.Context) error {
	if a.auditLogger != nil {
		a.auditLogger.Stop()
		enqueued, dropped, written, failed := a.auditLogger.Stats()
		log.Info().
			Int64("enqueued", enqueued).
			Int64("dropped", dropped).
			Int64("written", written).
			Int64("failed", failed).
			Msg("Audit logger stopped")
	}
	if err := a.db.Close(ctx); err != nil {
		return fmt.Errorf("close mongodb: %w", err)
	}
	return nil
}

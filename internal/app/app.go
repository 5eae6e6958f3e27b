package app

import (
	"log/slog"

	"github.com/thenoetrevino/novi/internal/database"
	lmcpservice "github.com/thenoetrevino/novi/internal/services/lmcp"
	samedayservice "github.com/thenoetrevino/novi/internal/services/sameday"
	stationservice "github.com/thenoetrevino/novi/internal/services/station"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	logger *slog.Logger

	// Service layer (business logic)
	StationService stationservice.Service
	SameDayService samedayservice.Service
	LMCPService    lmcpservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db database.Opener, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		logger:         cfg.logger,
		StationService: stationservice.NewService(db, cfg.logger),
		SameDayService: samedayservice.NewService(db, cfg.logger),
		LMCPService:    lmcpservice.NewService(db, cfg.logger),
	}
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close performs cleanup of application resources.
// Connections are per operation, so there is nothing held open here.
func (a *App) Close() error {
	return nil
}

// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/novi/internal/models"
)

// DataStore defines the unified interface for all data operations needed by
// the services. It is bound to a single connection; Close releases it.
// This interface enables mocking with testify for unit testing.
type DataStore interface {
	// Stations
	CreateStation(ctx context.Context, station models.NewStation) (int64, error)
	GetAllStations(ctx context.Context) ([]*models.Station, error)
	DeleteStation(ctx context.Context, stationCode string) (int64, error)

	// Same-day tasks
	CreateSameDayTask(ctx context.Context, task models.NewSameDayTask) (int64, error)
	GetAllSameDayTasks(ctx context.Context) ([]*models.SameDayTask, error)

	// LMCP tasks
	CreateLMCPTask(ctx context.Context, task models.NewLMCPTask) (int64, error)
	GetAllLMCPTasks(ctx context.Context) ([]*models.LMCPTask, error)

	Close() error
}

package station

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/novi/internal/database"
	"github.com/thenoetrevino/novi/internal/models"
)

// Service defines all station-related business operations
type Service interface {
	// Read operations
	GetStations(ctx context.Context) ([]*models.Station, error)

	// Write operations
	InsertStation(ctx context.Context, stationCode string) (int64, error)
	DeleteStation(ctx context.Context, stationCode string) (int64, error)
}

// service implements Service interface
type service struct {
	db     database.Opener
	logger *slog.Logger
}

// NewService creates a new station service.
// Each operation opens its own connection through db and closes it before returning.
func NewService(db database.Opener, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		db:     db,
		logger: logger,
	}
}

// GetStations retrieves every station in insertion order
func (s *service) GetStations(ctx context.Context) ([]*models.Station, error) {
	var stations []*models.Station
	err := database.WithStore(ctx, s.db, s.logger, func(store database.DataStore) error {
		var err error
		stations, err = store.GetAllStations(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to get stations", "error", err)
		return nil, err
	}
	return stations, nil
}

// InsertStation creates a station and returns the number of rows inserted.
// Store failures (e.g. a duplicate code) are logged and returned unwrapped so
// callers see the store's own message.
func (s *service) InsertStation(ctx context.Context, stationCode string) (int64, error) {
	if stationCode == "" {
		return 0, ErrEmptyStationCode
	}

	var n int64
	err := database.WithStore(ctx, s.db, s.logger, func(store database.DataStore) error {
		var err error
		n, err = store.CreateStation(ctx, models.NewStation{StationCode: stationCode})
		return err
	})
	if err != nil {
		s.logger.Error("Failed to insert station", "station_code", stationCode, "error", err)
		return 0, err
	}

	s.logger.Info(fmt.Sprintf("Inserted %d lines into station table.", n))
	return n, nil
}

// DeleteStation removes a station by code and returns the number of rows
// deleted. An unknown code deletes nothing and is still a success.
func (s *service) DeleteStation(ctx context.Context, stationCode string) (int64, error) {
	var n int64
	err := database.WithStore(ctx, s.db, s.logger, func(store database.DataStore) error {
		var err error
		n, err = store.DeleteStation(ctx, stationCode)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to delete station", "station_code", stationCode, "error", err)
		return 0, err
	}

	s.logger.Info(fmt.Sprintf("Deleted %d lines from station table.", n))
	return n, nil
}

package sameday

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/novi/internal/database"
	"github.com/thenoetrevino/novi/internal/models"
)

// Service defines all same-day task business operations
type Service interface {
	GetAllSameDayTasks(ctx context.Context) ([]*models.SameDayTask, error)
	InsertSameDayTask(ctx context.Context, task models.NewSameDayTask) (int64, error)
}

type service struct {
	db     database.Opener
	logger *slog.Logger
}

// NewService creates a new same-day task service
func NewService(db database.Opener, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{db: db, logger: logger}
}

// GetAllSameDayTasks retrieves every same-day task ordered by ID
func (s *service) GetAllSameDayTasks(ctx context.Context) ([]*models.SameDayTask, error) {
	var tasks []*models.SameDayTask
	err := database.WithStore(ctx, s.db, s.logger, func(store database.DataStore) error {
		var err error
		tasks, err = store.GetAllSameDayTasks(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to get same day tasks", "error", err)
		return nil, err
	}
	return tasks, nil
}

// InsertSameDayTask stores a task and returns its generated ID.
// The station must already exist; the store rejects unknown codes and that
// error is returned as-is.
func (s *service) InsertSameDayTask(ctx context.Context, task models.NewSameDayTask) (int64, error) {
	var id int64
	err := database.WithStore(ctx, s.db, s.logger, func(store database.DataStore) error {
		var err error
		id, err = store.CreateSameDayTask(ctx, task)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to insert same day task", "station_code", task.StationCode, "error", err)
		return 0, err
	}

	s.logger.Info(SuccessMessage, "id", id)
	return id, nil
}

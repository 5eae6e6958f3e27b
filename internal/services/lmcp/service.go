package lmcp

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/novi/internal/database"
	"github.com/thenoetrevino/novi/internal/models"
)

// Service defines all LMCP task business operations
type Service interface {
	GetAllLMCPTasks(ctx context.Context) ([]*models.LMCPTask, error)
	InsertLMCPTask(ctx context.Context, task models.NewLMCPTask) (int64, error)
}

type service struct {
	db     database.Opener
	logger *slog.Logger
}

// NewService creates a new LMCP task service
func NewService(db database.Opener, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{db: db, logger: logger}
}

// GetAllLMCPTasks retrieves every LMCP task ordered by ID
func (s *service) GetAllLMCPTasks(ctx context.Context) ([]*models.LMCPTask, error) {
	var tasks []*models.LMCPTask
	err := database.WithStore(ctx, s.db, s.logger, func(store database.DataStore) error {
		var err error
		tasks, err = store.GetAllLMCPTasks(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to get lmcp tasks", "error", err)
		return nil, err
	}
	return tasks, nil
}

// InsertLMCPTask stores a task and returns its generated ID
func (s *service) InsertLMCPTask(ctx context.Context, task models.NewLMCPTask) (int64, error) {
	var id int64
	err := database.WithStore(ctx, s.db, s.logger, func(store database.DataStore) error {
		var err error
		id, err = store.CreateLMCPTask(ctx, task)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to insert lmcp task", "station_code", task.StationCode, "error", err)
		return 0, err
	}

	s.logger.Info(SuccessMessage, "id", id)
	return id, nil
}

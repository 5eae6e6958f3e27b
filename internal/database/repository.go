package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/novi/internal/models"
)

// Repository provides a unified interface to all data operations over one
// connection. It composes the per-table repositories using struct embedding.
type Repository struct {
	db *sql.DB
	*StationRepo
	*SameDayTaskRepo
	*LMCPTaskRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:              db,
		StationRepo:     &StationRepo{db: db},
		SameDayTaskRepo: &SameDayTaskRepo{db: db},
		LMCPTaskRepo:    &LMCPTaskRepo{db: db},
	}
}

// Close releases the underlying connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Wrapper methods for StationRepo
func (r *Repository) CreateStation(ctx context.Context, station models.NewStation) (int64, error) {
	return r.StationRepo.Create(ctx, station)
}

func (r *Repository) GetAllStations(ctx context.Context) ([]*models.Station, error) {
	return r.StationRepo.GetAll(ctx)
}

func (r *Repository) DeleteStation(ctx context.Context, stationCode string) (int64, error) {
	return r.StationRepo.Delete(ctx, stationCode)
}

// Wrapper methods for SameDayTaskRepo
func (r *Repository) CreateSameDayTask(ctx context.Context, task models.NewSameDayTask) (int64, error) {
	return r.SameDayTaskRepo.Create(ctx, task)
}

func (r *Repository) GetAllSameDayTasks(ctx context.Context) ([]*models.SameDayTask, error) {
	return r.SameDayTaskRepo.GetAll(ctx)
}

// Wrapper methods for LMCPTaskRepo
func (r *Repository) CreateLMCPTask(ctx context.Context, task models.NewLMCPTask) (int64, error) {
	return r.LMCPTaskRepo.Create(ctx, task)
}

func (r *Repository) GetAllLMCPTasks(ctx context.Context) ([]*models.LMCPTask, error) {
	return r.LMCPTaskRepo.GetAll(ctx)
}

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/novi/internal/models"
)

// SameDayTaskRepo handles all same_day_route_task operations.
type SameDayTaskRepo struct {
	db *sql.DB
}

// Create inserts a same-day task and returns its generated ID
func (r *SameDayTaskRepo) Create(ctx context.Context, task models.NewSameDayTask) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO same_day_route_task (
			station_code, start_time, tba_submitted_count, dpo_complete_time, end_time,
			same_day_type, buffer_percent, dpo_link, tba_routed_count, route_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.StationCode,
		task.StartTime,
		task.TbaSubmittedCount,
		task.DpoCompleteTime,
		task.EndTime,
		task.SameDayType,
		task.BufferPercent,
		task.DpoLink,
		task.TbaRoutedCount,
		task.RouteCount,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetAll retrieves every same-day task ordered by ID
func (r *SameDayTaskRepo) GetAll(ctx context.Context) ([]*models.SameDayTask, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, station_code, start_time, tba_submitted_count, dpo_complete_time, end_time,
			same_day_type, buffer_percent, dpo_link, tba_routed_count, route_count
		FROM same_day_route_task
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query same day tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.SameDayTask
	for rows.Next() {
		task := &models.SameDayTask{}
		if err := rows.Scan(
			&task.ID,
			&task.StationCode,
			&task.StartTime,
			&task.TbaSubmittedCount,
			&task.DpoCompleteTime,
			&task.EndTime,
			&task.SameDayType,
			&task.BufferPercent,
			&task.DpoLink,
			&task.TbaRoutedCount,
			&task.RouteCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan same day task: %w", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

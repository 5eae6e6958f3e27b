package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/novi/internal/models"
)

// StationRepo handles all station-related database operations.
type StationRepo struct {
	db *sql.DB
}

// Create inserts a station and returns the number of rows inserted
func (r *StationRepo) Create(ctx context.Context, station models.NewStation) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO station (station_code) VALUES (?)`,
		station.StationCode,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// GetAll retrieves every station in insertion order
func (r *StationRepo) GetAll(ctx context.Context) ([]*models.Station, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT station_code FROM station ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var stations []*models.Station
	for rows.Next() {
		station := &models.Station{}
		if err := rows.Scan(&station.StationCode); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, station)
	}

	return stations, rows.Err()
}

// Delete removes the station with the given code and returns the number of
// rows deleted. Deleting an unknown code is not an error.
func (r *StationRepo) Delete(ctx context.Context, stationCode string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM station WHERE station_code = ?`, stationCode)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

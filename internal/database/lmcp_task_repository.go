package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/novi/internal/models"
)

// LMCPTaskRepo handles all lmcp_task operations.
type LMCPTaskRepo struct {
	db *sql.DB
}

const lmcpColumns = `station_code, ofd_date, ead, current_lmcp, current_atrops, pdr, requested,
	sim_link, value, start_time, export_time, end_time, source, namespace, "type",
	wave_group_name, ship_option_category, address_type, package_type, cluster,
	fulfillment_network_type, volume_type, week, f`

// Create inserts an LMCP task and returns its generated ID
func (r *LMCPTaskRepo) Create(ctx context.Context, task models.NewLMCPTask) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO lmcp_task (`+lmcpColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.StationCode,
		task.OfdDate,
		task.Ead,
		task.CurrentLmcp,
		task.CurrentAtrops,
		task.Pdr,
		task.Requested,
		task.SimLink,
		task.Value,
		task.StartTime,
		task.ExportTime,
		task.EndTime,
		task.Source,
		task.Namespace,
		task.Type,
		task.WaveGroupName,
		task.ShipOptionCategory,
		task.AddressType,
		task.PackageType,
		task.Cluster,
		task.FulfillmentNetworkType,
		task.VolumeType,
		task.Week,
		task.F,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetAll retrieves every LMCP task ordered by ID
func (r *LMCPTaskRepo) GetAll(ctx context.Context) ([]*models.LMCPTask, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, `+lmcpColumns+` FROM lmcp_task ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lmcp tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.LMCPTask
	for rows.Next() {
		task := &models.LMCPTask{}
		if err := rows.Scan(
			&task.ID,
			&task.StationCode,
			&task.OfdDate,
			&task.Ead,
			&task.CurrentLmcp,
			&task.CurrentAtrops,
			&task.Pdr,
			&task.Requested,
			&task.SimLink,
			&task.Value,
			&task.StartTime,
			&task.ExportTime,
			&task.EndTime,
			&task.Source,
			&task.Namespace,
			&task.Type,
			&task.WaveGroupName,
			&task.ShipOptionCategory,
			&task.AddressType,
			&task.PackageType,
			&task.Cluster,
			&task.FulfillmentNetworkType,
			&task.VolumeType,
			&task.Week,
			&task.F,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lmcp task: %w", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paysetu/bbps-account/internal/pkg/models"
	"github.com/paysetu/bbps-account/services/accounts"
)

// FetchDashboard runs the configured aggregation procedure with the client
// id as its sole argument and drains its result sets in order. The first
// set with at least one row becomes the dashboard payload; later sets are
// never consulted. If every set is empty it returns ErrNoDashboardData.
func (r *AccountRepo) FetchDashboard(ctx context.Context, clientID string) ([]models.DashboardRow, error) {
	rows, err := r.db.QueryContext(ctx, r.cfg.Dashboard.Query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to run dashboard aggregation: %w", err)
	}
	defer rows.Close()

	for {
		data, err := scanResultSet(rows)
		if err != nil {
			return nil, err
		}
		if len(data) > 0 {
			return data, nil
		}
		if !rows.NextResultSet() {
			if err := rows.Err(); err != nil {
				return nil, fmt.Errorf("failed to advance result set: %w", err)
			}
			break
		}
	}

	return nil, accounts.ErrNoDashboardData
}

// scanResultSet flattens the current result set into field-name-to-value
// rows. Column names come from the cursor, so the procedure is free to
// return heterogeneous shapes across its result sets.
func scanResultSet(rows *sql.Rows) ([]models.DashboardRow, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result set columns: %w", err)
	}

	var data []models.DashboardRow
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan dashboard row: %w", err)
		}

		row := make(models.DashboardRow, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read result set: %w", err)
	}

	return data, nil
}

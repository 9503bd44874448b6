// filepath: internal/repository/utils.go
package repository

import (
	"database/sql"
	"fmt"

	"focusboard/internal/models"
	"focusboard/internal/shared"
)

// scanRecord scans the current row into a Record, applying the from-storage
// conversion to every column.
func scanRecord(rows *sql.Rows) (models.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	// Create slices to hold the pointers to the scanned data.
	values := make([]interface{}, len(columns))
	valuePtrs := make([]interface{}, len(columns))
	for i := range columns {
		valuePtrs[i] = &values[i]
	}

	if err := rows.Scan(valuePtrs...); err != nil {
		return nil, err
	}

	record := make(models.Record, len(columns))
	for i, col := range columns {
		val := values[i]
		// Convert byte slices (TEXT columns) to strings for easier handling.
		if b, ok := val.([]byte); ok {
			val = string(b)
		}
		record[col] = FromStorage(col, val)
	}

	return record, nil
}

// checkNames rejects identifiers that cannot be interpolated into SQL as-is.
func checkNames(table string, columns ...string) error {
	if !shared.IsSafeName(table) {
		return fmt.Errorf("table %q: %w", table, shared.ErrInvalidName)
	}
	for _, col := range columns {
		if !shared.IsSafeName(col) {
			return fmt.Errorf("column %q of %s: %w", col, table, shared.ErrInvalidName)
		}
	}
	return nil
}

// filepath: internal/repository/query_repo.go
package repository

import (
	"context"
	"fmt"

	"focusboard/internal/models"

	"github.com/Masterminds/squirrel"
)

// Query selects rows for GetAll.
//
// Filters are equality predicates joined with AND; values are bound, never
// interpolated. OrderBy is appended verbatim as the ORDER BY clause and must
// only ever come from code, not from user input.
type Query struct {
	Filters models.Record
	OrderBy string
}

// GetAll returns every row of table matching q.Filters, optionally ordered.
func (s *Repository) GetAll(ctx context.Context, table string, q Query) ([]models.Record, error) {
	if err := checkNames(table, q.Filters.Keys()...); err != nil {
		return nil, err
	}
	if err := s.Connect(ctx); err != nil {
		return nil, err
	}

	sb := applyFilters(s.Builder.Select("*").From(table).Where("1=1"), q.Filters)
	if q.OrderBy != "" {
		sb = sb.OrderBy(q.OrderBy)
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select from %s: %w", table, err)
	}
	s.Logger.Debugf("Generated SQL for GetAll: %s", query)
	s.Logger.Debugf("Arguments: %v", args)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		s.Logger.Errorf("Error executing GetAll on %s: %v", table, err)
		return nil, fmt.Errorf("select from %s: %w", table, err)
	}
	defer rows.Close()

	// Initialize an empty, non-nil slice to ensure JSON marshals to [] instead of null.
	records := make([]models.Record, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			s.Logger.Errorf("Error scanning row of %s: %v", table, err)
			return nil, err
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		s.Logger.Errorf("Error during rows iteration: %v", err)
		return nil, err
	}

	return records, nil
}

// Count returns the number of rows of table matching filters.
func (s *Repository) Count(ctx context.Context, table string, filters models.Record) (int, error) {
	if err := checkNames(table, filters.Keys()...); err != nil {
		return 0, err
	}
	if err := s.Connect(ctx); err != nil {
		return 0, err
	}

	query, args, err := applyFilters(s.Builder.Select("COUNT(*)").From(table).Where("1=1"), filters).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count of %s: %w", table, err)
	}
	s.Logger.Debugf("Generated SQL for Count: %s", query)
	s.Logger.Debugf("Arguments: %v", args)

	var n int
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		s.Logger.Errorf("Error executing Count on %s: %v", table, err)
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// applyFilters appends "AND key = ?" per filter, in key order. Values go
// through ToStorage, so booleans compare as 0/1.
func applyFilters(sb squirrel.SelectBuilder, filters models.Record) squirrel.SelectBuilder {
	for _, k := range filters.Keys() {
		sb = sb.Where(k+" = ?", ToStorage(filters[k]))
	}
	return sb
}

// filepath: internal/repository/record_repo.go
package repository

import (
	"context"
	"fmt"

	"focusboard/internal/models"
)

// Create inserts data into table and returns the stored row, read back by its
// "id" field. When data has no "id" field the submitted values are returned in
// their storage form instead, so column defaults are not reflected.
func (s *Repository) Create(ctx context.Context, table string, data models.Record) (models.Record, error) {
	keys := data.Keys()
	if err := checkNames(table, keys...); err != nil {
		return nil, err
	}
	if err := s.Connect(ctx); err != nil {
		return nil, err
	}

	values := make([]interface{}, len(keys))
	for i, k := range keys {
		values[i] = ToStorage(data[k])
	}

	query, args, err := s.Builder.Insert(table).Columns(keys...).Values(values...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert into %s: %w", table, err)
	}
	s.Logger.Debugf("Generated SQL for Create: %s", query)
	s.Logger.Debugf("Arguments: %v", args)

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		s.Logger.Errorf("Error executing Create on %s: %v", table, err)
		return nil, fmt.Errorf("insert into %s: %w", table, err)
	}

	submitted := make(models.Record, len(keys))
	for i, k := range keys {
		submitted[k] = plainValue(values[i])
	}

	id, ok := data["id"]
	if !ok {
		return submitted, nil
	}
	record, found, err := s.getBy(ctx, table, "id", ToStorage(id))
	if err != nil {
		return nil, err
	}
	if !found {
		return submitted, nil
	}
	return record, nil
}

// Get returns the row of table whose id column equals id. found is false, with
// a nil error, when there is no such row.
func (s *Repository) Get(ctx context.Context, table, id string, opts ...LookupOption) (record models.Record, found bool, err error) {
	l := resolveLookup(opts)
	if err := checkNames(table, l.idColumn); err != nil {
		return nil, false, err
	}
	return s.getBy(ctx, table, l.idColumn, id)
}

func (s *Repository) getBy(ctx context.Context, table, idColumn string, id interface{}) (models.Record, bool, error) {
	if err := s.Connect(ctx); err != nil {
		return nil, false, err
	}

	query, args, err := s.Builder.Select("*").From(table).Where(idColumn+" = ?", id).ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build select from %s: %w", table, err)
	}
	s.Logger.Debugf("Generated SQL for Get: %s", query)
	s.Logger.Debugf("Arguments: %v", args)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		s.Logger.Errorf("Error executing Get on %s: %v", table, err)
		return nil, false, fmt.Errorf("select from %s: %w", table, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, false, fmt.Errorf("select from %s: %w", table, err)
		}
		return nil, false, nil
	}
	record, err := scanRecord(rows)
	if err != nil {
		s.Logger.Errorf("Error scanning row of %s: %v", table, err)
		return nil, false, err
	}
	return record, true, nil
}

// Update sets every field of data except the id column on the addressed row
// and returns the row as stored afterwards. If the row has an updated_at
// column it is set to the current time, overriding any value in data.
// found is false, and nothing is written, when the row does not exist.
func (s *Repository) Update(ctx context.Context, table, id string, data models.Record, opts ...LookupOption) (record models.Record, found bool, err error) {
	l := resolveLookup(opts)
	keys := data.Keys()
	if err := checkNames(table, append(keys, l.idColumn)...); err != nil {
		return nil, false, err
	}

	existing, found, err := s.getBy(ctx, table, l.idColumn, id)
	if err != nil || !found {
		return nil, false, err
	}

	_, stamp := existing["updated_at"]

	ub := s.Builder.Update(table)
	assignments := 0
	for _, k := range keys {
		if k == l.idColumn || (stamp && k == "updated_at") {
			continue
		}
		ub = ub.Set(k, ToStorage(data[k]))
		assignments++
	}
	if stamp {
		ub = ub.Set("updated_at", ToStorage(models.Time(s.now())))
		assignments++
	}
	if assignments == 0 {
		s.Logger.Debugf("Update on %s: nothing to set for %s = %s", table, l.idColumn, id)
		return existing, true, nil
	}

	query, args, err := ub.Where(l.idColumn+" = ?", id).ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build update of %s: %w", table, err)
	}
	s.Logger.Debugf("Generated SQL for Update: %s", query)
	s.Logger.Debugf("Arguments: %v", args)

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		s.Logger.Errorf("Error executing Update on %s: %v", table, err)
		return nil, false, fmt.Errorf("update %s: %w", table, err)
	}

	return s.getBy(ctx, table, l.idColumn, id)
}

// Delete removes the addressed row. It returns false, without writing, when
// the row does not exist. Rows referencing it through a registered foreign
// key are removed by the cascade.
func (s *Repository) Delete(ctx context.Context, table, id string, opts ...LookupOption) (bool, error) {
	l := resolveLookup(opts)
	if err := checkNames(table, l.idColumn); err != nil {
		return false, err
	}

	_, found, err := s.getBy(ctx, table, l.idColumn, id)
	if err != nil || !found {
		return false, err
	}

	query, args, err := s.Builder.Delete(table).Where(l.idColumn+" = ?", id).ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete from %s: %w", table, err)
	}
	s.Logger.Debugf("Generated SQL for Delete: %s", query)
	s.Logger.Debugf("Arguments: %v", args)

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		s.Logger.Errorf("Error executing Delete on %s: %v", table, err)
		return false, fmt.Errorf("delete from %s: %w", table, err)
	}
	return true, nil
}

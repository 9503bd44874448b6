// Package schema holds the declarative description of a table: its columns,
// primary key, foreign keys and single-column indexes.
//
// A TableSchema is plain data. It performs no validation when built; the
// repository that turns it into DDL decides what it accepts.
package schema

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultPrimaryKey is used when no primary key option is given.
const DefaultPrimaryKey = "id"

// Column is one column name with its raw type and constraint clause,
// e.g. {"title", "TEXT NOT NULL"}.
type Column struct {
	Name   string
	Clause string
}

// ForeignKey links Column to References, e.g. {"task_id", "tasks(id)"}.
// The generated constraint always cascades on delete.
type ForeignKey struct {
	Column     string
	References string
}

// TableSchema is immutable once built.
type TableSchema struct {
	name        string
	columns     *orderedmap.OrderedMap[string, string]
	primaryKey  string
	foreignKeys []ForeignKey
	indexes     []string
}

// Option customizes a TableSchema at construction.
type Option func(*TableSchema)

// WithPrimaryKey overrides the primary key column name.
func WithPrimaryKey(column string) Option {
	return func(s *TableSchema) {
		s.primaryKey = column
	}
}

// WithForeignKeys appends foreign key declarations.
func WithForeignKeys(fks ...ForeignKey) Option {
	return func(s *TableSchema) {
		s.foreignKeys = append(s.foreignKeys, fks...)
	}
}

// WithIndexes appends single-column index declarations.
func WithIndexes(columns ...string) Option {
	return func(s *TableSchema) {
		s.indexes = append(s.indexes, columns...)
	}
}

// NewTableSchema builds a schema. Column order is kept as given; a repeated
// column name keeps its first position and takes the last clause.
func NewTableSchema(name string, columns []Column, opts ...Option) *TableSchema {
	s := &TableSchema{
		name:       name,
		columns:    orderedmap.New[string, string](),
		primaryKey: DefaultPrimaryKey,
	}
	for _, c := range columns {
		s.columns.Set(c.Name, c.Clause)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the table name.
func (s *TableSchema) Name() string { return s.name }

// PrimaryKey returns the primary key column name.
func (s *TableSchema) PrimaryKey() string { return s.primaryKey }

// Columns returns a copy of the columns in declared order.
func (s *TableSchema) Columns() []Column {
	out := make([]Column, 0, s.columns.Len())
	for pair := s.columns.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Column{Name: pair.Key, Clause: pair.Value})
	}
	return out
}

// Column returns the clause declared for name.
func (s *TableSchema) Column(name string) (string, bool) {
	return s.columns.Get(name)
}

// HasColumn reports whether name is a declared column.
func (s *TableSchema) HasColumn(name string) bool {
	_, ok := s.columns.Get(name)
	return ok
}

// ForeignKeys returns a copy of the foreign key declarations.
func (s *TableSchema) ForeignKeys() []ForeignKey {
	out := make([]ForeignKey, len(s.foreignKeys))
	copy(out, s.foreignKeys)
	return out
}

// Indexes returns a copy of the indexed column names.
func (s *TableSchema) Indexes() []string {
	out := make([]string, len(s.indexes))
	copy(out, s.indexes)
	return out
}

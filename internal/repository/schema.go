// filepath: internal/repository/schema.go
package repository

import (
	"context"
	"fmt"
	"strings"

	"focusboard/internal/schema"

	"github.com/sirupsen/logrus"
)

// Initialize creates every registered table and its indexes if they do not
// exist yet. Statements run one by one; if one fails, the error is returned and
// the tables created before it stay in place.
func (s *Repository) Initialize(ctx context.Context) error {
	if err := s.Connect(ctx); err != nil {
		return err
	}

	for _, ts := range s.schemas {
		if err := validateTableSchema(ts); err != nil {
			return err
		}

		query := createTableSQL(ts)
		s.Logger.Debugf("Generated SQL for Initialize: %s", query)
		if _, err := s.DB.ExecContext(ctx, query); err != nil {
			s.Logger.Errorf("Error creating table %s: %v", ts.Name(), err)
			return fmt.Errorf("create table %s: %w", ts.Name(), err)
		}

		for _, col := range ts.Indexes() {
			indexQuery := createIndexSQL(ts.Name(), col)
			s.Logger.Debugf("Generated SQL for Initialize: %s", indexQuery)
			if _, err := s.DB.ExecContext(ctx, indexQuery); err != nil {
				s.Logger.Errorf("Error creating index %s: %v", indexName(ts.Name(), col), err)
				return fmt.Errorf("create index %s: %w", indexName(ts.Name(), col), err)
			}
		}
	}

	s.Logger.WithFields(logrus.Fields{"tables": len(s.schemas)}).Info("Database initialized")
	return nil
}

// validateTableSchema checks every identifier that ends up unquoted in DDL.
// Column clauses and foreign key targets are caller-trusted text.
func validateTableSchema(ts *schema.TableSchema) error {
	names := []string{ts.PrimaryKey()}
	for _, c := range ts.Columns() {
		names = append(names, c.Name)
	}
	for _, fk := range ts.ForeignKeys() {
		names = append(names, fk.Column)
	}
	names = append(names, ts.Indexes()...)
	return checkNames(ts.Name(), names...)
}

// createTableSQL renders CREATE TABLE IF NOT EXISTS for ts. A primary key that
// is not a declared column is synthesized as the first TEXT column.
func createTableSQL(ts *schema.TableSchema) string {
	pk := ts.PrimaryKey()
	defs := []string{}

	if !ts.HasColumn(pk) {
		defs = append(defs, fmt.Sprintf("%s TEXT PRIMARY KEY", pk))
	}

	for _, c := range ts.Columns() {
		clause := c.Clause
		if c.Name == pk && !strings.Contains(strings.ToUpper(clause), "PRIMARY KEY") {
			clause = strings.TrimSpace(clause + " PRIMARY KEY")
		}
		defs = append(defs, fmt.Sprintf("%s %s", c.Name, clause))
	}

	for _, fk := range ts.ForeignKeys() {
		defs = append(defs, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s ON DELETE CASCADE", fk.Column, fk.References))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", ts.Name(), strings.Join(defs, ", "))
}

func indexName(table, column string) string {
	return fmt.Sprintf("idx_%s_%s", table, column)
}

func createIndexSQL(table, column string) string {
	return fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s(%s)", indexName(table, column), table, column)
}

// filepath: internal/repository/repository.go
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"focusboard/internal/logging"
	"focusboard/internal/schema"
	"focusboard/internal/sqlite"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
)

// Repository is the generic, schema-driven persistence engine. It owns a single
// connection to one SQLite file and serves CRUD calls keyed by table name.
//
// A Repository does no locking of its own; callers serialize its use.
type Repository struct {
	DB      *sql.DB
	Builder squirrel.StatementBuilderType // SQL Query Builder
	Logger  *logrus.Logger

	path    string
	schemas map[string]*schema.TableSchema
	now     func() time.Time
}

// NewRepository prepares a repository for the database file at path.
// No connection is opened until Connect or the first operation.
func NewRepository(path string, logger *logrus.Logger) *Repository {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Repository{
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		Logger:  logger,
		path:    path,
		schemas: make(map[string]*schema.TableSchema),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Path returns the database file path.
func (s *Repository) Path() string { return s.path }

// Connect opens the database if it is not open yet and turns on foreign key
// enforcement for the connection.
func (s *Repository) Connect(ctx context.Context) error {
	if s.DB != nil {
		return nil
	}

	db, err := sqlite.Open(s.path)
	if err != nil {
		return fmt.Errorf("open database %s: %w", s.path, err)
	}
	// one physical connection for the lifetime of the repository
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("enable foreign keys on %s: %w", s.path, err)
	}

	s.DB = db
	s.Logger.WithFields(logrus.Fields{"path": s.path, "driver": sqlite.DriverType()}).Info("Connected to database")
	return nil
}

// Disconnect closes the connection if one is open. A later call reconnects.
func (s *Repository) Disconnect() error {
	if s.DB == nil {
		return nil
	}
	err := s.DB.Close()
	s.DB = nil
	s.Logger.WithField("path", s.path).Info("Disconnected from database")
	return err
}

// Close is Disconnect.
func (s *Repository) Close() error {
	return s.Disconnect()
}

// RegisterTableSchema adds ts to the registry, replacing any schema with the
// same table name. Tables that already exist are not altered.
func (s *Repository) RegisterTableSchema(ts *schema.TableSchema) {
	if _, exists := s.schemas[ts.Name()]; exists {
		s.Logger.Debugf("RegisterTableSchema: replacing schema for '%s'", ts.Name())
	}
	s.schemas[ts.Name()] = ts
}

// Schema returns the registered schema for table.
func (s *Repository) Schema(table string) (*schema.TableSchema, bool) {
	ts, ok := s.schemas[table]
	return ts, ok
}

// Tables returns the registered table names, sorted.
func (s *Repository) Tables() []string {
	names := make([]string, 0, len(s.schemas))
	for name := range s.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupOption changes how a single row is addressed.
type LookupOption func(*lookup)

type lookup struct {
	idColumn string
}

// ByColumn addresses rows by column instead of "id".
func ByColumn(column string) LookupOption {
	return func(l *lookup) {
		l.idColumn = column
	}
}

func resolveLookup(opts []LookupOption) lookup {
	l := lookup{idColumn: schema.DefaultPrimaryKey}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

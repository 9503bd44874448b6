// filepath: internal/repository/migrate.go
package repository

import (
	"context"
	"fmt"

	"focusboard/internal/db/migrations"
	"focusboard/internal/shared"

	"github.com/pressly/goose/v3"
)

// Migrate runs a goose command ("up", "down" or "status") against the embedded
// migrations. Migrations alter catalog tables, so Initialize must run first.
func (s *Repository) Migrate(ctx context.Context, command string) error {
	if err := s.prepareGoose(ctx); err != nil {
		return err
	}

	// The 'internal/db/migrations' directory is embedded, so we pass "."
	// to tell goose to look at the root of the embedded FS.
	dir := "."

	s.Logger.Infof("Running migration command: %s", command)

	var gooseErr error
	switch command {
	case "up":
		gooseErr = goose.UpContext(ctx, s.DB, dir)
	case "down":
		gooseErr = goose.DownContext(ctx, s.DB, dir)
	case "status":
		gooseErr = goose.StatusContext(ctx, s.DB, dir)
	default:
		return fmt.Errorf("%w: %s", shared.ErrUnknownMigration, command)
	}

	if gooseErr != nil {
		return fmt.Errorf("migration failed: %w", gooseErr)
	}

	s.Logger.Info("Migration operation completed successfully.")
	return nil
}

// MigrationVersion returns the current goose version, creating the version
// table if needed.
func (s *Repository) MigrationVersion(ctx context.Context) (int64, error) {
	if err := s.prepareGoose(ctx); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, s.DB)
}

func (s *Repository) prepareGoose(ctx context.Context) error {
	if err := s.Connect(ctx); err != nil {
		return err
	}
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(s.Logger)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// LatestMigration returns the highest embedded migration version.
func (s *Repository) LatestMigration() (int64, error) {
	goose.SetBaseFS(migrations.FS)
	ms, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	if err != nil {
		return 0, fmt.Errorf("collect migrations: %w", err)
	}
	last, err := ms.Last()
	if err != nil {
		return 0, nil
	}
	return last.Version, nil
}

// ValidateSchema fails with shared.ErrSchemaOutdated while embedded migrations
// are still pending.
func (s *Repository) ValidateSchema(ctx context.Context) error {
	current, err := s.MigrationVersion(ctx)
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}
	latest, err := s.LatestMigration()
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("%w: version %d, latest is %d; run 'migrate up'", shared.ErrSchemaOutdated, current, latest)
	}
	return nil
}

// EnsureSchema creates the registered tables and applies pending migrations.
func (s *Repository) EnsureSchema(ctx context.Context) error {
	if err := s.Initialize(ctx); err != nil {
		return err
	}
	if err := s.ValidateSchema(ctx); err == nil {
		return nil
	}
	s.Logger.Info("Database schema is behind, applying migrations")
	return s.Migrate(ctx, "up")
}

// filepath: internal/repository/schema_test.go
package repository

import (
	"context"
	"errors"
	"testing"

	"focusboard/internal/schema"
	"focusboard/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTableSQL(t *testing.T) {
	tests := []struct {
		name     string
		schema   *schema.TableSchema
		expected string
	}{
		{
			name:     "declared primary key",
			schema:   widgetsSchema(),
			expected: "CREATE TABLE IF NOT EXISTS widgets (id TEXT PRIMARY KEY, name TEXT NOT NULL, active INTEGER)",
		},
		{
			name: "synthesized primary key comes first",
			schema: schema.NewTableSchema("habits", []schema.Column{
				{Name: "name", Clause: "TEXT NOT NULL"},
			}),
			expected: "CREATE TABLE IF NOT EXISTS habits (id TEXT PRIMARY KEY, name TEXT NOT NULL)",
		},
		{
			name: "primary key clause appended",
			schema: schema.NewTableSchema("rewards", []schema.Column{
				{Name: "title", Clause: "TEXT"},
				{Name: "code", Clause: "TEXT NOT NULL"},
			}, schema.WithPrimaryKey("code")),
			expected: "CREATE TABLE IF NOT EXISTS rewards (title TEXT, code TEXT NOT NULL PRIMARY KEY)",
		},
		{
			name: "primary key clause kept when present in any case",
			schema: schema.NewTableSchema("rewards", []schema.Column{
				{Name: "id", Clause: "integer primary key"},
			}),
			expected: "CREATE TABLE IF NOT EXISTS rewards (id integer primary key)",
		},
		{
			name: "custom synthesized key",
			schema: schema.NewTableSchema("progress", []schema.Column{
				{Name: "points", Clause: "REAL"},
			}, schema.WithPrimaryKey("user_id")),
			expected: "CREATE TABLE IF NOT EXISTS progress (user_id TEXT PRIMARY KEY, points REAL)",
		},
		{
			name: "foreign keys after columns",
			schema: schema.NewTableSchema("subtasks", []schema.Column{
				{Name: "id", Clause: "TEXT PRIMARY KEY"},
				{Name: "task_id", Clause: "TEXT NOT NULL"},
			}, schema.WithForeignKeys(schema.ForeignKey{Column: "task_id", References: "tasks(id)"})),
			expected: "CREATE TABLE IF NOT EXISTS subtasks (id TEXT PRIMARY KEY, task_id TEXT NOT NULL, " +
				"FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, createTableSQL(tc.schema))
		})
	}
}

func TestCreateIndexSQL(t *testing.T) {
	assert.Equal(t, "CREATE INDEX IF NOT EXISTS idx_subtasks_task_id ON subtasks(task_id)", createIndexSQL("subtasks", "task_id"))
}

func TestInitializeCreatesTablesAndIndexes(t *testing.T) {
	parent := schema.NewTableSchema("tasks", []schema.Column{
		{Name: "title", Clause: "TEXT NOT NULL"},
	}, schema.WithIndexes("title"))
	child := schema.NewTableSchema("subtasks", []schema.Column{
		{Name: "task_id", Clause: "TEXT NOT NULL"},
	},
		schema.WithForeignKeys(schema.ForeignKey{Column: "task_id", References: "tasks(id)"}),
		schema.WithIndexes("task_id"),
	)

	repo, cleanup := setupTestDB(t, child, parent)
	defer cleanup()

	for _, name := range []string{"tasks", "subtasks"} {
		assert.Equal(t, 1, countMaster(t, repo, "table", name), "table %s", name)
	}
	assert.Equal(t, 1, countMaster(t, repo, "index", "idx_tasks_title"))
	assert.Equal(t, 1, countMaster(t, repo, "index", "idx_subtasks_task_id"))
}

func TestInitializeIsIdempotent(t *testing.T) {
	ts := schema.NewTableSchema("tasks", []schema.Column{
		{Name: "title", Clause: "TEXT NOT NULL"},
	}, schema.WithIndexes("title"))

	repo, cleanup := setupTestDB(t, ts)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, repo.Initialize(ctx))
	require.NoError(t, repo.Initialize(ctx))

	assert.Equal(t, 1, countMaster(t, repo, "table", "tasks"))
	assert.Equal(t, 1, countMaster(t, repo, "index", "idx_tasks_title"))
}

func TestInitializeMalformedClause(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	repo.RegisterTableSchema(schema.NewTableSchema("broken", []schema.Column{
		{Name: "title", Clause: "TEXT NOT NULL DEFAULT ("},
	}))

	err := repo.Initialize(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "create table broken")
}

func TestInitializeRejectsUnsafeIdentifiers(t *testing.T) {
	tests := []*schema.TableSchema{
		schema.NewTableSchema("bad table", nil),
		schema.NewTableSchema("", nil),
		schema.NewTableSchema("ok", []schema.Column{{Name: "x; DROP TABLE ok", Clause: "TEXT"}}),
		schema.NewTableSchema("ok", nil, schema.WithIndexes("a-b")),
		schema.NewTableSchema("ok", nil, schema.WithPrimaryKey("")),
		schema.NewTableSchema("ok", nil, schema.WithForeignKeys(schema.ForeignKey{Column: "1x", References: "t(id)"})),
	}

	for _, ts := range tests {
		repo, cleanup := setupTestDB(t)
		repo.RegisterTableSchema(ts)
		err := repo.Initialize(context.Background())
		assert.True(t, errors.Is(err, shared.ErrInvalidName), "schema %q: got %v", ts.Name(), err)
		cleanup()
	}
}

func TestInitializeWithoutSchemas(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Initialize(context.Background()))
	assert.NotNil(t, repo.DB)
}

func countMaster(t *testing.T, repo *Repository, kind, name string) int {
	t.Helper()
	var n int
	err := repo.DB.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = ? AND name = ?", kind, name).Scan(&n)
	require.NoError(t, err)
	return n
}

// Package catalog declares the application's tables.
//
// Columns added after a table first shipped are not declared here; they are
// added by the goose migrations in internal/db/migrations.
package catalog

import (
	"focusboard/internal/schema"
)

// Table names.
const (
	Tasks            = "tasks"
	Subtasks         = "subtasks"
	Habits           = "habits"
	HabitCompletions = "habit_completions"
	Rewards          = "rewards"
	Progress         = "progress"
)

// ProgressKey is the primary key column of the progress table.
const ProgressKey = "user_id"

// Registrar accepts table schemas.
type Registrar interface {
	RegisterTableSchema(ts *schema.TableSchema)
}

// Register registers every catalog table with r.
func Register(r Registrar) {
	for _, ts := range Schemas() {
		r.RegisterTableSchema(ts)
	}
}

// Schemas returns fresh schemas for every catalog table.
func Schemas() []*schema.TableSchema {
	return []*schema.TableSchema{
		TaskSchema(),
		SubtaskSchema(),
		HabitSchema(),
		HabitCompletionSchema(),
		RewardSchema(),
		ProgressSchema(),
	}
}

func TaskSchema() *schema.TableSchema {
	return schema.NewTableSchema(Tasks, []schema.Column{
		{Name: "id", Clause: "TEXT PRIMARY KEY"},
		{Name: "title", Clause: "TEXT NOT NULL"},
		{Name: "description", Clause: "TEXT NOT NULL DEFAULT ''"},
		{Name: "urgent", Clause: "INTEGER NOT NULL DEFAULT 0"},
		{Name: "important", Clause: "INTEGER NOT NULL DEFAULT 0"},
		{Name: "completed", Clause: "INTEGER NOT NULL DEFAULT 0"},
		{Name: "due_date", Clause: "TEXT"},
		{Name: "created_at", Clause: "TEXT NOT NULL"},
		{Name: "updated_at", Clause: "TEXT NOT NULL"},
		{Name: "completed_at", Clause: "TEXT"},
	}, schema.WithIndexes("completed", "due_date"))
}

func SubtaskSchema() *schema.TableSchema {
	return schema.NewTableSchema(Subtasks, []schema.Column{
		{Name: "id", Clause: "TEXT PRIMARY KEY"},
		{Name: "task_id", Clause: "TEXT NOT NULL"},
		{Name: "title", Clause: "TEXT NOT NULL"},
		{Name: "completed", Clause: "INTEGER NOT NULL DEFAULT 0"},
		{Name: "created_at", Clause: "TEXT NOT NULL"},
		{Name: "updated_at", Clause: "TEXT NOT NULL"},
	},
		schema.WithForeignKeys(schema.ForeignKey{Column: "task_id", References: "tasks(id)"}),
		schema.WithIndexes("task_id"),
	)
}

func HabitSchema() *schema.TableSchema {
	return schema.NewTableSchema(Habits, []schema.Column{
		{Name: "name", Clause: "TEXT NOT NULL"},
		{Name: "description", Clause: "TEXT NOT NULL DEFAULT ''"},
		{Name: "frequency", Clause: "TEXT NOT NULL DEFAULT 'daily'"},
		{Name: "current_streak", Clause: "INTEGER NOT NULL DEFAULT 0"},
		{Name: "best_streak", Clause: "INTEGER NOT NULL DEFAULT 0"},
		{Name: "created_at", Clause: "TEXT NOT NULL"},
		{Name: "updated_at", Clause: "TEXT NOT NULL"},
	})
}

func HabitCompletionSchema() *schema.TableSchema {
	return schema.NewTableSchema(HabitCompletions, []schema.Column{
		{Name: "habit_id", Clause: "TEXT NOT NULL"},
		{Name: "completed_at", Clause: "TEXT NOT NULL"},
		{Name: "note", Clause: "TEXT"},
	},
		schema.WithForeignKeys(schema.ForeignKey{Column: "habit_id", References: "habits(id)"}),
		schema.WithIndexes("habit_id", "completed_at"),
	)
}

func RewardSchema() *schema.TableSchema {
	return schema.NewTableSchema(Rewards, []schema.Column{
		{Name: "id", Clause: "TEXT"},
		{Name: "title", Clause: "TEXT NOT NULL"},
		{Name: "cost", Clause: "INTEGER NOT NULL"},
		{Name: "claimed", Clause: "INTEGER NOT NULL DEFAULT 0"},
		{Name: "created_at", Clause: "TEXT NOT NULL"},
		{Name: "claimed_at", Clause: "TEXT"},
	})
}

func ProgressSchema() *schema.TableSchema {
	return schema.NewTableSchema(Progress, []schema.Column{
		{Name: "points", Clause: "REAL NOT NULL DEFAULT 0"},
		{Name: "level", Clause: "INTEGER NOT NULL DEFAULT 1"},
		{Name: "updated_at", Clause: "TEXT NOT NULL"},
	}, schema.WithPrimaryKey(ProgressKey))
}

// DefaultTaskOrder is the task listing order used when none is configured.
const DefaultTaskOrder = "created"

// TaskOrders maps the configurable order names to their ORDER BY clauses.
// Only these clauses ever reach the repository.
var TaskOrders = map[string]string{
	"created":  "created_at DESC",
	"due":      "due_date IS NULL, due_date ASC, created_at DESC",
	"priority": "urgent DESC, important DESC, created_at DESC",
}

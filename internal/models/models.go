// filepath: internal/models/models.go
// Package models contains the core data structures for the application:
// the Value/Record types the repository speaks and the domain structs the
// services map them to.
package models

import (
	"time"
)

// Task is a to-do item. Urgent and Important place it in a priority quadrant,
// which is decided by the caller.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Urgent      bool       `json:"urgent"`
	Important   bool       `json:"important"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TaskCreatePayload is the input for creating a task.
type TaskCreatePayload struct {
	Title       string
	Description string
	Urgent      bool
	Important   bool
	DueDate     *time.Time
	Tags        []string
}

// TaskFilter narrows a task listing. Nil fields are not filtered on.
type TaskFilter struct {
	Completed *bool
	Urgent    *bool
	Important *bool
}

// Subtask belongs to a task and is removed with it.
type Subtask struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Progress holds the accumulated points of one user. Level is stored as-is;
// deriving it from points is left to the caller.
type Progress struct {
	UserID    string    `json:"user_id"`
	Points    float64   `json:"points"`
	Level     int64     `json:"level"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableStats is a row count for one registered table.
type TableStats struct {
	Table string `json:"table"`
	Rows  int    `json:"rows"`
}

// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"focusboard/internal/models"
	"focusboard/internal/repository"
)

// Store is the part of the repository the services depend on.
type Store interface {
	Create(ctx context.Context, table string, data models.Record) (models.Record, error)
	Get(ctx context.Context, table, id string, opts ...repository.LookupOption) (models.Record, bool, error)
	GetAll(ctx context.Context, table string, q repository.Query) ([]models.Record, error)
	Update(ctx context.Context, table, id string, data models.Record, opts ...repository.LookupOption) (models.Record, bool, error)
	Delete(ctx context.Context, table, id string, opts ...repository.LookupOption) (bool, error)
	Count(ctx context.Context, table string, filters models.Record) (int, error)
}

var _ Store = (*repository.Repository)(nil)

// TaskService defines the interface for the task service.
type TaskService interface {
	CreateTask(ctx context.Context, payload models.TaskCreatePayload) (*models.Task, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	CompleteTask(ctx context.Context, id string) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
	AddSubtask(ctx context.Context, taskID, title string) (*models.Subtask, error)
	ListSubtasks(ctx context.Context, taskID string) ([]models.Subtask, error)
	CountOpenTasks(ctx context.Context) (int, error)
}

// ProgressService defines the interface for the progress service.
type ProgressService interface {
	GetProgress(ctx context.Context, userID string) (*models.Progress, error)
	AddPoints(ctx context.Context, userID string, points float64) (*models.Progress, error)
}

// StatsService defines the interface for the stats service.
type StatsService interface {
	TableStats(ctx context.Context) ([]models.TableStats, error)
}

// RecoveryService defines the interface for the recovery service.
type RecoveryService interface {
	FixCompletionTimes(ctx context.Context, dryRun bool) (int, error)
}

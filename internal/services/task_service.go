// filepath: internal/services/task_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"focusboard/internal/catalog"
	"focusboard/internal/logging/audit"
	"focusboard/internal/models"
	"focusboard/internal/repository"
	"focusboard/internal/shared"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// --- Compile-time check to ensure interface is implemented ---
var _ TaskService = (*taskService)(nil)

// taskService handles the task and subtask tables.
type taskService struct {
	Store   Store
	Logger  *logrus.Logger
	Auditor audit.Logger

	order string
	now   func() time.Time
	newID func() string
}

// NewTaskService creates a new TaskService listing tasks in the named order
// (a key of catalog.TaskOrders).
func NewTaskService(store Store, logger *logrus.Logger, auditor audit.Logger, order string) (*taskService, error) {
	if order == "" {
		order = catalog.DefaultTaskOrder
	}
	clause, ok := catalog.TaskOrders[order]
	if !ok {
		return nil, fmt.Errorf("%w: %q", shared.ErrInvalidOrder, order)
	}
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &taskService{
		Store:   store,
		Logger:  logger,
		Auditor: auditor,
		order:   clause,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return ulid.Make().String() },
	}, nil
}

func (s *taskService) CreateTask(ctx context.Context, payload models.TaskCreatePayload) (*models.Task, error) {
	title := strings.TrimSpace(payload.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: task title is required", ErrValidation)
	}

	now := s.now()
	due := models.Null()
	if payload.DueDate != nil {
		due = models.Date(*payload.DueDate)
	}
	tags := payload.Tags
	if tags == nil {
		tags = []string{}
	}

	record := models.Record{
		"id":           models.String(s.newID()),
		"title":        models.String(title),
		"description":  models.String(payload.Description),
		"urgent":       models.Bool(payload.Urgent),
		"important":    models.Bool(payload.Important),
		"completed":    models.Bool(false),
		"due_date":     due,
		"tags":         models.List(tags...),
		"created_at":   models.Time(now),
		"updated_at":   models.Time(now),
		"completed_at": models.Null(),
	}

	stored, err := s.Store.Create(ctx, catalog.Tasks, record)
	if err != nil {
		s.Logger.Errorf("TaskService: Failed to create task: %v", err)
		return nil, err
	}

	task := taskFromRecord(stored)
	s.Logger.Infof("TaskService: Task created: %s", task.ID)
	s.Auditor.Log(ctx, "task.create", "task:"+task.ID, map[string]interface{}{"title": task.Title})
	return &task, nil
}

func (s *taskService) GetTask(ctx context.Context, id string) (*models.Task, error) {
	record, found, err := s.Store.Get(ctx, catalog.Tasks, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", shared.ErrTaskNotFound, id)
	}
	task := taskFromRecord(record)
	return &task, nil
}

func (s *taskService) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	filters := models.Record{}
	if filter.Completed != nil {
		filters["completed"] = models.Bool(*filter.Completed)
	}
	if filter.Urgent != nil {
		filters["urgent"] = models.Bool(*filter.Urgent)
	}
	if filter.Important != nil {
		filters["important"] = models.Bool(*filter.Important)
	}

	records, err := s.Store.GetAll(ctx, catalog.Tasks, repository.Query{Filters: filters, OrderBy: s.order})
	if err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, taskFromRecord(r))
	}
	return tasks, nil
}

// CompleteTask marks the task completed. Completing a completed task keeps its
// original completion time.
func (s *taskService) CompleteTask(ctx context.Context, id string) (*models.Task, error) {
	existing, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Completed {
		return existing, nil
	}

	record, found, err := s.Store.Update(ctx, catalog.Tasks, id, models.Record{
		"completed":    models.Bool(true),
		"completed_at": models.Time(s.now()),
	})
	if err != nil {
		s.Logger.Errorf("TaskService: Failed to complete task %s: %v", id, err)
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", shared.ErrTaskNotFound, id)
	}

	task := taskFromRecord(record)
	s.Auditor.Log(ctx, "task.complete", "task:"+id, nil)
	return &task, nil
}

// DeleteTask removes the task; its subtasks go with it.
func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	deleted, err := s.Store.Delete(ctx, catalog.Tasks, id)
	if err != nil {
		s.Logger.Errorf("TaskService: Failed to delete task %s: %v", id, err)
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %s", shared.ErrTaskNotFound, id)
	}

	s.Logger.Infof("TaskService: Task deleted: %s", id)
	s.Auditor.Log(ctx, "task.delete", "task:"+id, nil)
	return nil
}

func (s *taskService) AddSubtask(ctx context.Context, taskID, title string) (*models.Subtask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: subtask title is required", ErrValidation)
	}
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return nil, err
	}

	now := s.now()
	stored, err := s.Store.Create(ctx, catalog.Subtasks, models.Record{
		"id":         models.String(s.newID()),
		"task_id":    models.String(taskID),
		"title":      models.String(title),
		"completed":  models.Bool(false),
		"created_at": models.Time(now),
		"updated_at": models.Time(now),
	})
	if err != nil {
		s.Logger.Errorf("TaskService: Failed to add subtask to %s: %v", taskID, err)
		return nil, err
	}

	subtask := subtaskFromRecord(stored)
	s.Auditor.Log(ctx, "subtask.create", "task:"+taskID, map[string]interface{}{"subtask_id": subtask.ID})
	return &subtask, nil
}

func (s *taskService) ListSubtasks(ctx context.Context, taskID string) ([]models.Subtask, error) {
	records, err := s.Store.GetAll(ctx, catalog.Subtasks, repository.Query{
		Filters: models.Record{"task_id": models.String(taskID)},
		OrderBy: "created_at ASC",
	})
	if err != nil {
		return nil, err
	}

	subtasks := make([]models.Subtask, 0, len(records))
	for _, r := range records {
		subtasks = append(subtasks, subtaskFromRecord(r))
	}
	return subtasks, nil
}

func (s *taskService) CountOpenTasks(ctx context.Context) (int, error) {
	return s.Store.Count(ctx, catalog.Tasks, models.Record{"completed": models.Bool(false)})
}

func taskFromRecord(r models.Record) models.Task {
	task := models.Task{
		ID:          r.StringField("id"),
		Title:       r.StringField("title"),
		Description: r.StringField("description"),
		Urgent:      r.BoolField("urgent"),
		Important:   r.BoolField("important"),
		Completed:   r.BoolField("completed"),
		Tags:        r.ListField("tags"),
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}
	task.CreatedAt, _ = r.TimeField("created_at")
	task.UpdatedAt, _ = r.TimeField("updated_at")
	if due, ok := r.TimeField("due_date"); ok {
		task.DueDate = &due
	}
	if done, ok := r.TimeField("completed_at"); ok {
		task.CompletedAt = &done
	}
	return task
}

func subtaskFromRecord(r models.Record) models.Subtask {
	subtask := models.Subtask{
		ID:        r.StringField("id"),
		TaskID:    r.StringField("task_id"),
		Title:     r.StringField("title"),
		Completed: r.BoolField("completed"),
	}
	subtask.CreatedAt, _ = r.TimeField("created_at")
	subtask.UpdatedAt, _ = r.TimeField("updated_at")
	return subtask
}

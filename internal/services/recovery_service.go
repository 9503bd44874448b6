// filepath: internal/services/recovery_service.go
package services

import (
	"context"
	"fmt"

	"focusboard/internal/catalog"
	"focusboard/internal/models"
	"focusboard/internal/repository"

	"github.com/sirupsen/logrus"
)

var _ RecoveryService = (*recoveryService)(nil)

type recoveryService struct {
	Store  Store
	Logger *logrus.Logger
}

func NewRecoveryService(store Store, logger *logrus.Logger) *recoveryService {
	return &recoveryService{Store: store, Logger: logger}
}

// FixCompletionTimes repairs tasks whose completed flag and completed_at
// disagree: completed tasks without a completion time get their updated_at,
// open tasks lose a stale completion time. It returns the number of tasks
// that needed fixing; with dryRun nothing is written.
func (s *recoveryService) FixCompletionTimes(ctx context.Context, dryRun bool) (int, error) {
	records, err := s.Store.GetAll(ctx, catalog.Tasks, repository.Query{OrderBy: "id ASC"})
	if err != nil {
		return 0, fmt.Errorf("failed to retrieve tasks: %w", err)
	}

	totalFixed := 0
	for _, r := range records {
		id := r.StringField("id")
		completed := r.BoolField("completed")
		completedAt := r["completed_at"]

		var fix models.Record
		switch {
		case completed && completedAt.IsNull():
			fix = models.Record{"completed_at": r["updated_at"]}
		case !completed && !completedAt.IsNull():
			fix = models.Record{"completed_at": models.Null()}
		default:
			continue
		}

		totalFixed++
		if dryRun {
			s.Logger.Infof("Recovery (dry run): task %s has inconsistent completion state", id)
			continue
		}
		if _, _, err := s.Store.Update(ctx, catalog.Tasks, id, fix); err != nil {
			s.Logger.Errorf("Failed to fix task %s: %v", id, err)
			return totalFixed - 1, err
		}
		s.Logger.Infof("Fixed completion state of task %s", id)
	}

	return totalFixed, nil
}

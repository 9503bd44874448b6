// filepath: internal/services/progress_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"focusboard/internal/catalog"
	"focusboard/internal/logging/audit"
	"focusboard/internal/models"
	"focusboard/internal/repository"
	"focusboard/internal/shared"

	"github.com/sirupsen/logrus"
)

var _ ProgressService = (*progressService)(nil)

// progressService keeps one progress row per user, addressed by user_id.
type progressService struct {
	Store   Store
	Logger  *logrus.Logger
	Auditor audit.Logger

	now func() time.Time
}

func NewProgressService(store Store, logger *logrus.Logger, auditor audit.Logger) *progressService {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &progressService{
		Store:   store,
		Logger:  logger,
		Auditor: auditor,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

var byUser = repository.ByColumn(catalog.ProgressKey)

func (s *progressService) GetProgress(ctx context.Context, userID string) (*models.Progress, error) {
	record, found, err := s.Store.Get(ctx, catalog.Progress, userID, byUser)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", shared.ErrProgressNotFound, userID)
	}
	p := progressFromRecord(record)
	return &p, nil
}

// AddPoints adds points to the user's total, starting a new row at level 1
// for a user seen for the first time. The level is not recomputed.
func (s *progressService) AddPoints(ctx context.Context, userID string, points float64) (*models.Progress, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	existing, found, err := s.Store.Get(ctx, catalog.Progress, userID, byUser)
	if err != nil {
		return nil, err
	}

	var record models.Record
	if !found {
		// Create only reads rows back by "id", so fetch the new row by user.
		_, err = s.Store.Create(ctx, catalog.Progress, models.Record{
			catalog.ProgressKey: models.String(userID),
			"points":            models.Float(points),
			"level":             models.Int(1),
			"updated_at":        models.Time(s.now()),
		})
		if err == nil {
			record, found, err = s.Store.Get(ctx, catalog.Progress, userID, byUser)
		}
	} else {
		total := existing.FloatField("points") + points
		record, found, err = s.Store.Update(ctx, catalog.Progress, userID, models.Record{
			"points": models.Float(total),
		}, byUser)
	}
	if err == nil && !found {
		err = fmt.Errorf("%w: %s", shared.ErrProgressNotFound, userID)
	}
	if err != nil {
		s.Logger.Errorf("ProgressService: Failed to add points for %s: %v", userID, err)
		return nil, err
	}

	p := progressFromRecord(record)
	s.Auditor.Log(ctx, "progress.add_points", "user:"+userID, map[string]interface{}{"points": points, "total": p.Points})
	return &p, nil
}

func progressFromRecord(r models.Record) models.Progress {
	p := models.Progress{
		UserID: r.StringField(catalog.ProgressKey),
		Points: r.FloatField("points"),
		Level:  r.IntField("level"),
	}
	p.UpdatedAt, _ = r.TimeField("updated_at")
	return p
}

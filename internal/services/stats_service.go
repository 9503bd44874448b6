// filepath: internal/services/stats_service.go
package services

import (
	"context"
	"sort"

	"focusboard/internal/models"
)

var _ StatsService = (*statsService)(nil)

type statsService struct {
	Store  Store
	tables []string
}

// NewStatsService counts rows of the given tables.
func NewStatsService(store Store, tables []string) *statsService {
	sorted := append([]string{}, tables...)
	sort.Strings(sorted)
	return &statsService{Store: store, tables: sorted}
}

// TableStats returns the row count of every table, sorted by name.
func (s *statsService) TableStats(ctx context.Context) ([]models.TableStats, error) {
	stats := make([]models.TableStats, 0, len(s.tables))
	for _, table := range s.tables {
		n, err := s.Store.Count(ctx, table, nil)
		if err != nil {
			return nil, err
		}
		stats = append(stats, models.TableStats{Table: table, Rows: n})
	}
	return stats, nil
}

package metrics

import (
	"context"
	"sort"
	"time"

	"github.com/carepulse/carepulse/internal/platform/memstore"
)

type repoMem struct {
	table *memstore.Table[*HealthMetric]
}

func NewRepoMem() Repository {
	return &repoMem{table: memstore.NewTable[*HealthMetric]()}
}

func (r *repoMem) Create(ctx context.Context, m *HealthMetric) error {
	stored := r.table.Insert(func(id int64) *HealthMetric {
		cp := *m
		cp.ID = id
		return &cp
	})
	m.ID = stored.ID
	return nil
}

func (r *repoMem) ListByType(ctx context.Context, metricType string, since time.Time) ([]*HealthMetric, error) {
	var items []*HealthMetric
	for _, m := range r.table.List() {
		if m.MetricType == metricType && !m.Date.Before(since) {
			items = append(items, m)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	return items, nil
}

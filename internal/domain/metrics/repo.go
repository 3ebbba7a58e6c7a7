package metrics

import (
	"context"
	"time"
)

// DefaultWindowDays is the trend chart's default look-back window.
const DefaultWindowDays = 7

type Repository interface {
	Create(ctx context.Context, m *HealthMetric) error
	// ListByType returns metrics of the given type dated at or after
	// since, in ascending date order.
	ListByType(ctx context.Context, metricType string, since time.Time) ([]*HealthMetric, error)
}

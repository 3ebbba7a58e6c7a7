package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalid marks input the caller can correct.
var ErrInvalid = errors.New("invalid input")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Record(ctx context.Context, m *HealthMetric) error {
	if m.MetricType == "" {
		return fmt.Errorf("%w: metric_type is required", ErrInvalid)
	}
	if m.Date.IsZero() {
		m.Date = s.now()
	}
	return s.repo.Create(ctx, m)
}

// Trend returns the metric series for the trailing window, ascending by
// date.
func (s *Service) Trend(ctx context.Context, metricType string, days int) ([]*HealthMetric, error) {
	if metricType == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalid)
	}
	if days <= 0 {
		days = DefaultWindowDays
	}
	since := s.now().AddDate(0, 0, -days)
	return s.repo.ListByType(ctx, metricType, since)
}

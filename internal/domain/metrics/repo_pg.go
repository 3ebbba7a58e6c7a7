package metrics

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carepulse/carepulse/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Create(ctx context.Context, m *HealthMetric) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO health_metrics (metric_type, date, value, change)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		m.MetricType, m.Date, m.Value, m.Change).Scan(&m.ID)
	return db.TranslateError(err)
}

func (r *repoPG) ListByType(ctx context.Context, metricType string, since time.Time) ([]*HealthMetric, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, metric_type, date, value, change
		FROM health_metrics
		WHERE metric_type = $1 AND date >= $2
		ORDER BY date`, metricType, since)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	defer rows.Close()
	var items []*HealthMetric
	for rows.Next() {
		var m HealthMetric
		if err := rows.Scan(&m.ID, &m.MetricType, &m.Date, &m.Value, &m.Change); err != nil {
			return nil, err
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}

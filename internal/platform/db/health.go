package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// PoolStats is a snapshot of connection pool counters exposed on the
// readiness endpoint.
type PoolStats struct {
	TotalConns      int32  `json:"total_conns"`
	IdleConns       int32  `json:"idle_conns"`
	AcquiredConns   int32  `json:"acquired_conns"`
	MaxConns        int32  `json:"max_conns"`
	AcquireCount    int64  `json:"acquire_count"`
	AcquireDuration string `json:"acquire_duration"`
	Healthy         bool   `json:"healthy"`
}

// GetPoolStats reads the pool's current counters.
func GetPoolStats(pool *pgxpool.Pool) *PoolStats {
	stat := pool.Stat()
	return &PoolStats{
		TotalConns:      stat.TotalConns(),
		IdleConns:       stat.IdleConns(),
		AcquiredConns:   stat.AcquiredConns(),
		MaxConns:        stat.MaxConns(),
		AcquireCount:    stat.AcquireCount(),
		AcquireDuration: stat.AcquireDuration().String(),
		Healthy:         stat.TotalConns() > 0,
	}
}

// HealthHandler reports database readiness. When the server runs on the
// in-memory store pool is nil and the endpoint always reports healthy.
func HealthHandler(pool *pgxpool.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		if pool == nil {
			return c.JSON(http.StatusOK, map[string]any{
				"status":  "healthy",
				"backend": "memory",
			})
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		err := pool.Ping(ctx)
		stats := GetPoolStats(pool)

		if err != nil {
			stats.Healthy = false
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":  "unhealthy",
				"backend": "postgres",
				"error":   err.Error(),
				"pool":    stats,
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":  "healthy",
			"backend": "postgres",
			"pool":    stats,
		})
	}
}

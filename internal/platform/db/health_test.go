package db

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHealthHandler_MemoryBackend(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz/db", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := HealthHandler(nil)(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected status healthy, got %v", body["status"])
	}
	if body["backend"] != "memory" {
		t.Errorf("expected backend memory, got %v", body["backend"])
	}
}

func TestPoolStats_HealthyThreshold(t *testing.T) {
	stats := &PoolStats{TotalConns: 3, IdleConns: 2, AcquiredConns: 1, MaxConns: 10, Healthy: true}
	if !stats.Healthy {
		t.Error("expected pool with open conns to be healthy")
	}

	empty := &PoolStats{MaxConns: 10, AcquireDuration: "0s"}
	if empty.Healthy {
		t.Error("expected pool with no conns to be unhealthy")
	}
}

func TestPoolStats_JSONShape(t *testing.T) {
	stats := PoolStats{
		TotalConns:      1,
		IdleConns:       1,
		MaxConns:        10,
		AcquireCount:    50,
		AcquireDuration: "250ms",
		Healthy:         true,
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"total_conns", "idle_conns", "acquired_conns", "max_conns", "acquire_count", "acquire_duration", "healthy"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing field %q", key)
		}
	}
}

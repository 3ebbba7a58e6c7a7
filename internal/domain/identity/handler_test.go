package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func setupHandler(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()
	e := echo.New()
	svc := NewService(NewRepoMem())
	NewHandler(svc).RegisterRoutes(e.Group("/api/v1"))
	return e, svc
}

func TestHandler_Create(t *testing.T) {
	e, _ := setupHandler(t)

	body := `{"username":"sjohnson","password":"secret","name":"Sarah Johnson","email":"s@hospital.org"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var u map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if u["username"] != "sjohnson" {
		t.Errorf("unexpected username: %v", u["username"])
	}
	if _, leaked := u["password_hash"]; leaked {
		t.Error("password hash must not be serialized")
	}
}

func TestHandler_Create_MissingFields(t *testing.T) {
	e, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(`{"username":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_Create_Duplicate(t *testing.T) {
	e, svc := setupHandler(t)
	if _, err := svc.Create(context.Background(), CreateInput{Username: "sjohnson", Password: "x", Name: "S", Email: "s@x"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	body := `{"username":"sjohnson","password":"y","name":"Other","email":"o@x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestHandler_Me(t *testing.T) {
	e, svc := setupHandler(t)
	if _, err := svc.Create(context.Background(), CreateInput{Username: "sjohnson", Password: "x", Name: "Sarah Johnson", Email: "s@x"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var u map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if u["name"] != "Sarah Johnson" {
		t.Errorf("unexpected user: %v", u)
	}
}

func TestHandler_Me_NoUsers(t *testing.T) {
	e, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_List(t *testing.T) {
	e, svc := setupHandler(t)
	for _, name := range []string{"achen", "bpatel"} {
		if _, err := svc.Create(context.Background(), CreateInput{
			Username: name, Password: "secret", Name: name, Email: name + "@x",
		}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("users = %d, want 2", len(users))
	}
	if _, leaked := users[0]["password_hash"]; leaked {
		t.Error("password hash leaked in list response")
	}
}

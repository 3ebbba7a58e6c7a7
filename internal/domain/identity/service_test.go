package identity

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/carepulse/carepulse/internal/platform/db"
)

func TestService_Create(t *testing.T) {
	svc := NewService(NewRepoMem())

	u, err := svc.Create(context.Background(), CreateInput{
		Username: "sjohnson",
		Password: "secret",
		Name:     "Sarah Johnson",
		Email:    "sarah.johnson@hospital.org",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 1 {
		t.Errorf("expected ID 1, got %d", u.ID)
	}
	if u.Role != DefaultRole {
		t.Errorf("expected default role %q, got %q", DefaultRole, u.Role)
	}
	if u.PasswordHash == "secret" {
		t.Error("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(NewRepoMem())

	tests := []struct {
		name string
		in   CreateInput
	}{
		{"missing username", CreateInput{Password: "x", Name: "N", Email: "e@x"}},
		{"missing password", CreateInput{Username: "u", Name: "N", Email: "e@x"}},
		{"missing name", CreateInput{Username: "u", Password: "x", Email: "e@x"}},
		{"missing email", CreateInput{Username: "u", Password: "x", Name: "N"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tt.in); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestService_Create_DuplicateUsername(t *testing.T) {
	svc := NewService(NewRepoMem())
	in := CreateInput{Username: "sjohnson", Password: "x", Name: "Sarah", Email: "s@x"}

	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, db.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestService_GetMissing(t *testing.T) {
	svc := NewService(NewRepoMem())
	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_RoundTrip(t *testing.T) {
	svc := NewService(NewRepoMem())
	created, err := svc.Create(context.Background(), CreateInput{
		Username: "mchen", Password: "pw", Name: "Michael Chen", Email: "m@x", Role: "doctor",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "mchen" || got.Name != "Michael Chen" || got.Role != "doctor" {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	byName, err := svc.GetByUsername(context.Background(), "MCHEN")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if byName.ID != created.ID {
		t.Errorf("expected same user by username lookup")
	}
}

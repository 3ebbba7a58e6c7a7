package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/carepulse/carepulse/internal/platform/db"
)

func library() []*Resource {
	return []*Resource{
		{Title: "Medication Administration Guide", Description: "Standard dosing procedures", ResourceType: TypePDF, URL: "/docs/med-admin.pdf", Icon: "file-text"},
		{Title: "Wound Care Basics", Description: "Video walkthrough of dressing changes", ResourceType: TypeVideo, URL: "/videos/wound-care", Icon: "video"},
		{Title: "Diabetes Management", Description: "Insulin protocols and glucose monitoring", ResourceType: TypeDocument, URL: "/docs/diabetes", Icon: "book-open"},
	}
}

func seededService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(NewRepoMem())
	for _, r := range library() {
		cp := *r
		if err := svc.Create(context.Background(), &cp); err != nil {
			t.Fatalf("seed resource: %v", err)
		}
	}
	return svc
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(NewRepoMem())
	tests := []struct {
		name string
		r    Resource
	}{
		{"missing title", Resource{Description: "d", ResourceType: TypePDF, URL: "/x", Icon: "i"}},
		{"missing description", Resource{Title: "t", ResourceType: TypePDF, URL: "/x", Icon: "i"}},
		{"missing type", Resource{Title: "t", Description: "d", URL: "/x", Icon: "i"}},
		{"missing url", Resource{Title: "t", Description: "d", ResourceType: TypePDF, Icon: "i"}},
		{"missing icon", Resource{Title: "t", Description: "d", ResourceType: TypePDF, URL: "/x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.r
			if err := svc.Create(context.Background(), &r); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestService_RoundTrip(t *testing.T) {
	svc := seededService(t)

	got, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Medication Administration Guide" || got.ResourceType != TypePDF {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_List_Filters(t *testing.T) {
	svc := seededService(t)

	byType, err := svc.List(context.Background(), Filter{ResourceType: TypeVideo})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byType) != 1 || byType[0].Title != "Wound Care Basics" {
		t.Errorf("type filter: %+v", byType)
	}

	bySearch, err := svc.List(context.Background(), Filter{Search: "insulin"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bySearch) != 1 || bySearch[0].Title != "Diabetes Management" {
		t.Errorf("search filter: %+v", bySearch)
	}

	combined, err := svc.List(context.Background(), Filter{ResourceType: TypePDF, Search: "insulin"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(combined) != 0 {
		t.Errorf("expected AND-combined filters to exclude all, got %+v", combined)
	}

	all, err := svc.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected all resources, got %d", len(all))
	}
}

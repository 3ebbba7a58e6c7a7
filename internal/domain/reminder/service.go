package reminder

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
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, r *Reminder) error {
	if r.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if r.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalid)
	}
	if r.PatientID == 0 {
		return fmt.Errorf("%w: patient_id is required", ErrInvalid)
	}
	if r.DueTime.IsZero() {
		return fmt.Errorf("%w: due_time is required", ErrInvalid)
	}
	if r.Type == "" {
		return fmt.Errorf("%w: type is required", ErrInvalid)
	}
	switch r.Priority {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return fmt.Errorf("%w: priority must be low, medium or high", ErrInvalid)
	}
	return s.repo.Create(ctx, r)
}

func (s *Service) Get(ctx context.Context, id int64) (*Reminder, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns reminders matching the filter in insertion order.
func (s *Service) List(ctx context.Context, f Filter) ([]*Reminder, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(all), nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Reminder, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// Upcoming is the dashboard panel feed: incomplete reminders due at or
// after now, decorated with their urgency label.
type Upcoming struct {
	*Reminder
	TimeLabel Label `json:"time_label"`
}

func (s *Service) Upcoming(ctx context.Context, now time.Time, limit int) ([]Upcoming, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	items, err := s.repo.ListUpcoming(ctx, now, limit)
	if err != nil {
		return nil, err
	}
	out := make([]Upcoming, 0, len(items))
	for _, r := range items {
		out = append(out, Upcoming{Reminder: r, TimeLabel: TimeLabel(r.DueTime, now)})
	}
	return out, nil
}

// Grouped returns all reminders matching the filter, bucketed by date.
func (s *Service) Grouped(ctx context.Context, f Filter, now time.Time) ([]Group, error) {
	items, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return GroupByDate(items, now), nil
}

func (s *Service) Complete(ctx context.Context, id int64) (*Reminder, error) {
	return s.repo.Complete(ctx, id)
}

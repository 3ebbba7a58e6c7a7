package reminder

import (
	"context"
	"time"
)

// DefaultUpcomingLimit caps the dashboard's upcoming-reminders panel.
const DefaultUpcomingLimit = 5

type Repository interface {
	Create(ctx context.Context, r *Reminder) error
	GetByID(ctx context.Context, id int64) (*Reminder, error)
	List(ctx context.Context) ([]*Reminder, error)
	// ListByPatient returns a patient's reminders in ascending due time.
	ListByPatient(ctx context.Context, patientID int64) ([]*Reminder, error)
	// ListUpcoming returns incomplete reminders due at or after now,
	// ascending by due time, at most limit rows.
	ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*Reminder, error)
	// Complete marks the reminder done. Completing an already-completed
	// reminder succeeds without change.
	Complete(ctx context.Context, id int64) (*Reminder, error)
}

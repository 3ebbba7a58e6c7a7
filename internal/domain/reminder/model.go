package reminder

import "time"

// Priorities accepted on a reminder.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Well-known reminder types. The set is open; these are the ones the
// dashboard renders with dedicated icons.
const (
	TypeMedication  = "medication"
	TypeVitalCheck  = "vital_check"
	TypeGeneralCare = "general_care"
	TypeNutrition   = "nutrition"
)

// Reminder maps to the reminders table.
type Reminder struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	PatientID   int64     `db:"patient_id" json:"patient_id"`
	DueTime     time.Time `db:"due_time" json:"due_time"`
	Completed   bool      `db:"completed" json:"completed"`
	Priority    string    `db:"priority" json:"priority"`
	Type        string    `db:"type" json:"type"`
}

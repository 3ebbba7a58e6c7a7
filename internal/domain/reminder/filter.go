package reminder

import "strings"

// Filter narrows a reminder list. All set fields are AND-combined; an
// absent field matches everything.
type Filter struct {
	Completed *bool
	Priority  string
	Type      string
	Search    string
}

func (f Filter) matches(r *Reminder) bool {
	if f.Completed != nil && r.Completed != *f.Completed {
		return false
	}
	if f.Priority != "" && r.Priority != f.Priority {
		return false
	}
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.Title), needle) &&
			!strings.Contains(strings.ToLower(r.Description), needle) {
			return false
		}
	}
	return true
}

// Apply returns the reminders matching f, preserving input order.
func (f Filter) Apply(reminders []*Reminder) []*Reminder {
	out := make([]*Reminder, 0, len(reminders))
	for _, r := range reminders {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

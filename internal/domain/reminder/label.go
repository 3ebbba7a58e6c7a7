package reminder

import (
	"fmt"
	"time"
)

// Urgency buckets derived from how far away a reminder's due time is.
const (
	UrgencyNow   = "now"
	UrgencySoon  = "soon"
	UrgencyLater = "later"
)

// Label is the display form of a due time relative to the current moment.
type Label struct {
	Text    string `json:"text"`
	Urgency string `json:"urgency"`
}

// TimeLabel buckets dueTime relative to now:
//
//	due or overdue        -> "Now"
//	under an hour away    -> "In {M}m"
//	under a day away      -> "In {H}h"
//	a day or more away    -> clock time, e.g. "3:04 PM"
//
// Durations are floored, and both boundaries are strict: exactly 60
// minutes away renders as "In 1h", exactly 24 hours away as clock time.
func TimeLabel(dueTime, now time.Time) Label {
	remaining := dueTime.Sub(now)
	switch {
	case remaining <= 0:
		return Label{Text: "Now", Urgency: UrgencyNow}
	case remaining < time.Hour:
		return Label{Text: fmt.Sprintf("In %dm", int(remaining.Minutes())), Urgency: UrgencySoon}
	case remaining < 24*time.Hour:
		return Label{Text: fmt.Sprintf("In %dh", int(remaining.Hours())), Urgency: UrgencySoon}
	default:
		return Label{Text: dueTime.Format("3:04 PM"), Urgency: UrgencyLater}
	}
}

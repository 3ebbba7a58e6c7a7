package reminder

import (
	"sort"
	"time"
)

// Group is one date bucket of reminders.
type Group struct {
	Label     string      `json:"label"`
	Reminders []*Reminder `json:"reminders"`
}

// sameDay compares calendar dates in now's location, so a due time
// near midnight lands in the bucket the viewer's clock would put it in.
func sameDay(t, now time.Time) bool {
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func dateLabel(dueTime, now time.Time) string {
	switch {
	case sameDay(dueTime, now):
		return "Today"
	case sameDay(dueTime, now.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return dueTime.In(now.Location()).Format("Jan 2, 2006")
	}
}

// GroupByDate partitions reminders into date buckets. "Today" sorts
// first and "Tomorrow" second; all other buckets keep the order in
// which they first appear in the input. Within a bucket the input
// order is preserved.
func GroupByDate(reminders []*Reminder, now time.Time) []Group {
	byLabel := make(map[string]int)
	var groups []Group
	for _, r := range reminders {
		label := dateLabel(r.DueTime, now)
		idx, ok := byLabel[label]
		if !ok {
			idx = len(groups)
			byLabel[label] = idx
			groups = append(groups, Group{Label: label})
		}
		groups[idx].Reminders = append(groups[idx].Reminders, r)
	}

	rank := func(label string) int {
		switch label {
		case "Today":
			return 0
		case "Tomorrow":
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return rank(groups[i].Label) < rank(groups[j].Label)
	})
	return groups
}

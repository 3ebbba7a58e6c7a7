package reminder

import (
	"testing"
	"time"
)

func TestTimeLabel(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		due         time.Time
		wantText    string
		wantUrgency string
	}{
		{"exactly due", now, "Now", UrgencyNow},
		{"overdue", now.Add(-2 * time.Hour), "Now", UrgencyNow},
		{"one minute away", now.Add(time.Minute), "In 1m", UrgencySoon},
		{"45 minutes away", now.Add(45 * time.Minute), "In 45m", UrgencySoon},
		{"59 minutes away", now.Add(59 * time.Minute), "In 59m", UrgencySoon},
		{"exactly one hour", now.Add(time.Hour), "In 1h", UrgencySoon},
		{"90 minutes floors to 1h", now.Add(90 * time.Minute), "In 1h", UrgencySoon},
		{"23 hours away", now.Add(23 * time.Hour), "In 23h", UrgencySoon},
		{"exactly 24 hours", now.Add(24 * time.Hour), "10:00 AM", UrgencyLater},
		{"three days away", time.Date(2025, 6, 18, 15, 4, 0, 0, time.UTC), "3:04 PM", UrgencyLater},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeLabel(tt.due, now)
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
			if got.Urgency != tt.wantUrgency {
				t.Errorf("Urgency = %q, want %q", got.Urgency, tt.wantUrgency)
			}
		})
	}
}

func TestTimeLabel_SecondsFloorToMinutes(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	got := TimeLabel(now.Add(5*time.Minute+59*time.Second), now)
	if got.Text != "In 5m" {
		t.Errorf("expected In 5m, got %q", got.Text)
	}
}

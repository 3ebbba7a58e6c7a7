package seed

import (
	"context"
	"testing"
	"time"

	"github.com/carepulse/carepulse/internal/domain/identity"
	"github.com/carepulse/carepulse/internal/domain/messaging"
	"github.com/carepulse/carepulse/internal/domain/metrics"
	"github.com/carepulse/carepulse/internal/domain/patient"
	"github.com/carepulse/carepulse/internal/domain/reminder"
	"github.com/carepulse/carepulse/internal/domain/resource"

	"golang.org/x/crypto/bcrypt"
)

func memStores() Stores {
	return Stores{
		Users:     identity.NewRepoMem(),
		Patients:  patient.NewRepoMem(),
		Vitals:    patient.NewVitalSignRepoMem(),
		Reminders: reminder.NewRepoMem(),
		Messages:  messaging.NewRepoMem(),
		Resources: resource.NewRepoMem(),
		Metrics:   metrics.NewRepoMem(),
	}
}

func TestDemo(t *testing.T) {
	ctx := context.Background()
	stores := memStores()
	now := time.Date(2025, time.June, 21, 9, 0, 0, 0, time.UTC)

	if err := Demo(ctx, stores, now); err != nil {
		t.Fatalf("Demo: %v", err)
	}

	nurse, err := stores.Users.GetByUsername(ctx, "sarah.chen")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if nurse.Role != "head_nurse" {
		t.Errorf("role = %q, want head_nurse", nurse.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(nurse.PasswordHash), []byte("password123")); err != nil {
		t.Errorf("demo password does not verify: %v", err)
	}

	patients, err := stores.Patients.List(ctx)
	if err != nil {
		t.Fatalf("Patients.List: %v", err)
	}
	if len(patients) != 3 {
		t.Fatalf("patients = %d, want 3", len(patients))
	}
	if patients[2].MRN != "P-1192" || patients[2].Status != patient.StatusAttention {
		t.Errorf("third patient = %s/%s, want P-1192/attention", patients[2].MRN, patients[2].Status)
	}

	for _, p := range patients {
		vitals, err := stores.Vitals.ListByPatient(ctx, p.ID, patient.DefaultVitalsLimit)
		if err != nil {
			t.Fatalf("ListByPatient(%d): %v", p.ID, err)
		}
		if len(vitals) != 1 {
			t.Errorf("patient %s vitals = %d, want 1", p.MRN, len(vitals))
		}
	}

	upcoming, err := stores.Reminders.ListUpcoming(ctx, now, reminder.DefaultUpcomingLimit)
	if err != nil {
		t.Fatalf("ListUpcoming: %v", err)
	}
	if len(upcoming) != 4 {
		t.Fatalf("upcoming reminders = %d, want 4", len(upcoming))
	}
	if upcoming[0].Title != "Medication Check" || upcoming[0].Priority != reminder.PriorityHigh {
		t.Errorf("first upcoming = %q/%s, want Medication Check/high", upcoming[0].Title, upcoming[0].Priority)
	}

	msgs, err := stores.Messages.List(ctx, messaging.DefaultListLimit)
	if err != nil {
		t.Fatalf("Messages.List: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want 3", len(msgs))
	}
	if !msgs[0].IsBot || msgs[1].IsBot || !msgs[2].IsBot {
		t.Errorf("bot flags = %v/%v/%v, want true/false/true", msgs[0].IsBot, msgs[1].IsBot, msgs[2].IsBot)
	}
	if msgs[1].SenderID != nurse.ID {
		t.Errorf("nurse message sender = %d, want %d", msgs[1].SenderID, nurse.ID)
	}

	resources, err := stores.Resources.List(ctx)
	if err != nil {
		t.Fatalf("Resources.List: %v", err)
	}
	if len(resources) != 3 {
		t.Fatalf("resources = %d, want 3", len(resources))
	}

	for _, metricType := range []string{metrics.TypeBloodPressure, metrics.TypeGlucose, metrics.TypeMedicationAdherence} {
		series, err := stores.Metrics.ListByType(ctx, metricType, now.AddDate(0, 0, -7))
		if err != nil {
			t.Fatalf("ListByType(%s): %v", metricType, err)
		}
		if len(series) != 7 {
			t.Errorf("%s points = %d, want 7", metricType, len(series))
		}
	}

	series, err := stores.Metrics.ListByType(ctx, metrics.TypeBloodPressure, now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("ListByType: %v", err)
	}
	if series[0].Value != 130 || series[6].Value != 124 {
		t.Errorf("blood pressure trend endpoints = %v..%v, want 130..124", series[0].Value, series[6].Value)
	}
}

func TestDemoIsNotIdempotent(t *testing.T) {
	ctx := context.Background()
	stores := memStores()
	now := time.Now()

	if err := Demo(ctx, stores, now); err != nil {
		t.Fatalf("first Demo: %v", err)
	}
	if err := Demo(ctx, stores, now); err == nil {
		t.Fatal("second Demo succeeded, want duplicate error")
	}
}

// Package seed loads the demo ward used for local development and the
// in-memory mode. The data mirrors what the dashboard's designers built
// against: one head nurse, three patients with current vitals, a set of
// reminders spanning every urgency bucket, a short assistant
// conversation, an education library and a week of ward metrics.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/carepulse/carepulse/internal/domain/identity"
	"github.com/carepulse/carepulse/internal/domain/messaging"
	"github.com/carepulse/carepulse/internal/domain/metrics"
	"github.com/carepulse/carepulse/internal/domain/patient"
	"github.com/carepulse/carepulse/internal/domain/reminder"
	"github.com/carepulse/carepulse/internal/domain/resource"

	"golang.org/x/crypto/bcrypt"
)

// Stores bundles the repositories the demo data is written through.
// Repositories, not services: seeding bypasses the auto-reply side
// effect so the canned conversation stays exactly three messages.
type Stores struct {
	Users     identity.Repository
	Patients  patient.Repository
	Vitals    patient.VitalSignRepository
	Reminders reminder.Repository
	Messages  messaging.Repository
	Resources resource.Repository
	Metrics   metrics.Repository
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// Demo loads the demo ward. now anchors the relative due times and the
// metric window so the dashboard renders meaningfully at any start time.
func Demo(ctx context.Context, s Stores, now time.Time) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	nurse := &identity.User{
		Username:     "sarah.chen",
		PasswordHash: string(hash),
		Name:         "Dr. Sarah Chen",
		Email:        "sarah.chen@medicalpro.com",
		Role:         "head_nurse",
	}
	if err := s.Users.Create(ctx, nurse); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	patients := []*patient.Patient{
		{MRN: "P-2458", Name: "James Wilson", Condition: "Type 2 Diabetes", Status: patient.StatusStable,
			Notes: "Patient is responding well to treatment"},
		{MRN: "P-3721", Name: "Maria Garcia", Condition: "Hypertension", Status: patient.StatusMonitor,
			Notes: "Blood pressure has been fluctuating, requires close monitoring"},
		{MRN: "P-1192", Name: "Robert Johnson", Condition: "COPD", Status: patient.StatusAttention,
			Notes: "Oxygen levels dropped below 92% last night, needs respiratory assessment"},
	}
	for _, p := range patients {
		if err := s.Patients.Create(ctx, p); err != nil {
			return fmt.Errorf("seed patient %s: %w", p.MRN, err)
		}
	}

	vitals := []*patient.VitalSign{
		{PatientID: patients[0].ID, Timestamp: now, HeartRate: intPtr(88), BPSystolic: intPtr(128), BPDiastolic: intPtr(85),
			Temperature: floatPtr(36.7), RespiratoryRate: intPtr(17), OxygenSaturation: intPtr(98), PainLevel: intPtr(1)},
		{PatientID: patients[1].ID, Timestamp: now, HeartRate: intPtr(76), BPSystolic: intPtr(142), BPDiastolic: intPtr(92),
			Temperature: floatPtr(36.5), RespiratoryRate: intPtr(16), OxygenSaturation: intPtr(97), PainLevel: intPtr(2)},
		{PatientID: patients[2].ID, Timestamp: now, HeartRate: intPtr(92), BPSystolic: intPtr(132), BPDiastolic: intPtr(86),
			Temperature: floatPtr(37.1), RespiratoryRate: intPtr(22), OxygenSaturation: intPtr(91), PainLevel: intPtr(3)},
	}
	for _, v := range vitals {
		if err := s.Vitals.Create(ctx, v); err != nil {
			return fmt.Errorf("seed vitals: %w", err)
		}
	}

	sixPM := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, now.Location())
	reminders := []*reminder.Reminder{
		{Title: "Medication Check", Description: "Verify Robert Johnson's antibiotic adherence",
			PatientID: patients[2].ID, DueTime: now, Priority: reminder.PriorityHigh, Type: reminder.TypeMedication},
		{Title: "Blood Pressure Check", Description: "Maria Garcia needs BP monitoring",
			PatientID: patients[1].ID, DueTime: now.Add(30 * time.Minute), Priority: reminder.PriorityMedium, Type: reminder.TypeVitalCheck},
		{Title: "Position Change", Description: "Assist Dorothy Miller with position change",
			PatientID: patients[0].ID, DueTime: now.Add(2 * time.Hour), Priority: reminder.PriorityLow, Type: reminder.TypeGeneralCare},
		{Title: "Meal Assistance", Description: "Help Thomas Wright with dinner",
			PatientID: patients[0].ID, DueTime: sixPM, Priority: reminder.PriorityMedium, Type: reminder.TypeNutrition},
	}
	for _, r := range reminders {
		if err := s.Reminders.Create(ctx, r); err != nil {
			return fmt.Errorf("seed reminder %q: %w", r.Title, err)
		}
	}

	chatStart := time.Date(now.Year(), now.Month(), now.Day(), 10, 32, 0, 0, now.Location())
	messages := []*messaging.Message{
		{SenderID: messaging.AssistantSenderID, Content: "Hello Dr. Chen! How can I assist you today?",
			Timestamp: chatStart, IsBot: true},
		{SenderID: nurse.ID, Content: "I need to check on Robert Johnson's oxygen levels for the past 24 hours.",
			Timestamp: chatStart.Add(time.Minute)},
		{SenderID: messaging.AssistantSenderID,
			Content:   "Robert Johnson's oxygen levels in the last 24 hours have ranged between 91-94%. His lowest reading was at 2:15 AM (91%). Would you like me to schedule a respiratory assessment?",
			Timestamp: chatStart.Add(2 * time.Minute), IsBot: true},
	}
	for _, m := range messages {
		if err := s.Messages.Create(ctx, m); err != nil {
			return fmt.Errorf("seed message: %w", err)
		}
	}

	resources := []*resource.Resource{
		{Title: "Diabetes Management Guide", Description: "For patients with Type 1 & 2 diabetes",
			ResourceType: resource.TypePDF, URL: "/resources/diabetes-management.pdf", Icon: "file-pdf"},
		{Title: "Hypertension Care Video Series", Description: "Educational videos on blood pressure management",
			ResourceType: resource.TypeVideo, URL: "/resources/hypertension-series", Icon: "video"},
		{Title: "COPD Home Care Instructions", Description: "Printable guide for patients",
			ResourceType: resource.TypeDocument, URL: "/resources/copd-homecare.pdf", Icon: "file-alt"},
	}
	for _, r := range resources {
		if err := s.Resources.Create(ctx, r); err != nil {
			return fmt.Errorf("seed resource %q: %w", r.Title, err)
		}
	}

	weekAgo := now.AddDate(0, 0, -7)
	for i := 0; i < 7; i++ {
		date := weekAgo.AddDate(0, 0, i)

		bpChange := -1.0
		if i == 0 {
			bpChange = 0
		}
		glucoseChange := -1.0
		switch {
		case i == 0:
			glucoseChange = 0
		case i%3 == 0:
			glucoseChange = 2
		}
		adherenceChange := 1.0
		if i == 0 {
			adherenceChange = 0
		}

		series := []*metrics.HealthMetric{
			{MetricType: metrics.TypeBloodPressure, Date: date, Value: float64(130 - i), Change: floatPtr(bpChange)},
			{MetricType: metrics.TypeGlucose, Date: date, Value: float64(110 + i%3), Change: floatPtr(glucoseChange)},
			{MetricType: metrics.TypeMedicationAdherence, Date: date, Value: float64(85 + i), Change: floatPtr(adherenceChange)},
		}
		for _, m := range series {
			if err := s.Metrics.Create(ctx, m); err != nil {
				return fmt.Errorf("seed metric %s: %w", m.MetricType, err)
			}
		}
	}

	return nil
}

package patient

import "time"

// Patient statuses shown on the ward dashboard. The set is open: the
// store accepts other values, these are the ones the client renders.
const (
	StatusStable    = "stable"
	StatusMonitor   = "monitor"
	StatusAttention = "attention"
)

// Patient maps to the patients table. MRN is the human-facing record
// number printed on the dashboard card (e.g. "P-2458").
type Patient struct {
	ID        int64  `db:"id" json:"id"`
	MRN       string `db:"mrn" json:"mrn"`
	Name      string `db:"name" json:"name"`
	Avatar    string `db:"avatar" json:"avatar,omitempty"`
	Condition string `db:"condition" json:"condition"`
	Status    string `db:"status" json:"status"`
	Notes     string `db:"notes" json:"notes,omitempty"`
}

// VitalSign maps to the vital_signs table. Measurements are pointers:
// a reading may record only the instruments that were attached.
type VitalSign struct {
	ID               int64     `db:"id" json:"id"`
	PatientID        int64     `db:"patient_id" json:"patient_id"`
	Timestamp        time.Time `db:"timestamp" json:"timestamp"`
	HeartRate        *int      `db:"heart_rate" json:"heart_rate,omitempty"`
	BPSystolic       *int      `db:"bp_systolic" json:"bp_systolic,omitempty"`
	BPDiastolic      *int      `db:"bp_diastolic" json:"bp_diastolic,omitempty"`
	Temperature      *float64  `db:"temperature" json:"temperature,omitempty"`
	RespiratoryRate  *int      `db:"respiratory_rate" json:"respiratory_rate,omitempty"`
	OxygenSaturation *int      `db:"oxygen_saturation" json:"oxygen_saturation,omitempty"`
	PainLevel        *int      `db:"pain_level" json:"pain_level,omitempty"`
}

package metrics

import "time"

// Metric types tracked on the dashboard trend charts.
const (
	TypeBloodPressure       = "blood_pressure"
	TypeGlucose             = "glucose"
	TypeMedicationAdherence = "medication_adherence"
)

// HealthMetric maps to the health_metrics table: one ward-level
// aggregate per metric type per day. Change is the delta against the
// previous sample, when known.
type HealthMetric struct {
	ID         int64     `db:"id" json:"id"`
	MetricType string    `db:"metric_type" json:"metric_type"`
	Date       time.Time `db:"date" json:"date"`
	Value      float64   `db:"value" json:"value"`
	Change     *float64  `db:"change" json:"change,omitempty"`
}

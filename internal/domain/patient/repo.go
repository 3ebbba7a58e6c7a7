package patient

import "context"

// DefaultVitalsLimit caps the vitals history returned for a patient.
const DefaultVitalsLimit = 10

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Patient, error)
}

type VitalSignRepository interface {
	Create(ctx context.Context, v *VitalSign) error
	// ListByPatient returns the newest readings first, at most limit rows.
	ListByPatient(ctx context.Context, patientID int64, limit int) ([]*VitalSign, error)
}

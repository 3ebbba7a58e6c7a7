package patient

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalid marks input the caller can correct.
var ErrInvalid = errors.New("invalid input")

type Service struct {
	patients Repository
	vitals   VitalSignRepository
}

func NewService(patients Repository, vitals VitalSignRepository) *Service {
	return &Service{patients: patients, vitals: vitals}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if p.MRN == "" {
		return fmt.Errorf("%w: mrn is required", ErrInvalid)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if p.Condition == "" {
		return fmt.Errorf("%w: condition is required", ErrInvalid)
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// List returns patients matching the filter, sorted per sortBy.
func (s *Service) List(ctx context.Context, f Filter, sortBy string) ([]*Patient, error) {
	all, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(all, sortBy), nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*Patient, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", ErrInvalid)
	}
	return s.patients.UpdateStatus(ctx, id, status)
}

// RecordVitals stores a reading. The patient reference is not checked;
// readings for unknown patients are kept and simply never listed.
func (s *Service) RecordVitals(ctx context.Context, v *VitalSign) error {
	if v.PatientID == 0 {
		return fmt.Errorf("%w: patient_id is required", ErrInvalid)
	}
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now()
	}
	return s.vitals.Create(ctx, v)
}

func (s *Service) VitalHistory(ctx context.Context, patientID int64, limit int) ([]*VitalSign, error) {
	if limit <= 0 {
		limit = DefaultVitalsLimit
	}
	return s.vitals.ListByPatient(ctx, patientID, limit)
}

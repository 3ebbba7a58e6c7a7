package patient

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carepulse/carepulse/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `id, mrn, name, avatar, condition, status, notes`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.MRN, &p.Name, &p.Avatar, &p.Condition, &p.Status, &p.Notes)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	if p.Status == "" {
		p.Status = StatusStable
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO patients (mrn, name, avatar, condition, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		p.MRN, p.Name, p.Avatar, p.Condition, p.Status, p.Notes).Scan(&p.ID)
	return db.TranslateError(err)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patients ORDER BY id`)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.MRN, &p.Name, &p.Avatar, &p.Condition, &p.Status, &p.Notes); err != nil {
			return nil, err
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

func (r *repoPG) UpdateStatus(ctx context.Context, id int64, status string) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `
		UPDATE patients SET status = $2 WHERE id = $1
		RETURNING `+patientCols, id, status))
}

type vitalSignRepoPG struct{ pool *pgxpool.Pool }

func NewVitalSignRepoPG(pool *pgxpool.Pool) VitalSignRepository {
	return &vitalSignRepoPG{pool: pool}
}

const vitalCols = `id, patient_id, timestamp, heart_rate, bp_systolic, bp_diastolic, temperature, respiratory_rate, oxygen_saturation, pain_level`

func (r *vitalSignRepoPG) Create(ctx context.Context, v *VitalSign) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO vital_signs (patient_id, timestamp, heart_rate, bp_systolic, bp_diastolic, temperature, respiratory_rate, oxygen_saturation, pain_level)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id`,
		v.PatientID, v.Timestamp, v.HeartRate, v.BPSystolic, v.BPDiastolic,
		v.Temperature, v.RespiratoryRate, v.OxygenSaturation, v.PainLevel).Scan(&v.ID)
	return db.TranslateError(err)
}

func (r *vitalSignRepoPG) ListByPatient(ctx context.Context, patientID int64, limit int) ([]*VitalSign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+vitalCols+` FROM vital_signs
		WHERE patient_id = $1
		ORDER BY timestamp DESC
		LIMIT $2`, patientID, limit)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	defer rows.Close()
	var items []*VitalSign
	for rows.Next() {
		var v VitalSign
		if err := rows.Scan(&v.ID, &v.PatientID, &v.Timestamp, &v.HeartRate, &v.BPSystolic,
			&v.BPDiastolic, &v.Temperature, &v.RespiratoryRate, &v.OxygenSaturation, &v.PainLevel); err != nil {
			return nil, err
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}

package reminder

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carepulse/carepulse/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const reminderCols = `id, title, description, patient_id, due_time, completed, priority, type`

func scanReminder(row pgx.Row) (*Reminder, error) {
	var r Reminder
	err := row.Scan(&r.ID, &r.Title, &r.Description, &r.PatientID, &r.DueTime, &r.Completed, &r.Priority, &r.Type)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	return &r, nil
}

func (r *repoPG) Create(ctx context.Context, rem *Reminder) error {
	if rem.Priority == "" {
		rem.Priority = PriorityMedium
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO reminders (title, description, patient_id, due_time, completed, priority, type)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id`,
		rem.Title, rem.Description, rem.PatientID, rem.DueTime, rem.Completed, rem.Priority, rem.Type).Scan(&rem.ID)
	return db.TranslateError(err)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Reminder, error) {
	return scanReminder(r.pool.QueryRow(ctx, `SELECT `+reminderCols+` FROM reminders WHERE id = $1`, id))
}

func (r *repoPG) list(ctx context.Context, query string, args ...interface{}) ([]*Reminder, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	defer rows.Close()
	var items []*Reminder
	for rows.Next() {
		var rem Reminder
		if err := rows.Scan(&rem.ID, &rem.Title, &rem.Description, &rem.PatientID, &rem.DueTime, &rem.Completed, &rem.Priority, &rem.Type); err != nil {
			return nil, err
		}
		items = append(items, &rem)
	}
	return items, rows.Err()
}

func (r *repoPG) List(ctx context.Context) ([]*Reminder, error) {
	return r.list(ctx, `SELECT `+reminderCols+` FROM reminders ORDER BY id`)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*Reminder, error) {
	return r.list(ctx, `SELECT `+reminderCols+` FROM reminders WHERE patient_id = $1 ORDER BY due_time`, patientID)
}

func (r *repoPG) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*Reminder, error) {
	return r.list(ctx, `
		SELECT `+reminderCols+` FROM reminders
		WHERE completed = false AND due_time >= $1
		ORDER BY due_time
		LIMIT $2`, now, limit)
}

func (r *repoPG) Complete(ctx context.Context, id int64) (*Reminder, error) {
	return scanReminder(r.pool.QueryRow(ctx, `
		UPDATE reminders SET completed = true WHERE id = $1
		RETURNING `+reminderCols, id))
}

package reminder

import (
	"context"
	"sort"
	"time"

	"github.com/carepulse/carepulse/internal/platform/db"
	"github.com/carepulse/carepulse/internal/platform/memstore"
)

type repoMem struct{ table *memstore.Table[*Reminder] }

func NewRepoMem() Repository {
	return &repoMem{table: memstore.NewTable[*Reminder]()}
}

func (r *repoMem) Create(ctx context.Context, rem *Reminder) error {
	if rem.Priority == "" {
		rem.Priority = PriorityMedium
	}
	stored := r.table.Insert(func(id int64) *Reminder {
		cp := *rem
		cp.ID = id
		return &cp
	})
	rem.ID = stored.ID
	return nil
}

func (r *repoMem) GetByID(ctx context.Context, id int64) (*Reminder, error) {
	rem, ok := r.table.Get(id)
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *rem
	return &cp, nil
}

func (r *repoMem) List(ctx context.Context) ([]*Reminder, error) {
	return r.table.List(), nil
}

func (r *repoMem) ListByPatient(ctx context.Context, patientID int64) ([]*Reminder, error) {
	var items []*Reminder
	for _, rem := range r.table.List() {
		if rem.PatientID == patientID {
			items = append(items, rem)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueTime.Before(items[j].DueTime)
	})
	return items, nil
}

func (r *repoMem) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*Reminder, error) {
	var items []*Reminder
	for _, rem := range r.table.List() {
		if !rem.Completed && !rem.DueTime.Before(now) {
			items = append(items, rem)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueTime.Before(items[j].DueTime)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *repoMem) Complete(ctx context.Context, id int64) (*Reminder, error) {
	updated, ok := r.table.Update(id, func(rem *Reminder) *Reminder {
		cp := *rem
		cp.Completed = true
		return &cp
	})
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *updated
	return &cp, nil
}

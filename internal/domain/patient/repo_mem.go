package patient

import (
	"context"
	"sort"
	"strings"

	"github.com/carepulse/carepulse/internal/platform/db"
	"github.com/carepulse/carepulse/internal/platform/memstore"
)

type repoMem struct{ table *memstore.Table[*Patient] }

func NewRepoMem() Repository {
	return &repoMem{table: memstore.NewTable[*Patient]()}
}

func (r *repoMem) Create(ctx context.Context, p *Patient) error {
	for _, existing := range r.table.List() {
		if strings.EqualFold(existing.MRN, p.MRN) {
			return db.ErrDuplicate
		}
	}
	if p.Status == "" {
		p.Status = StatusStable
	}
	stored := r.table.Insert(func(id int64) *Patient {
		cp := *p
		cp.ID = id
		return &cp
	})
	p.ID = stored.ID
	return nil
}

func (r *repoMem) GetByID(ctx context.Context, id int64) (*Patient, error) {
	p, ok := r.table.Get(id)
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *repoMem) List(ctx context.Context) ([]*Patient, error) {
	return r.table.List(), nil
}

func (r *repoMem) UpdateStatus(ctx context.Context, id int64, status string) (*Patient, error) {
	updated, ok := r.table.Update(id, func(p *Patient) *Patient {
		cp := *p
		cp.Status = status
		return &cp
	})
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *updated
	return &cp, nil
}

type vitalSignRepoMem struct{ table *memstore.Table[*VitalSign] }

func NewVitalSignRepoMem() VitalSignRepository {
	return &vitalSignRepoMem{table: memstore.NewTable[*VitalSign]()}
}

func (r *vitalSignRepoMem) Create(ctx context.Context, v *VitalSign) error {
	stored := r.table.Insert(func(id int64) *VitalSign {
		cp := *v
		cp.ID = id
		return &cp
	})
	v.ID = stored.ID
	return nil
}

func (r *vitalSignRepoMem) ListByPatient(ctx context.Context, patientID int64, limit int) ([]*VitalSign, error) {
	var items []*VitalSign
	for _, v := range r.table.List() {
		if v.PatientID == patientID {
			items = append(items, v)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

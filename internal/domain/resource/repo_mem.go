package resource

import (
	"context"

	"github.com/carepulse/carepulse/internal/platform/db"
	"github.com/carepulse/carepulse/internal/platform/memstore"
)

type repoMem struct{ table *memstore.Table[*Resource] }

func NewRepoMem() Repository {
	return &repoMem{table: memstore.NewTable[*Resource]()}
}

func (r *repoMem) Create(ctx context.Context, res *Resource) error {
	stored := r.table.Insert(func(id int64) *Resource {
		cp := *res
		cp.ID = id
		return &cp
	})
	res.ID = stored.ID
	return nil
}

func (r *repoMem) GetByID(ctx context.Context, id int64) (*Resource, error) {
	res, ok := r.table.Get(id)
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *repoMem) List(ctx context.Context) ([]*Resource, error) {
	return r.table.List(), nil
}

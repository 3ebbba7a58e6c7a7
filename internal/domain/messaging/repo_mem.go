package messaging

import (
	"context"
	"sort"

	"github.com/carepulse/carepulse/internal/platform/memstore"
)

type repoMem struct{ table *memstore.Table[*Message] }

func NewRepoMem() Repository {
	return &repoMem{table: memstore.NewTable[*Message]()}
}

func (r *repoMem) Create(ctx context.Context, m *Message) error {
	stored := r.table.Insert(func(id int64) *Message {
		cp := *m
		cp.ID = id
		return &cp
	})
	m.ID = stored.ID
	return nil
}

func (r *repoMem) List(ctx context.Context, limit int) ([]*Message, error) {
	items := r.table.List()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.Before(items[j].Timestamp)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

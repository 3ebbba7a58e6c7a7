package identity

import (
	"context"
	"strings"

	"github.com/carepulse/carepulse/internal/platform/db"
	"github.com/carepulse/carepulse/internal/platform/memstore"
)

type repoMem struct{ table *memstore.Table[*User] }

func NewRepoMem() Repository {
	return &repoMem{table: memstore.NewTable[*User]()}
}

func (r *repoMem) Create(ctx context.Context, u *User) error {
	for _, existing := range r.table.List() {
		if strings.EqualFold(existing.Username, u.Username) {
			return db.ErrDuplicate
		}
	}
	stored := r.table.Insert(func(id int64) *User {
		cp := *u
		cp.ID = id
		return &cp
	})
	u.ID = stored.ID
	return nil
}

func (r *repoMem) GetByID(ctx context.Context, id int64) (*User, error) {
	u, ok := r.table.Get(id)
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *repoMem) GetByUsername(ctx context.Context, username string) (*User, error) {
	for _, u := range r.table.List() {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, db.ErrNotFound
}

func (r *repoMem) List(ctx context.Context) ([]*User, error) {
	return r.table.List(), nil
}

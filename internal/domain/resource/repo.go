package resource

import "context"

type Repository interface {
	Create(ctx context.Context, r *Resource) error
	GetByID(ctx context.Context, id int64) (*Resource, error)
	List(ctx context.Context) ([]*Resource, error)
}

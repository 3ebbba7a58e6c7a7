package resource

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carepulse/carepulse/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const resourceCols = `id, title, description, resource_type, url, icon`

func (r *repoPG) Create(ctx context.Context, res *Resource) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO resources (title, description, resource_type, url, icon)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		res.Title, res.Description, res.ResourceType, res.URL, res.Icon).Scan(&res.ID)
	return db.TranslateError(err)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Resource, error) {
	var res Resource
	err := r.pool.QueryRow(ctx, `SELECT `+resourceCols+` FROM resources WHERE id = $1`, id).
		Scan(&res.ID, &res.Title, &res.Description, &res.ResourceType, &res.URL, &res.Icon)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	return &res, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Resource, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+resourceCols+` FROM resources ORDER BY id`)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	defer rows.Close()
	var items []*Resource
	for rows.Next() {
		var res Resource
		if err := rows.Scan(&res.ID, &res.Title, &res.Description, &res.ResourceType, &res.URL, &res.Icon); err != nil {
			return nil, err
		}
		items = append(items, &res)
	}
	return items, rows.Err()
}

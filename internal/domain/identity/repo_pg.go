package identity

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

const userCols = `id, username, password_hash, name, email, role, avatar`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Email, &u.Role, &u.Avatar)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	return &u, nil
}

func (r *repoPG) Create(ctx context.Context, u *User) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, password_hash, name, email, role, avatar)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		u.Username, u.PasswordHash, u.Name, u.Email, u.Role, u.Avatar).Scan(&u.ID)
	return db.TranslateError(err)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id = $1`, id))
}

func (r *repoPG) GetByUsername(ctx context.Context, username string) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE username = $1`, username))
}

func (r *repoPG) List(ctx context.Context) ([]*User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userCols+` FROM users ORDER BY id`)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	defer rows.Close()
	var items []*User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Email, &u.Role, &u.Avatar); err != nil {
			return nil, err
		}
		items = append(items, &u)
	}
	return items, rows.Err()
}

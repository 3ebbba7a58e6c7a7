package messaging

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carepulse/carepulse/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Create(ctx context.Context, m *Message) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messages (sender_id, content, timestamp, is_bot)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		m.SenderID, m.Content, m.Timestamp, m.IsBot).Scan(&m.ID)
	return db.TranslateError(err)
}

func (r *repoPG) List(ctx context.Context, limit int) ([]*Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, sender_id, content, timestamp, is_bot
		FROM messages
		ORDER BY timestamp, id
		LIMIT $1`, limit)
	if err != nil {
		return nil, db.TranslateError(err)
	}
	defer rows.Close()
	var items []*Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.Content, &m.Timestamp, &m.IsBot); err != nil {
			return nil, err
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}

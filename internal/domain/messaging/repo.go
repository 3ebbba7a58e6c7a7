package messaging

import "context"

// DefaultListLimit caps the conversation window returned to the client.
const DefaultListLimit = 20

type Repository interface {
	Create(ctx context.Context, m *Message) error
	// List returns messages in ascending timestamp order, truncated to
	// the first limit rows. The oldest messages are the ones retained.
	List(ctx context.Context, limit int) ([]*Message, error)
}

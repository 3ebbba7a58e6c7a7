package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/carepulse/carepulse/internal/platform/assistant"
)

// replyDelay separates the assistant's reply from its trigger so the
// conversation always renders in send order.
const replyDelay = time.Second

// ErrInvalid marks input the caller can correct.
var ErrInvalid = errors.New("invalid input")

type Service struct {
	repo   Repository
	policy assistant.Policy
	log    zerolog.Logger
}

func NewService(repo Repository, policy assistant.Policy, log zerolog.Logger) *Service {
	return &Service{repo: repo, policy: policy, log: log}
}

// Send appends a message to the chat log. A message from a person also
// produces exactly one assistant reply; assistant messages never do, so
// the chat cannot loop. A failed reply write is logged and does not fail
// the send.
func (s *Service) Send(ctx context.Context, m *Message) (*Message, error) {
	if m.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalid)
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	if m.IsBot {
		return nil, nil
	}

	reply := &Message{
		SenderID:  AssistantSenderID,
		Content:   s.policy.Reply(m.Content),
		Timestamp: m.Timestamp.Add(replyDelay),
		IsBot:     true,
	}
	if err := s.repo.Create(ctx, reply); err != nil {
		s.log.Error().Err(err).Int64("trigger_id", m.ID).Msg("assistant reply not persisted")
		return nil, nil
	}
	return reply, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]*Message, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.List(ctx, limit)
}

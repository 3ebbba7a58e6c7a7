package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/carepulse/carepulse/internal/platform/assistant"
)

func newTestService(repo Repository) *Service {
	return NewService(repo, assistant.DashboardPolicy(), zerolog.Nop())
}

func TestService_Send_ProducesOneReply(t *testing.T) {
	svc := newTestService(NewRepoMem())
	sent := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	m := &Message{SenderID: 1, Content: "How are the oxygen levels?", Timestamp: sent}
	reply, err := svc.Send(context.Background(), m)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply == nil {
		t.Fatal("expected an assistant reply")
	}
	if !reply.IsBot || reply.SenderID != AssistantSenderID {
		t.Errorf("unexpected reply author: %+v", reply)
	}
	if reply.Content != "The latest oxygen saturation readings for this patient are within normal range (95-98%)." {
		t.Errorf("unexpected reply content: %q", reply.Content)
	}
	if !reply.Timestamp.After(m.Timestamp) {
		t.Error("expected reply timestamp strictly after the trigger")
	}

	all, err := svc.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected exactly 2 messages, got %d", len(all))
	}
}

func TestService_Send_BotMessageDoesNotTriggerReply(t *testing.T) {
	svc := newTestService(NewRepoMem())

	reply, err := svc.Send(context.Background(), &Message{
		SenderID: AssistantSenderID, Content: "canned text", IsBot: true,
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply != nil {
		t.Error("bot messages must not trigger replies")
	}

	all, err := svc.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 message, got %d", len(all))
	}
}

func TestService_Send_EmptyContent(t *testing.T) {
	svc := newTestService(NewRepoMem())
	if _, err := svc.Send(context.Background(), &Message{SenderID: 1}); err == nil {
		t.Error("expected validation error for empty content")
	}
}

// failAfter fails every Create after the first n.
type failAfter struct {
	Repository
	n     int
	calls int
}

func (f *failAfter) Create(ctx context.Context, m *Message) error {
	f.calls++
	if f.calls > f.n {
		return errors.New("store unavailable")
	}
	return f.Repository.Create(ctx, m)
}

func TestService_Send_ReplyFailureIsNonFatal(t *testing.T) {
	repo := &failAfter{Repository: NewRepoMem(), n: 1}
	svc := newTestService(repo)

	m := &Message{SenderID: 1, Content: "hello"}
	reply, err := svc.Send(context.Background(), m)
	if err != nil {
		t.Fatalf("expected send to succeed despite reply failure, got %v", err)
	}
	if reply != nil {
		t.Error("expected no reply when its write failed")
	}
	if m.ID == 0 {
		t.Error("expected trigger message to be persisted")
	}
}

func TestService_List_OldestRetainedOnTruncation(t *testing.T) {
	repo := NewRepoMem()
	svc := newTestService(repo)
	base := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

	// Bot-authored so no replies inflate the log.
	for i := 0; i < 30; i++ {
		err := repo.Create(context.Background(), &Message{
			SenderID:  AssistantSenderID,
			Content:   "entry",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			IsBot:     true,
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	items, err := svc.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != DefaultListLimit {
		t.Fatalf("expected %d messages, got %d", DefaultListLimit, len(items))
	}
	if !items[0].Timestamp.Equal(base) {
		t.Error("expected the oldest message to be retained")
	}
	for i := 1; i < len(items); i++ {
		if items[i].Timestamp.Before(items[i-1].Timestamp) {
			t.Fatal("expected ascending timestamp order")
		}
	}
}

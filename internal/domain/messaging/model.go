package messaging

import "time"

// AssistantSenderID marks messages authored by the chat assistant.
const AssistantSenderID = 0

// Message maps to the messages table. The chat log is append-only.
type Message struct {
	ID        int64     `db:"id" json:"id"`
	SenderID  int64     `db:"sender_id" json:"sender_id"`
	Content   string    `db:"content" json:"content"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
	IsBot     bool      `db:"is_bot" json:"is_bot"`
}

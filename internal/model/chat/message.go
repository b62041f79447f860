package chat

import "time"

// Sender identifies who authored a transcript entry.
type Sender string

const (
	SenderUser Sender = "User"
	SenderAI   Sender = "AI"
)

// Message is a single transcript entry.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Pending   bool      `json:"pending,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

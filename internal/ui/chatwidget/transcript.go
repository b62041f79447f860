package chatwidget

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zhouzirui/z-chat/backend/internal/model/chat"
)

var (
	ErrUnknownIndicator  = errors.New("pending indicator not found")
	ErrIndicatorResolved = errors.New("pending indicator already removed")
)

// PendingText is shown while a request is in flight.
const PendingText = "Thinking..."

// Transcript is the ordered message log of one widget. Messages are never
// edited or removed; pending indicators are removed exactly once.
type Transcript struct {
	mu      sync.RWMutex
	entries []chat.Message
	// pending maps indicator id to whether it is still on screen.
	pending map[string]bool
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{
		entries: make([]chat.Message, 0, 16),
		pending: make(map[string]bool),
	}
}

// Append adds a message and returns it with its assigned id.
func (t *Transcript) Append(sender chat.Sender, text string) chat.Message {
	return t.add(chat.Message{Sender: sender, Text: text})
}

// AppendPending adds a pending indicator.
func (t *Transcript) AppendPending() chat.Message {
	return t.add(chat.Message{Sender: chat.SenderAI, Text: PendingText, Pending: true})
}

func (t *Transcript) add(msg chat.Message) chat.Message {
	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now().UTC()

	t.mu.Lock()
	t.entries = append(t.entries, msg)
	if msg.Pending {
		t.pending[msg.ID] = true
	}
	t.mu.Unlock()
	return msg
}

// RemovePending takes the indicator with the given id off the transcript.
func (t *Transcript) RemovePending(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	visible, ok := t.pending[id]
	if !ok {
		return ErrUnknownIndicator
	}
	if !visible {
		return ErrIndicatorResolved
	}

	for i, entry := range t.entries {
		if entry.ID == id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			break
		}
	}
	t.pending[id] = false
	return nil
}

// Messages returns a copy of the visible entries, pending indicators included.
func (t *Transcript) Messages() []chat.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()

	copied := make([]chat.Message, len(t.entries))
	copy(copied, t.entries)
	return copied
}

// Len reports the number of visible entries.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// PendingCount reports how many indicators are still visible.
func (t *Transcript) PendingCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, visible := range t.pending {
		if visible {
			n++
		}
	}
	return n
}

// Package chatwidget implements the chat widget: a transcript, a submit
// operation that posts one request per user turn, and a Bubble Tea front end.
package chatwidget

import (
	"context"
	"log"
	"strings"

	"github.com/zhouzirui/z-chat/backend/internal/model/chat"
)

const (
	Greeting      = "Hello! I'm your AI assistant. How can I help you today?"
	FallbackReply = "Sorry, I encountered an error. Please try again."
)

// Backend delivers one chat request.
type Backend interface {
	Chat(ctx context.Context, req chat.Request) (chat.Response, error)
}

// Outcome is the terminal state of a request.
type Outcome int

const (
	OutcomeFulfilled Outcome = iota + 1
	OutcomeFailed
)

// Result is the outcome of one request: a response on success or the failure reason.
type Result struct {
	Outcome  Outcome
	Response string
	Reason   error
}

// Fulfilled builds a successful Result.
func Fulfilled(response string) Result {
	return Result{Outcome: OutcomeFulfilled, Response: response}
}

// Failed builds a failed Result.
func Failed(reason error) Result {
	return Result{Outcome: OutcomeFailed, Reason: reason}
}

// Exchange ties an accepted request to the indicator shown for it.
type Exchange struct {
	PendingID string
	Request   chat.Request
}

// Widget holds the state of one mounted chat widget. Submit and Complete must
// be called from the same goroutine; Send may run anywhere.
type Widget struct {
	transcript *Transcript
	backend    Backend
	input      string
	logf       func(format string, args ...any)
}

// New mounts a widget and greets the user. A nil logf logs through the std logger.
func New(backend Backend, logf func(format string, args ...any)) *Widget {
	if logf == nil {
		logf = log.Printf
	}
	w := &Widget{
		transcript: NewTranscript(),
		backend:    backend,
		logf:       logf,
	}
	w.transcript.Append(chat.SenderAI, Greeting)
	return w
}

// Input returns the current input field value.
func (w *Widget) Input() string {
	return w.input
}

// SetInput replaces the input field value.
func (w *Widget) SetInput(value string) {
	w.input = value
}

// Messages returns the visible transcript.
func (w *Widget) Messages() []chat.Message {
	return w.transcript.Messages()
}

// Pending reports how many requests are still awaiting a reply.
func (w *Widget) Pending() int {
	return w.transcript.PendingCount()
}

// Submit accepts the current input for model. Blank input is ignored and left
// untouched. Otherwise the user message and a pending indicator are appended,
// the input is cleared, and the returned Exchange must be passed to Send and
// then Complete.
func (w *Widget) Submit(model string) (Exchange, bool) {
	message := strings.TrimSpace(w.input)
	if message == "" {
		return Exchange{}, false
	}

	w.transcript.Append(chat.SenderUser, message)
	w.input = ""
	indicator := w.transcript.AppendPending()

	return Exchange{
		PendingID: indicator.ID,
		Request:   chat.Request{Message: message, Model: model},
	}, true
}

// Send performs the request for ex. It does not touch widget state.
func (w *Widget) Send(ctx context.Context, ex Exchange) Result {
	resp, err := w.backend.Chat(ctx, ex.Request)
	if err != nil {
		return Failed(err)
	}
	return Fulfilled(resp.Response)
}

// Complete removes the indicator for ex and then appends the AI reply.
// Nothing is appended if the indicator was already removed.
func (w *Widget) Complete(ex Exchange, res Result) error {
	if err := w.transcript.RemovePending(ex.PendingID); err != nil {
		w.logf("[widget] dropping reply for indicator=%s: %v", ex.PendingID, err)
		return err
	}

	switch res.Outcome {
	case OutcomeFulfilled:
		w.transcript.Append(chat.SenderAI, res.Response)
	default:
		w.logf("[widget] Error: %v", res.Reason)
		w.transcript.Append(chat.SenderAI, FallbackReply)
	}
	return nil
}

// SubmitAndWait runs Submit, Send and Complete in sequence.
func (w *Widget) SubmitAndWait(ctx context.Context, model string) (Result, bool) {
	ex, ok := w.Submit(model)
	if !ok {
		return Result{}, false
	}
	res := w.Send(ctx, ex)
	if err := w.Complete(ex, res); err != nil {
		return Failed(err), true
	}
	return res, true
}

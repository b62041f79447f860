package chatwidget

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/z-chat/backend/internal/model/chat"
)

type fakeBackend struct {
	mu       sync.Mutex
	requests []chat.Request
	reply    func(chat.Request) (chat.Response, error)
}

func (f *fakeBackend) Chat(_ context.Context, req chat.Request) (chat.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.reply(req)
}

func replying(text string) *fakeBackend {
	return &fakeBackend{reply: func(chat.Request) (chat.Response, error) {
		return chat.Response{Response: text}, nil
	}}
}

func failing(err error) *fakeBackend {
	return &fakeBackend{reply: func(chat.Request) (chat.Response, error) {
		return chat.Response{}, err
	}}
}

type logRecorder struct {
	lines []string
}

func (l *logRecorder) logf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func texts(msgs []chat.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, string(m.Sender)+": "+m.Text)
	}
	return out
}

func TestNewGreetsOnce(t *testing.T) {
	w := New(replying("unused"), nil)

	msgs := w.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, chat.SenderAI, msgs[0].Sender)
	require.Equal(t, Greeting, msgs[0].Text)
}

func TestSubmitBlankInputIsNoOp(t *testing.T) {
	backend := replying("unused")
	w := New(backend, nil)

	for _, input := range []string{"", "   ", "\t\n"} {
		w.SetInput(input)
		_, ok := w.Submit("gpt-4")
		require.False(t, ok)
		require.Equal(t, input, w.Input(), "input must not be cleared")
	}

	require.Len(t, w.Messages(), 1)
	require.Empty(t, backend.requests)
}

func TestSubmitAppendsUserAndPending(t *testing.T) {
	w := New(replying("unused"), nil)
	w.SetInput("  Hello  ")

	ex, ok := w.Submit("claude")
	require.True(t, ok)
	require.Equal(t, chat.Request{Message: "Hello", Model: "claude"}, ex.Request)
	require.Empty(t, w.Input())

	msgs := w.Messages()
	require.Len(t, msgs, 3)
	require.Equal(t, "User: Hello", texts(msgs)[1])
	require.True(t, msgs[2].Pending)
	require.Equal(t, ex.PendingID, msgs[2].ID)
	require.Equal(t, 1, w.Pending())
}

func TestScenarioSuccess(t *testing.T) {
	backend := replying("Hi there!")
	w := New(backend, nil)
	w.SetInput("Hello")

	res, ok := w.SubmitAndWait(context.Background(), "gpt-4")
	require.True(t, ok)
	require.Equal(t, OutcomeFulfilled, res.Outcome)

	require.Equal(t, []string{
		"AI: " + Greeting,
		"User: Hello",
		"AI: Hi there!",
	}, texts(w.Messages()))
	require.Equal(t, 0, w.Pending())
	require.Equal(t, []chat.Request{{Message: "Hello", Model: "gpt-4"}}, backend.requests)
}

func TestScenarioFailureUsesFallback(t *testing.T) {
	logs := &logRecorder{}
	w := New(failing(errors.New("connection refused")), logs.logf)
	w.SetInput("Hello")

	res, ok := w.SubmitAndWait(context.Background(), "gpt-4")
	require.True(t, ok)
	require.Equal(t, OutcomeFailed, res.Outcome)

	msgs := w.Messages()
	require.Len(t, msgs, 3)
	require.Equal(t, chat.SenderAI, msgs[2].Sender)
	require.Equal(t, "Sorry, I encountered an error. Please try again.", msgs[2].Text)
	require.Len(t, logs.lines, 1)
	require.Contains(t, logs.lines[0], "connection refused")
}

func TestCompleteRemovesIndicatorBeforeAppending(t *testing.T) {
	w := New(replying("unused"), nil)
	w.SetInput("Hello")
	ex, _ := w.Submit("gpt-4")

	require.NoError(t, w.Complete(ex, Fulfilled("done")))

	for _, msg := range w.Messages() {
		require.False(t, msg.Pending)
	}
	require.Equal(t, "AI: done", texts(w.Messages())[2])
}

func TestCompleteTwiceAppendsOnce(t *testing.T) {
	logs := &logRecorder{}
	w := New(replying("unused"), logs.logf)
	w.SetInput("Hello")
	ex, _ := w.Submit("gpt-4")

	require.NoError(t, w.Complete(ex, Fulfilled("first")))
	require.ErrorIs(t, w.Complete(ex, Fulfilled("second")), ErrIndicatorResolved)

	require.Len(t, w.Messages(), 3)
	require.Equal(t, "AI: first", texts(w.Messages())[2])
}

func TestOverlappingRequestsCompleteOutOfOrder(t *testing.T) {
	w := New(replying("unused"), nil)

	w.SetInput("first")
	first, _ := w.Submit("gpt-4")
	w.SetInput("second")
	second, _ := w.Submit("gpt-4")
	require.Equal(t, 2, w.Pending())

	require.NoError(t, w.Complete(second, Fulfilled("reply to second")))
	require.Equal(t, 1, w.Pending())
	require.NoError(t, w.Complete(first, Failed(errors.New("timeout"))))
	require.Equal(t, 0, w.Pending())

	require.Equal(t, []string{
		"AI: " + Greeting,
		"User: first",
		"User: second",
		"AI: reply to second",
		"AI: " + FallbackReply,
	}, texts(w.Messages()))
}

func TestSendIsIndependentOfState(t *testing.T) {
	backend := replying("pong")
	w := New(backend, nil)

	res := w.Send(context.Background(), Exchange{Request: chat.Request{Message: "ping", Model: "llama"}})
	require.Equal(t, Fulfilled("pong"), res)
	require.Len(t, w.Messages(), 1)
}

package chatwidget

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/z-chat/backend/internal/model/chat"
)

func TestTranscriptAppendKeepsOrder(t *testing.T) {
	tr := NewTranscript()
	first := tr.Append(chat.SenderUser, "one")
	second := tr.Append(chat.SenderAI, "two")

	require.NotEqual(t, first.ID, second.ID)
	msgs := tr.Messages()
	require.Len(t, msgs, 2)
	require.Equal(t, "one", msgs[0].Text)
	require.Equal(t, "two", msgs[1].Text)
}

func TestTranscriptRemovePendingExactlyOnce(t *testing.T) {
	tr := NewTranscript()
	tr.Append(chat.SenderUser, "Hello")
	pending := tr.AppendPending()
	require.True(t, pending.Pending)
	require.Equal(t, PendingText, pending.Text)
	require.Equal(t, 1, tr.PendingCount())

	require.NoError(t, tr.RemovePending(pending.ID))
	require.Equal(t, 1, tr.Len())
	require.Equal(t, 0, tr.PendingCount())

	require.ErrorIs(t, tr.RemovePending(pending.ID), ErrIndicatorResolved)
	require.Equal(t, 1, tr.Len())
}

func TestTranscriptRemoveUnknownIndicator(t *testing.T) {
	tr := NewTranscript()
	msg := tr.Append(chat.SenderUser, "Hello")

	require.ErrorIs(t, tr.RemovePending("missing"), ErrUnknownIndicator)
	require.ErrorIs(t, tr.RemovePending(msg.ID), ErrUnknownIndicator, "regular messages are not removable")
	require.Equal(t, 1, tr.Len())
}

func TestTranscriptMessagesIsACopy(t *testing.T) {
	tr := NewTranscript()
	tr.Append(chat.SenderAI, "hi")

	msgs := tr.Messages()
	msgs[0].Text = "changed"
	require.Equal(t, "hi", tr.Messages()[0].Text)
}

package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliverReply(t *testing.T) {
	s := fixture().Select(2)
	s, ticket := s.Send(2, "Any news?", t0)
	s = s.DeliverReply(ticket, "Sure, no problem!", t0.Add(2*time.Second))

	msgs := s.Messages(2)
	require.Len(t, msgs, 3)
	reply := msgs[2]
	assert.Equal(t, "Sure, no problem!", reply.Text)
	assert.False(t, reply.Sent)
	assert.Equal(t, "15:22", reply.Time)

	c, _ := s.Chat(2)
	assert.Equal(t, "Sure, no problem!", c.LastMessage)
	assert.Equal(t, 0, c.Unread)
	assert.Zero(t, s.PendingReplies(2))

	again := s.DeliverReply(ticket, "Sure, no problem!", t0)
	assert.Len(t, again.Messages(2), 3, "a ticket delivers once")
}

func TestDeliverReply_BumpsUnreadWhenNotSelected(t *testing.T) {
	s := fixture().Select(2)
	s, ticket := s.Send(2, "Any news?", t0)
	s = s.Select(1).DeliverReply(ticket, "Let me think about it.", t0)

	c, _ := s.Chat(2)
	assert.Equal(t, 1, c.Unread)
}

func TestDeliverReply_CancelledByDelete(t *testing.T) {
	s := fixture().Select(2)
	s, ticket := s.Send(2, "bye", t0)
	s = s.Delete(2).DeliverReply(ticket, "I agree with you.", t0)

	assert.False(t, s.HasLog(2), "a deleted chat must not get an orphaned log")
}

func TestDeliverReply_CancelledByArchive(t *testing.T) {
	s := fixture().Select(2)
	s, ticket := s.Send(2, "archiving you", t0)
	archived := s.Archive(2)
	s = archived.DeliverReply(ticket, "I agree with you.", t0)

	assert.Equal(t, archived.Messages(2), s.Messages(2))
	assert.Zero(t, s.PendingReplies(2))
}

func TestCancelReply(t *testing.T) {
	s := fixture().Select(1)
	s, first := s.Send(1, "one", t0)
	s, second := s.Send(1, "two", t0)
	s = s.CancelReply(first)
	assert.Equal(t, 1, s.PendingReplies(1))

	s = s.DeliverReply(first, "dropped", t0).DeliverReply(second, "kept", t0)
	msgs := s.Messages(1)
	assert.Equal(t, "kept", msgs[len(msgs)-1].Text)
	assert.Len(t, msgs, 5)
}

func TestDeliverReply_OutOfOrder(t *testing.T) {
	s := fixture().Select(1)
	s, first := s.Send(1, "one", t0)
	s, second := s.Send(1, "two", t0)

	s = s.DeliverReply(second, "reply two", t0).DeliverReply(first, "reply one", t0)
	msgs := s.Messages(1)
	assert.Equal(t, "reply two", msgs[4].Text)
	assert.Equal(t, "reply one", msgs[5].Text)
}

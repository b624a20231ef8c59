package session

import (
	"time"

	"github.com/saravenpi/sup/internal/models"
)

// DeliverReply lands the reply scheduled under t. Replies whose ticket was
// cancelled, because their chat was deleted or archived, are dropped.
func (s State) DeliverReply(t Ticket, text string, at time.Time) State {
	id, ok := s.pending[t]
	if !ok {
		return s
	}

	n := s.clone()
	delete(n.pending, t)

	label := TimeLabel(at)
	n.log = n.log.Append(id, models.Message{
		ID:   n.nextID(at),
		Text: text,
		Time: label,
	})
	if i := n.indexOf(id); i >= 0 {
		n.chats[i].LastMessage = text
		n.chats[i].Time = label
		if n.current != id {
			n.chats[i].Unread++
		}
	}
	return n
}

// CancelReply forgets a scheduled reply.
func (s State) CancelReply(t Ticket) State {
	if _, ok := s.pending[t]; !ok {
		return s
	}
	n := s.clone()
	delete(n.pending, t)
	return n
}

func (s *State) cancelFor(id int64) {
	for t, chatID := range s.pending {
		if chatID == id {
			delete(s.pending, t)
		}
	}
}

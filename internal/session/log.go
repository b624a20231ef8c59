package session

import (
	"slices"
	"strings"
	"time"

	"github.com/saravenpi/sup/internal/models"
)

// Log maps a chat id to its messages in arrival order. Entries may exist for
// ids that are not in the registry, archived chats keep theirs.
type Log map[int64][]models.Message

func (l Log) clone() Log {
	n := make(Log, len(l))
	for k, v := range l {
		n[k] = v
	}
	return n
}

// Append returns a log with m added to the end of id's sequence.
func (l Log) Append(id int64, m models.Message) Log {
	n := l.clone()
	n[id] = append(slices.Clip(l[id]), m)
	return n
}

// Clear returns a log without an entry for id.
func (l Log) Clear(id int64) Log {
	if _, ok := l[id]; !ok {
		return l
	}
	n := l.clone()
	delete(n, id)
	return n
}

func (l Log) Messages(id int64) []models.Message {
	msgs, ok := l[id]
	if !ok {
		return nil
	}
	return slices.Clone(msgs)
}

// Append adds m to id's log without consulting the registry.
func (s State) Append(id int64, m models.Message) State {
	n := s
	n.log = s.log.Append(id, m)
	n.lastID = max(n.lastID, m.ID)
	return n
}

// Send appends an outgoing message to the selected chat and schedules a
// reply for it. It returns the zero Ticket when nothing was sent.
func (s State) Send(id int64, text string, at time.Time) (State, Ticket) {
	text = strings.TrimSpace(text)
	if text == "" || s.current == 0 || s.current != id {
		return s, 0
	}

	n := s.clone()
	label := TimeLabel(at)
	n.log = n.log.Append(id, models.Message{
		ID:   n.nextID(at),
		Text: text,
		Sent: true,
		Time: label,
	})
	n = n.UpdateLastMessage(id, text, label)

	n.lastTicket++
	t := n.lastTicket
	n.pending[t] = id
	return n, t
}

// React bumps the count of emoji on a message, adding the badge if needed.
func (s State) React(id, messageID int64, emoji string) State {
	if emoji == "" {
		return s
	}
	msgs := s.log[id]
	i := slices.IndexFunc(msgs, func(m models.Message) bool { return m.ID == messageID })
	if i < 0 {
		return s
	}

	n := s.clone()
	updated := slices.Clone(msgs)
	reactions := slices.Clone(updated[i].Reactions)
	if j := slices.IndexFunc(reactions, func(r models.Reaction) bool { return r.Emoji == emoji }); j >= 0 {
		reactions[j].Count++
	} else {
		reactions = append(reactions, models.Reaction{Emoji: emoji, Count: 1})
	}
	updated[i].Reactions = reactions
	n.log[id] = updated
	return n
}

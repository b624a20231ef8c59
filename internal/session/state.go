// Package session holds the in-memory state of a chat session: the chat
// registry, the per-chat message log and the view state that the terminal
// UI renders. Every operation is a value transition; a State is never
// mutated in place once it has been returned to a caller.
package session

import (
	"slices"
	"time"

	"github.com/saravenpi/sup/internal/models"
)

// DefaultBreakpoint is the width at or below which the profile panel is
// closed on resize.
const DefaultBreakpoint = 768

const (
	newChatPreview = "No messages yet"
	newChatTime    = "now"
	newChatAbout   = "Hey there! I am using Sup."
)

// Ticket identifies one scheduled reply. The zero Ticket is never issued.
type Ticket uint64

// State is one snapshot of a chat session.
type State struct {
	chats    []models.Chat
	log      Log
	archived []models.Chat

	// current is the selected chat id, 0 when nothing is selected.
	current    int64
	search     string
	filter     models.FilterType
	nav        models.NavItem
	profile    bool
	breakpoint int
	feedback   map[int64]string

	pending    map[Ticket]int64
	lastID     int64
	lastTicket Ticket
}

// New builds the initial state from seeded chats and their messages.
func New(chats []models.Chat, messages map[int64][]models.Message) State {
	s := State{
		chats:      slices.Clone(chats),
		log:        make(Log, len(messages)),
		breakpoint: DefaultBreakpoint,
		feedback:   make(map[int64]string),
		pending:    make(map[Ticket]int64),
	}

	for _, c := range chats {
		s.lastID = max(s.lastID, c.ID)
	}
	for id, msgs := range messages {
		s.log[id] = slices.Clone(msgs)
		for _, m := range msgs {
			s.lastID = max(s.lastID, m.ID)
		}
	}

	return s
}

// WithBreakpoint returns a copy of s using width as the profile panel
// breakpoint. Non-positive widths are ignored.
func (s State) WithBreakpoint(width int) State {
	if width <= 0 {
		return s
	}
	s.breakpoint = width
	return s
}

func (s State) clone() State {
	n := s
	n.chats = slices.Clone(s.chats)
	n.archived = slices.Clone(s.archived)
	n.log = s.log.clone()
	n.feedback = make(map[int64]string, len(s.feedback))
	for k, v := range s.feedback {
		n.feedback[k] = v
	}
	n.pending = make(map[Ticket]int64, len(s.pending))
	for k, v := range s.pending {
		n.pending[k] = v
	}
	return n
}

// nextID issues an id derived from the wall clock, bumped past the last one
// so ids stay unique and increasing even within the same millisecond.
func (s *State) nextID(at time.Time) int64 {
	id := at.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s State) indexOf(id int64) int {
	return slices.IndexFunc(s.chats, func(c models.Chat) bool { return c.ID == id })
}

// TimeLabel formats t the way chat rows and bubbles display it.
func TimeLabel(t time.Time) string {
	return t.Format("15:04")
}

func (s State) Chats() []models.Chat {
	return slices.Clone(s.chats)
}

func (s State) Archived() []models.Chat {
	return slices.Clone(s.archived)
}

// Chat looks up a chat in the registry.
func (s State) Chat(id int64) (models.Chat, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Chat{}, false
	}
	return s.chats[i], true
}

// Current resolves the selection against the registry.
func (s State) Current() (models.Chat, bool) {
	if s.current == 0 {
		return models.Chat{}, false
	}
	return s.Chat(s.current)
}

func (s State) CurrentID() int64 {
	return s.current
}

// Messages returns the log of a chat, nil when it has no entry.
func (s State) Messages(id int64) []models.Message {
	return s.log.Messages(id)
}

// HasLog reports whether the log holds an entry for id, even an empty one.
func (s State) HasLog(id int64) bool {
	_, ok := s.log[id]
	return ok
}

func (s State) Search() string            { return s.search }
func (s State) Filter() models.FilterType { return s.filter }
func (s State) Nav() models.NavItem       { return s.nav }
func (s State) ProfileOpen() bool         { return s.profile }
func (s State) Breakpoint() int           { return s.breakpoint }

// Feedback returns the last rating submitted for a chat.
func (s State) Feedback(id int64) (string, bool) {
	v, ok := s.feedback[id]
	return v, ok
}

// PendingReplies counts replies still scheduled for a chat.
func (s State) PendingReplies(id int64) int {
	n := 0
	for _, chatID := range s.pending {
		if chatID == id {
			n++
		}
	}
	return n
}

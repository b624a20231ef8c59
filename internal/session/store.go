package session

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store owns the current State of one UI session. It is not safe for
// concurrent use; the UI event loop is its only caller.
type Store struct {
	id     string
	state  State
	logger *zap.Logger
}

// NewStore wraps initial in a Store with a fresh session id.
func NewStore(initial State, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Store{
		id:     id,
		state:  initial,
		logger: logger.With(zap.String("session", id)),
	}
}

// ID returns the session id attached to every log entry.
func (s *Store) ID() string {
	return s.id
}

func (s *Store) State() State {
	return s.state
}

// Dispatch applies a and returns the effects the caller has to run.
func (s *Store) Dispatch(a Action) []Effect {
	next, effects := Reduce(s.state, a)
	s.state = next

	if ce := s.logger.Check(zap.DebugLevel, "dispatch"); ce != nil {
		ce.Write(
			zap.String("action", a.kind()),
			zap.Int64("current", next.current),
			zap.Int("chats", len(next.chats)),
			zap.Int("archived", len(next.archived)),
			zap.Int("pending", len(next.pending)),
			zap.Int("effects", len(effects)),
		)
	}
	for _, e := range effects {
		if r, ok := e.(ScheduleReply); ok {
			s.logger.Debug("reply scheduled",
				zap.Uint64("ticket", uint64(r.Ticket)),
				zap.Int64("chat", r.ChatID))
		}
	}
	return effects
}

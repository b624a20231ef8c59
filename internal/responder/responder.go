// Package responder simulates the other side of a conversation: after a
// random delay it answers with a canned phrase.
package responder

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	DefaultMinDelay = time.Second
	DefaultMaxDelay = 3 * time.Second
)

// DefaultReplies is the canned corpus used when none is configured.
var DefaultReplies = []string{
	"Thanks for your message!",
	"I'll get back to you soon.",
	"That sounds interesting.",
	"Let me think about it.",
	"Sure, no problem!",
	"I agree with you.",
	"Can you send more details?",
}

// Source is the randomness a Responder draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Int64N(n int64) int64
}

// Responder picks reply texts and delays for simulated replies.
type Responder struct {
	replies  []string
	src      Source
	minDelay time.Duration
	maxDelay time.Duration
}

// Option configures a Responder.
type Option func(*Responder)

// WithReplies replaces the reply corpus. An empty corpus is ignored.
func WithReplies(replies []string) Option {
	return func(r *Responder) {
		if len(replies) > 0 {
			r.replies = append([]string(nil), replies...)
		}
	}
}

// WithSource sets the random source. A nil source is ignored.
func WithSource(src Source) Option {
	return func(r *Responder) {
		if src != nil {
			r.src = src
		}
	}
}

// WithDelay sets the window [min, max) replies are delayed by.
func WithDelay(lo, hi time.Duration) Option {
	return func(r *Responder) {
		r.minDelay = lo
		r.maxDelay = hi
	}
}

// New returns a Responder with the default corpus and delay window,
// adjusted by opts.
func New(opts ...Option) (*Responder, error) {
	r := &Responder{
		replies:  DefaultReplies,
		src:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		minDelay: DefaultMinDelay,
		maxDelay: DefaultMaxDelay,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.minDelay < 0 || r.maxDelay <= r.minDelay {
		return nil, fmt.Errorf("invalid reply delay window [%s, %s)", r.minDelay, r.maxDelay)
	}
	return r, nil
}

// Delay draws how long to wait before the next reply.
func (r *Responder) Delay() time.Duration {
	span := int64(r.maxDelay - r.minDelay)
	return r.minDelay + time.Duration(r.src.Int64N(span))
}

// Reply picks a phrase from the corpus.
func (r *Responder) Reply() string {
	return r.replies[r.src.IntN(len(r.replies))]
}

func (r *Responder) Replies() []string {
	return append([]string(nil), r.replies...)
}

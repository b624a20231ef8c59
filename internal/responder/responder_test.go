package responder

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	ints   []int
	int64s []int64
}

func (s *stubSource) IntN(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *stubSource) Int64N(n int64) int64 {
	v := s.int64s[0]
	s.int64s = s.int64s[1:]
	return v % n
}

func TestNew_Defaults(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Equal(t, DefaultReplies, r.Replies())
	assert.Len(t, r.Replies(), 7)
}

func TestNew_InvalidWindow(t *testing.T) {
	tests := []struct {
		name     string
		min, max time.Duration
	}{
		{name: "empty window", min: time.Second, max: time.Second},
		{name: "inverted", min: 3 * time.Second, max: time.Second},
		{name: "negative min", min: -time.Second, max: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(WithDelay(tt.min, tt.max))
			assert.Error(t, err)
		})
	}
}

func TestReply_UsesSource(t *testing.T) {
	src := &stubSource{ints: []int{0, 2, 1}}
	r, err := New(WithReplies([]string{"a", "b", "c"}), WithSource(src))
	require.NoError(t, err)

	assert.Equal(t, "a", r.Reply())
	assert.Equal(t, "c", r.Reply())
	assert.Equal(t, "b", r.Reply())
}

func TestDelay_UsesSource(t *testing.T) {
	src := &stubSource{int64s: []int64{0, int64(1500 * time.Millisecond), int64(2*time.Second - 1)}}
	r, err := New(WithSource(src))
	require.NoError(t, err)

	assert.Equal(t, time.Second, r.Delay())
	assert.Equal(t, 2500*time.Millisecond, r.Delay())
	assert.Equal(t, 3*time.Second-1, r.Delay())
}

func TestDelay_StaysInWindow(t *testing.T) {
	r, err := New(WithSource(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		d := r.Delay()
		assert.GreaterOrEqual(t, d, time.Second)
		assert.Less(t, d, 3*time.Second)
	}
}

func TestReply_AlwaysFromCorpus(t *testing.T) {
	r, err := New(WithSource(rand.New(rand.NewPCG(3, 4))))
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		assert.Contains(t, DefaultReplies, r.Reply())
	}
}

func TestWithReplies_IgnoresEmpty(t *testing.T) {
	r, err := New(WithReplies(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultReplies, r.Replies())
}

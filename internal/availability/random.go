package availability

import (
	"math/rand/v2"
	"sync"
)

// RandomSource decides whether a single canonical slot survives thinning.
type RandomSource interface {
	Retain(p float64) bool
}

// mathSource draws from math/rand/v2. It is safe for concurrent use because
// one generator is shared by every booking session.
type mathSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a pseudo-random source. A zero seed picks a random seed.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &mathSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *mathSource) Retain(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < p
}

// SequenceSource replays a fixed list of decisions, cycling when exhausted.
// An empty sequence retains everything.
type SequenceSource struct {
	mu        sync.Mutex
	decisions []bool
	next      int
}

// NewSequenceSource builds a SequenceSource from decisions.
func NewSequenceSource(decisions ...bool) *SequenceSource {
	return &SequenceSource{decisions: append([]bool(nil), decisions...)}
}

func (s *SequenceSource) Retain(float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.decisions) == 0 {
		return true
	}
	d := s.decisions[s.next%len(s.decisions)]
	s.next++
	return d
}

// Calls reports how many decisions have been drawn so far.
func (s *SequenceSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

package random

import (
	"fmt"
	"sync"
)

// Sequence replays a fixed list of draws. It panics when exhausted so a test
// that consumes more draws than it scripted fails loudly.
type Sequence struct {
	mu    sync.Mutex
	draws []float64
	next  int
}

// NewSequence scripts the given draws in order
func NewSequence(draws ...float64) *Sequence {
	for _, d := range draws {
		if d < 0 || d >= 1 {
			panic(fmt.Sprintf("random: scripted draw %v outside [0,1)", d))
		}
	}
	return &Sequence{draws: draws}
}

// Float64 returns the next scripted draw
func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.draws) {
		panic(fmt.Sprintf("random: sequence exhausted after %d draws", len(s.draws)))
	}
	d := s.draws[s.next]
	s.next++
	return d
}

// Consumed returns how many draws have been taken
func (s *Sequence) Consumed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// Remaining returns how many scripted draws are left
func (s *Sequence) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.draws) - s.next
}

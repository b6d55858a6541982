// Package random provides the uniform draw source every game decision is made from.
//
// Game code never calls math/rand directly. It takes a Source so tests can script
// exact outcomes with a Sequence.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
)

// Source yields independent uniform draws in [0, 1)
type Source interface {
	Float64() float64
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a concurrency-safe PCG source seeded from crypto/rand
func New() (Source, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return NewSeeded(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])), nil
}

// NewSeeded returns a concurrency-safe PCG source with a fixed seed
func NewSeeded(seed1, seed2 uint64) Source {
	return &lockedSource{rng: rand.New(rand.NewPCG(seed1, seed2))} //nolint:gosec // Game logic randomness, not security critical
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// IntRange returns a uniform integer in [min, max] using exactly one draw
func IntRange(src Source, min, max int64) int64 {
	if min >= max {
		return min
	}
	span := max - min + 1
	n := int64(src.Float64() * float64(span))
	if n >= span {
		n = span - 1
	}
	return min + n
}

// Die rolls one six-sided die using exactly one draw
func Die(src Source) int {
	return int(IntRange(src, 1, 6))
}

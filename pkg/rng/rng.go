// Package rng describes the random source the generators draw from.
//
// A *rand.Rand from math/rand satisfies Source directly. A Source is borrowed
// by generators, never owned: several generators may share one sequentially.
package rng

import (
	"math/rand"
	"time"
)

// Source produces uniformly distributed integers in [0, n). It panics if n <= 0.
type Source interface {
	Intn(n int) int
}

// Uniform draws a uniformly distributed integer in [low, high).
func Uniform(src Source, low, high int) int {
	return low + src.Intn(high-low)
}

// New returns a math/rand generator seeded with seed. A zero seed selects a
// time-based seed.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Sequence replays a fixed list of draws, cycling when exhausted. Each value is
// reduced modulo n so it always lies in range.
type Sequence struct {
	Values []int
	next   int
}

// Intn implements Source.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return ((v % n) + n) % n
}

var _ Source = (*rand.Rand)(nil)
var _ Source = (*Sequence)(nil)

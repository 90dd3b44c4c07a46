// Package random holds the injectable source of randomness used by the
// SERP simulator and the template engine.
package random

import "math/rand/v2"

// Rand is the subset of *rand.Rand the generators draw from.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type global struct{}

func (global) IntN(n int) int                     { return rand.IntN(n) }
func (global) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Default returns the process-wide uniform source.
func Default() Rand {
	return global{}
}

// Seeded returns a reproducible source.
func Seeded(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sequence replays fixed values. IntN(n) returns the next value modulo n,
// cycling through the sequence; an empty sequence always yields 0.
// Shuffle is a Fisher-Yates pass driven by IntN.
type Sequence struct {
	values []int
	pos    int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func (s *Sequence) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, s.IntN(i+1))
	}
}

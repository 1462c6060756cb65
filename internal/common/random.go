package common

import (
	"math/rand"
	"time"
)

// RandomSource produces uniformly distributed integers in an inclusive range.
type RandomSource interface {
	IntBetween(min, max int) int
}

// RandSource is a RandomSource backed by math/rand
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource wraps rng. A nil rng is replaced with a time-seeded one.
func NewRandSource(rng *rand.Rand) *RandSource {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandSource{rng: rng}
}

// NewSeededSource creates a RandSource for a fixed seed
func NewSeededSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// IntBetween returns a value in [min, max]. If max < min the bounds are swapped.
func (s *RandSource) IntBetween(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.rng.Intn(max-min+1)
}

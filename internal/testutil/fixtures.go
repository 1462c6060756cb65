package testutil

import (
	"fmt"
)

// SequenceRandom replays a fixed list of values, cycling when it runs out.
// It panics if a value falls outside the requested range so that a bad
// fixture fails loudly.
type SequenceRandom struct {
	values []int
	next   int
	Calls  int
}

// NewSequenceRandom creates a SequenceRandom over values
func NewSequenceRandom(values ...int) *SequenceRandom {
	if len(values) == 0 {
		panic("testutil: SequenceRandom needs at least one value")
	}
	return &SequenceRandom{values: values}
}

// IntBetween implements common.RandomSource
func (s *SequenceRandom) IntBetween(min, max int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	s.Calls++
	if v < min || v > max {
		panic(fmt.Sprintf("testutil: sequence value %d outside [%d, %d] at call %d", v, min, max, s.Calls))
	}
	return v
}

// RookMoves builds a sequence producing the given rook moves. Each move is a
// coin (0 = right, 1 = up) followed by two dice.
func RookMoves(moves ...[3]int) *SequenceRandom {
	values := make([]int, 0, len(moves)*3)
	for _, m := range moves {
		values = append(values, m[0], m[1], m[2])
	}
	return NewSequenceRandom(values...)
}

// SequentialIDs issues <prefix>-1, <prefix>-2, ...
type SequentialIDs struct {
	Prefix string
	n      int
}

// NewID implements core.IDSource
func (s *SequentialIDs) NewID() string {
	s.n++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "piece"
	}
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

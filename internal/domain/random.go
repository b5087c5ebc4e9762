package domain

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Source is the randomness capability used for shuffling, the random-play
// strategy and the partner fallback. Tests supply scripted implementations.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a seeded PCG-backed source.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// Choose picks one element of items uniformly through src.
func Choose[T any](src Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: choose from empty set", ErrInvariant)
	}
	return items[src.Intn(len(items))], nil
}

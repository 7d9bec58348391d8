// Package shuffle produces lazily-evaluated, unbounded sequences of
// items from a fixed collection such that no two temporally adjacent
// outputs are the same element, even across internal reshuffle
// boundaries. The sole exception is a single-element collection,
// where repetition is unavoidable.
package shuffle

import (
	"errors"

	"github.com/sot-tech/prand/prng"
)

var (
	// ErrNoItems is returned when constructing a Shuffler over an
	// empty collection.
	ErrNoItems = errors.New("shuffler requires at least one item")
	// ErrNilSource is returned when no random source is supplied.
	ErrNilSource = errors.New("shuffler requires a random source")
)

// Shuffler is an infinite gap-avoiding sequence over a fixed item
// collection. It is restartable only by constructing a new instance
// and must never be fully materialized. The random source is
// borrowed: advancing the shuffler advances the generator.
type Shuffler[T any] struct {
	src    prng.Generator
	items  []T
	cursor int
}

// New creates a Shuffler over a private copy of items, leaving the
// caller's slice untouched.
func New[T any](src prng.Generator, items []T) (*Shuffler[T], error) {
	cp := make([]T, len(items))
	copy(cp, items)
	return NewInPlace(src, cp)
}

// NewInPlace creates a Shuffler that owns the provided slice and
// permutes it in place; the caller must not use the slice afterwards.
func NewInPlace[T any](src prng.Generator, items []T) (*Shuffler[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	s := &Shuffler[T]{src: src, items: items}
	// initial uniform permutation, plain Fisher-Yates
	for i := len(items) - 1; i > 0; i-- {
		j := int(prng.Uint64n(src, uint64(i+1)))
		items[i], items[j] = items[j], items[i]
	}
	return s, nil
}

// Size returns the fixed number of items in the collection.
func (s *Shuffler[T]) Size() int { return len(s.items) }

// Next emits the following element of the infinite sequence,
// reshuffling in place once the cursor passes the end. The element
// emitted immediately before a reshuffle and the one emitted
// immediately after are never the same slot's element: the walk below
// only redistributes positions [0, size-2], and the final swap moves
// the previously-last element to a position in [1, size-1], so it can
// never land on position 0, the next to be emitted.
func (s *Shuffler[T]) Next() T {
	n := len(s.items)
	if n == 1 {
		return s.items[0]
	}
	if s.cursor >= n {
		for i := n - 1; i >= 2; i-- {
			j := int(prng.Uint64n(s.src, uint64(i)))
			s.items[i-1], s.items[j] = s.items[j], s.items[i-1]
		}
		j := 1 + int(prng.Uint64n(s.src, uint64(n-1)))
		s.items[n-1], s.items[j] = s.items[j], s.items[n-1]
		s.cursor = 0
	}
	v := s.items[s.cursor]
	s.cursor++
	return v
}

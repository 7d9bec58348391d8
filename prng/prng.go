// Package prng contains interchangeable 64-bit pseudorandom bit-stream
// generators with well-defined forward (and, where supported, backward)
// state transitions, plus a tag-based registry for round-tripping any
// generator through a compact text form.
// These generators are NOT cryptographically secure: their state can be
// recovered from output and must never be used for anything
// security-sensitive.
// See https://prng.di.unimi.it for background on the xoshiro family.
package prng

import (
	"errors"
	"math/bits"
)

// Capability describes the optional operations a generator variant
// supports. Capabilities are fixed per algorithm, not per instance.
type Capability uint8

const (
	// CapReadState - raw state words can be inspected with StateWord.
	CapReadState Capability = 1 << iota
	// CapWriteState - raw state words can be replaced with SetStateWord.
	CapWriteState
	// CapSkip - the state can jump an arbitrary distance in O(1).
	CapSkip
	// CapPrevious - the transition has a closed-form inverse.
	CapPrevious
)

// Has checks that all capabilities from c1 present in c
func (c Capability) Has(c1 Capability) bool {
	return c&c1 == c1
}

// ErrUnsupported is returned (or panicked from direct optional-method
// calls) when an operation is invoked on a generator whose capability
// flags do not include it.
var ErrUnsupported = errors.New("operation not supported by generator")

// Generator is a deterministic 64-bit pseudorandom bit-stream source
// holding 2 or 4 unsigned state words. A single instance must not be
// mutated from more than one goroutine without external
// synchronization.
type Generator interface {
	// Seed deterministically derives every state word from one scalar.
	// It never fails: degenerate inputs are corrected per variant.
	Seed(seed uint64)

	// NextWord advances the state by exactly one step and returns the
	// produced output word.
	NextWord() uint64

	// StateLen returns the fixed number of 64-bit state words.
	StateLen() int

	// StateWord returns state word i in canonical order.
	// Out-of-range indices clamp to the last word.
	StateWord(i int) uint64

	// SetStateWord replaces state word i, applying the variant's
	// state invariants (forced-odd, nonzero fallbacks etc.).
	// Out-of-range indices clamp to the last word.
	SetStateWord(i int, v uint64)

	// Capabilities reports the optional operations of this variant.
	Capabilities() Capability

	// Tag returns the short unique identifier used for serialization
	// dispatch (4 characters for standalone types).
	Tag() string

	// Copy returns an independent generator with identical state and
	// no aliasing.
	Copy() Generator
}

// Previous is implemented by generators whose transition is
// invertible. PreviousWord moves the state back by one step and
// returns the output word belonging to the restored position, so
// NextWord/PreviousWord call pairs in any order leave the state
// tuple unchanged.
type Previous interface {
	Generator
	PreviousWord() uint64
}

// Skipper is implemented by generators able to jump the state by an
// arbitrary distance in constant time. Skip advances by distance
// steps (modulo 2^64, so huge distances move backwards) and returns
// the output word of the final position. Skip(1) is equivalent to
// NextWord.
type Skipper interface {
	Generator
	Skip(distance uint64) uint64
}

// PreviousWord steps g backward if its variant supports inversion,
// otherwise returns ErrUnsupported.
func PreviousWord(g Generator) (uint64, error) {
	if p, ok := g.(Previous); ok && g.Capabilities().Has(CapPrevious) {
		return p.PreviousWord(), nil
	}
	return 0, ErrUnsupported
}

// Skip jumps g by distance steps if its variant supports O(1)
// jump-ahead, otherwise returns ErrUnsupported.
func Skip(g Generator, distance uint64) (uint64, error) {
	if s, ok := g.(Skipper); ok && g.Capabilities().Has(CapSkip) {
		return s.Skip(distance), nil
	}
	return 0, ErrUnsupported
}

// Equal compares two generators by concrete type tag and full state
// tuple, word by word.
func Equal(a, b Generator) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag() != b.Tag() || a.StateLen() != b.StateLen() {
		return false
	}
	for i := 0; i < a.StateLen(); i++ {
		if a.StateWord(i) != b.StateWord(i) {
			return false
		}
	}
	return true
}

// Float64 returns the next output of g mapped to [0, 1) with the
// usual 53-bit mantissa construction.
func Float64(g Generator) float64 {
	return float64(g.NextWord()>>11) * 0x1p-53
}

// Uint64n returns an unbiased draw in [0, bound) using Lemire's
// multiply-and-reject method. bound must not be zero.
func Uint64n(g Generator, bound uint64) uint64 {
	hi, lo := bits.Mul64(g.NextWord(), bound)
	if lo < bound {
		thresh := -bound % bound
		for lo < thresh {
			hi, lo = bits.Mul64(g.NextWord(), bound)
		}
	}
	return hi
}

package prng

import "math/bits"

// TagXoshiro256 identifies the xoshiro256** generator.
const TagXoshiro256 = "XSSR"

// Xoshiro256 is the xoshiro256** generator by Blackman and Vigna,
// see https://prng.di.unimi.it/xoshiro256starstar.c .
// Period 2^256-1 over the single orbit excluding the all-zero state;
// the all-zero state is unreachable and is corrected on assignment by
// forcing word D to all ones. The transition is not invertible here
// and has no O(1) jump-ahead.
type Xoshiro256 struct {
	a, b, c, d uint64
}

// NewXoshiro256 creates a Xoshiro256 generator seeded with seed.
func NewXoshiro256(seed uint64) *Xoshiro256 {
	g := new(Xoshiro256)
	g.Seed(seed)
	return g
}

// NewXoshiro256State creates a Xoshiro256 generator with the provided
// state words, correcting an all-zero tuple via the D guard.
func NewXoshiro256State(a, b, c, d uint64) *Xoshiro256 {
	g := &Xoshiro256{a: a, b: b, c: c}
	g.SetStateWord(3, d)
	return g
}

// Seed derives all four state words from one scalar.
func (g *Xoshiro256) Seed(seed uint64) {
	seed += goldenGamma
	g.a = mixSeed(seed)
	seed += goldenGamma
	g.b = mixSeed(seed)
	seed += goldenGamma
	g.c = mixSeed(seed)
	seed += goldenGamma
	g.SetStateWord(3, mixSeed(seed))
}

// NextWord advances the state by one step and returns the output,
// computed from the pre-update word B.
func (g *Xoshiro256) NextWord() uint64 {
	result := bits.RotateLeft64(g.b*5, 7) * 9
	t := g.b << 17
	g.c ^= g.a
	g.d ^= g.b
	g.b ^= g.c
	g.a ^= g.d
	g.c ^= t
	g.d = bits.RotateLeft64(g.d, 45)
	return result
}

// StateLen returns 4.
func (g *Xoshiro256) StateLen() int { return 4 }

// StateWord returns state word i (A, B, C, D order); out-of-range
// indices clamp to D.
func (g *Xoshiro256) StateWord(i int) uint64 {
	switch i {
	case 0:
		return g.a
	case 1:
		return g.b
	case 2:
		return g.c
	default:
		return g.d
	}
}

// SetStateWord replaces state word i; out-of-range indices clamp
// to D. Setting D such that the whole tuple would become zero
// forces D to all ones instead.
func (g *Xoshiro256) SetStateWord(i int, v uint64) {
	switch i {
	case 0:
		g.a = v
	case 1:
		g.b = v
	case 2:
		g.c = v
	default:
		if g.a|g.b|g.c|v == 0 {
			v = ^uint64(0)
		}
		g.d = v
	}
}

// Capabilities reports read and write support only.
func (g *Xoshiro256) Capabilities() Capability {
	return CapReadState | CapWriteState
}

// Tag returns TagXoshiro256.
func (g *Xoshiro256) Tag() string { return TagXoshiro256 }

// Copy returns an independent generator with identical state.
func (g *Xoshiro256) Copy() Generator {
	cp := *g
	return &cp
}

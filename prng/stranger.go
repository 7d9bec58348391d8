package prng

import "math/bits"

// TagStranger identifies the four-word long-minimum-period generator.
const TagStranger = "StrR"

const (
	strangerInc = 0xC6BC279692B5C323
	// strangerPoly is a primitive GF(2) polynomial over the (7, 9)
	// xorshift word evolution used by strangerJump.
	strangerPoly = 0x5556837749D9A17F
	// Nonzero fallbacks substituted whenever word A or B would be
	// assigned zero; zero is a fixed point of the xorshift pair and
	// would collapse both sub-streams.
	strangerFallbackA = 0xD3833E804F4C574B
	strangerFallbackB = 0x790B300BF9FE738F
)

// strangerJump advances a word far through the xorshift sub-stream by
// evaluating 63 rounds of the shift-XOR evolution against
// strangerPoly. It is used at seeding time to separate the A/B
// sub-streams and to decorrelate word C from the seed.
func strangerJump(state uint64) uint64 {
	var val uint64
	for i, b := 0, uint64(1); i < 63; i, b = i+1, b<<1 {
		if strangerPoly&b != 0 {
			val ^= state
		}
		state ^= state << 7
		state ^= state >> 9
	}
	return val
}

// Stranger is a four-word generator interleaving two xorshift
// sub-streams (words A and B) with a rotate-subtract pipeline over
// words C and D, giving a long guaranteed minimum period. Words A
// and B must never be zero; assignments substitute fixed nonzero
// fallbacks. The transition is not invertible and has no O(1)
// jump-ahead.
type Stranger struct {
	a, b, c, d uint64
}

// NewStranger creates a Stranger generator seeded with seed.
func NewStranger(seed uint64) *Stranger {
	g := new(Stranger)
	g.Seed(seed)
	return g
}

// NewStrangerState creates a Stranger generator with the provided
// state words, substituting the nonzero fallbacks for zero a or b.
func NewStrangerState(a, b, c, d uint64) *Stranger {
	g := &Stranger{c: c, d: d}
	g.SetStateWord(0, a)
	g.SetStateWord(1, b)
	return g
}

// Seed derives all four state words from one scalar. A and B are
// placed on distant points of the same xorshift sub-stream via
// strangerJump, and C is decorrelated from the seed the same way.
func (g *Stranger) Seed(seed uint64) {
	seed += goldenGamma
	g.SetStateWord(0, mixSeed(seed))
	g.SetStateWord(1, strangerJump(g.a))
	g.c = strangerJump(g.b)
	seed += goldenGamma
	g.d = mixSeed(seed)
}

// NextWord advances the state by one step and returns the output.
func (g *Stranger) NextWord() uint64 {
	a, b, c, d := g.a, g.b, g.c, g.d
	g.a = b ^ b<<7
	g.b = a ^ a>>9
	g.c = bits.RotateLeft64(d, 39) - b
	g.d = a - c + strangerInc
	return c
}

// StateLen returns 4.
func (g *Stranger) StateLen() int { return 4 }

// StateWord returns state word i (A, B, C, D order); out-of-range
// indices clamp to D.
func (g *Stranger) StateWord(i int) uint64 {
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
// to D. Zero values for A or B are replaced with the fixed fallback
// constants.
func (g *Stranger) SetStateWord(i int, v uint64) {
	switch i {
	case 0:
		if v == 0 {
			v = strangerFallbackA
		}
		g.a = v
	case 1:
		if v == 0 {
			v = strangerFallbackB
		}
		g.b = v
	case 2:
		g.c = v
	default:
		g.d = v
	}
}

// Capabilities reports read and write support only.
func (g *Stranger) Capabilities() Capability {
	return CapReadState | CapWriteState
}

// Tag returns TagStranger.
func (g *Stranger) Tag() string { return TagStranger }

// Copy returns an independent generator with identical state.
func (g *Stranger) Copy() Generator {
	cp := *g
	return &cp
}

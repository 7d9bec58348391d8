package prng

// TagLaser identifies the two-word skip-capable generator.
const TagLaser = "LasR"

const (
	laserIncA = 0xC6BC279692B5C323
	laserIncB = 0x9E3779B97F4A7C16
)

// Laser is a two-word generator built from two additive counters fed
// through an output scrambler. Both counter updates are per-step
// additive, which yields O(1) jump-ahead in either direction.
// State word B is kept odd on every assignment; laserIncB is even, so
// the additive updates preserve the invariant by themselves.
type Laser struct {
	a, b uint64
}

// NewLaser creates a Laser generator seeded with seed.
func NewLaser(seed uint64) *Laser {
	g := new(Laser)
	g.Seed(seed)
	return g
}

// NewLaserState creates a Laser generator with the provided state
// words. b has its low bit forced to 1.
func NewLaserState(a, b uint64) *Laser {
	return &Laser{a: a, b: b | 1}
}

// Seed derives both state words from one scalar.
func (g *Laser) Seed(seed uint64) {
	seed += goldenGamma
	g.a = mixSeed(seed)
	seed += goldenGamma
	g.b = mixSeed(seed) | 1
}

// NextWord advances the state by one step and returns the output.
func (g *Laser) NextWord() uint64 {
	g.a += laserIncA
	s := g.a
	g.b += laserIncB
	z := (s ^ s>>31) * g.b
	return z ^ z>>26 ^ z>>6
}

// PreviousWord steps the state back by one and returns the output
// word of the restored position. The counters are rewound in reverse
// assignment order before the scrambler runs.
func (g *Laser) PreviousWord() uint64 {
	g.b -= laserIncB
	g.a -= laserIncA
	s := g.a
	z := (s ^ s>>31) * g.b
	return z ^ z>>26 ^ z>>6
}

// Skip jumps the state by distance steps in O(1) and returns the
// output word of the final position. distance is interpreted modulo
// 2^64, so Skip(-n) rewinds n steps; Skip(1) equals NextWord and
// Skip(0) re-derives the most recently produced word.
func (g *Laser) Skip(distance uint64) uint64 {
	g.a += laserIncA * distance
	s := g.a
	g.b += laserIncB * distance
	z := (s ^ s>>31) * g.b
	return z ^ z>>26 ^ z>>6
}

// StateLen returns 2.
func (g *Laser) StateLen() int { return 2 }

// StateWord returns state word i (A, B order); out-of-range indices
// clamp to B.
func (g *Laser) StateWord(i int) uint64 {
	if i == 0 {
		return g.a
	}
	return g.b
}

// SetStateWord replaces state word i; out-of-range indices clamp
// to B. Word B always has its low bit forced to 1.
func (g *Laser) SetStateWord(i int, v uint64) {
	if i == 0 {
		g.a = v
	} else {
		g.b = v | 1
	}
}

// Capabilities reports read, write, skip and previous support.
func (g *Laser) Capabilities() Capability {
	return CapReadState | CapWriteState | CapSkip | CapPrevious
}

// Tag returns TagLaser.
func (g *Laser) Tag() string { return TagLaser }

// Copy returns an independent generator with identical state.
func (g *Laser) Copy() Generator {
	cp := *g
	return &cp
}

package prng

// ReversingSentinel is the leading tag character marking a serialized
// generator as direction-reversed. It is not registrable standalone.
const ReversingSentinel = 'r'

// Reversing inverts the stream direction of an invertible generator.
// It borrows the wrapped generator - no state is copied, every call
// delegates - so mutating the wrapped instance directly is visible
// through the adapter and vice versa.
type Reversing struct {
	wrapped Previous
}

// NewReversing wraps g, swapping the meaning of NextWord and
// PreviousWord. Returns ErrUnsupported when g's transition has no
// inverse.
func NewReversing(g Generator) (*Reversing, error) {
	p, ok := g.(Previous)
	if !ok || !g.Capabilities().Has(CapPrevious) {
		return nil, ErrUnsupported
	}
	return &Reversing{wrapped: p}, nil
}

// Unwrap returns the borrowed generator.
func (r *Reversing) Unwrap() Generator { return r.wrapped }

// Seed delegates to the wrapped generator.
func (r *Reversing) Seed(seed uint64) { r.wrapped.Seed(seed) }

// NextWord produces the wrapped generator's previous word.
func (r *Reversing) NextWord() uint64 { return r.wrapped.PreviousWord() }

// PreviousWord produces the wrapped generator's next word.
func (r *Reversing) PreviousWord() uint64 { return r.wrapped.NextWord() }

// Skip jumps the wrapped generator by the 64-bit modular negation of
// distance. Panics with ErrUnsupported when the wrapped generator
// cannot skip; callers must check Capabilities first.
func (r *Reversing) Skip(distance uint64) uint64 {
	s, ok := r.wrapped.(Skipper)
	if !ok || !r.wrapped.Capabilities().Has(CapSkip) {
		panic(ErrUnsupported)
	}
	return s.Skip(-distance)
}

// StateLen delegates to the wrapped generator.
func (r *Reversing) StateLen() int { return r.wrapped.StateLen() }

// StateWord delegates to the wrapped generator.
func (r *Reversing) StateWord(i int) uint64 { return r.wrapped.StateWord(i) }

// SetStateWord delegates to the wrapped generator.
func (r *Reversing) SetStateWord(i int, v uint64) { r.wrapped.SetStateWord(i, v) }

// Capabilities forwards the wrapped generator's flags verbatim.
func (r *Reversing) Capabilities() Capability { return r.wrapped.Capabilities() }

// Tag returns the wrapped generator's tag with its first character
// replaced by ReversingSentinel, which is also the wire tag of the
// adapter's serialized form.
func (r *Reversing) Tag() string {
	return string(ReversingSentinel) + r.wrapped.Tag()[1:]
}

// Copy deep-copies the wrapped generator and wraps the copy.
func (r *Reversing) Copy() Generator {
	return &Reversing{wrapped: r.wrapped.Copy().(Previous)}
}

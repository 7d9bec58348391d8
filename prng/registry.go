package prng

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ErrFormat is the base error of every deserialization failure:
// malformed or truncated input, bad hex fields, unknown tags.
var ErrFormat = errors.New("malformed serialized generator")

// ErrUnknownTag is returned by Deserialize and New when no prototype
// is registered under the requested tag.
var ErrUnknownTag = fmt.Errorf("%w: tag not registered", ErrFormat)

// Registry maps tags to prototype generator instances, so a
// serialized string can be reconstructed without knowing its concrete
// type ahead of time. Prototypes are never mutated after
// registration; deserialization clones them and fills the clone's
// state words positionally.
type Registry struct {
	protosM sync.RWMutex
	protos  map[string]Generator
}

// NewRegistry creates a Registry preloaded with the four standalone
// generator types.
func NewRegistry() *Registry {
	r := &Registry{protos: make(map[string]Generator, 4)}
	r.Register(TagFourWheel, NewFourWheelState(0, 0, 0, 0))
	r.Register(TagLaser, NewLaserState(0, 0))
	r.Register(TagStranger, NewStrangerState(0, 0, 0, 0))
	r.Register(TagXoshiro256, NewXoshiro256State(0, 0, 0, 0))
	return r
}

// Register binds tag to a prototype. Registering an already bound tag
// silently overwrites the previous binding (last writer wins), which
// lets tests substitute doubles. Panics on an empty or non-4-character
// tag, a tag starting with ReversingSentinel, or a nil prototype:
// those are programming errors, not runtime conditions.
func (r *Registry) Register(tag string, prototype Generator) {
	if len(tag) != 4 {
		panic("prng: tag must be exactly 4 characters")
	}
	if tag[0] == ReversingSentinel {
		panic("prng: tag must not start with the reversing sentinel")
	}
	if prototype == nil {
		panic("prng: could not register a nil prototype")
	}

	r.protosM.Lock()
	defer r.protosM.Unlock()
	r.protos[tag] = prototype
}

// New returns a fresh unseeded clone of the prototype registered
// under tag, or ErrUnknownTag.
func (r *Registry) New(tag string) (Generator, error) {
	r.protosM.RLock()
	defer r.protosM.RUnlock()

	proto, ok := r.protos[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
	return proto.Copy(), nil
}

// Tags returns the registered tags in unspecified order.
func (r *Registry) Tags() []string {
	r.protosM.RLock()
	defer r.protosM.RUnlock()

	tags := make([]string, 0, len(r.protos))
	for tag := range r.protos {
		tags = append(tags, tag)
	}
	return tags
}

// Serialize renders g's tag and state words as
//
//	"#" tag "`" HEX *("~" HEX) "`"
//
// with each word as uppercase hexadecimal in canonical order. A
// Reversing adapter serializes under its sentinel-prefixed tag but
// keeps the wrapped type's field layout.
func (r *Registry) Serialize(g Generator) string {
	var sb strings.Builder
	sb.Grow(7 + 17*g.StateLen())
	sb.WriteByte('#')
	sb.WriteString(g.Tag())
	sb.WriteByte('`')
	for i := 0; i < g.StateLen(); i++ {
		if i > 0 {
			sb.WriteByte('~')
		}
		sb.WriteString(strings.ToUpper(strconv.FormatUint(g.StateWord(i), 16)))
	}
	sb.WriteByte('`')
	return sb.String()
}

// Deserialize reconstructs a generator from its serialized form. The
// leading tag selects the registered prototype; a tag starting with
// ReversingSentinel selects the standalone type whose tag ends with
// the same 3 characters and wraps the result in a Reversing adapter.
// Unknown tags, malformed hex fields and word count mismatches
// surface as errors wrapping ErrFormat.
func (r *Registry) Deserialize(s string) (Generator, error) {
	if len(s) < 2 || s[0] != '#' {
		return nil, fmt.Errorf("%w: missing '#' prefix", ErrFormat)
	}
	tick := strings.IndexByte(s, '`')
	if tick < 0 {
		return nil, fmt.Errorf("%w: missing state block", ErrFormat)
	}
	tag, body := s[1:tick], s[tick+1:]
	if len(body) == 0 || body[len(body)-1] != '`' {
		return nil, fmt.Errorf("%w: unterminated state block", ErrFormat)
	}

	reversed := len(tag) > 0 && tag[0] == ReversingSentinel
	var proto Generator
	var err error
	if reversed {
		proto, err = r.findBySuffix(tag[1:])
	} else {
		proto, err = r.New(tag)
	}
	if err != nil {
		return nil, err
	}

	g := proto
	words := strings.Split(body[:len(body)-1], "~")
	if len(words) != g.StateLen() {
		return nil, fmt.Errorf("%w: expected %d state words, got %d",
			ErrFormat, g.StateLen(), len(words))
	}
	for i, w := range words {
		v, err := strconv.ParseUint(w, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad state word %q", ErrFormat, w)
		}
		g.SetStateWord(i, v)
	}

	if reversed {
		return NewReversing(g)
	}
	return g, nil
}

// findBySuffix resolves the standalone tag hidden behind the
// reversing sentinel: the registered 4-character tag sharing the
// remaining 3 characters. Returns a fresh clone of its prototype.
func (r *Registry) findBySuffix(suffix string) (Generator, error) {
	if len(suffix) != 3 {
		return nil, fmt.Errorf("%w: bare reversing sentinel", ErrFormat)
	}

	r.protosM.RLock()
	defer r.protosM.RUnlock()

	var found Generator
	for tag, proto := range r.protos {
		if strings.HasSuffix(tag, suffix) {
			if found != nil {
				return nil, fmt.Errorf("%w: ambiguous reversed tag suffix %q", ErrFormat, suffix)
			}
			found = proto
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: r%s", ErrUnknownTag, suffix)
	}
	return found.Copy(), nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide Registry holding the four
// standalone generator types, built once on first use.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Serialize renders g using the default Registry.
func Serialize(g Generator) string { return Default().Serialize(g) }

// Deserialize reconstructs a generator using the default Registry.
func Deserialize(s string) (Generator, error) { return Default().Deserialize(s) }

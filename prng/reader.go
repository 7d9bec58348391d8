package prng

import "encoding/binary"

// Reader adapts a Generator to io.Reader, exposing its output as a
// little-endian byte stream. Useful for feeding entropy-hungry APIs
// (ULID generation and the like) from a deterministic source. Read
// never fails and never returns short.
type Reader struct {
	g   Generator
	buf [8]byte
	n   int
}

// NewReader wraps g; the generator is borrowed, not copied.
func NewReader(g Generator) *Reader {
	return &Reader{g: g}
}

// Read fills p from the generator's byte stream.
func (r *Reader) Read(p []byte) (int, error) {
	total := len(p)
	for len(p) > 0 {
		if r.n == 0 {
			binary.LittleEndian.PutUint64(r.buf[:], r.g.NextWord())
			r.n = len(r.buf)
		}
		c := copy(p, r.buf[len(r.buf)-r.n:])
		r.n -= c
		p = p[c:]
	}
	return total, nil
}

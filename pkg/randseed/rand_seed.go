// Package randseed provides non-deterministic scalar seeds for
// deterministic generators.
package randseed

import (
	cr "crypto/rand"
	"encoding/binary"
	"time"
)

// GenSeed returns a 64-bit seed from the crypto/rand source, or from
// the current time if crypto random fails.
func GenSeed() uint64 {
	var b [8]byte
	if _, err := cr.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.BigEndian.Uint64(b[:])
}

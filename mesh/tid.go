package mesh

import (
	"crypto/rand"
	"io"
	"sync/atomic"
)

// tidGenerator produces 8-bit transaction identifiers for unacknowledged and
// acknowledged set operations. The counter is seeded randomly and incremented
// once per logical user action, never per retransmission, so receivers can
// deduplicate retransmissions of one action while telling consecutive
// distinct actions apart.
type tidGenerator struct {
	id atomic.Uint32
}

func newTIDGenerator() *tidGenerator {
	gen := &tidGenerator{}
	var buf [1]byte
	if _, err := io.ReadFull(rand.Reader, buf[:]); err == nil {
		gen.id.Store(uint32(buf[0]))
	}
	return gen
}

func (g *tidGenerator) next() uint8 {
	return uint8(g.id.Add(1))
}

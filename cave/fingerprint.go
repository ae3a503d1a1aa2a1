package cave

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit content hash of the graph: node names, their
// classification, every adjacency row and the start/end roles. Two graphs
// built from the same edge list (in the same order) share a fingerprint.
// Path counts depend only on these inputs, so the fingerprint is a valid
// memoization key for them.
func (g *Graph) Fingerprint() uint64 {
	d := xxhash.New()
	var buf []byte

	buf = binary.BigEndian.AppendUint32(buf, uint32(len(g.names)))
	buf = binary.BigEndian.AppendUint32(buf, uint32(g.stride))
	buf = binary.BigEndian.AppendUint32(buf, uint32(g.start))
	buf = binary.BigEndian.AppendUint32(buf, uint32(g.end))
	_, _ = d.Write(buf)

	for id, name := range g.names {
		_, _ = d.WriteString(name)
		_, _ = d.Write([]byte{0, byte(g.sizes[id])})
	}

	buf = buf[:0]
	for _, n := range g.adj {
		buf = binary.BigEndian.AppendUint32(buf, uint32(n))
	}
	_, _ = d.Write(buf)

	return d.Sum64()
}

package adjacency

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the vertex set and the canonical edge set of l.
// Two lists with the same vertices and edges hash equally regardless of
// neighbor order or repeated entries; callers that need certainty compare
// Edges on collision.
// Complexity: O(E log E).
func Fingerprint(l List) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range l.Vertices() {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	// separator between the vertex block and the edge block
	_, _ = d.Write([]byte{0xff})
	for _, e := range l.Edges() {
		binary.LittleEndian.PutUint64(buf[:], uint64(e[0]))
		_, _ = d.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(e[1]))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// EqualEdges reports whether a and b have identical vertex and edge sets.
func EqualEdges(a, b List) bool {
	if len(a) != len(b) {
		return false
	}
	for v := range a {
		if _, ok := b[v]; !ok {
			return false
		}
	}
	ea, eb := a.Edges(), b.Edges()
	if len(ea) != len(eb) {
		return false
	}
	for i := range ea {
		if ea[i] != eb[i] {
			return false
		}
	}

	return true
}

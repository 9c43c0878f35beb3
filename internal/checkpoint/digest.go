package checkpoint

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/hailam/eternity/internal/puzzle"
)

// Digest returns a stable fingerprint of a tile set's contents: every
// tile's id and raw edge colors, in ascending-id order. Two TileSets built
// from the same puzzle file hash identically regardless of map iteration
// order; a checkpoint's recorded digest is compared against this on resume
// to refuse loading a record against the wrong puzzle (spec.md §4.11).
func Digest(ts *puzzle.TileSet) uint64 {
	h := xxhash.New()
	var buf [4]byte
	for _, t := range ts.Tiles() {
		binary.LittleEndian.PutUint32(buf[:], t.ID)
		h.Write(buf[:])
		for _, c := range t.Edges {
			binary.LittleEndian.PutUint32(buf[:], uint32(c))
			h.Write(buf[:])
		}
	}
	return h.Sum64()
}

package edgeindex

import (
	"github.com/hailam/eternity/internal/bitset"
	"github.com/hailam/eternity/internal/puzzle"
)

// Slot addresses a single (tile, rotation) placement in the packed bitset
// address space: slot = denseTileIndex*4 + rotation.
type Slot = int

// EdgeIndex is the precomputed per-direction, per-color bucket set built
// once from a TileSet: by_north[c], by_east[c], by_south[c], by_west[c] in
// spec.md §3 terms. Immutable after Build; shared read-only by all workers.
type EdgeIndex struct {
	ts       *puzzle.TileSet
	numTiles int
	numSlots int

	// byDir[d][c] is the set of slots whose exposed edge in direction d
	// equals color c.
	byDir [4][]bitset.Set
}

// Build constructs an EdgeIndex from the given TileSet.
func Build(ts *puzzle.TileSet) *EdgeIndex {
	n := ts.Len()
	ei := &EdgeIndex{ts: ts, numTiles: n, numSlots: n * 4}

	for d := 0; d < 4; d++ {
		ei.byDir[d] = make([]bitset.Set, puzzle.MaxColors)
		for c := range ei.byDir[d] {
			ei.byDir[d][c] = bitset.New(ei.numSlots)
		}
	}

	for i, tile := range ts.Tiles() {
		for r := 0; r < 4; r++ {
			slot := i*4 + r
			for d := puzzle.Direction(0); d < 4; d++ {
				color := tile.EdgeAt(r, d)
				if int(color) < puzzle.MaxColors {
					ei.byDir[d][color].Set(slot)
				}
			}
		}
	}

	return ei
}

// NumSlots returns the size of the packed (tile, rotation) address space,
// 4 * TileSet.Len().
func (ei *EdgeIndex) NumSlots() int {
	return ei.numSlots
}

// SlotOf returns the packed slot for a placement.
func (ei *EdgeIndex) SlotOf(p puzzle.Placement) Slot {
	return ei.ts.DenseIndex(p.TileID())*4 + p.Rotation()
}

// PlacementAt inverts SlotOf.
func (ei *EdgeIndex) PlacementAt(slot Slot) puzzle.Placement {
	return puzzle.NewPlacement(ei.ts.IDAt(slot/4), slot%4)
}

// PromoteTileMask expands a tile-id-level "available" bitset (size
// numTiles, indexed by dense tile index) into the 4x larger slot-level
// bitset used by CellDomain: a tile contributes all 4 of its rotation slots
// iff its tile bit is set.
func (ei *EdgeIndex) PromoteTileMask(tileMask bitset.Set) bitset.Set {
	out := bitset.New(ei.numSlots)
	tileMask.Each(func(i int) bool {
		for r := 0; r < 4; r++ {
			out.Set(i*4 + r)
		}
		return true
	})
	return out
}

// Required pairs a direction with the color a neighbor (or the border)
// demands on that side.
type Required struct {
	Dir   puzzle.Direction
	Color puzzle.Color
}

// Query returns the set of slots matching every required (direction,
// color) constraint, restricted to the given available tile mask. Never
// fails; returns an empty set on infeasible constraints.
func (ei *EdgeIndex) Query(required []Required, availableTiles bitset.Set) bitset.Set {
	result := bitset.New(ei.numSlots)
	result.SetAll()
	for _, req := range required {
		if int(req.Color) >= puzzle.MaxColors {
			result.ClearAll()
			return result
		}
		result.AndInPlace(ei.byDir[req.Dir][req.Color])
	}
	result.AndInPlace(ei.PromoteTileMask(availableTiles))
	return result
}

// MatchingSlots returns every slot whose exposed edge in direction d equals
// c, independent of tile availability. Used by the propagator to test
// "does some value in a neighbor's domain support this candidate" without
// allocating.
func (ei *EdgeIndex) MatchingSlots(d puzzle.Direction, c puzzle.Color) bitset.Set {
	return ei.byDir[d][c]
}

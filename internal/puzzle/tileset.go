package puzzle

import (
	"fmt"
	"sort"
)

// RawTile is the input shape NewTileSet consumes: an id and its four raw
// edge colors in N,E,S,W order, before rotation tables are built.
type RawTile struct {
	ID    uint32
	Edges [4]Color
}

// TileSet is the immutable tile catalog. It is built once and shared
// read-only by every worker.
type TileSet struct {
	tiles  map[uint32]*Tile
	sorted []*Tile // by ID, for deterministic iteration

	denseIdx map[uint32]int // tile id -> 0..Len()-1, for compact bitset addressing

	corners  []uint32
	edges    []uint32
	interior []uint32
}

// NewTileSet builds a TileSet from raw tile definitions, rejecting
// duplicate ids and negative colors with ErrBadInput.
func NewTileSet(raw []RawTile) (*TileSet, error) {
	ts := &TileSet{tiles: make(map[uint32]*Tile, len(raw))}

	for _, r := range raw {
		if _, dup := ts.tiles[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tile id %d", ErrBadInput, r.ID)
		}
		for _, c := range r.Edges {
			if c < 0 {
				return nil, fmt.Errorf("%w: tile %d has negative color %d", ErrBadInput, r.ID, c)
			}
			if c >= MaxColors {
				return nil, fmt.Errorf("%w: tile %d has color %d exceeding MaxColors", ErrBadInput, r.ID, c)
			}
		}

		t := &Tile{ID: r.ID, Edges: r.Edges}
		t.build()
		ts.tiles[r.ID] = t

		switch t.kind {
		case Corner:
			ts.corners = append(ts.corners, t.ID)
		case Edge:
			ts.edges = append(ts.edges, t.ID)
		default:
			ts.interior = append(ts.interior, t.ID)
		}
	}

	ts.sorted = make([]*Tile, 0, len(ts.tiles))
	for _, t := range ts.tiles {
		ts.sorted = append(ts.sorted, t)
	}
	sort.Slice(ts.sorted, func(i, j int) bool { return ts.sorted[i].ID < ts.sorted[j].ID })

	ts.denseIdx = make(map[uint32]int, len(ts.sorted))
	for i, t := range ts.sorted {
		ts.denseIdx[t.ID] = i
	}

	return ts, nil
}

// DenseIndex returns the tile's position (0..Len()-1) in ascending-id order.
// Bitset-backed structures (CellDomain, EdgeIndex buckets) address tiles by
// this compact index rather than by raw (possibly sparse) id.
func (ts *TileSet) DenseIndex(id uint32) int {
	return ts.denseIdx[id]
}

// IDAt returns the tile id at dense index i, the inverse of DenseIndex.
func (ts *TileSet) IDAt(i int) uint32 {
	return ts.sorted[i].ID
}

// Tile returns the tile with the given id, or nil if absent.
func (ts *TileSet) Tile(id uint32) *Tile {
	return ts.tiles[id]
}

// Len returns the number of tiles in the catalog.
func (ts *TileSet) Len() int {
	return len(ts.tiles)
}

// Tiles returns all tiles in ascending id order. The caller must not mutate
// the returned slice's elements.
func (ts *TileSet) Tiles() []*Tile {
	return ts.sorted
}

// Corners, Edges, Interior return the tile ids of each classification, in
// the order tiles were added.
func (ts *TileSet) Corners() []uint32  { return ts.corners }
func (ts *TileSet) Edges() []uint32    { return ts.edges }
func (ts *TileSet) Interior() []uint32 { return ts.interior }

// ValidateCounts checks the invariant from spec.md §4.1: exactly 4 corner
// tiles, and 2*(rows-2)+2*(cols-2) edge tiles, for rows,cols >= 2. Violation
// surfaces as ErrUnsolvableByCounts before search starts.
func (ts *TileSet) ValidateCounts(rows, cols int) error {
	if rows < 2 || cols < 2 {
		// Degenerate 1xN / 1x1 boards fall outside the corner/edge/interior
		// shape this invariant assumes; skip the count check.
		return nil
	}
	if len(ts.corners) != 4 {
		return fmt.Errorf("%w: expected 4 corner tiles, found %d", ErrUnsolvableByCounts, len(ts.corners))
	}
	wantEdges := 2*(rows-2) + 2*(cols-2)
	if len(ts.edges) != wantEdges {
		return fmt.Errorf("%w: expected %d edge tiles for a %dx%d board, found %d",
			ErrUnsolvableByCounts, wantEdges, rows, cols, len(ts.edges))
	}
	if len(ts.corners)+len(ts.edges)+len(ts.interior) != rows*cols {
		return fmt.Errorf("%w: tile count %d does not match board size %dx%d",
			ErrBadInput, len(ts.tiles), rows, cols)
	}
	return nil
}

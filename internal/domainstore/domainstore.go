package domainstore

import (
	"github.com/hailam/eternity/internal/bitset"
	"github.com/hailam/eternity/internal/board"
	"github.com/hailam/eternity/internal/edgeindex"
	"github.com/hailam/eternity/internal/puzzle"
)

// removal is one (cell, slot) pair cleared while a frame was open.
type removal struct {
	cell int
	slot int
}

// frame is one push/pop bracket's worth of removals, replayed in reverse
// to roll a branch back.
type frame struct {
	removals []removal
}

// DomainStore holds one CellDomain bitset per grid cell plus the diff-frame
// stack that makes mutations reversible.
type DomainStore struct {
	rows, cols int
	ei         *edgeindex.EdgeIndex

	cells  []bitset.Set
	frames []frame
}

// New allocates an empty-domain store sized to rows*cols cells, each domain
// a fresh zero bitset over ei's slot space. Call Init to populate it from a
// board.
func New(rows, cols int, ei *edgeindex.EdgeIndex) *DomainStore {
	ds := &DomainStore{rows: rows, cols: cols, ei: ei, cells: make([]bitset.Set, rows*cols)}
	for i := range ds.cells {
		ds.cells[i] = bitset.New(ei.NumSlots())
	}
	return ds
}

func (ds *DomainStore) index(row, col int) int {
	return row*ds.cols + col
}

// CellIndex exposes the row-major index computation so callers (the
// propagator, the selector) can address cells by a single int once they've
// looked up row/col, without reaching into unexported state.
func (ds *DomainStore) CellIndex(row, col int) int {
	return ds.index(row, col)
}

// Dims returns the store's row/column extent.
func (ds *DomainStore) Dims() (rows, cols int) {
	return ds.rows, ds.cols
}

// Domain returns the current domain bitset for a cell. The returned value
// shares backing storage with the store — callers must use Remove/
// SetSingleton to mutate it, never the bitset's own Set/Clear, or frame
// rollback will not see the change.
func (ds *DomainStore) Domain(cellIdx int) bitset.Set {
	return ds.cells[cellIdx]
}

// DomainSize returns the number of candidates remaining for a cell.
func (ds *DomainStore) DomainSize(cellIdx int) int {
	return ds.cells[cellIdx].PopCount()
}

// Init computes each empty cell's initial domain from its occupied
// neighbors' exposed edges, the cell's border constraints, and the board's
// used-tile set.
func (ds *DomainStore) Init(b *board.Board, ts *puzzle.TileSet) {
	avail := complement(b.UsedMask(), ts.Len())

	for row := 0; row < ds.rows; row++ {
		for col := 0; col < ds.cols; col++ {
			idx := ds.index(row, col)
			if !b.IsEmpty(row, col) {
				ds.cells[idx] = bitset.New(ds.ei.NumSlots())
				continue
			}
			required := cellConstraints(b, ts, row, col)
			ds.cells[idx] = ds.ei.Query(required, avail)
		}
	}
}

// cellConstraints gathers the required (direction, color) pairs a cell at
// (row,col) must satisfy: BorderColor on any side facing outside the grid,
// and the neighbor's facing edge color on any side with an occupied
// neighbor.
func cellConstraints(b *board.Board, ts *puzzle.TileSet, row, col int) []edgeindex.Required {
	var req []edgeindex.Required

	if row == 0 {
		req = append(req, edgeindex.Required{Dir: puzzle.North, Color: puzzle.BorderColor})
	} else if p, ok := b.Get(row-1, col); ok {
		tile := ts.Tile(p.TileID())
		req = append(req, edgeindex.Required{Dir: puzzle.North, Color: tile.EdgeAt(p.Rotation(), puzzle.South)})
	}
	if row == b.Rows-1 {
		req = append(req, edgeindex.Required{Dir: puzzle.South, Color: puzzle.BorderColor})
	} else if p, ok := b.Get(row+1, col); ok {
		tile := ts.Tile(p.TileID())
		req = append(req, edgeindex.Required{Dir: puzzle.South, Color: tile.EdgeAt(p.Rotation(), puzzle.North)})
	}
	if col == 0 {
		req = append(req, edgeindex.Required{Dir: puzzle.West, Color: puzzle.BorderColor})
	} else if p, ok := b.Get(row, col-1); ok {
		tile := ts.Tile(p.TileID())
		req = append(req, edgeindex.Required{Dir: puzzle.West, Color: tile.EdgeAt(p.Rotation(), puzzle.East)})
	}
	if col == b.Cols-1 {
		req = append(req, edgeindex.Required{Dir: puzzle.East, Color: puzzle.BorderColor})
	} else if p, ok := b.Get(row, col+1); ok {
		tile := ts.Tile(p.TileID())
		req = append(req, edgeindex.Required{Dir: puzzle.East, Color: tile.EdgeAt(p.Rotation(), puzzle.West)})
	}

	return req
}

// complement returns the n-bit bitset of everything NOT set in used —
// i.e. the tiles still available for placement.
func complement(used bitset.Set, n int) bitset.Set {
	out := bitset.New(n)
	out.SetAll()
	for i := 0; i < n; i++ {
		if used.Has(i) {
			out.Clear(i)
		}
	}
	return out
}

// PushFrame opens a new mutation frame. Every Remove/SetSingleton call
// until the matching PopFrame is recorded and reversible.
func (ds *DomainStore) PushFrame() {
	ds.frames = append(ds.frames, frame{})
}

// PopFrame closes the most recent frame, re-inserting every pair it
// removed. After PopFrame, the store is bit-identical to its state before
// the matching PushFrame.
func (ds *DomainStore) PopFrame() {
	n := len(ds.frames)
	f := ds.frames[n-1]
	ds.frames = ds.frames[:n-1]
	for i := len(f.removals) - 1; i >= 0; i-- {
		r := f.removals[i]
		ds.cells[r.cell].Set(r.slot)
	}
}

// Remove clears slot from cellIdx's domain, recording it in the current
// frame. Idempotent: removing an already-absent slot is a no-op.
func (ds *DomainStore) Remove(cellIdx, slot int) {
	if !ds.cells[cellIdx].Has(slot) {
		return
	}
	ds.cells[cellIdx].Clear(slot)
	if n := len(ds.frames); n > 0 {
		ds.frames[n-1].removals = append(ds.frames[n-1].removals, removal{cell: cellIdx, slot: slot})
	}
}

// SetSingleton replaces cellIdx's domain with {slot}, recording every other
// removed pair in the current frame.
func (ds *DomainStore) SetSingleton(cellIdx, slot int) {
	ds.cells[cellIdx].Each(func(i int) bool {
		if i != slot {
			ds.Remove(cellIdx, i)
		}
		return true
	})
}

// Clone returns an independent deep copy with an empty frame stack — used
// when handing each worker its own DomainStore.
func (ds *DomainStore) Clone() *DomainStore {
	out := &DomainStore{rows: ds.rows, cols: ds.cols, ei: ds.ei, cells: make([]bitset.Set, len(ds.cells))}
	for i, c := range ds.cells {
		out.cells[i] = c.Clone()
	}
	return out
}

package propagator

import (
	"github.com/hailam/eternity/internal/board"
	"github.com/hailam/eternity/internal/domainstore"
	"github.com/hailam/eternity/internal/edgeindex"
	"github.com/hailam/eternity/internal/puzzle"
)

// Result is the outcome of a propagation pass.
type Result int

const (
	Consistent Result = iota
	DeadEnd
)

// Propagator runs AC-3 over a fixed TileSet/EdgeIndex. It holds no
// per-search mutable state — everything mutable lives in the Board and
// DomainStore passed to Propagate.
type Propagator struct {
	ts *puzzle.TileSet
	ei *edgeindex.EdgeIndex
}

// New builds a Propagator bound to the given (immutable) TileSet and
// EdgeIndex.
func New(ts *puzzle.TileSet, ei *edgeindex.EdgeIndex) *Propagator {
	return &Propagator{ts: ts, ei: ei}
}

// Propagate runs a FIFO AC-3 sweep seeded with the given cell indices
// (typically: the empty neighbors of a cell that just changed). Before the
// sweep it removes every placed tile's slots from every empty cell's domain
// and queues each cell that lost one, so no domain offers a used tile. It returns
// DeadEnd as soon as any cell's domain is pruned to empty, and Consistent
// once the queue drains with no such collapse.
//
// Idempotent: calling Propagate again with no intervening mutation (e.g.
// re-seeding with the same cells) makes no further changes, since revise
// only removes candidates that are already unsupported.
func (p *Propagator) Propagate(b *board.Board, ds *domainstore.DomainStore, seeds []int) Result {
	rows, cols := ds.Dims()
	inQueue := make([]bool, rows*cols)
	queue := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if !inQueue[s] {
			inQueue[s] = true
			queue = append(queue, s)
		}
	}

	used := b.UsedMask()
	for idx := 0; idx < rows*cols; idx++ {
		if !b.IsEmpty(idx/cols, idx%cols) {
			continue
		}
		before := ds.DomainSize(idx)
		for _, slot := range ds.Domain(idx).Slice() {
			if used.Has(slot / 4) {
				ds.Remove(idx, slot)
			}
		}
		if ds.DomainSize(idx) != before && !inQueue[idx] {
			inQueue[idx] = true
			queue = append(queue, idx)
		}
	}

	for len(queue) > 0 {
		cellIdx := queue[0]
		queue = queue[1:]
		inQueue[cellIdx] = false

		row, col := cellIdx/cols, cellIdx%cols
		if !b.IsEmpty(row, col) {
			continue // occupied cells carry no domain to revise
		}

		changed, empty := p.revise(b, ds, row, col, cellIdx)
		if empty {
			return DeadEnd
		}
		if !changed {
			continue
		}

		for d := puzzle.Direction(0); d < 4; d++ {
			dr, dc := d.Offset()
			nr, nc := row+dr, col+dc
			if !b.InBounds(nr, nc) || !b.IsEmpty(nr, nc) {
				continue
			}
			nIdx := ds.CellIndex(nr, nc)
			if !inQueue[nIdx] {
				inQueue[nIdx] = true
				queue = append(queue, nIdx)
			}
		}
	}

	return Consistent
}

// revise removes every candidate from cellIdx's domain that lacks support
// in some cardinal direction, per spec.md §4.5: a direction is satisfied
// either by a concrete match against an occupied neighbor (or the border,
// for directions facing outside the grid) or by at least one surviving
// candidate in an unoccupied neighbor's domain whose facing edge matches.
func (p *Propagator) revise(b *board.Board, ds *domainstore.DomainStore, row, col, cellIdx int) (changed, empty bool) {
	var toRemove []int

	ds.Domain(cellIdx).Each(func(slot int) bool {
		placement := p.ei.PlacementAt(slot)
		tile := p.ts.Tile(placement.TileID())

		if !p.supported(b, ds, tile, placement.Rotation(), row, col) {
			toRemove = append(toRemove, slot)
		}
		return true
	})

	for _, slot := range toRemove {
		ds.Remove(cellIdx, slot)
	}

	// empty must reflect the domain's actual size even when toRemove was
	// empty — a cell can enter revise already empty (e.g. Init found no
	// candidate at all), and that collapse must still surface as a
	// dead end rather than being masked as "nothing changed".
	return len(toRemove) > 0, ds.DomainSize(cellIdx) == 0
}

// supported reports whether tile at the given rotation, placed at
// (row, col), is consistent with every cardinal direction.
func (p *Propagator) supported(b *board.Board, ds *domainstore.DomainStore, tile *puzzle.Tile, rotation, row, col int) bool {
	for d := puzzle.Direction(0); d < 4; d++ {
		myColor := tile.EdgeAt(rotation, d)
		dr, dc := d.Offset()
		nr, nc := row+dr, col+dc

		if !b.InBounds(nr, nc) {
			if myColor != puzzle.BorderColor {
				return false
			}
			continue
		}

		if !b.IsEmpty(nr, nc) {
			np, _ := b.Get(nr, nc)
			ntile := p.ts.Tile(np.TileID())
			if ntile.EdgeAt(np.Rotation(), d.Opposite()) != myColor {
				return false
			}
			continue
		}

		// Neighbor is empty: some surviving candidate in its domain must
		// expose myColor on the side facing back toward us.
		nIdx := ds.CellIndex(nr, nc)
		candidates := p.ei.MatchingSlots(d.Opposite(), myColor).Clone()
		candidates.AndInPlace(ds.Domain(nIdx))
		if candidates.IsEmpty() {
			return false
		}
	}
	return true
}

// SeedForCell returns the cell indices of the empty cardinal neighbors of
// (row, col) — the standard seed set to pass to Propagate right after a
// placement or removal at (row, col).
func SeedForCell(b *board.Board, ds *domainstore.DomainStore, row, col int) []int {
	var seeds []int
	for d := puzzle.Direction(0); d < 4; d++ {
		dr, dc := d.Offset()
		nr, nc := row+dr, col+dc
		if b.InBounds(nr, nc) && b.IsEmpty(nr, nc) {
			seeds = append(seeds, ds.CellIndex(nr, nc))
		}
	}
	return seeds
}

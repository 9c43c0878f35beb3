package propagator

import (
	"fmt"

	"github.com/hailam/eternity/internal/board"
	"github.com/hailam/eternity/internal/domainstore"
)

// SingletonResult is the outcome of a ForceSingletons sweep.
type SingletonResult int

const (
	// Stable means a full sweep found no singleton domains to force.
	Stable SingletonResult = iota
	// Progressed means at least one cell was force-placed; the caller
	// should loop (propagate, then force_singletons again).
	Progressed
	// SingletonDeadEnd means forcing a placement led to an empty domain
	// somewhere; the caller must backtrack.
	SingletonDeadEnd
)

// Forced records one cell the detector placed this call, in placement
// order, so the caller can undo it (Board.Unplace) on backtrack. The
// cell's own domain is left untouched by propagation once occupied (see
// Propagate), so undoing is a pure Board operation — no domain repair
// needed.
type Forced struct {
	Row, Col int
}

// ForceSingletons scans all empty cells in row-major order, collects every
// cell whose domain is currently a singleton, and places them one at a
// time — re-propagating after each placement, since placing one singleton
// can invalidate (or create) others in the same sweep. Returns the list of
// cells it placed, for the caller to undo on backtrack.
func (p *Propagator) ForceSingletons(b *board.Board, ds *domainstore.DomainStore) ([]Forced, SingletonResult) {
	rows, cols := ds.Dims()
	var forced []Forced

	for {
		var candidates []int
		for idx := 0; idx < rows*cols; idx++ {
			row, col := idx/cols, idx%cols
			if b.IsEmpty(row, col) && ds.DomainSize(idx) == 1 {
				candidates = append(candidates, idx)
			}
		}
		if len(candidates) == 0 {
			break
		}

		progressedThisSweep := false
		for _, idx := range candidates {
			row, col := idx/cols, idx%cols
			if !b.IsEmpty(row, col) || ds.DomainSize(idx) != 1 {
				// Already placed, or pruned below/above 1 by an earlier
				// forced placement in this same sweep.
				continue
			}
			slot, ok := ds.Domain(idx).Singleton()
			if !ok {
				continue
			}
			placement := p.ei.PlacementAt(slot)
			if err := b.Place(row, col, placement); err != nil {
				panic(fmt.Sprintf("propagator: singleton forcing hit a used tile: %v", err))
			}
			forced = append(forced, Forced{Row: row, Col: col})
			progressedThisSweep = true

			seeds := SeedForCell(b, ds, row, col)
			if p.Propagate(b, ds, seeds) == DeadEnd {
				return forced, SingletonDeadEnd
			}
		}
		if !progressedThisSweep {
			break
		}
	}

	if len(forced) == 0 {
		return forced, Stable
	}
	return forced, Progressed
}

package cellselect

import (
	"github.com/hailam/eternity/internal/board"
	"github.com/hailam/eternity/internal/domainstore"
	"github.com/hailam/eternity/internal/puzzle"
)

// NextCell implements spec.md §4.7's next_cell contract: among empty cells,
// pick the one with the smallest domain, tie-broken by the largest number
// of occupied cardinal neighbors (degree), then by lexical (row, col).
// Returns ok=false when no empty cell remains.
func NextCell(b *board.Board, ds *domainstore.DomainStore) (row, col int, ok bool) {
	rows, cols := ds.Dims()

	bestIdx := -1
	bestSize := -1
	bestDegree := -1

	for idx := 0; idx < rows*cols; idx++ {
		r, c := idx/cols, idx%cols
		if !b.IsEmpty(r, c) {
			continue
		}
		size := ds.DomainSize(idx)
		if bestIdx == -1 || size < bestSize {
			bestIdx, bestSize, bestDegree = idx, size, degree(b, r, c)
			continue
		}
		if size == bestSize {
			d := degree(b, r, c)
			if d > bestDegree {
				bestIdx, bestDegree = idx, d
			}
			// Equal size and degree: keep the earlier (lexically smaller)
			// cell already held in bestIdx, since idx increases in
			// row-major order.
		}
	}

	if bestIdx == -1 {
		return 0, 0, false
	}
	return bestIdx / cols, bestIdx % cols, true
}

// degree counts (row, col)'s occupied cardinal neighbors.
func degree(b *board.Board, row, col int) int {
	n := 0
	for d := puzzle.Direction(0); d < 4; d++ {
		dr, dc := d.Offset()
		nr, nc := row+dr, col+dc
		if b.InBounds(nr, nc) && !b.IsEmpty(nr, nc) {
			n++
		}
	}
	return n
}

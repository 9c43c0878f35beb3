package board

import (
	"fmt"

	"github.com/hailam/eternity/internal/bitset"
	"github.com/hailam/eternity/internal/puzzle"
)

// cell holds one grid position's placement, if any.
type cell struct {
	occupied bool
	p        puzzle.Placement
}

// Board is the mutable R x C grid of tile placements plus the bitset of
// used tile ids, per spec.md §3.
type Board struct {
	Rows, Cols int

	ts    *puzzle.TileSet
	cells []cell // row-major, len Rows*Cols
	used  bitset.Set
}

// New allocates an empty Rows x Cols board over the given TileSet.
func New(rows, cols int, ts *puzzle.TileSet) *Board {
	return &Board{
		Rows: rows,
		Cols: cols,
		ts:   ts,
		cells: make([]cell, rows*cols),
		used:  bitset.New(ts.Len()),
	}
}

func (b *Board) index(row, col int) int {
	return row*b.Cols + col
}

// InBounds reports whether (row, col) is a valid cell.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// Get returns the placement at (row, col) and whether the cell is occupied.
func (b *Board) Get(row, col int) (puzzle.Placement, bool) {
	c := b.cells[b.index(row, col)]
	return c.p, c.occupied
}

// IsEmpty reports whether (row, col) holds no placement.
func (b *Board) IsEmpty(row, col int) bool {
	return !b.cells[b.index(row, col)].occupied
}

// Place records placement p at (row, col) and marks its tile id used. O(1).
// Returns ErrUsedTwice — a fatal bug, not a search signal — if the tile id
// is already placed elsewhere.
func (b *Board) Place(row, col int, p puzzle.Placement) error {
	idx := b.ts.DenseIndex(p.TileID())
	if b.used.Has(idx) {
		return fmt.Errorf("%w: tile %d already placed", ErrUsedTwice, p.TileID())
	}
	b.cells[b.index(row, col)] = cell{occupied: true, p: p}
	b.used.Set(idx)
	return nil
}

// Unplace clears (row, col) and frees its tile id. O(1). A no-op if the
// cell was already empty.
func (b *Board) Unplace(row, col int) {
	idx := b.index(row, col)
	c := b.cells[idx]
	if !c.occupied {
		return
	}
	b.used.Clear(b.ts.DenseIndex(c.p.TileID()))
	b.cells[idx] = cell{}
}

// UsedMask returns the bitset of currently-placed tile ids (by dense
// index). The caller must not mutate the returned set in place without
// cloning it first.
func (b *Board) UsedMask() bitset.Set {
	return b.used
}

// OccupiedCount returns the number of non-empty cells.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, c := range b.cells {
		if c.occupied {
			n++
		}
	}
	return n
}

// Clone returns an independent deep copy, for handing each worker its own
// Board.
func (b *Board) Clone() *Board {
	out := &Board{
		Rows:  b.Rows,
		Cols:  b.Cols,
		ts:    b.ts,
		cells: make([]cell, len(b.cells)),
		used:  b.used.Clone(),
	}
	copy(out.cells, b.cells)
	return out
}

// CalculateScore counts matching vs. total internal (adjacent-occupied)
// edges. Only the East and South neighbor of each cell are examined, so
// every shared edge is counted exactly once.
func (b *Board) CalculateScore() (matching, total int) {
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			p, ok := b.Get(row, col)
			if !ok {
				continue
			}
			tile := b.ts.Tile(p.TileID())

			if col+1 < b.Cols {
				if p2, ok2 := b.Get(row, col+1); ok2 {
					tile2 := b.ts.Tile(p2.TileID())
					total++
					if tile.EdgeAt(p.Rotation(), puzzle.East) == tile2.EdgeAt(p2.Rotation(), puzzle.West) {
						matching++
					}
				}
			}
			if row+1 < b.Rows {
				if p2, ok2 := b.Get(row+1, col); ok2 {
					tile2 := b.ts.Tile(p2.TileID())
					total++
					if tile.EdgeAt(p.Rotation(), puzzle.South) == tile2.EdgeAt(p2.Rotation(), puzzle.North) {
						matching++
					}
				}
			}
		}
	}
	return matching, total
}

// BorderSatisfied reports whether every occupied perimeter cell carries
// BorderColor on its outward-facing edges.
func (b *Board) BorderSatisfied() bool {
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			p, ok := b.Get(row, col)
			if !ok {
				continue
			}
			tile := b.ts.Tile(p.TileID())
			if row == 0 && tile.EdgeAt(p.Rotation(), puzzle.North) != puzzle.BorderColor {
				return false
			}
			if row == b.Rows-1 && tile.EdgeAt(p.Rotation(), puzzle.South) != puzzle.BorderColor {
				return false
			}
			if col == 0 && tile.EdgeAt(p.Rotation(), puzzle.West) != puzzle.BorderColor {
				return false
			}
			if col == b.Cols-1 && tile.EdgeAt(p.Rotation(), puzzle.East) != puzzle.BorderColor {
				return false
			}
		}
	}
	return true
}

// Full reports whether every cell is occupied.
func (b *Board) Full() bool {
	return b.OccupiedCount() == len(b.cells)
}

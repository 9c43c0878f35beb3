package cellselect

import (
	"testing"

	"github.com/hailam/eternity/internal/bitset"
	"github.com/hailam/eternity/internal/board"
	"github.com/hailam/eternity/internal/domainstore"
	"github.com/hailam/eternity/internal/edgeindex"
	"github.com/hailam/eternity/internal/puzzle"
)

func smallTileSet(t *testing.T) *puzzle.TileSet {
	t.Helper()
	ts, err := puzzle.NewTileSet([]puzzle.RawTile{
		{ID: 1, Edges: [4]puzzle.Color{0, 1, 2, 0}},
		{ID: 2, Edges: [4]puzzle.Color{0, 0, 2, 1}},
		{ID: 3, Edges: [4]puzzle.Color{2, 1, 0, 0}},
		{ID: 4, Edges: [4]puzzle.Color{2, 0, 0, 1}},
	})
	if err != nil {
		t.Fatalf("NewTileSet: %v", err)
	}
	return ts
}

func TestNextCellPrefersHigherDegreeOnTie(t *testing.T) {
	ts := smallTileSet(t)
	ei := edgeindex.Build(ts)
	b := board.New(2, 2, ts)
	ds := domainstore.New(2, 2, ei)
	ds.Init(b, ts)

	if err := b.Place(1, 1, puzzle.NewPlacement(4, 0)); err != nil {
		t.Fatalf("Place: %v", err)
	}
	ds.Init(b, ts)
	// (0,0) starts with three candidates and (0,1), (1,0) with two each;
	// drop one of (0,0)'s so all three empty cells tie on domain size.
	ds.Remove(ds.CellIndex(0, 0), ds.Domain(ds.CellIndex(0, 0)).Slice()[0])

	row, col, ok := NextCell(b, ds)
	if !ok {
		t.Fatal("expected an empty cell to select")
	}
	// (0,1) and (1,0) are both adjacent to the sole occupied cell (1,1); the
	// fully empty (0,0) has degree 0 and comes first in row-major order, so
	// only the degree tie-break keeps it from winning.
	if row == 0 && col == 0 {
		t.Errorf("NextCell picked (0,0), the lowest-degree empty cell")
	}
}

func TestNextCellReturnsFalseOnFullBoard(t *testing.T) {
	ts := smallTileSet(t)
	ei := edgeindex.Build(ts)
	b := board.New(1, 1, ts)
	ds := domainstore.New(1, 1, ei)
	ds.Init(b, ts)

	row, col, ok := NextCell(b, ds)
	if !ok {
		t.Fatal("expected an empty cell on a fresh 1x1 board")
	}

	slot, ok := ds.Domain(ds.CellIndex(row, col)).Singleton()
	if !ok {
		// Not every tileset yields a 1x1 singleton domain; fall back to
		// any surviving candidate.
		slots := ds.Domain(ds.CellIndex(row, col)).Slice()
		if len(slots) == 0 {
			t.Skip("no candidate fits a 1x1 board for this tileset")
		}
		slot = slots[0]
	}
	if err := b.Place(row, col, ei.PlacementAt(slot)); err != nil {
		t.Fatalf("Place: %v", err)
	}

	if _, _, ok := NextCell(b, ds); ok {
		t.Error("expected no empty cell left on a 1x1 board after placing its only cell")
	}
}

func TestOrdererAscendingDescendingAreReversed(t *testing.T) {
	ts := smallTileSet(t)
	ei := edgeindex.Build(ts)

	all := bitset.New(ts.Len())
	all.SetAll()
	domain := ei.PromoteTileMask(all)

	asc := NewOrderer(Ascending, 0).Order(domain.Clone())
	desc := NewOrderer(Descending, 0).Order(domain.Clone())

	if len(asc) != len(desc) {
		t.Fatalf("ascending/descending produced different lengths: %d vs %d", len(asc), len(desc))
	}
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("descending is not the reverse of ascending at %d: %v vs %v", i, asc, desc)
		}
	}
}

func TestOrdererFixedRandomIsDeterministicPerSeed(t *testing.T) {
	ts := smallTileSet(t)
	ei := edgeindex.Build(ts)

	all := bitset.New(ts.Len())
	all.SetAll()
	domain := ei.PromoteTileMask(all)

	a := NewOrderer(FixedRandom, 42).Order(domain.Clone())
	b := NewOrderer(FixedRandom, 42).Order(domain.Clone())
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders at %d: %v vs %v", i, a, b)
		}
	}
}

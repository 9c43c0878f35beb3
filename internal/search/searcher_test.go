package search

import (
	"sync/atomic"
	"testing"

	"github.com/hailam/eternity/internal/board"
	"github.com/hailam/eternity/internal/cellselect"
	"github.com/hailam/eternity/internal/domainstore"
	"github.com/hailam/eternity/internal/edgeindex"
	"github.com/hailam/eternity/internal/puzzle"
)

// uniqueTwoByTwo has exactly one rotation-assignment satisfying every
// internal edge plus the border, up to rotating the whole board (each inner
// color appears on exactly two tiles), per spec.md §8's 2x2 boundary case.
func uniqueTwoByTwo(t *testing.T) *puzzle.TileSet {
	t.Helper()
	ts, err := puzzle.NewTileSet([]puzzle.RawTile{
		{ID: 1, Edges: [4]puzzle.Color{0, 1, 2, 0}},
		{ID: 2, Edges: [4]puzzle.Color{0, 0, 3, 1}},
		{ID: 3, Edges: [4]puzzle.Color{2, 4, 0, 0}},
		{ID: 4, Edges: [4]puzzle.Color{3, 0, 0, 4}},
	})
	if err != nil {
		t.Fatalf("NewTileSet: %v", err)
	}
	return ts
}

func TestSolveFindsUniqueTwoByTwoSolution(t *testing.T) {
	ts := uniqueTwoByTwo(t)
	ei := edgeindex.Build(ts)
	b := board.New(2, 2, ts)
	ds := domainstore.New(2, 2, ei)
	ds.Init(b, ts)

	ord := cellselect.NewOrderer(cellselect.Ascending, 0)
	s := New(ts, ei, ord, Options{UseSingletons: true})

	outcome := s.Solve(b, ds)
	if outcome != Found {
		t.Fatalf("Solve returned %v, want Found", outcome)
	}
	if !b.Full() {
		t.Fatal("expected a fully placed board on Found")
	}
	matching, total := b.CalculateScore()
	if matching != total {
		t.Errorf("CalculateScore = %d/%d, want fully matching", matching, total)
	}
	if !b.BorderSatisfied() {
		t.Error("expected border satisfied")
	}

	snap := s.Stats().Snapshot()
	if snap.RecursiveCalls == 0 {
		t.Error("expected at least one recursive call recorded")
	}
}

func TestSolveReportsExhaustedOnUnsolvablePuzzle(t *testing.T) {
	// Flip tile 4's edges so no internal-edge-consistent assignment exists.
	ts, err := puzzle.NewTileSet([]puzzle.RawTile{
		{ID: 1, Edges: [4]puzzle.Color{0, 1, 2, 0}},
		{ID: 2, Edges: [4]puzzle.Color{0, 0, 2, 1}},
		{ID: 3, Edges: [4]puzzle.Color{2, 1, 0, 0}},
		{ID: 4, Edges: [4]puzzle.Color{2, 9, 0, 1}},
	})
	if err != nil {
		t.Fatalf("NewTileSet: %v", err)
	}
	ei := edgeindex.Build(ts)
	b := board.New(2, 2, ts)
	ds := domainstore.New(2, 2, ei)
	ds.Init(b, ts)

	ord := cellselect.NewOrderer(cellselect.Ascending, 0)
	s := New(ts, ei, ord, Options{UseSingletons: true})

	outcome := s.Solve(b, ds)
	if outcome != Exhausted {
		t.Fatalf("Solve returned %v, want Exhausted", outcome)
	}
	if b.OccupiedCount() != 0 {
		t.Errorf("expected board fully unwound after Exhausted, got %d occupied cells", b.OccupiedCount())
	}
}

// TestSolveFromBacktracksThroughAWrongResumedPlacement resumes (0,0) with a
// placement that is locally domain-valid (a fifth corner tile, 5, supplies a
// border-matching N/W pair) but does not belong to any full solution, since
// no other tile carries its inner color 9, per spec.md §4.10's resume
// contract: a not-pinned resumed placement is tried first but must be
// backtracked through like any other candidate if it cannot complete.
func TestSolveFromBacktracksThroughAWrongResumedPlacement(t *testing.T) {
	ts, err := puzzle.NewTileSet([]puzzle.RawTile{
		{ID: 1, Edges: [4]puzzle.Color{0, 1, 2, 0}},
		{ID: 2, Edges: [4]puzzle.Color{0, 0, 3, 1}},
		{ID: 3, Edges: [4]puzzle.Color{2, 4, 0, 0}},
		{ID: 4, Edges: [4]puzzle.Color{3, 0, 0, 4}},
		{ID: 5, Edges: [4]puzzle.Color{0, 9, 9, 0}},
	})
	if err != nil {
		t.Fatalf("NewTileSet: %v", err)
	}
	ei := edgeindex.Build(ts)
	b := board.New(2, 2, ts)
	ds := domainstore.New(2, 2, ei)
	ds.Init(b, ts)

	ord := cellselect.NewOrderer(cellselect.Ascending, 0)
	s := New(ts, ei, ord, Options{UseSingletons: true})

	resume := []puzzle.Hint{{Row: 0, Col: 0, TileID: 5, Rotation: 0}}
	outcome := s.SolveFrom(b, ds, resume)
	if outcome != Found {
		t.Fatalf("SolveFrom returned %v, want Found", outcome)
	}
	if !b.Full() {
		t.Fatal("expected a fully placed board on Found")
	}
	matching, total := b.CalculateScore()
	if matching != total {
		t.Errorf("CalculateScore = %d/%d, want fully matching", matching, total)
	}

	placement, ok := b.Get(0, 0)
	if !ok {
		t.Fatal("expected (0,0) occupied")
	}
	if placement.TileID() != 1 || placement.Rotation() != 0 {
		t.Errorf("expected the unique solution's tile 1 @ rot 0 at (0,0) after backtracking past the resumed tile, got tile %d @ rot %d",
			placement.TileID(), placement.Rotation())
	}

	if snap := s.Stats().Snapshot(); snap.Backtracks == 0 {
		t.Error("expected at least one backtrack unwinding the wrong resumed placement")
	}
}

// TestSolveFromFallsBackWhenResumedPlacementNoLongerFitsDomain exercises the
// "stale resume" path: a resumed (tile, rotation) that cell's current
// domain no longer offers is dropped rather than forced, and ordinary
// search proceeds as if no resume had been supplied.
func TestSolveFromFallsBackWhenResumedPlacementNoLongerFitsDomain(t *testing.T) {
	ts := uniqueTwoByTwo(t)
	ei := edgeindex.Build(ts)
	b := board.New(2, 2, ts)
	ds := domainstore.New(2, 2, ei)
	ds.Init(b, ts)

	ord := cellselect.NewOrderer(cellselect.Ascending, 0)
	s := New(ts, ei, ord, Options{UseSingletons: true})

	// Tile 4 rotation 0 exposes N=3 at (0,0), which cannot satisfy the
	// border — never a member of (0,0)'s domain.
	resume := []puzzle.Hint{{Row: 0, Col: 0, TileID: 4, Rotation: 0}}
	outcome := s.SolveFrom(b, ds, resume)
	if outcome != Found {
		t.Fatalf("SolveFrom returned %v, want Found", outcome)
	}
	if !b.Full() {
		t.Fatal("expected a fully placed board on Found")
	}
}

func TestCancelFlagStopsSearchImmediately(t *testing.T) {
	ts := uniqueTwoByTwo(t)
	ei := edgeindex.Build(ts)
	b := board.New(2, 2, ts)
	ds := domainstore.New(2, 2, ei)
	ds.Init(b, ts)

	ord := cellselect.NewOrderer(cellselect.Ascending, 0)
	cancel := &atomic.Bool{}
	cancel.Store(true)
	s := New(ts, ei, ord, Options{UseSingletons: true, Cancel: cancel})

	outcome := s.Solve(b, ds)
	if outcome != Cancelled {
		t.Fatalf("Solve returned %v, want Cancelled", outcome)
	}
	if b.OccupiedCount() != 0 {
		t.Errorf("expected board untouched after immediate cancellation, got %d occupied cells", b.OccupiedCount())
	}
}

package search

import (
	"fmt"
	"sync/atomic"

	"github.com/hailam/eternity/internal/board"
	"github.com/hailam/eternity/internal/cellselect"
	"github.com/hailam/eternity/internal/domainstore"
	"github.com/hailam/eternity/internal/edgeindex"
	"github.com/hailam/eternity/internal/propagator"
	"github.com/hailam/eternity/internal/puzzle"
)

// Searcher runs one worker's depth-first search over a Board/DomainStore it
// owns exclusively. It holds no shared mutable state of its own — Stats is
// read concurrently by the observability surface, and Publisher is the only
// point of contact with other workers.
type Searcher struct {
	ts   *puzzle.TileSet
	ei   *edgeindex.EdgeIndex
	prop *propagator.Propagator
	ord  *cellselect.Orderer

	useSingletons    bool
	minDepthToRecord int
	hintCount        int

	cancel    *atomic.Bool
	publisher Publisher
	stats     *Stats

	checkpointDue  *atomic.Bool
	checkpointHook func(b *board.Board)
}

// Options configures one Searcher instance.
type Options struct {
	UseSingletons    bool
	MinDepthToRecord int
	HintCount        int // cells pre-occupied by hints before search starts
	Cancel           *atomic.Bool
	Publisher        Publisher
	Stats            *Stats

	// CheckpointDue, when set alongside CheckpointHook, is polled once per
	// recurse call (spec.md §4.10's "checkpoint_due flag ... on loop
	// entry"). The board is always in a fully-propagated, no-partial-
	// placement state at that point, so the hook sees a safe snapshot.
	CheckpointDue  *atomic.Bool
	CheckpointHook func(b *board.Board)
}

// New builds a Searcher bound to a fixed TileSet/EdgeIndex/piece-orderer.
func New(ts *puzzle.TileSet, ei *edgeindex.EdgeIndex, ord *cellselect.Orderer, opts Options) *Searcher {
	if opts.Cancel == nil {
		opts.Cancel = &atomic.Bool{}
	}
	if opts.Publisher == nil {
		opts.Publisher = NopPublisher{}
	}
	if opts.Stats == nil {
		opts.Stats = &Stats{}
	}
	return &Searcher{
		ts:               ts,
		ei:               ei,
		prop:             propagator.New(ts, ei),
		ord:              ord,
		useSingletons:    opts.UseSingletons,
		minDepthToRecord: opts.MinDepthToRecord,
		hintCount:        opts.HintCount,
		cancel:           opts.Cancel,
		publisher:        opts.Publisher,
		stats:            opts.Stats,
		checkpointDue:    opts.CheckpointDue,
		checkpointHook:   opts.CheckpointHook,
	}
}

// Stats returns the counters this Searcher updates.
func (s *Searcher) Stats() *Stats {
	return s.stats
}

// Solve runs the full recursive search starting from b/ds's current state,
// which the caller must have already initialized (ds.Init plus any pinned
// hint placements already applied to b). The first propagation pass is
// seeded with every empty cell, since it has nothing narrower to seed from.
func (s *Searcher) Solve(b *board.Board, ds *domainstore.DomainStore) Outcome {
	return s.SolveFrom(b, ds, nil)
}

// SolveFrom is Solve plus resume: an ordered, not-pinned prefix of
// placements (spec.md §4.10's resumed checkpoint) that the search tries
// first at each of their cells but can backtrack through like any other
// candidate — unlike a pinned hint already applied to b, none of these
// cells are placed on the board before search starts; recurse places them
// itself, one at a time, as it would any other candidate.
func (s *Searcher) SolveFrom(b *board.Board, ds *domainstore.DomainStore, resume []puzzle.Hint) Outcome {
	seeds := make([]int, 0, b.Rows*b.Cols)
	rows, cols := ds.Dims()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if b.IsEmpty(row, col) {
				seeds = append(seeds, ds.CellIndex(row, col))
			}
		}
	}
	return s.recurse(b, ds, seeds, resume)
}

// recurse implements spec.md §4.8's pseudocode, threaded with resume (see
// SolveFrom). Frame discipline: Found leaves Board/DomainStore exactly as
// solved (frames deliberately left open, since the caller wants the final
// state, not a rollback). Exhausted and Cancelled both unwind every frame
// and placement this call opened before returning, per §5's "popping diff
// frames correctly" — the pseudocode's literal Cancelled branch skips that
// cleanup, but leaving frames dangling on every worker's stack on every
// cancellation contradicts §5's consistency requirement, so this
// implementation pops on both exits.
func (s *Searcher) recurse(b *board.Board, ds *domainstore.DomainStore, seeds []int, resume []puzzle.Hint) Outcome {
	s.stats.RecursiveCalls.Add(1)
	if s.cancel.Load() {
		return Cancelled
	}
	ds.PushFrame()

	var allForced []propagator.Forced
	cur := seeds
	for {
		if s.prop.Propagate(b, ds, cur) == propagator.DeadEnd {
			s.stats.DeadendsDetected.Add(1)
			s.unwind(b, ds, allForced)
			return Exhausted
		}
		if !s.useSingletons {
			break
		}
		forced, res := s.prop.ForceSingletons(b, ds)
		if len(forced) > 0 {
			s.stats.SingletonsPlaced.Add(uint64(len(forced)))
			allForced = append(allForced, forced...)
		}
		if res == propagator.SingletonDeadEnd {
			s.stats.DeadendsDetected.Add(1)
			s.unwind(b, ds, allForced)
			return Exhausted
		}
		if res == propagator.Stable {
			break
		}
		cur = cur[:0]
		for _, f := range forced {
			cur = append(cur, propagator.SeedForCell(b, ds, f.Row, f.Col)...)
		}
	}

	// Drop any leading resume entries whose cell got filled by the
	// propagation/singleton pass above (e.g. singleton forcing reached the
	// same cell the resume prefix would have) — already satisfied, so
	// nothing left to try there.
	resume = s.liveResume(b, resume)

	var row, col int
	var ok bool
	resuming := len(resume) > 0
	if resuming {
		row, col, ok = resume[0].Row, resume[0].Col, true
	} else {
		row, col, ok = cellselect.NextCell(b, ds)
	}
	if !ok {
		return Found
	}

	s.publishIfNewDepth(b)
	s.checkpointIfDue(b)

	cellIdx := ds.CellIndex(row, col)
	ordered := s.ord.Order(ds.Domain(cellIdx))

	var candidates []int
	var childResume []puzzle.Hint
	if resuming {
		if slot, inDomain := s.slotFor(resume[0], cellIdx, ds); inDomain {
			candidates = prependSlot(slot, s.restrictFirstCorner(b, ordered))
			childResume = resume[1:]
		} else {
			// The recorded placement no longer fits this cell's current
			// domain — treat the rest of the resume prefix as stale and
			// fall back to ordinary search from here on.
			candidates = s.restrictFirstCorner(b, ordered)
		}
	} else {
		candidates = s.restrictFirstCorner(b, ordered)
	}

	for _, slot := range candidates {
		s.stats.PlacementsTried.Add(1)
		placement := s.ei.PlacementAt(slot)

		ds.PushFrame()
		if err := b.Place(row, col, placement); err != nil {
			panic(fmt.Sprintf("search: domain offered a used tile: %v", err))
		}

		result := s.recurse(b, ds, propagator.SeedForCell(b, ds, row, col), childResume)
		if result == Found {
			return Found
		}
		if result == Cancelled {
			b.Unplace(row, col)
			ds.PopFrame()
			s.unwind(b, ds, allForced)
			return Cancelled
		}

		b.Unplace(row, col)
		ds.PopFrame()
		s.stats.Backtracks.Add(1)
	}

	s.unwind(b, ds, allForced)
	return Exhausted
}

// liveResume drops leading resume entries whose cell is no longer empty.
func (s *Searcher) liveResume(b *board.Board, resume []puzzle.Hint) []puzzle.Hint {
	for len(resume) > 0 && !b.IsEmpty(resume[0].Row, resume[0].Col) {
		resume = resume[1:]
	}
	return resume
}

// slotFor looks up the packed slot for a resumed hint's recorded
// (tile, rotation), reporting inDomain=false if that slot no longer
// survives cellIdx's current domain (the prefix conflicts with propagation
// that has happened since the checkpoint was written).
func (s *Searcher) slotFor(h puzzle.Hint, cellIdx int, ds *domainstore.DomainStore) (slot int, inDomain bool) {
	slot = s.ei.SlotOf(puzzle.NewPlacement(h.TileID, h.Rotation))
	return slot, ds.Domain(cellIdx).Has(slot)
}

// prependSlot returns slot followed by rest with any duplicate of slot
// removed, so a forced candidate is tried first without being retried.
func prependSlot(slot int, rest []int) []int {
	out := make([]int, 0, len(rest)+1)
	out = append(out, slot)
	for _, c := range rest {
		if c != slot {
			out = append(out, c)
		}
	}
	return out
}

// unwind undoes every cell this recurse call force-placed (in reverse
// order) and pops this call's own propagation frame. Safe to call with an
// empty forced list.
func (s *Searcher) unwind(b *board.Board, ds *domainstore.DomainStore, forced []propagator.Forced) {
	for i := len(forced) - 1; i >= 0; i-- {
		b.Unplace(forced[i].Row, forced[i].Col)
	}
	ds.PopFrame()
}

// publishIfNewDepth reports the current non-hint occupied-cell count to the
// Publisher, which applies its own CAS/threshold logic.
func (s *Searcher) publishIfNewDepth(b *board.Board) {
	depth := b.OccupiedCount() - s.hintCount
	if depth < s.minDepthToRecord {
		return
	}
	matching, total := b.CalculateScore()
	score := 0
	if total > 0 {
		score = matching * 1000 / total
	}
	s.publisher.TryPublish(depth, score, b)
}

// checkpointIfDue fires the checkpoint hook at most once per flag-set, right
// after this frame's board settles into a fully-propagated state and before
// any candidate for this cell is placed — never mid-propagation, never with
// a partial placement on the board.
func (s *Searcher) checkpointIfDue(b *board.Board) {
	if s.checkpointDue == nil || s.checkpointHook == nil {
		return
	}
	if s.checkpointDue.CompareAndSwap(true, false) {
		s.checkpointHook(b)
	}
}

// restrictFirstCorner implements symmetry breaking: while no corner-kind
// tile has yet been placed anywhere on the board, any corner-tile candidate
// in the list is kept only at its tile's canonical rotation, which fixes
// which of the whole board's four congruent rotations the search explores.
// Non-corner candidates, and every candidate once some corner is already
// used, pass through unchanged. If the restriction would empty the list —
// a cell's border-compatible orientation for every surviving corner tile
// happens not to be that tile's canonical rotation — it is skipped rather
// than pruning away the only valid candidates.
func (s *Searcher) restrictFirstCorner(b *board.Board, candidates []int) []int {
	if s.anyCornerUsed(b) {
		return candidates
	}
	restricted := candidates[:0:0]
	for _, slot := range candidates {
		p := s.ei.PlacementAt(slot)
		tile := s.ts.Tile(p.TileID())
		if tile.Kind() == puzzle.Corner && p.Rotation() != tile.CanonicalRotation() {
			continue
		}
		restricted = append(restricted, slot)
	}
	if len(restricted) == 0 {
		return candidates
	}
	return restricted
}

func (s *Searcher) anyCornerUsed(b *board.Board) bool {
	used := b.UsedMask()
	for _, id := range s.ts.Corners() {
		if used.Has(s.ts.DenseIndex(id)) {
			return true
		}
	}
	return false
}

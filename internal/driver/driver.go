package driver

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/eternity/internal/board"
	"github.com/hailam/eternity/internal/checkpoint"
	"github.com/hailam/eternity/internal/domainstore"
	"github.com/hailam/eternity/internal/edgeindex"
	"github.com/hailam/eternity/internal/puzzle"
	"github.com/hailam/eternity/internal/search"
)

// tracer emits one "driver.Run" span per call plus one "driver.worker.run"
// child span per worker, so a configured TracerProvider can show how much
// of a run's wall time each worker actually spent searching versus waiting
// for the others to finish. With no provider configured, otel's default
// no-op tracer makes every call here free.
var tracer = otel.Tracer("github.com/hailam/eternity/internal/driver")

// Run implements spec.md §4.10's WorkStealingDriver.run(tile_set,
// edge_index, hints, options) -> Outcome. It spawns opts.WorkerCount
// long-lived workers, each with its own cloned Board/DomainStore seeded
// from hints, coordinates cancellation through a single AtomicBool polled
// by every worker's Searcher, and — if opts.CheckpointDir is set —
// periodically asks each worker to persist its current board.
//
// rows/cols size the board; the spec's config bundles these with the
// puzzle's tile set rather than with Options, so they are threaded through
// explicitly here rather than folded into Options.
func Run(ctx context.Context, ts *puzzle.TileSet, ei *edgeindex.EdgeIndex, rows, cols int, hints []puzzle.Hint, opts Options) (out Outcome) {
	ctx, span := tracer.Start(ctx, "driver.Run", trace.WithAttributes(
		attribute.Int("board.rows", rows),
		attribute.Int("board.cols", cols),
		attribute.Int("hints.count", len(hints)),
	))
	defer func() {
		span.SetAttributes(attribute.String("outcome.status", out.Status.String()))
		span.End()
	}()

	// Pinned hints (command line / puzzle file) are placed directly and
	// never revisited. Not-pinned hints (a resumed checkpoint's prefix) are
	// instead handed to the Searcher as a backtrackable resume chain — see
	// worker.run/search.SolveFrom — so a dead end beneath them can unwind
	// back through the resumed placements instead of being stuck with them.
	// Both share one cell namespace, so a cell claimed twice (by either
	// kind, in either combination) is rejected up front rather than
	// silently letting a second Place leak the first tile's used bit.
	base := board.New(rows, cols, ts)
	claimed := make(map[[2]int]bool, len(hints))
	var resume []puzzle.Hint
	for _, h := range hints {
		if !base.InBounds(h.Row, h.Col) {
			return Outcome{Status: InvalidInput, Reason: "hint cell out of bounds"}
		}
		key := [2]int{h.Row, h.Col}
		if claimed[key] {
			return Outcome{Status: InvalidInput, Reason: fmt.Sprintf("duplicate hint at (%d,%d)", h.Row, h.Col)}
		}
		claimed[key] = true

		if !h.Pinned {
			resume = append(resume, h)
			continue
		}
		if err := base.Place(h.Row, h.Col, puzzle.NewPlacement(h.TileID, h.Rotation)); err != nil {
			return Outcome{Status: InvalidInput, Reason: err.Error()}
		}
	}
	hintCount := base.OccupiedCount()

	baseDS := domainstore.New(rows, cols, ei)
	baseDS.Init(base, ts)

	var store *checkpoint.Store
	if opts.CheckpointDir != "" {
		s, err := checkpoint.Open(opts.CheckpointDir)
		if err != nil {
			return Outcome{Status: InvalidInput, Reason: err.Error()}
		}
		store = s
		defer store.Close()
	}

	workerCount := opts.WorkerCount
	if workerCount <= 0 {
		workerCount = DefaultOptions().WorkerCount
	}

	runCtx := ctx
	if opts.WallTimeLimit > 0 {
		var cancelTimeout context.CancelFunc
		runCtx, cancelTimeout = context.WithTimeout(ctx, opts.WallTimeLimit)
		defer cancelTimeout()
	}

	cancel := &atomic.Bool{}
	sb := opts.SharedBest
	if sb == nil {
		sb = NewSharedBest()
	}

	workers := make([]*worker, workerCount)
	results := make([]search.Outcome, workerCount)
	var foundIdx atomic.Int32
	foundIdx.Store(-1)

	g, gctx := errgroup.WithContext(runCtx)
	for i := 0; i < workerCount; i++ {
		i := i
		b := base.Clone()
		ds := baseDS.Clone()
		// Seeds are small distinct integers rather than time-derived: the
		// diversification they feed only needs to differ worker-to-worker,
		// not be unpredictable, and fixed seeds keep a run reproducible.
		seed := int64(i)*0x9E3779B1 + 1
		workers[i] = newWorker(gctx, i, ts, ei, b, ds, hintCount, resume, seed, opts, cancel, sb, store)

		g.Go(func() error {
			outcome := workers[i].run()
			results[i] = outcome
			if outcome == search.Found {
				foundIdx.CompareAndSwap(-1, int32(i))
				cancel.Store(true)
			}
			return nil
		})
	}

	watchDone := make(chan struct{})
	go func() {
		select {
		case <-gctx.Done():
			cancel.Store(true)
		case <-watchDone:
		}
	}()

	var tickerDone chan struct{}
	if store != nil {
		interval := opts.CheckpointInterval
		if interval <= 0 {
			interval = DefaultOptions().CheckpointInterval
		}
		tickerDone = make(chan struct{})
		go runCheckpointTicker(interval, workers, tickerDone)
	}

	_ = g.Wait()
	close(watchDone)
	if tickerDone != nil {
		close(tickerDone)
	}

	if idx := foundIdx.Load(); idx >= 0 {
		w := workers[idx]
		matching, total := w.b.CalculateScore()
		score := 0
		if total > 0 {
			score = matching * 1000 / total
		}
		return Outcome{
			Status:    Solved,
			Board:     w.b,
			BestDepth: w.b.OccupiedCount() - hintCount,
			BestScore: score,
		}
	}

	allExhausted := true
	for _, r := range results {
		if r != search.Exhausted {
			allExhausted = false
			break
		}
	}
	if allExhausted {
		return Outcome{Status: NoSolution}
	}

	out = Outcome{Status: Timeout}
	if snap := sb.GetSnapshot(); snap != nil {
		out.Board = snap.Board
		out.BestDepth = snap.Depth
		out.BestScore = snap.Score
	}
	return out
}

// runCheckpointTicker periodically asks every worker to take a checkpoint
// at its own next safe point, until done is closed.
func runCheckpointTicker(interval time.Duration, workers []*worker, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			for _, w := range workers {
				w.requestCheckpoint()
			}
		case <-done:
			return
		}
	}
}

package driver

import (
	"context"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hailam/eternity/internal/board"
	"github.com/hailam/eternity/internal/cellselect"
	"github.com/hailam/eternity/internal/checkpoint"
	"github.com/hailam/eternity/internal/domainstore"
	"github.com/hailam/eternity/internal/edgeindex"
	"github.com/hailam/eternity/internal/puzzle"
	"github.com/hailam/eternity/internal/search"
)

// workerPublisher adapts SharedBest.TryPublish to search.Publisher by
// closing over this worker's id — each worker gets its own thin adapter
// rather than SharedBest knowing about worker identity directly.
type workerPublisher struct {
	id int
	sb *SharedBest
}

func (p workerPublisher) TryPublish(depth, score int, b *board.Board) {
	p.sb.TryPublish(p.id, depth, score, b)
}

// worker is one long-lived search task: its own Board/DomainStore clone,
// its own Searcher, and its own checkpoint bookkeeping. It never reaches
// into another worker's state — the teacher's Worker struct is the model
// for this per-goroutine isolation, generalized from position/orderer
// copies to board/domain-store copies.
type worker struct {
	id  int
	ctx context.Context

	ts *puzzle.TileSet
	ei *edgeindex.EdgeIndex

	b  *board.Board
	ds *domainstore.DomainStore

	resume []puzzle.Hint

	searcher *search.Searcher

	seed          int64
	startedAt     time.Time
	checkpointDue atomic.Bool

	store *checkpoint.Store
}

// newWorker builds a worker with its own deep-cloned Board/DomainStore and
// a Searcher configured from opts. hintCount is the number of cells
// already occupied in b by externally supplied pinned hints. resume is the
// not-pinned checkpoint-resume prefix (if any), shared read-only across
// every worker — recurse only ever sub-slices it, never mutates it. store
// may be nil, disabling checkpoint writes for this worker.
func newWorker(ctx context.Context, id int, ts *puzzle.TileSet, ei *edgeindex.EdgeIndex, b *board.Board, ds *domainstore.DomainStore,
	hintCount int, resume []puzzle.Hint, seed int64, opts Options, cancel *atomic.Bool, sb *SharedBest, store *checkpoint.Store) *worker {

	w := &worker{
		id:        id,
		ctx:       ctx,
		ts:        ts,
		ei:        ei,
		b:         b,
		ds:        ds,
		resume:    resume,
		seed:      seed,
		startedAt: time.Now(),
		store:     store,
	}

	ord := cellselect.NewDiversified(opts.PieceOrder, seed, 5)
	stats := &search.Stats{}
	w.searcher = search.New(ts, ei, ord, search.Options{
		UseSingletons:    opts.UseSingletons,
		MinDepthToRecord: opts.MinDepthToRecord,
		HintCount:        hintCount,
		Cancel:           cancel,
		Publisher:        workerPublisher{id: id, sb: sb},
		Stats:            stats,
		CheckpointDue:    &w.checkpointDue,
		CheckpointHook:   w.writeCheckpoint,
	})
	if opts.Registry != nil {
		opts.Registry.register(stats)
	}
	return w
}

// run executes the worker's full search to completion (or cancellation),
// wrapped in its own span so a trace backend can show per-worker duration
// and outcome alongside the parent "driver.Run" span.
func (w *worker) run() search.Outcome {
	_, span := tracer.Start(w.ctx, "driver.worker.run", trace.WithAttributes(
		attribute.Int("worker.id", w.id),
	))
	defer span.End()

	outcome := w.searcher.SolveFrom(w.b, w.ds, w.resume)
	span.SetAttributes(attribute.String("worker.outcome", outcome.String()))
	return outcome
}

// requestCheckpoint flips this worker's checkpoint_due flag, to be noticed
// and cleared the next time its Searcher enters a recurse frame.
func (w *worker) requestCheckpoint() {
	w.checkpointDue.Store(true)
}

// writeCheckpoint is the Searcher's CheckpointHook: it saves b as both the
// "current" record and, if b's occupied-cell count beats every depth already
// recorded in the store, a new "best_<depth>" milestone.
func (w *worker) writeCheckpoint(b *board.Board) {
	if w.store == nil {
		return
	}
	cumulativeMS := time.Since(w.startedAt).Milliseconds()
	rec := checkpoint.FromBoard(w.ts, b, w.seed, cumulativeMS)
	if err := w.store.SaveCurrent(rec); err != nil {
		return
	}
	depth := b.OccupiedCount()
	if prev, ok, err := w.store.LoadDeepestBest(); err == nil && ok && len(prev.Placements) >= depth {
		return
	}
	_ = w.store.SaveBest(depth, rec)
}

package driver

import (
	"sync"
	"sync/atomic"

	"github.com/hailam/eternity/internal/board"
)

// Snapshot is a published best-so-far: a cloned Board plus the depth/score
// it was published at and which worker found it. Safe to read concurrently
// once obtained from SharedBest.GetSnapshot — it is never mutated in place.
type Snapshot struct {
	Board   *board.Board
	Depth   int
	Score   int
	OwnerID int
}

// SharedBest is spec.md §4.9's SharedBestTracker: a monotonically advancing
// (max_depth, best_score, snapshot) triple. MaxDepth/BestScore are plain
// atomics so a caller can peek at progress lock-free, but every update to
// the triple goes through the same RWMutex TryPublish and GetSnapshot share
// — updating max_depth and best_score independently (e.g. via separate
// CompareAndSwaps) would let two same-depth publishers interleave their
// writes and leave the triple inconsistent. TileSet and EdgeIndex are
// immutable and never touch this struct; this is the only frequently
// read (if rarely written) shared state in the whole driver.
type SharedBest struct {
	maxDepth  atomic.Uint32
	bestScore atomic.Uint32
	owner     atomic.Uint32

	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewSharedBest returns a tracker with no published record yet.
func NewSharedBest() *SharedBest {
	return &SharedBest{}
}

// TryPublish implements search.Publisher: a worker reports a candidate
// record; TryPublish only actually clones the board and updates the
// published record when it strictly improves on what's there — either a
// new record depth, or an equal depth with a better score. The compare and
// the (snapshot, max_depth, best_score) write are all done under a single
// write-lock critical section, not as three independent operations, so two
// workers racing at the same depth can never leave the triple holding one
// worker's score next to a different worker's snapshot — spec.md §5's "the
// triple as observed via the read lock is internally consistent" guarantee
// would otherwise be violated by a same-depth race.
func (sb *SharedBest) TryPublish(workerID, depth, score int, b *board.Board) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	prevDepth := int(sb.maxDepth.Load())
	prevScore := int(sb.bestScore.Load())
	improves := depth > prevDepth || (depth == prevDepth && score > prevScore)
	if !improves {
		return
	}

	sb.snapshot = &Snapshot{Board: b.Clone(), Depth: depth, Score: score, OwnerID: workerID}
	sb.maxDepth.Store(uint32(depth))
	sb.bestScore.Store(uint32(score))
	sb.owner.Store(uint32(workerID))
}

// MaxDepth returns the current record depth.
func (sb *SharedBest) MaxDepth() int {
	return int(sb.maxDepth.Load())
}

// BestScore returns the score recorded alongside MaxDepth.
func (sb *SharedBest) BestScore() int {
	return int(sb.bestScore.Load())
}

// GetSnapshot clones the currently published snapshot, or returns nil if
// nothing has been published yet.
func (sb *SharedBest) GetSnapshot() *Snapshot {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if sb.snapshot == nil {
		return nil
	}
	return &Snapshot{
		Board:   sb.snapshot.Board.Clone(),
		Depth:   sb.snapshot.Depth,
		Score:   sb.snapshot.Score,
		OwnerID: sb.snapshot.OwnerID,
	}
}

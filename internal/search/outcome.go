package search

import "github.com/hailam/eternity/internal/board"

// Outcome is the result of one Searcher.Solve call: spec.md §4.8's
// `Found | Exhausted | Cancelled`.
type Outcome int

const (
	Exhausted Outcome = iota
	Found
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "Found"
	case Cancelled:
		return "Cancelled"
	default:
		return "Exhausted"
	}
}

// Publisher receives depth/score records as search progresses — spec.md
// §4.9's SharedBestTracker.try_publish, decoupled from this package so the
// driver can own the atomics and RwLock-guarded snapshot.
type Publisher interface {
	TryPublish(depth, score int, b *board.Board)
}

// NopPublisher discards every record; used by tests and single-shot solves
// that don't need record tracking.
type NopPublisher struct{}

func (NopPublisher) TryPublish(depth, score int, b *board.Board) {}

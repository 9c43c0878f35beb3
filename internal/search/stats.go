package search

import "sync/atomic"

// Stats holds the monotonic counters of spec.md §8: recursive_calls,
// placements_tried, backtracks, singletons_placed, deadends_detected. Every
// field is an independent atomic counter so a worker's Searcher can be
// polled concurrently by the observability surface without locking.
type Stats struct {
	RecursiveCalls   atomic.Uint64
	PlacementsTried  atomic.Uint64
	Backtracks       atomic.Uint64
	SingletonsPlaced atomic.Uint64
	DeadendsDetected atomic.Uint64
	FitChecks        atomic.Uint64
}

// StatsSnapshot is a plain-value copy of Stats, safe to pass across
// goroutines or serialize into a metrics report.
type StatsSnapshot struct {
	RecursiveCalls   uint64
	PlacementsTried  uint64
	Backtracks       uint64
	SingletonsPlaced uint64
	DeadendsDetected uint64
	FitChecks        uint64
}

// Snapshot copies the current counter values.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		RecursiveCalls:   s.RecursiveCalls.Load(),
		PlacementsTried:  s.PlacementsTried.Load(),
		Backtracks:       s.Backtracks.Load(),
		SingletonsPlaced: s.SingletonsPlaced.Load(),
		DeadendsDetected: s.DeadendsDetected.Load(),
		FitChecks:        s.FitChecks.Load(),
	}
}

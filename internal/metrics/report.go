package metrics

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hailam/eternity/internal/driver"
	"github.com/hailam/eternity/internal/search"
)

// WorkerReport is one worker's counter snapshot, tagged with its index in
// the registry so a report can be attributed back to a specific worker.
type WorkerReport struct {
	WorkerID int
	search.StatsSnapshot
}

// MetricsReport is spec.md §6's snapshot_metrics() return value: a
// read-only, thread-safe point-in-time copy of SharedBest plus every
// registered worker's counters. Nothing in this struct aliases live state —
// it is safe to hold, log, or serialize after the call returns.
type MetricsReport struct {
	Timestamp time.Time

	BestDepth int
	BestScore int
	HasBest   bool

	TotalRecursiveCalls   uint64
	TotalPlacementsTried  uint64
	TotalBacktracks       uint64
	TotalSingletonsPlaced uint64
	TotalDeadendsDetected uint64

	Workers []WorkerReport
}

// Snapshot builds a MetricsReport from a driver's SharedBest and Registry.
// reg may be nil (a run with no registered workers yet reports zeroed
// totals and an empty Workers slice).
func Snapshot(sb *driver.SharedBest, reg *driver.Registry) MetricsReport {
	report := MetricsReport{Timestamp: time.Now()}

	report.BestDepth = sb.MaxDepth()
	report.BestScore = sb.BestScore()
	report.HasBest = sb.GetSnapshot() != nil

	if reg == nil {
		return report
	}

	snaps := reg.Snapshots()
	report.Workers = make([]WorkerReport, len(snaps))
	for i, s := range snaps {
		report.Workers[i] = WorkerReport{WorkerID: i, StatsSnapshot: s}
		report.TotalRecursiveCalls += s.RecursiveCalls
		report.TotalPlacementsTried += s.PlacementsTried
		report.TotalBacktracks += s.Backtracks
		report.TotalSingletonsPlaced += s.SingletonsPlaced
		report.TotalDeadendsDetected += s.DeadendsDetected
	}
	return report
}

// Summary renders a one-line human-readable progress record, the shape a
// `verbose` CLI run logs roughly once a second.
func (r MetricsReport) Summary() string {
	best := "none"
	if r.HasBest {
		best = fmt.Sprintf("depth=%d score=%.1f%%", r.BestDepth, float64(r.BestScore)/10)
	}
	return fmt.Sprintf("best=%s placements=%s backtracks=%s singletons=%s deadends=%s",
		best,
		humanize.Comma(int64(r.TotalPlacementsTried)),
		humanize.Comma(int64(r.TotalBacktracks)),
		humanize.Comma(int64(r.TotalSingletonsPlaced)),
		humanize.Comma(int64(r.TotalDeadendsDetected)),
	)
}

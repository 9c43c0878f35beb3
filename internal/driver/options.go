package driver

import (
	"runtime"
	"time"

	"github.com/hailam/eternity/internal/cellselect"
)

// Options configures one WorkStealingDriver run — spec.md §4.10.
type Options struct {
	WorkerCount            int
	WallTimeLimit          time.Duration // zero means no limit
	CheckpointInterval     time.Duration
	ConfigRotationInterval time.Duration // not read by Run, which drives one puzzle configuration per call
	MinDepthToRecord       int
	PieceOrder             cellselect.Policy
	UseSingletons          bool
	CheckpointDir          string    // empty disables checkpointing
	Registry               *Registry // optional: receives every worker's Stats pointer

	// SharedBest, if set, is the tracker Run publishes into instead of an
	// internal one it discards on return — set this when a caller wants to
	// poll best-so-far progress (e.g. for a verbose CLI's 1Hz log line)
	// while Run is still executing.
	SharedBest *SharedBest
}

// DefaultOptions returns spec.md §4.10's defaults: worker_count =
// max(4, cores*3/4), checkpoint_interval = 1 minute, no wall-time limit, no
// rotation, ascending piece order, singleton forcing on.
func DefaultOptions() Options {
	cores := runtime.NumCPU()
	workers := cores * 3 / 4
	if workers < 4 {
		workers = 4
	}
	return Options{
		WorkerCount:        workers,
		CheckpointInterval: time.Minute,
		PieceOrder:         cellselect.Ascending,
		UseSingletons:      true,
	}
}

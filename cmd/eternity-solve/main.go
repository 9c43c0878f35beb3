// Command eternity-solve drives the parallel backtracking solver from the
// command line: read a puzzle file, run the WorkStealingDriver, print the
// outcome, and exit 0 on a solution or 1 otherwise, per spec.md §6.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"

	"github.com/hailam/eternity/internal/driver"
	"github.com/hailam/eternity/internal/edgeindex"
	"github.com/hailam/eternity/internal/metrics"
	"github.com/hailam/eternity/internal/obslog"
	"github.com/hailam/eternity/internal/puzzle"
	"github.com/hailam/eternity/internal/puzzleio"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "eternity-solve:", err)
		return 1
	}

	verbosity := obslog.Normal
	if cfg.quiet {
		verbosity = obslog.Quiet
	} else if cfg.verbose {
		verbosity = obslog.Verbose
	}
	log := obslog.New(os.Stderr, verbosity)

	f, err := os.Open(cfg.puzzlePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "eternity-solve: opening puzzle file:", err)
		return 1
	}
	defer f.Close()

	pz, err := puzzleio.Parse(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "eternity-solve: parsing puzzle:", err)
		return 1
	}
	ts, err := pz.BuildTileSet()
	if err != nil {
		fmt.Fprintln(os.Stderr, "eternity-solve: building tile set:", err)
		return 1
	}
	ei := edgeindex.Build(ts)

	opts := driver.DefaultOptions()
	if cfg.threads > 0 {
		opts.WorkerCount = cfg.threads
	}
	if !cfg.parallel {
		opts.WorkerCount = 1
	}
	if cfg.timeoutSecs > 0 {
		opts.WallTimeLimit = time.Duration(cfg.timeoutSecs) * time.Second
	}
	opts.MinDepthToRecord = cfg.minDepth
	opts.UseSingletons = !cfg.noSingletons
	opts.PieceOrder = cfg.pieceOrder

	reg := driver.NewRegistry()
	opts.Registry = reg
	sb := driver.NewSharedBest()
	opts.SharedBest = sb

	hints := pz.Hints
	if cfg.checkpointDir != "" {
		opts.CheckpointDir = cfg.checkpointDir
		hints = mergeResumeHints(log, cfg.checkpointDir, ts, hints)
	}

	if cfg.verbose {
		go logProgress(log, sb, reg)
	}

	out := driver.Run(context.Background(), ts, ei, pz.Rows, pz.Cols, hints, opts)
	return report(log, out)
}

// mergeResumeHints loads a prior checkpoint (if any) for ts and appends its
// placements to hints, logging but not failing the run on an IoError per
// spec.md §7's "IoError ... log and continue" policy.
func mergeResumeHints(log logr.Logger, checkpointDir string, ts *puzzle.TileSet, hints []puzzle.Hint) []puzzle.Hint {
	resumed, _, ok, err := driver.LoadResume(checkpointDir, ts)
	if err != nil {
		log.Error(err, "resume: failed to load checkpoint, starting fresh")
		return hints
	}
	if !ok {
		return hints
	}
	log.Info("resume: loaded checkpoint", "placements", len(resumed))
	return append(append([]puzzle.Hint{}, hints...), resumed...)
}

func logProgress(log logr.Logger, sb *driver.SharedBest, reg *driver.Registry) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		log.Info(metrics.Snapshot(sb, reg).Summary())
	}
}

func report(log logr.Logger, out driver.Outcome) int {
	switch out.Status {
	case driver.Solved:
		log.Info("solved", "depth", out.BestDepth, "score_permille", out.BestScore)
		fmt.Println("SOLVED")
		return 0
	case driver.NoSolution:
		fmt.Println("NO SOLUTION")
		return 1
	case driver.Timeout:
		fmt.Println("TIMEOUT")
		return 1
	default:
		fmt.Fprintln(os.Stderr, "eternity-solve:", out.Error())
		return 1
	}
}

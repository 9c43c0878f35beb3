package main

import (
	"flag"
	"fmt"

	"github.com/hailam/eternity/internal/cellselect"
)

// config is the parsed form of spec.md §6's CLI surface.
type config struct {
	puzzlePath string

	verbose bool
	quiet   bool

	parallel    bool
	threads     int
	timeoutSecs int

	minDepth     int
	noSingletons bool
	pieceOrder   cellselect.Policy

	checkpointDir string
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("eternity-solve", flag.ContinueOnError)

	verbose := fs.Bool("verbose", false, "log a progress summary roughly once a second")
	quiet := fs.Bool("quiet", false, "suppress all but error output")
	parallel := fs.Bool("parallel", true, "enable the multi-worker driver")
	threads := fs.Int("threads", 0, "worker count (0 = driver default)")
	timeout := fs.Int("timeout", 0, "wall-time limit in seconds (0 = unlimited)")
	minDepth := fs.Int("min-depth", 0, "suppress best-so-far records below this depth")
	noSingletons := fs.Bool("no-singletons", false, "disable singleton forcing")
	pieceOrderFlag := fs.String("piece-order", "ascending", "candidate ordering: ascending|descending|fixed-random")
	checkpointDir := fs.String("checkpoint-dir", "", "directory for periodic checkpoints (empty disables)")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if fs.NArg() != 1 {
		return config{}, fmt.Errorf("usage: eternity-solve [flags] <puzzle-file>")
	}

	order, err := cellselect.ParsePolicy(*pieceOrderFlag)
	if err != nil {
		return config{}, err
	}

	return config{
		puzzlePath:    fs.Arg(0),
		verbose:       *verbose,
		quiet:         *quiet,
		parallel:      *parallel,
		threads:       *threads,
		timeoutSecs:   *timeout,
		minDepth:      *minDepth,
		noSingletons:  *noSingletons,
		pieceOrder:    order,
		checkpointDir: *checkpointDir,
	}, nil
}

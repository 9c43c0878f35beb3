package puzzle

import "errors"

// Sentinel errors surfaced at load time (spec.md §7). Search-internal
// signals (DeadEnd, Cancelled) live in the propagator/search packages and
// are never exported as errors — they are recovered control flow, not
// failures.
var (
	// ErrBadInput marks a malformed puzzle definition: duplicate tile id,
	// negative color, or a tile count that disagrees with R*C.
	ErrBadInput = errors.New("puzzle: bad input")

	// ErrUnsolvableByCounts marks a structural infeasibility detectable
	// before search starts: wrong corner/edge tile counts for the given
	// board dimensions.
	ErrUnsolvableByCounts = errors.New("puzzle: unsolvable by tile counts")
)

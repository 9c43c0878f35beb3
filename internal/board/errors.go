package board

import "errors"

// ErrUsedTwice is returned by Place when the tile id in the given
// placement is already used elsewhere on the board. Per spec.md §4.3 this
// is a fatal implementation bug, never an expected search outcome — callers
// should treat it as an assertion failure, not a recoverable condition.
var ErrUsedTwice = errors.New("board: tile already used")

package driver

import (
	"fmt"

	"github.com/hailam/eternity/internal/board"
)

// Status is the driver-level result kind of spec.md §7: `Outcome ::=
// Solved(board) | NoSolution | Timeout | InvalidInput(reason) |
// ResumeFailed(reason)`.
type Status int

const (
	NoSolution Status = iota
	Solved
	Timeout
	InvalidInput
	ResumeFailed
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "Solved"
	case Timeout:
		return "Timeout"
	case InvalidInput:
		return "InvalidInput"
	case ResumeFailed:
		return "ResumeFailed"
	default:
		return "NoSolution"
	}
}

// Outcome is the value WorkStealingDriver.Run returns. Board holds the solved
// board when Status == Solved, and the deepest published snapshot (if any)
// when Status == Timeout. Reason carries the detail string for
// InvalidInput and ResumeFailed.
type Outcome struct {
	Status Status
	Board  *board.Board
	Reason string

	BestDepth int
	BestScore int
}

func (o Outcome) Error() string {
	if o.Reason == "" {
		return o.Status.String()
	}
	return fmt.Sprintf("%s: %s", o.Status, o.Reason)
}

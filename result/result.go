package result

import (
	"time"

	"github.com/nsquare/npuzzle/board"
)

// Statistics reports search effort and outcome shape, independent of the
// path itself.
type Statistics struct {
	// StatesSelected counts nodes popped from any open set (sequential:
	// the single open heap; parallel: the sum across all workers,
	// including those later discarded by the relaxation gate).
	StatesSelected int64

	// MaxStatesInMemory is the high-water mark of live open+closed nodes.
	MaxStatesInMemory int64

	// SolutionLength is the number of edges (slides) in Path, i.e.
	// len(Path)-1.
	SolutionLength int

	// Elapsed and ThreadsUsed are ambient reporting fields with no
	// invariant of their own; they exist so a caller can print a banner
	// without separately timing the call.
	Elapsed    time.Duration
	ThreadsUsed int
}

// Solution is the ordered path of Boards from initial to goal (length
// Stats.SolutionLength+1), together with the Statistics gathered while
// finding it.
type Solution struct {
	Path  []*board.Board
	Stats Statistics
}

package parallel

import "errors"

// ErrInvalidThreadCount is returned by NewEngine when threads < 2; the
// single-threaded case belongs to the sequential package, not this one.
var ErrInvalidThreadCount = errors.New("parallel: thread count must be >= 2")

// ErrDimensionMismatch is returned by NewEngine when initial and goal
// disagree on N.
var ErrDimensionMismatch = errors.New("parallel: initial and goal have different dimensions")

package solve

import "errors"

// ErrInvalidThreads is returned when threads < 1.
var ErrInvalidThreads = errors.New("solve: threads must be >= 1")

// ErrDimensionMismatch is returned when initial and goal have different N.
var ErrDimensionMismatch = errors.New("solve: initial and goal have different dimensions")

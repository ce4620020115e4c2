package heuristic

import "errors"

// ErrInvalidHeuristic indicates an unrecognized heuristic name was passed to
// Parse.
var ErrInvalidHeuristic = errors.New("heuristic: unrecognized heuristic name")

package heuristic

import "github.com/nsquare/npuzzle/board"

// Heuristic estimates the remaining cost from a Board to the goal the given
// GoalLookup was built from. Implementations must be admissible
// (never overestimate) for the engines' optimality guarantee to hold.
type Heuristic interface {
	Evaluate(b *board.Board, lookup *board.GoalLookup) uint32
}

// Parse maps a CLI-facing name to a Heuristic value. Returns
// ErrInvalidHeuristic for anything else. The empty string defaults to
// Manhattan, matching the CLI's documented default.
func Parse(name string) (Heuristic, error) {
	switch name {
	case "manhattan", "":
		return Manhattan{}, nil
	case "misplaced":
		return Misplaced{}, nil
	case "linear":
		return LinearConflict{}, nil
	default:
		return nil, ErrInvalidHeuristic
	}
}

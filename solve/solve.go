package solve

import (
	"context"

	"github.com/nsquare/npuzzle/board"
	"github.com/nsquare/npuzzle/heuristic"
	"github.com/nsquare/npuzzle/parallel"
	"github.com/nsquare/npuzzle/result"
	"github.com/nsquare/npuzzle/sequential"
	"github.com/nsquare/npuzzle/solvability"
)

// Solution and Statistics are re-exported so callers never need to import
// result directly.
type (
	Solution   = result.Solution
	Statistics = result.Statistics
)

// Solve validates initial against goal, runs the solvability pre-flight,
// and dispatches to the sequential solver (threads == 1) or the parallel
// engine (threads >= 2). It returns (nil, nil) when the solvability check
// reports the puzzle unreachable, so a search is never invoked on an
// infeasible input.
//
// ctx is honoured only by the parallel path; the sequential solver has no
// internal suspension point to check it against and always runs to
// completion.
func Solve(ctx context.Context, initial, goal *board.Board, h heuristic.Heuristic, mode board.Mode, threads int) (*Solution, error) {
	if threads < 1 {
		return nil, ErrInvalidThreads
	}
	if initial.N != goal.N {
		return nil, ErrDimensionMismatch
	}

	lookup := board.NewGoalLookup(goal)

	if !solvability.Feasible(initial, goal) {
		return nil, nil
	}

	if threads == 1 {
		return sequential.Solve(initial, goal, lookup, h, mode)
	}

	eng, err := parallel.NewEngine(threads, initial, goal, lookup, h, mode)
	if err != nil {
		return nil, err
	}
	return eng.Run(ctx)
}

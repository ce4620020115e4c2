// Package solve_test also provides a runnable godoc example for Solve.
package solve_test

import (
	"context"
	"fmt"

	"github.com/nsquare/npuzzle/board"
	"github.com/nsquare/npuzzle/heuristic"
	"github.com/nsquare/npuzzle/solve"
)

// ExampleSolve solves a single-move 3x3 puzzle sequentially.
func ExampleSolve() {
	goal, _ := board.FromTiles(3, []uint8{1, 2, 3, 8, 0, 4, 7, 6, 5})
	initial, _ := board.FromTiles(3, []uint8{1, 2, 3, 0, 8, 4, 7, 6, 5})

	sol, err := solve.Solve(context.Background(), initial, goal, heuristic.Manhattan{}, board.ModeAStar, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol.Stats.SolutionLength)
	// Output: 1
}

package solvability_test

import (
	"testing"

	"github.com/nsquare/npuzzle/board"
	"github.com/nsquare/npuzzle/solvability"
)

func mustBoard(t *testing.T, n int, tiles []uint8) *board.Board {
	t.Helper()
	b, err := board.FromTiles(n, tiles)
	if err != nil {
		t.Fatalf("FromTiles: %v", err)
	}
	return b
}

// Snail goal, single swap of two tiles makes the puzzle unsolvable.
func TestFeasible_OddN_Unsolvable(t *testing.T) {
	snailGoal := mustBoard(t, 3, []uint8{1, 2, 3, 8, 0, 4, 7, 6, 5})
	initial := mustBoard(t, 3, []uint8{2, 1, 3, 8, 0, 4, 7, 6, 5})

	if solvability.Feasible(initial, snailGoal) {
		t.Fatal("expected infeasible: single adjacent swap flips inversion parity")
	}
}

// Inversion count of initial is 3 (odd), goal sorted (0 inversions,
// even) -- parities disagree, unsolvable.
func TestFeasible_OddN_InversionCountDisagreement(t *testing.T) {
	sortedGoal := mustBoard(t, 3, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 0})
	initial := mustBoard(t, 3, []uint8{3, 2, 1, 4, 5, 6, 7, 8, 0})

	if solvability.Feasible(initial, sortedGoal) {
		t.Fatal("expected infeasible: inversion parities disagree")
	}
}

func TestFeasible_IdenticalBoardsAlwaysFeasible(t *testing.T) {
	b := mustBoard(t, 4, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15})
	if !solvability.Feasible(b, b) {
		t.Fatal("a board is always feasible against itself")
	}
}

// A board one legal slide (one cardinal move of the empty cell) away from
// another must be feasible against it: the moved board and the original
// lie in the same connected component. Checked here for odd N.
func TestFeasible_SingleMovePreservesReachability(t *testing.T) {
	initial := mustBoard(t, 3, []uint8{1, 2, 3, 8, 0, 4, 7, 6, 5})
	goal := mustBoard(t, 3, []uint8{1, 2, 3, 0, 8, 4, 7, 6, 5})

	moved := board.Successors(initial, board.ModeUCS, nil)
	found := false
	for _, child := range moved {
		if child.Equals(goal) {
			found = true
		}
	}
	if !found {
		t.Fatal("test setup: goal should be one slide away from initial")
	}
	if !solvability.Feasible(initial, goal) {
		t.Fatal("a board reachable in one legal move must be feasible")
	}
}

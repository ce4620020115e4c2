package heuristic_test

import (
	"testing"

	"github.com/nsquare/npuzzle/board"
	"github.com/nsquare/npuzzle/heuristic"
)

func goalLookup(t *testing.T, n int, tiles []uint8) *board.GoalLookup {
	t.Helper()
	b, err := board.FromTiles(n, tiles)
	if err != nil {
		t.Fatalf("FromTiles: %v", err)
	}
	return board.NewGoalLookup(b)
}

var allHeuristics = map[string]heuristic.Heuristic{
	"manhattan": heuristic.Manhattan{},
	"misplaced": heuristic.Misplaced{},
	"linear":    heuristic.LinearConflict{},
}

func TestHeuristics_ZeroAtGoal(t *testing.T) {
	goalTiles := []uint8{1, 2, 3, 8, 0, 4, 7, 6, 5}
	lookup := goalLookup(t, 3, goalTiles)
	goal, _ := board.FromTiles(3, goalTiles)

	for name, h := range allHeuristics {
		if got := h.Evaluate(goal, lookup); got != 0 {
			t.Errorf("%s: H(goal) = %d, want 0", name, got)
		}
	}
}

func TestHeuristics_Parse(t *testing.T) {
	for _, name := range []string{"manhattan", "", "misplaced", "linear"} {
		if _, err := heuristic.Parse(name); err != nil {
			t.Errorf("Parse(%q) returned error: %v", name, err)
		}
	}
	if _, err := heuristic.Parse("bogus"); err != heuristic.ErrInvalidHeuristic {
		t.Fatalf("expected ErrInvalidHeuristic, got %v", err)
	}
}

func TestLinearConflict_GreaterOrEqualManhattan(t *testing.T) {
	goalTiles := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 0}
	lookup := goalLookup(t, 3, goalTiles)

	// A board with a genuine row conflict: 2 and 1 are both in row 0 and
	// both belong in row 0, but appear in reversed order.
	b, err := board.FromTiles(3, []uint8{2, 1, 3, 4, 5, 6, 7, 8, 0})
	if err != nil {
		t.Fatalf("FromTiles: %v", err)
	}

	manhattan := heuristic.Manhattan{}.Evaluate(b, lookup)
	linear := heuristic.LinearConflict{}.Evaluate(b, lookup)

	if linear < manhattan {
		t.Fatalf("linear conflict (%d) must be >= manhattan (%d)", linear, manhattan)
	}
	if linear != manhattan+2 {
		t.Fatalf("expected exactly one conflicting pair (+2), got manhattan=%d linear=%d", manhattan, linear)
	}
}

func TestLinearConflict_ThreeWayRowConflict(t *testing.T) {
	// Goal: row 0 is tiles 3,2,1 (reversed order relative to their values).
	goalTiles := []uint8{3, 2, 1, 4, 5, 6, 7, 8, 0}
	lookup := goalLookup(t, 3, goalTiles)

	// Current board: row 0 holds 1,2,3 in increasing order, each of which
	// belongs in row 0 at goal columns 2,1,0 respectively -- every pair
	// among the three conflicts, so there are C(3,2) = 3 conflicting pairs.
	b, err := board.FromTiles(3, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 0})
	if err != nil {
		t.Fatalf("FromTiles: %v", err)
	}

	manhattan := heuristic.Manhattan{}.Evaluate(b, lookup)
	linear := heuristic.LinearConflict{}.Evaluate(b, lookup)

	if linear != manhattan+6 {
		t.Fatalf("expected 3 conflicting pairs (+6), got manhattan=%d linear=%d", manhattan, linear)
	}
}

func TestMisplaced_CountsOnlyWrongNonZeroTiles(t *testing.T) {
	goalTiles := []uint8{1, 2, 3, 8, 0, 4, 7, 6, 5}
	lookup := goalLookup(t, 3, goalTiles)

	b, err := board.FromTiles(3, []uint8{1, 2, 3, 0, 8, 4, 7, 6, 5})
	if err != nil {
		t.Fatalf("FromTiles: %v", err)
	}
	// Only tile 8 and the swapped empty cell differ; 8 is the single
	// misplaced non-zero tile.
	if got := (heuristic.Misplaced{}).Evaluate(b, lookup); got != 1 {
		t.Fatalf("Misplaced = %d, want 1", got)
	}
}

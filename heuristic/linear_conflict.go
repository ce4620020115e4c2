package heuristic

import "github.com/nsquare/npuzzle/board"

// LinearConflict is Manhattan distance plus 2 moves for every conflicting
// pair of tiles sharing a row or column with their shared goal line: two
// tiles (t1, t2) conflict in a row when both currently occupy that row, both
// belong there in the goal, t1 sits left of t2, yet t1's goal column is
// greater than t2's — the two must pass each other, which Manhattan alone
// does not charge for. Column conflicts are symmetric. Every conflicting
// pair contributes exactly 2, independent of how many other tiles it also
// conflicts with (a direct pairwise count, not an approximation).
type LinearConflict struct{}

// Evaluate implements Heuristic.
func (LinearConflict) Evaluate(b *board.Board, lookup *board.GoalLookup) uint32 {
	total := Manhattan{}.Evaluate(b, lookup)

	n := b.N
	rowTargets := make([][]int, n) // rowTargets[r] = goal columns of tiles currently in row r, in column order
	colTargets := make([][]int, n) // colTargets[c] = goal rows of tiles currently in column c, in row order

	for i, tile := range b.Tiles {
		if tile == 0 {
			continue
		}
		r, c := b.Coords(i)
		gr, gc := lookup.Target(tile)
		if gr == r {
			rowTargets[r] = append(rowTargets[r], gc)
		}
		if gc == c {
			colTargets[c] = append(colTargets[c], gr)
		}
	}

	for _, targets := range rowTargets {
		total += 2 * uint32(countConflictPairs(targets))
	}
	for _, targets := range colTargets {
		total += 2 * uint32(countConflictPairs(targets))
	}

	return total
}

// countConflictPairs counts index pairs i<j with targets[i] > targets[j]:
// exactly the pairwise definition of a linear conflict along one line.
func countConflictPairs(targets []int) int {
	count := 0
	for i := 0; i < len(targets); i++ {
		for j := i + 1; j < len(targets); j++ {
			if targets[i] > targets[j] {
				count++
			}
		}
	}
	return count
}

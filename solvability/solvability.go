package solvability

import "github.com/nsquare/npuzzle/board"

// Feasible reports whether goal is reachable from initial by legal slides.
// initial and goal must have the same N (the caller is expected to have
// already validated this via solve.Solve's ErrDimensionMismatch check;
// Feasible itself just compares the two boards' parity signatures).
func Feasible(initial, goal *board.Board) bool {
	return parity(initial) == parity(goal)
}

// parity returns the feasibility class of b: for odd N, the inversion count
// mod 2; for even N, the inversion count plus the empty cell's distance
// from the bottom row, mod 2. Two boards of the same N are mutually
// reachable iff their parity values are equal.
func parity(b *board.Board) int {
	p := inversions(b) % 2
	if b.N%2 == 0 {
		emptyRow, _ := b.Coords(b.EmptyIndex)
		rowFromBottom := b.N - 1 - emptyRow
		p = (p + rowFromBottom) % 2
	}
	return p
}

// inversions counts ordered pairs (i, j), i<j, of non-zero tiles where
// Tiles[i] > Tiles[j].
func inversions(b *board.Board) int {
	count := 0
	tiles := b.Tiles
	for i := 0; i < len(tiles); i++ {
		if tiles[i] == 0 {
			continue
		}
		for j := i + 1; j < len(tiles); j++ {
			if tiles[j] == 0 {
				continue
			}
			if tiles[i] > tiles[j] {
				count++
			}
		}
	}
	return count
}

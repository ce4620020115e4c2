package heuristic

import "github.com/nsquare/npuzzle/board"

// Manhattan sums, over every non-zero tile, the taxicab distance between its
// current position and its goal position. Admissible and consistent for the
// unit-cost N-puzzle.
type Manhattan struct{}

// Evaluate implements Heuristic.
func (Manhattan) Evaluate(b *board.Board, lookup *board.GoalLookup) uint32 {
	var total uint32
	for i, tile := range b.Tiles {
		if tile == 0 {
			continue
		}
		r, c := b.Coords(i)
		gr, gc := lookup.Target(tile)
		total += absDiff(r, gr) + absDiff(c, gc)
	}
	return total
}

func absDiff(a, b int) uint32 {
	if a < b {
		return uint32(b - a)
	}
	return uint32(a - b)
}

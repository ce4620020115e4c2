package heuristic

import "github.com/nsquare/npuzzle/board"

// Misplaced counts the non-zero tiles whose current index differs from
// their goal index. Admissible, and also satisfies |H(b)-H(b')|<=1 for
// neighbour boards since a single slide moves exactly one tile by one
// position, but it is a much weaker estimate than Manhattan in practice.
type Misplaced struct{}

// Evaluate implements Heuristic.
func (Misplaced) Evaluate(b *board.Board, lookup *board.GoalLookup) uint32 {
	var count uint32
	for i, tile := range b.Tiles {
		if tile == 0 {
			continue
		}
		gr, gc := lookup.Target(tile)
		if b.Index(gr, gc) != i {
			count++
		}
	}
	return count
}

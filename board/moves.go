package board

// Successors generates the 2-4 legal children of n by sliding each in-bounds
// cardinal neighbour of the empty cell into it, in the fixed {up, down,
// left, right} order. Each child's G is parent.G+1, its H is 0 under
// ModeUCS and heval(child) otherwise, and its F follows the mode's formula
// (G+H for ModeAStar, G for ModeUCS, H for ModeGreedy). The child's Parent
// is set to n.
//
// heval is expected to be a closure over a single heuristic.Heuristic and
// its GoalLookup, built once per search run by the caller; Successors itself
// has no heuristic package dependency, which keeps board free of an import
// cycle against heuristic.
func Successors(n *Board, mode Mode, heval func(b *Board) uint32) []*Board {
	children := make([]*Board, 0, 4)
	row, col := n.Coords(n.EmptyIndex)

	for _, d := range directions {
		nr, nc := row+d.deltaRow, col+d.deltaCol
		if nr < 0 || nr >= n.N || nc < 0 || nc >= n.N {
			continue
		}

		child := n.Clone()
		ni := child.Index(nr, nc)
		child.Tiles[child.EmptyIndex], child.Tiles[ni] = child.Tiles[ni], child.Tiles[child.EmptyIndex]
		child.EmptyIndex = ni
		child.Parent = n

		g := n.G + 1
		var h uint32
		if mode != ModeUCS {
			h = heval(child)
		}
		child.G = g
		child.H = h
		switch mode {
		case ModeUCS:
			child.F = g
		case ModeGreedy:
			child.F = h
		default: // ModeAStar
			child.F = g + h
		}

		children = append(children, child)
	}

	return children
}

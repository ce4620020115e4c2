package generator

import (
	"math/rand"

	"github.com/nsquare/npuzzle/board"
	"github.com/nsquare/npuzzle/solvability"
)

// Shuffle derives an initial board from goal by taking iterations random
// legal slides, using rng for move selection so callers control
// determinism (tests pass a seeded source; the CLI passes one seeded from
// the current time). onStep, if non-nil, is called after every move with
// (completed, iterations) so the CLI can drive a progress bar.
//
// Each step resets the chosen successor's Parent and costs rather than
// threading them through board.Successors' search-node bookkeeping, since
// a shuffle walk is not a search: carrying a growing Parent chain across
// thousands of iterations would retain every intermediate board for no
// reason.
func Shuffle(goal *board.Board, iterations int, rng *rand.Rand, onStep func(completed, total int)) *board.Board {
	current := goal.Clone()
	current.Parent = nil

	for i := 0; i < iterations; i++ {
		children := board.Successors(current, board.ModeUCS, nil)
		next := children[rng.Intn(len(children))]
		next.Parent = nil
		next.G, next.H, next.F = 0, 0, 0
		current = next

		if onStep != nil {
			onStep(i+1, iterations)
		}
	}

	return current
}

// ForceParity returns b unchanged (as a parent-less clone) if its
// solvability relative to goal already matches solvable, or a single
// transposition of b's first two non-zero tiles otherwise -- swapping any
// two distinct tiles flips the inversion parity by exactly one, which
// flips Feasible's verdict without disturbing anything else about the
// board.
func ForceParity(b, goal *board.Board, solvable bool) *board.Board {
	out := b.Clone()
	out.Parent = nil

	if solvability.Feasible(out, goal) == solvable {
		return out
	}

	i, j := -1, -1
	for k, v := range out.Tiles {
		if v == 0 {
			continue
		}
		if i < 0 {
			i = k
		} else {
			j = k
			break
		}
	}
	out.Tiles[i], out.Tiles[j] = out.Tiles[j], out.Tiles[i]

	return out
}

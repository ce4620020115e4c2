package sequential

import (
	"container/heap"
	"time"

	"github.com/nsquare/npuzzle/board"
	"github.com/nsquare/npuzzle/contentmap"
	"github.com/nsquare/npuzzle/heuristic"
	"github.com/nsquare/npuzzle/result"
)

// Solve runs the reference single-threaded search: a min-heap open set
// ordered by (F, H), a closed set keyed by board content, and a best-g
// relaxation table that lets duplicate states be handled lazily instead
// of via heap decrease-key.
//
// Solve returns (nil, nil) if open drains without reaching goal (only
// reachable when the caller skipped the solvability precheck).
func Solve(initial, goal *board.Board, lookup *board.GoalLookup, h heuristic.Heuristic, mode board.Mode) (*result.Solution, error) {
	start := time.Now()

	heval := func(b *board.Board) uint32 { return h.Evaluate(b, lookup) }

	initial = initial.Clone()
	var h0 uint32
	if mode != board.ModeUCS {
		h0 = heval(initial)
	}
	// All three F formulas (G+H, G, H) agree when G=0, so the initial
	// board's F is h0 regardless of mode.
	initial.G, initial.H, initial.F = 0, h0, h0

	open := &boardPQ{initial}
	heap.Init(open)

	closed := contentmap.NewSet()
	bestG := contentmap.NewBestG()
	bestG.Set(initial, 0)

	var statesSelected int64
	var maxStates int64
	updateMax := func() {
		live := int64(open.Len() + closed.Len())
		if live > maxStates {
			maxStates = live
		}
	}
	updateMax()

	for open.Len() > 0 {
		n := heap.Pop(open).(*board.Board)
		statesSelected++

		// Relaxation gate (step 3): a cheaper path to this state was
		// already queued or settled.
		if g, ok := bestG.Get(n); ok && g < n.G {
			updateMax()
			continue
		}

		if n.Equals(goal) {
			return &result.Solution{
				Path: reconstructPath(n),
				Stats: result.Statistics{
					StatesSelected:    statesSelected,
					MaxStatesInMemory: maxStates,
					SolutionLength:    int(n.G),
					Elapsed:           time.Since(start),
					ThreadsUsed:       1,
				},
			}, nil
		}

		if !closed.Add(n) {
			// Already processed via an earlier, equal-or-better path.
			updateMax()
			continue
		}

		for _, s := range board.Successors(n, mode, heval) {
			if g, ok := bestG.Get(s); ok && s.G >= g {
				continue
			}
			bestG.Set(s, s.G)
			heap.Push(open, s)
		}
		updateMax()
	}

	return nil, nil
}

// reconstructPath walks goalNode's Parent chain back to the initial board
// and returns it in forward (initial-to-goal) order.
func reconstructPath(goalNode *board.Board) []*board.Board {
	var reversed []*board.Board
	for n := goalNode; n != nil; n = n.Parent {
		reversed = append(reversed, n)
	}
	path := make([]*board.Board, len(reversed))
	for i, n := range reversed {
		path[len(reversed)-1-i] = n
	}
	return path
}

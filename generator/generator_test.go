package generator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsquare/npuzzle/board"
	"github.com/nsquare/npuzzle/generator"
	"github.com/nsquare/npuzzle/solvability"
)

func isPermutation(t *testing.T, b *board.Board) {
	t.Helper()
	seen := make([]bool, b.N*b.N)
	for _, v := range b.Tiles {
		require.False(t, seen[v], "duplicate tile %d", v)
		seen[v] = true
	}
	for v, ok := range seen {
		require.True(t, ok, "missing tile %d", v)
	}
}

func TestSnail_3x3(t *testing.T) {
	b := generator.Snail(3)
	isPermutation(t, b)
	// 1 2 3 / 8 0 4 / 7 6 5
	require.Equal(t, []uint8{1, 2, 3, 8, 0, 4, 7, 6, 5}, b.Tiles)
}

func TestSnail_IsValidPermutationForRange(t *testing.T) {
	for n := 3; n <= 8; n++ {
		b := generator.Snail(n)
		require.Equal(t, n, b.N)
		isPermutation(t, b)
		require.Equal(t, uint8(0), b.Tiles[b.EmptyIndex])
	}
}

func TestShuffle_ProducesPermutationReachableFromGoal(t *testing.T) {
	goal := generator.Snail(3)
	rng := rand.New(rand.NewSource(1))

	var steps []int
	shuffled := generator.Shuffle(goal, 50, rng, func(completed, total int) {
		steps = append(steps, completed)
	})

	isPermutation(t, shuffled)
	require.Len(t, steps, 50)
	require.True(t, solvability.Feasible(shuffled, goal), "a random walk from goal must stay solvable")
}

func TestShuffle_Deterministic(t *testing.T) {
	goal := generator.Snail(4)
	a := generator.Shuffle(goal, 200, rand.New(rand.NewSource(42)), nil)
	b := generator.Shuffle(goal, 200, rand.New(rand.NewSource(42)), nil)
	require.Equal(t, a.Tiles, b.Tiles)
}

func TestForceParity_SolvableRequestLeavesReachableBoardUnchanged(t *testing.T) {
	goal := generator.Snail(3)
	reachable := generator.Shuffle(goal, 10, rand.New(rand.NewSource(7)), nil)

	out := generator.ForceParity(reachable, goal, true)
	require.Equal(t, reachable.Tiles, out.Tiles)
}

func TestForceParity_UnsolvableRequestFlipsParity(t *testing.T) {
	goal := generator.Snail(3)
	reachable := generator.Shuffle(goal, 10, rand.New(rand.NewSource(7)), nil)
	require.True(t, solvability.Feasible(reachable, goal))

	out := generator.ForceParity(reachable, goal, false)
	require.False(t, solvability.Feasible(out, goal))
	isPermutation(t, out)
}

func TestForceParity_SolvableRequestFixesUnsolvableBoard(t *testing.T) {
	goal := generator.Snail(3)
	reachable := generator.Shuffle(goal, 10, rand.New(rand.NewSource(7)), nil)
	unsolvable := generator.ForceParity(reachable, goal, false)
	require.False(t, solvability.Feasible(unsolvable, goal))

	fixed := generator.ForceParity(unsolvable, goal, true)
	require.True(t, solvability.Feasible(fixed, goal))
}

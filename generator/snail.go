package generator

import "github.com/nsquare/npuzzle/board"

// Snail builds the canonical N×N goal board: 1, 2, …, N²-1 laid out by
// walking inward in a clockwise spiral starting at the top-left, with 0
// left at whichever cell the spiral reaches last.
func Snail(n int) *board.Board {
	b := board.New(n)

	top, bottom, left, right := 0, n-1, 0, n-1
	max := n*n - 1
	val := uint8(1)

	for top <= bottom && left <= right {
		done := false

		for c := left; c <= right && !done; c++ {
			if int(val) > max {
				done = true
				break
			}
			b.Tiles[b.Index(top, c)] = val
			val++
		}
		top++
		if done {
			break
		}

		for r := top; r <= bottom && !done; r++ {
			if int(val) > max {
				done = true
				break
			}
			b.Tiles[b.Index(r, right)] = val
			val++
		}
		right--
		if done {
			break
		}

		if top <= bottom {
			for c := right; c >= left && !done; c-- {
				if int(val) > max {
					done = true
					break
				}
				b.Tiles[b.Index(bottom, c)] = val
				val++
			}
			bottom--
		}
		if done {
			break
		}

		if left <= right {
			for r := bottom; r >= top && !done; r-- {
				if int(val) > max {
					done = true
					break
				}
				b.Tiles[b.Index(r, left)] = val
				val++
			}
			left++
		}
	}

	for i, v := range b.Tiles {
		if v == 0 {
			b.EmptyIndex = i
			break
		}
	}

	return b
}

package sequential

import "github.com/nsquare/npuzzle/board"

// boardPQ is a min-heap of *board.Board ordered lexicographically by (F, H)
// ascending: F breaks ties on overall priority, H breaks ties among equal-F
// boards by preferring the one closer to the goal. No further tie-breaker is
// applied; the heap may order remaining ties arbitrarily.
type boardPQ []*board.Board

func (pq boardPQ) Len() int { return len(pq) }

func (pq boardPQ) Less(i, j int) bool {
	if pq[i].F != pq[j].F {
		return pq[i].F < pq[j].F
	}
	return pq[i].H < pq[j].H
}

func (pq boardPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *boardPQ) Push(x any) { *pq = append(*pq, x.(*board.Board)) }

func (pq *boardPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

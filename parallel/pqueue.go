package parallel

import "github.com/nsquare/npuzzle/board"

// boardPQ is the same (F, H)-ascending min-heap ordering as
// sequential.boardPQ, duplicated here because a worker's queue must be a
// value this package owns and locks directly rather than importing an
// unexported type from sequential.
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

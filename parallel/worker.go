package parallel

import (
	"container/heap"
	"math"
	"sync"
	"sync/atomic"

	"github.com/nsquare/npuzzle/board"
)

// minFIdle is the sentinel minF value meaning "no node at hand", i.e. ∞.
// A bit-packed (f, valid) state would need a separate validity bit, but
// every real f-cost fits in a uint32, so math.MaxUint64 is already outside
// that range and serves as the sentinel directly.
const minFIdle = math.MaxUint64

// worker owns one local priority queue plus its per-worker bookkeeping:
// an advisory open count for stealers, a free-listed pool its queue's
// nodes are allocated from, and a published min-f used by the
// termination sniff.
type worker struct {
	id int

	mu    sync.Mutex
	queue boardPQ

	openCount atomic.Int64
	minF      atomic.Uint64
	pool      *pool
}

func newWorker(id int) *worker {
	w := &worker{id: id, pool: newPool(id)}
	w.minF.Store(minFIdle)
	return w
}

// popOwn pops the best node from this worker's own queue, or nil if empty.
// It updates minF to the popped node's F, or to idle on an empty queue.
func (w *worker) popOwn() *board.Board {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.queue) == 0 {
		w.minF.Store(minFIdle)
		return nil
	}
	n := heap.Pop(&w.queue).(*board.Board)
	w.openCount.Store(int64(len(w.queue)))
	w.minF.Store(uint64(n.F))
	return n
}

// tryStealFrom attempts a non-blocking steal of up to batch nodes from
// victim. On success it returns the best stolen node and pushes the
// remainder into w's own queue.
// ok is false when the trylock failed or the victim's queue was empty by
// the time the lock was acquired.
func (w *worker) tryStealFrom(victim *worker, batch int) (stolen *board.Board, ok bool) {
	if victim.openCount.Load() <= 0 {
		return nil, false
	}
	if !victim.mu.TryLock() {
		return nil, false
	}
	defer victim.mu.Unlock()

	if len(victim.queue) == 0 {
		return nil, false
	}

	taken := make([]*board.Board, 0, batch)
	for i := 0; i < batch && len(victim.queue) > 0; i++ {
		taken = append(taken, heap.Pop(&victim.queue).(*board.Board))
	}
	victim.openCount.Store(int64(len(victim.queue)))

	best := taken[0]
	rest := taken[1:]

	if len(rest) > 0 {
		w.mu.Lock()
		for _, n := range rest {
			heap.Push(&w.queue, n)
		}
		w.openCount.Store(int64(len(w.queue)))
		w.mu.Unlock()
	}

	w.minF.Store(uint64(best.F))
	return best, true
}

// push inserts n into w's own queue under its mutex.
func (w *worker) push(n *board.Board) {
	w.mu.Lock()
	heap.Push(&w.queue, n)
	w.openCount.Store(int64(len(w.queue)))
	w.mu.Unlock()
}

// promote allocates a fresh node from w's own pool, copies s's content
// into it, reusing the pooled node's Tiles backing array where its
// capacity suffices, and
// pushes it into w's queue, so every queued node is owned by the worker
// that expands it. s itself is left for the garbage collector.
func (w *worker) promote(s *board.Board) *board.Board {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := w.pool.alloc()
	n.N = s.N
	if cap(n.Tiles) >= len(s.Tiles) {
		n.Tiles = n.Tiles[:len(s.Tiles)]
	} else {
		n.Tiles = make([]uint8, len(s.Tiles))
	}
	copy(n.Tiles, s.Tiles)
	n.EmptyIndex = s.EmptyIndex
	n.G, n.H, n.F = s.G, s.H, s.F
	n.Parent = s.Parent

	heap.Push(&w.queue, n)
	w.openCount.Store(int64(len(w.queue)))
	return n
}

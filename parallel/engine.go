package parallel

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nsquare/npuzzle/board"
	"github.com/nsquare/npuzzle/heuristic"
	"github.com/nsquare/npuzzle/result"
)

// Engine is a work-stealing, multi-queue A* search. Construct one with
// NewEngine and run it once with Run; an Engine is not meant to be reused
// across searches.
type Engine struct {
	workers    []*worker
	shards     []*shard
	goal       *board.Board
	mode       board.Mode
	heval      func(*board.Board) uint32
	stealBatch int

	bestCost atomic.Uint32

	bestNodeMu sync.Mutex
	bestNode   *board.Board

	statesSelected atomic.Int64
	maxStates      atomic.Int64
	closedCount    atomic.Int64
	stopFlag       atomic.Bool
}

// NewEngine builds an Engine of the given thread count (>= 2; use
// sequential.Solve for a single thread) and seeds worker 0's queue with
// the initial board.
func NewEngine(threads int, initial, goal *board.Board, lookup *board.GoalLookup, h heuristic.Heuristic, mode board.Mode, opts ...Option) (*Engine, error) {
	if threads < 2 {
		return nil, ErrInvalidThreadCount
	}
	if initial.N != goal.N {
		return nil, ErrDimensionMismatch
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		workers:    make([]*worker, threads),
		shards:     newShards(cfg.shardCount),
		goal:       goal,
		mode:       mode,
		stealBatch: cfg.stealBatch,
	}
	e.heval = func(b *board.Board) uint32 { return h.Evaluate(b, lookup) }
	e.bestCost.Store(math.MaxUint32)

	for i := range e.workers {
		e.workers[i] = newWorker(i)
	}

	seed := e.workers[0].pool.alloc()
	seed.N = initial.N
	seed.Tiles = append(seed.Tiles[:0], initial.Tiles...)
	seed.EmptyIndex = initial.EmptyIndex
	var h0 uint32
	if mode != board.ModeUCS {
		h0 = e.heval(seed)
	}
	seed.G, seed.H = 0, h0
	switch mode {
	case board.ModeUCS:
		seed.F = 0
	case board.ModeGreedy:
		seed.F = h0
	default:
		seed.F = h0
	}
	e.workers[0].push(seed)

	sh := shardFor(e.shards, seed)
	sh.mu.Lock()
	sh.bestG.Set(seed, 0)
	sh.mu.Unlock()

	return e, nil
}

// Run launches one goroutine per worker via errgroup.Group, blocks until
// every worker has returned (the stop rule fired, every worker reached idle
// quiescence, or ctx was cancelled), and then
// extracts the best solution found (nil, nil if none exists). A panic
// inside any worker is recovered and turned into an error rather than
// crashing the process.
func (e *Engine) Run(ctx context.Context) (*result.Solution, error) {
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for _, w := range e.workers {
		w := w
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("parallel: worker %d panicked: %v", w.id, r)
				}
			}()
			e.runWorker(gctx, w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.bestNodeMu.Lock()
	best := e.bestNode
	e.bestNodeMu.Unlock()

	if best == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	path := clonePath(best)
	return &result.Solution{
		Path: path,
		Stats: result.Statistics{
			StatesSelected:    e.statesSelected.Load(),
			MaxStatesInMemory: e.maxStates.Load(),
			SolutionLength:    len(path) - 1,
			Elapsed:           time.Since(start),
			ThreadsUsed:       len(e.workers),
		},
	}, nil
}

// runWorker executes one worker's pop-steal-expand loop until stop_flag
// is set or ctx is cancelled: pop its own queue or steal from a peer,
// check the termination sniff, bound-prune and relax against the shared
// shard, test for goal, and expand successors back into its own queue.
func (e *Engine) runWorker(ctx context.Context, w *worker) {
	for {
		if e.stopFlag.Load() || ctx.Err() != nil {
			return
		}

		n := w.popOwn()
		if n == nil {
			n = e.steal(w)
		}
		if n == nil {
			if e.allIdle() {
				return
			}
			runtime.Gosched()
			continue
		}

		e.statesSelected.Add(1)

		if best := e.bestCost.Load(); best < math.MaxUint32 && n.F >= best {
			e.releaseNode(n)
			e.updateMaxStates()
			continue
		}

		sh := shardFor(e.shards, n)
		sh.mu.Lock()
		if g, ok := sh.bestG.Get(n); ok && g < n.G {
			sh.mu.Unlock()
			e.releaseNode(n)
			e.updateMaxStates()
			continue
		}
		closedNow := sh.closed.Add(n)
		sh.mu.Unlock()

		if !closedNow {
			e.releaseNode(n)
			e.updateMaxStates()
			continue
		}
		e.closedCount.Add(1)

		if n.Equals(e.goal) {
			e.recordGoal(n)
			e.updateMaxStates()
			continue
		}

		for _, s := range board.Successors(n, e.mode, e.heval) {
			if best := e.bestCost.Load(); best < math.MaxUint32 && s.F >= best {
				continue
			}

			ssh := shardFor(e.shards, s)
			ssh.mu.Lock()
			g, ok := ssh.bestG.Get(s)
			if ok && s.G >= g {
				ssh.mu.Unlock()
				continue
			}
			ssh.bestG.Set(s, s.G)
			ssh.mu.Unlock()

			w.promote(s)
		}
		e.updateMaxStates()
	}
}

// steal tries every other worker in fixed round-robin order starting at
// w.id+1, returning the first successfully stolen node.
func (e *Engine) steal(w *worker) *board.Board {
	p := len(e.workers)
	for i := 1; i < p; i++ {
		victim := e.workers[(w.id+i)%p]
		if victim == w {
			continue
		}
		if stolen, ok := w.tryStealFrom(victim, e.stealBatch); ok {
			return stolen
		}
	}
	return nil
}

// allIdle reports whether every worker's published minF is the idle
// sentinel, the condition under which the search has reached quiescence
// with no solution.
func (e *Engine) allIdle() bool {
	for _, w := range e.workers {
		if w.minF.Load() != minFIdle {
			return false
		}
	}
	return true
}

// recordGoal performs a fetch_min-then-conditional-assign on a goal node
// -- atomically lowering bestCost and, if this node improved it, updating
// bestNode -- followed by the cross-worker stop check.
func (e *Engine) recordGoal(n *board.Board) {
	var prev uint32
	for {
		old := e.bestCost.Load()
		if n.G < old {
			if !e.bestCost.CompareAndSwap(old, n.G) {
				continue
			}
			prev = old
			break
		}
		prev = old
		break
	}
	if n.G <= prev {
		e.bestNodeMu.Lock()
		e.bestNode = n
		e.bestNodeMu.Unlock()
	}

	best := uint64(e.bestCost.Load())
	minOfMins := uint64(minFIdle)
	for _, w := range e.workers {
		if v := w.minF.Load(); v < minOfMins {
			minOfMins = v
		}
	}
	if best <= minOfMins {
		e.stopFlag.Store(true)
	}
}

// releaseNode returns b to the free list of the worker pool that
// allocated it, serialised on that pool's owning queue mutex regardless
// of which worker is doing the releasing.
func (e *Engine) releaseNode(b *board.Board) {
	owner := e.workers[b.Owner]
	owner.mu.Lock()
	owner.pool.release(b)
	owner.mu.Unlock()
}

// updateMaxStates recomputes the live open+closed count and fetch-maxes
// it into maxStates.
func (e *Engine) updateMaxStates() {
	var live int64
	for _, w := range e.workers {
		live += w.openCount.Load()
	}
	live += e.closedCount.Load()

	for {
		cur := e.maxStates.Load()
		if live <= cur {
			return
		}
		if e.maxStates.CompareAndSwap(cur, live) {
			return
		}
	}
}

// clonePath walks goalNode's Parent chain, which lives inside worker
// pools, and clones each node into caller-owned storage with freshly
// rewired Parent pointers so the returned path outlives the pools it
// was built from.
func clonePath(goalNode *board.Board) []*board.Board {
	var reversed []*board.Board
	for n := goalNode; n != nil; n = n.Parent {
		reversed = append(reversed, n.Clone())
	}

	path := make([]*board.Board, len(reversed))
	for i, n := range reversed {
		path[len(reversed)-1-i] = n
	}
	for i := range path {
		if i == 0 {
			path[i].Parent = nil
		} else {
			path[i].Parent = path[i-1]
		}
	}
	return path
}

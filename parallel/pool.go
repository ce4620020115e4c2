package parallel

import "github.com/nsquare/npuzzle/board"

// pool is a worker's free-listed slab allocator over *board.Board: alloc
// reuses a released Board's backing storage before growing the slab, so a
// worker that cycles through many short-lived successors does not hand
// the garbage collector a fresh allocation for each one. Mutation is only
// safe under the owning worker's queue mutex; pool itself holds no lock
// of its own because worker.go already serialises every call site.
type pool struct {
	owner int
	slab  []*board.Board
	free  []*board.Board
}

func newPool(owner int) *pool {
	return &pool{owner: owner}
}

// alloc returns a *board.Board tagged with this pool's owner, reusing a
// freed one when available. The returned Board's fields are undefined
// except Owner; the caller populates the rest.
func (p *pool) alloc() *board.Board {
	if n := len(p.free); n > 0 {
		b := p.free[n-1]
		p.free = p.free[:n-1]
		return b
	}
	b := &board.Board{Owner: p.owner}
	p.slab = append(p.slab, b)
	return b
}

// release returns b to this pool's free list. Callers must only release a
// Board that alloc tagged with this pool's owner; the worker loop routes a
// release to the matching owner's pool by consulting b.Owner.
func (p *pool) release(b *board.Board) {
	b.Parent = nil
	p.free = append(p.free, b)
}

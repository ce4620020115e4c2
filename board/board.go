package board

// Board is a square N×N sliding-tile grid flattened in row-major order,
// together with the search-cost fields and parent back-reference that make
// it double as a search node (see doc.go).
//
// Tiles[i] == 0 marks the empty cell; EmptyIndex caches its position so
// move generation never has to scan for it.
type Board struct {
	N          int
	Tiles      []uint8
	EmptyIndex int

	// G, H and F are populated by SetCosts; a freshly constructed Board
	// (New, FromTiles) carries zero costs until the caller sets them.
	G, H, F uint32

	// Parent is the predecessor Board in the search tree, or nil for the
	// initial Board. Two Boards are logically the same search state iff
	// Equals reports true, regardless of their Parent chains.
	Parent *Board

	// Owner is an opaque tag the parallel engine uses to record which
	// worker's memory pool a Board belongs to, so that a board handed off
	// by work stealing can still be released to its true owner. It plays
	// no role in Hash, Equals or sequential search, which always leave it
	// at its zero value.
	Owner int
}

// New allocates a Board of side n with every tile set to 0. The caller is
// responsible for populating Tiles (e.g. via a generator) before treating it
// as a valid puzzle state; New itself performs no permutation validation.
func New(n int) *Board {
	return &Board{
		N:          n,
		Tiles:      make([]uint8, n*n),
		EmptyIndex: 0,
	}
}

// FromTiles validates tiles as a permutation of 0..n²-1 with exactly one
// zero and constructs a Board from it. This is the entry point boundary code
// must use for untrusted input; internal move generation bypasses it because
// successors are valid by construction.
func FromTiles(n int, tiles []uint8) (*Board, error) {
	if n < MinN || n > MaxN {
		return nil, ErrInvalidDimensions
	}
	if len(tiles) != n*n {
		return nil, ErrMismatchedTileCount
	}

	// Locate the empty cell first: this is checked independently of
	// duplicate/range validation so a tile set missing 0 entirely is
	// reported as ErrNoEmptyTile rather than masked by a duplicate error
	// that pigeonhole would otherwise force on the remaining values.
	emptyIndex := -1
	for i, v := range tiles {
		if v == 0 {
			emptyIndex = i
			break
		}
	}
	if emptyIndex < 0 {
		return nil, ErrNoEmptyTile
	}

	seen := make([]bool, n*n)
	for _, v := range tiles {
		if int(v) >= n*n {
			return nil, ErrInvalidTileValue
		}
		if seen[v] {
			return nil, ErrDuplicateTile
		}
		seen[v] = true
	}

	owned := make([]uint8, len(tiles))
	copy(owned, tiles)

	return &Board{
		N:          n,
		Tiles:      owned,
		EmptyIndex: emptyIndex,
	}, nil
}

// Clone returns a deep copy of b: a fresh Tiles array plus a copy of the cost
// fields and the Parent reference. Mutating the clone's Tiles never affects
// b.
func (b *Board) Clone() *Board {
	tiles := make([]uint8, len(b.Tiles))
	copy(tiles, b.Tiles)

	return &Board{
		N:          b.N,
		Tiles:      tiles,
		EmptyIndex: b.EmptyIndex,
		G:          b.G,
		H:          b.H,
		F:          b.F,
		Parent:     b.Parent,
	}
}

// SetCosts sets G and H and sets F = G + H, the A* formula (the
// mode-dependent F formula lives in Successors; a Board does not know its
// own mode). Callers that need a mode-specific F should set it explicitly
// after calling SetCosts, or use Successors, which does this consistently
// for every generated child.
func (b *Board) SetCosts(g, h uint32) {
	b.G = g
	b.H = h
	b.F = g + h
}

// Hash returns a 64-bit FNV-1a digest of the tile contents. Hash depends
// only on Tiles, not on EmptyIndex (a consequence of Tiles), G, H, F or
// Parent.
func (b *Board) Hash() uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for _, v := range b.Tiles {
		h ^= uint64(v)
		h *= prime64
	}
	return h
}

// Equals reports whether b and other have the same N and identical tile
// arrays. EmptyIndex equality is a consequence of tile equality and is not
// checked independently.
func (b *Board) Equals(other *Board) bool {
	if other == nil || b.N != other.N || len(b.Tiles) != len(other.Tiles) {
		return false
	}
	for i, v := range b.Tiles {
		if other.Tiles[i] != v {
			return false
		}
	}
	return true
}

// Coords converts a flat index into (row, col) for this Board's side N.
func (b *Board) Coords(i int) (row, col int) {
	return i / b.N, i % b.N
}

// Index converts (row, col) into a flat index for this Board's side N.
func (b *Board) Index(row, col int) int {
	return row*b.N + col
}

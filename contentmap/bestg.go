package contentmap

import "github.com/nsquare/npuzzle/board"

type bestGEntry struct {
	board *board.Board
	g     uint32
}

// BestG is a hash-then-verify map from board content to the smallest g-cost
// with which that state has been inserted into an open set or settled.
// This is the relaxation table that lets a later discovery of a cheaper
// path to an already-seen state overwrite the stored value instead of
// requiring a heap decrease-key.
type BestG struct {
	buckets map[uint64][]bestGEntry
}

// NewBestG returns an empty BestG.
func NewBestG() *BestG {
	return &BestG{buckets: make(map[uint64][]bestGEntry)}
}

// Get returns the stored g-cost for b's content, if any.
func (m *BestG) Get(b *board.Board) (g uint32, ok bool) {
	h := b.Hash()
	for _, e := range m.buckets[h] {
		if e.board.Equals(b) {
			return e.g, true
		}
	}
	return 0, false
}

// Set unconditionally stores g as the best known cost for b's content,
// inserting a new entry or overwriting the existing one.
func (m *BestG) Set(b *board.Board, g uint32) {
	h := b.Hash()
	bucket := m.buckets[h]
	for i, e := range bucket {
		if e.board.Equals(b) {
			bucket[i].g = g
			return
		}
	}
	m.buckets[h] = append(bucket, bestGEntry{board: b, g: g})
}

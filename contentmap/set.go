package contentmap

import "github.com/nsquare/npuzzle/board"

// Set is a hash-then-verify set of board contents, used as the "closed"
// collection of states already fully processed by a search.
type Set struct {
	buckets map[uint64][]*board.Board
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{buckets: make(map[uint64][]*board.Board)}
}

// Contains reports whether a board with the same content as b has already
// been added.
func (s *Set) Contains(b *board.Board) bool {
	for _, candidate := range s.buckets[b.Hash()] {
		if candidate.Equals(b) {
			return true
		}
	}
	return false
}

// Add inserts b's content if absent. It reports whether the insert
// happened (false means a board with equal content was already present).
func (s *Set) Add(b *board.Board) bool {
	h := b.Hash()
	for _, candidate := range s.buckets[h] {
		if candidate.Equals(b) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], b)
	return true
}

// Len returns the number of distinct board contents stored.
func (s *Set) Len() int {
	n := 0
	for _, bucket := range s.buckets {
		n += len(bucket)
	}
	return n
}

// Package board defines the sliding-tile board: its tile array, derived
// search-cost fields, hashing and equality, and the move generator shared by
// the sequential and parallel search engines.
//
// A Board doubles as a search node: g_cost/h_cost/f_cost and a parent
// back-reference live on the struct itself rather than on a separate node
// type, so the search tree is a DAG of *Board values linked by Parent.
//
// Boards produced by FromTiles are validated (permutation of 0..N²-1, exactly
// one empty cell); boards produced internally by Successors are valid by
// construction and skip re-validation.
package board

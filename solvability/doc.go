// Package solvability implements the inversion-parity feasibility predicate
// that gates entry into the search engines: an N-puzzle instance is
// solvable from initial to goal iff the two boards' inversion parities
// agree (odd N), or their inversion-plus-empty-row-from-bottom parities
// agree (even N). Running the predicate is O(N⁴) on the tile array but
// trivial next to a single search node expansion, so it is always run as a
// single pass before the engine is invoked.
package solvability

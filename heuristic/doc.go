// Package heuristic implements the three admissible distance estimates used
// by the search engines: Manhattan distance, misplaced-tile count, and
// Manhattan plus linear conflicts. Each is a zero-size type implementing
// Heuristic, so a search run holds a single concrete value and pays for
// exactly one interface dispatch per evaluation rather than a per-tile one.
//
// All three satisfy H(goal) = 0, H(b) >= 0, and Manhattan/LinearConflict are
// additionally consistent (|H(b)-H(b')| <= 1 for neighbour boards), which is
// what makes A* built on them optimal.
package heuristic

// Package sequential implements the single-threaded reference solver: a
// textbook A*/UCS/greedy search over board.Board, with lazy relaxation in
// place of decrease-key. It is also what the facade in package solve
// delegates to when the caller asks for exactly one worker.
//
// Complexity: O(b^d log(b^d)) in the worst case for branching factor b=4
// and solution depth d, dominated by heap operations; O(b^d) states may be
// held across open+closed.
package sequential

// Package solve is the single entry point external callers (the CLI, and
// any future embedder) use to run a search: it validates the
// initial/goal pair, runs the inversion-parity solvability pre-flight,
// and dispatches to sequential.Solve (threads == 1) or a parallel.Engine
// (threads >= 2) depending on the requested thread count.
//
// Solution and Statistics are re-exported from the result package so callers
// of solve never need to import result directly.
package solve

// Package parallel implements a work-stealing, multi-queue A* engine: P
// workers each own a local priority queue, steal from one another when
// idle, and coordinate through sharded closed and best-g maps plus a small
// set of atomics that let the search stop as soon as no live or queued
// node can possibly beat the best goal found so far.
//
// The termination rule is the subtle part of this package: a worker
// publishes the f-cost of the node it is about to process (or ∞ while
// idle) before it releases its queue mutex, so the moment every worker's
// published f is >= best_cost, no node anywhere in the system can still
// produce a cheaper solution. See Engine.Run and the worker loop
// (Engine.runWorker and Engine.recordGoal in engine.go, popOwn and
// tryStealFrom in worker.go) for the exact protocol; it is the invariant a
// future reader is most likely to break by mistake.
//
// NewEngine rejects a thread count below 2 with ErrInvalidThreadCount; the
// single-thread case is handled by sequential.Solve, which package solve
// dispatches to. Everything in this package is about the P >= 2 case.
package parallel

// Package contentmap provides unlocked, hash-then-verify collections keyed
// by board content rather than by pointer identity: a Set (the "closed"
// set of boards already processed) and a BestG (the "best known g-cost per
// state" relaxation table). Both key on board.Board.Hash and fall back to
// Equals on the rare bucket collision, so two distinct tile arrays that
// happen to share a 64-bit hash are never confused for the same state.
//
// Neither type is safe for concurrent use on its own; package parallel
// wraps one of each per shard behind a mutex, and package sequential uses
// them unwrapped since it runs on a single goroutine.
package contentmap

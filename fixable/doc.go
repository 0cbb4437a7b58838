// Package fixable provides Fixable[T], a single-slot memoisation cell with
// a three-state fixation lattice: UNFIXED < SOFT < HARD.
//
// SOFT is the memoisation pin a computation engine uses to break cycles
// ("I am being computed; use this placeholder if reached recursively, then
// I will overwrite"). HARD is the pin used for constants — a bias source, a
// frozen neuron's activation — that must survive Reset across training
// iterations.
//
// Fixable is not safe for concurrent use; callers own synchronization, per
// the single-threaded computation model it's embedded in.
package fixable

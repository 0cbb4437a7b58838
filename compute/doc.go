// Package compute implements a generic fixed-point evaluator over a
// neuron.Network: for each neuron, it lazily computes a user-supplied
// result type R, memoising it in a fixable.Fixable[R], and breaks cycles
// by pre-fixing R's zero value SOFT before recursing.
//
// For acyclic graphs the pre-fixing is semantically inert — the neuron's
// own evaluation overwrites the SOFT placeholder before its own return
// propagates. For cyclic graphs it implements one-step unrolling: each
// feedback edge contributes the zero value of R, which for the forward and
// backward result types is additive-identity and therefore equivalent to a
// break in the feedback.
//
// Engine[R] factors out the recursive memoisation walk from what varies per
// result type: the Evaluator[R] interface supplies the per-neuron
// computation hook, and each concrete result type (package forward, package
// backward) is a distinct instantiation of Engine.
package compute

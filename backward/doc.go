// Package backward implements the backward evaluation pass: for each
// neuron it computes Result{Delta}, the backpropagated error signal, by
// walking the reverse-adjacency map built over the topology and reading a
// sibling forward.Evaluator's cached Net per neuron.
//
// OUTPUT neurons are never computed through Evaluator.Compute — their
// Delta is set directly by Run from the caller's error vector, before the
// sweep back toward the inputs begins.
package backward

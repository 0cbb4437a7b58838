// Package neuron defines the topology graph: Network, Neuron, Dendrite, and
// the Role enum (INPUT / INNER / OUTPUT).
//
// A Network is an indexed collection of neuron slots, some of which may be
// vacant after removal, plus two ordered index lists (Inputs, Outputs).
// Neurons are addressed by a stable, dense numeric index starting at 0;
// every cross-reference (a dendrite's source, the trainer's reverse-
// adjacency map, a computation grid) uses that index rather than a pointer,
// so resizing the slot vector never invalidates another reference.
//
// Invariants:
//   - Every non-vacant slot's stored index equals its position.
//   - Inputs holds exactly the indices of INPUT neurons in insertion order;
//     Outputs similarly for OUTPUT.
//   - Every dendrite's source points to a non-vacant neuron in the same
//     Network. A neuron may have a dendrite to itself and to any index
//     (cycles are permitted at this layer).
//
// Network is not safe for concurrent use. The computation/training layers
// built on top of it (packages compute, forward, backward, train) assume
// exclusive, single-threaded ownership for the duration of a call, rather
// than offering the internal locking a general-purpose concurrent graph
// library would.
package neuron

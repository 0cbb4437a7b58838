// Package activation provides the activation-function capability contract
// the computation engine consumes, plus two concrete functors: Identity
// and Logistic.
//
// The contract is minimal by design — Apply computes φ, Derivative
// computes φ′ — rather than a full activation-function library; only the
// capability and a couple of working functors needed to exercise and test
// the engine live here.
package activation

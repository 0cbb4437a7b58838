// Package feedforward implements a layered network factory: Build wires up
// INPUT/INNER/OUTPUT layers from a layer-size spec, optionally adding a
// hard-pinned bias source (BIAS) and/or intra-layer lateral dendrites
// (LATERAL_PREV). Function and Training hand back a forward-only evaluator
// and a backpropagation trainer over the built topology, respectively.
package feedforward

// Package forward implements the forward evaluation pass: for each neuron
// it computes Result{Net, Phi}, where Net is the weighted sum of upstream
// Phi values and Phi is the neuron's activation applied to Net. INPUT
// neurons skip the weighted sum entirely — their Phi is pinned directly
// from the caller's input vector.
package forward

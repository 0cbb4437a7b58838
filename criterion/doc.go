// Package criterion implements learning-rate criteria: Constant, a
// fixed-threshold on/off rate, and Adaptive, a convergence-tracking rate
// that grows on sustained improvement and shrinks on stagnation or
// divergence.
package criterion

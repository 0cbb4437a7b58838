// Package rng provides the random-weight initialiser capability: a
// callable returning a weight, sampled uniformly over [min, max] and
// quantised to a granularity of gran steps.
package rng

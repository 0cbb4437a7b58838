// Package errs defines the sentinel error kinds shared across libnn's
// packages, and a wrapping helper that attaches call-site context without
// losing errors.Is compatibility.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Call sites attach context with Wrapf, which preserves %w chaining.
package errs

import (
	"errors"
	"fmt"
)

// ErrIndex indicates an out-of-range neuron index or a lookup into a vacant slot.
var ErrIndex = errors.New("libnn: index out of range or vacant")

// ErrShape indicates an input/target/error vector length disagrees with the
// network's input or output dimension.
var ErrShape = errors.New("libnn: shape mismatch")

// ErrInvariant indicates an attempt to overwrite a HARD-fixed cell, a read of
// an unfixed cell through a const handle, a backward evaluation requested for
// an OUTPUT neuron, or a feature change on a non-empty feed-forward topology.
var ErrInvariant = errors.New("libnn: invariant violated")

// ErrConfig indicates invalid construction parameters (fewer than two
// feed-forward layers, an RNG with min > max, and similar).
var ErrConfig = errors.New("libnn: invalid configuration")

// ErrParse indicates serialised input did not match the documented grammar,
// a numeric conversion failed, or an activation literal's parameters
// disagreed with the expected type.
var ErrParse = errors.New("libnn: parse error")

// Wrapf wraps sentinel with "<method>: <formatted message>", preserving
// errors.Is(result, sentinel) via %w.
func Wrapf(sentinel error, method, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, msg, sentinel)
}

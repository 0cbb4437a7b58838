package compute

import (
	"github.com/vencik-go/libnn/errs"
	"github.com/vencik-go/libnn/fixable"
	"github.com/vencik-go/libnn/neuron"
)

// FxFunc is the recursive callback an Evaluator's Compute receives: calling
// fx(index) forces (and memoises) the result for another neuron.
type FxFunc[R any] func(index int) (R, error)

// Evaluator supplies the per-neuron evaluation rule for a result type R.
// Implementations MUST return the additive identity for R from Default —
// that is the value a feedback edge sees when the engine breaks a cycle by
// pre-fixing it SOFT, and the aggregation Compute performs over fx(...)
// results must treat it as a no-op contribution.
type Evaluator[R any] interface {
	// Default returns R's additive identity.
	Default() R
	// Compute evaluates neuron n, calling fx to force any other neuron's
	// result it depends on. Compute must not be called for a neuron whose
	// cell is already Fixed; the engine handles that short-circuit.
	Compute(n *neuron.Neuron, fx FxFunc[R]) (R, error)
}

// Engine is a fixed-point evaluator over net, memoising one R per slot.
type Engine[R any] struct {
	net   *neuron.Network
	eval  Evaluator[R]
	cells []*fixable.Fixable[R]
	reset bool
}

// New returns an Engine sized to net's current SlotCount. Growing net after
// construction is undefined; reindexing or otherwise resizing requires a
// fresh Engine.
func New[R any](net *neuron.Network, eval Evaluator[R]) *Engine[R] {
	cells := make([]*fixable.Fixable[R], net.SlotCount())
	for i := range cells {
		cells[i] = fixable.New[R]()
	}

	return &Engine[R]{net: net, eval: eval, cells: cells, reset: true}
}

// Reset restores every non-HARD cell to (zero value, Unfixed). Skipped in
// O(1) if the grid is already fully reset.
func (e *Engine[R]) Reset() {
	if e.reset {
		return
	}
	for _, c := range e.cells {
		c.Reset()
	}
	e.reset = true
}

// Fx returns the memoised result for index, computing it if necessary.
//
// Behavior:
//  1. Bounds-check index.
//  2. If the cell is already Fixed (SOFT or HARD), return its value.
//  3. Otherwise SOFT-fix the cell to eval.Default() to break cycles, mark
//     the grid non-reset.
//  4. Invoke eval.Compute; the result overwrites the cell with a forced
//     Set (HARD cells are unreachable here since step 2 already returned).
//  5. Return the stored value.
func (e *Engine[R]) Fx(index int) (R, error) {
	var zero R
	if index < 0 || index >= len(e.cells) {
		return zero, errs.Wrapf(errs.ErrIndex, "compute.Engine.Fx", "index %d out of range (slot_cnt=%d)", index, len(e.cells))
	}
	cell := e.cells[index]
	if cell.Fixed() {
		return cell.Get(), nil
	}

	// Pre-fix SOFT with the default before recursing, so a back-edge
	// reached during eval.Compute sees this value instead of recursing
	// again.
	if err := cell.FixValue(e.eval.Default(), false, fixable.Soft); err != nil {
		return zero, err
	}
	e.reset = false

	n, err := e.net.GetNeuron(index)
	if err != nil {
		return zero, errs.Wrapf(errs.ErrIndex, "compute.Engine.Fx", "%v", err)
	}

	result, err := e.eval.Compute(n, e.Fx)
	if err != nil {
		return zero, err
	}
	if err = cell.Set(result, true); err != nil {
		return zero, err
	}

	return result, nil
}

// FxConst returns the stored value for index without triggering
// evaluation. Fails with errs.ErrInvariant if the cell was never fixed — a
// const handle must not cause side effects.
func (e *Engine[R]) FxConst(index int) (R, error) {
	var zero R
	if index < 0 || index >= len(e.cells) {
		return zero, errs.Wrapf(errs.ErrIndex, "compute.Engine.FxConst", "index %d out of range (slot_cnt=%d)", index, len(e.cells))
	}
	cell := e.cells[index]
	if !cell.Fixed() {
		return zero, errs.Wrapf(errs.ErrInvariant, "compute.Engine.FxConst", "cell %d was never fixed", index)
	}

	return cell.Get(), nil
}

// ConstFx HARD-fixes index's cell to value, used to pin constant inputs
// (a feed-forward bias source) or frozen activations.
func (e *Engine[R]) ConstFx(index int, value R) error {
	if index < 0 || index >= len(e.cells) {
		return errs.Wrapf(errs.ErrIndex, "compute.Engine.ConstFx", "index %d out of range (slot_cnt=%d)", index, len(e.cells))
	}
	if err := e.cells[index].FixValue(value, true, fixable.Hard); err != nil {
		return err
	}
	e.reset = false

	return nil
}

// Pin SOFT-fixes index's cell to value without invoking eval.Compute. A
// forward driver uses this to seed an INPUT neuron's Phi directly from the
// caller's input vector; because the pin is SOFT rather than HARD, the
// next Reset clears it, ready for the next input vector.
func (e *Engine[R]) Pin(index int, value R) error {
	if index < 0 || index >= len(e.cells) {
		return errs.Wrapf(errs.ErrIndex, "compute.Engine.Pin", "index %d out of range (slot_cnt=%d)", index, len(e.cells))
	}
	if err := e.cells[index].FixValue(value, false, fixable.Soft); err != nil {
		return err
	}
	e.reset = false

	return nil
}

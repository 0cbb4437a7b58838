package backward

import (
	"github.com/vencik-go/libnn/compute"
	"github.com/vencik-go/libnn/errs"
	"github.com/vencik-go/libnn/forward"
	"github.com/vencik-go/libnn/neuron"
)

// Result is the per-neuron backpropagated error signal. The zero value
// Result{} (Delta: 0) is the additive identity compute.Engine uses to
// break cycles.
type Result struct {
	Delta float64
}

// Evaluator computes Delta for every neuron in net, reading a sibling
// forward.Evaluator's cached Net values through adj, the network's
// reverse-adjacency map.
type Evaluator struct {
	net    *neuron.Network
	adj    neuron.Adjacency
	fwd    *forward.Evaluator
	engine *compute.Engine[Result]
}

// New returns a backward Evaluator for net, reading adj (built once by the
// owning trainer) and fwd (whose cells must already be fresh for the
// sample being backpropagated — Run does not call fwd itself).
func New(net *neuron.Network, adj neuron.Adjacency, fwd *forward.Evaluator) *Evaluator {
	ev := &Evaluator{net: net, adj: adj, fwd: fwd}
	ev.engine = compute.New[Result](net, ev)

	return ev
}

// Default is the additive identity (Delta: 0).
func (ev *Evaluator) Default() Result { return Result{} }

// Compute implements compute.Evaluator[Result]: delta(n) = (Σ over
// (consumer, dendrite) in adj[n.Index()] of fx(consumer).Delta ×
// dendrite.weight) × n.Act.Derivative(forward.Fx(n.Index()).Net). It must
// never be invoked for an OUTPUT neuron — those deltas are set directly by
// Run from the caller's error vector.
func (ev *Evaluator) Compute(n *neuron.Neuron, fx compute.FxFunc[Result]) (Result, error) {
	if n.Role() == neuron.Output {
		return Result{}, errs.Wrapf(errs.ErrInvariant, "backward.Evaluator.Compute", "neuron %d is OUTPUT but its delta was not set before the sweep", n.Index())
	}

	var sum float64
	for _, entry := range ev.adj[n.Index()] {
		consumerDelta, err := fx(entry.Consumer)
		if err != nil {
			return Result{}, err
		}
		w, err := ev.net.Weight(entry)
		if err != nil {
			return Result{}, err
		}
		sum += consumerDelta.Delta * w
	}

	fwdResult, err := ev.fwd.Fx(n.Index())
	if err != nil {
		return Result{}, err
	}

	return Result{Delta: sum * n.Act.Derivative(fwdResult.Net)}, nil
}

// Fx returns the memoised Result for index, computing it if necessary.
func (ev *Evaluator) Fx(index int) (Result, error) {
	return ev.engine.Fx(index)
}

// PinZero HARD-fixes a frozen neuron's delta to 0 so it absorbs no
// gradient — a pinned neuron must not be updated by training.
func (ev *Evaluator) PinZero(index int) error {
	return ev.engine.ConstFx(index, Result{})
}

// Run is the backward driver:
//  1. Reset the grid, preserving HARD pins.
//  2. For each OUTPUT neuron, in order, set its delta to error_i ×
//     n.Act.Derivative(forward.Fx(index).Net). Fails with errs.ErrShape if
//     len(errVec) != len(net.Outputs()).
//  3. For each INPUT neuron, in order, force Fx(index) so every delta
//     reachable from the outputs back to the inputs is computed. Deltas
//     for unused INNER neurons remain unfixed.
func (ev *Evaluator) Run(errVec []float64) error {
	const method = "backward.Evaluator.Run"

	ev.engine.Reset()

	outputs := ev.net.Outputs()
	if len(errVec) != len(outputs) {
		return errs.Wrapf(errs.ErrShape, method, "got %d errors, network expects %d", len(errVec), len(outputs))
	}
	for i, idx := range outputs {
		n, err := ev.net.GetNeuron(idx)
		if err != nil {
			return errs.Wrapf(errs.ErrIndex, method, "%v", err)
		}
		fwdResult, err := ev.fwd.Fx(idx)
		if err != nil {
			return err
		}
		delta := errVec[i] * n.Act.Derivative(fwdResult.Net)
		if err = ev.engine.Pin(idx, Result{Delta: delta}); err != nil {
			return err
		}
	}

	for _, idx := range ev.net.Inputs() {
		if _, err := ev.engine.Fx(idx); err != nil {
			return err
		}
	}

	return nil
}

package forward

import (
	"github.com/vencik-go/libnn/compute"
	"github.com/vencik-go/libnn/errs"
	"github.com/vencik-go/libnn/neuron"
)

// Result is the per-neuron forward computation: Net is the weighted input
// sum, Phi is the neuron's activation applied to Net. The zero value
// Result{} is the additive identity compute.Engine uses to break cycles.
type Result struct {
	Net float64
	Phi float64
}

// Evaluator computes (Net, Phi) for every neuron in net, memoising through
// a compute.Engine[Result].
type Evaluator struct {
	net    *neuron.Network
	engine *compute.Engine[Result]
}

// New returns an Evaluator for net.
func New(net *neuron.Network) *Evaluator {
	ev := &Evaluator{net: net}
	ev.engine = compute.New[Result](net, ev)

	return ev
}

// Default is the additive identity (0, 0).
func (ev *Evaluator) Default() Result { return Result{} }

// Compute implements compute.Evaluator[Result]: net = Σ dendrite.weight ×
// fx(dendrite.source).Phi, phi = neuron's activation applied to net. It
// must never be invoked for an INPUT neuron — those are pinned directly by
// Run before any Fx call reaches them.
func (ev *Evaluator) Compute(n *neuron.Neuron, fx compute.FxFunc[Result]) (Result, error) {
	if n.Role() == neuron.Input {
		return Result{}, errs.Wrapf(errs.ErrInvariant, "forward.Evaluator.Compute", "neuron %d is INPUT but was not pinned before evaluation", n.Index())
	}

	var net float64
	for _, d := range n.Dendrites() {
		src, err := fx(d.Source)
		if err != nil {
			return Result{}, err
		}
		net += d.Weight * src.Phi
	}

	return Result{Net: net, Phi: n.Act.Apply(net)}, nil
}

// Fx returns the memoised Result for index, computing it if necessary.
func (ev *Evaluator) Fx(index int) (Result, error) {
	return ev.engine.Fx(index)
}

// Pin HARD-fixes a frozen activation at index: Result{Net: 0, Phi: phi}.
// Used by the feed-forward factory to pin the bias source's Phi to 1 so it
// survives every Reset for the evaluator's lifetime.
func (ev *Evaluator) Pin(index int, phi float64) error {
	return ev.engine.ConstFx(index, Result{Phi: phi})
}

// Run is the forward driver:
//  1. Reset the grid, preserving HARD pins.
//  2. Pin each INPUT neuron's Phi, in order, to the matching element of
//     input. Fails with errs.ErrShape if len(input) != len(net.Inputs()).
//  3. Force evaluation of each OUTPUT neuron, in order, collecting Phi.
func (ev *Evaluator) Run(input []float64) ([]float64, error) {
	const method = "forward.Evaluator.Run"

	ev.engine.Reset()

	inputs := ev.net.Inputs()
	if len(input) != len(inputs) {
		return nil, errs.Wrapf(errs.ErrShape, method, "got %d inputs, network expects %d", len(input), len(inputs))
	}
	for i, idx := range inputs {
		if err := ev.engine.Pin(idx, Result{Phi: input[i]}); err != nil {
			return nil, err
		}
	}

	outputs := ev.net.Outputs()
	out := make([]float64, len(outputs))
	for i, idx := range outputs {
		r, err := ev.engine.Fx(idx)
		if err != nil {
			return nil, err
		}
		out[i] = r.Phi
	}

	return out, nil
}

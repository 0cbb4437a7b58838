package feedforward

import (
	"math/rand"

	"github.com/vencik-go/libnn/activation"
	"github.com/vencik-go/libnn/errs"
	"github.com/vencik-go/libnn/forward"
	"github.com/vencik-go/libnn/neuron"
	"github.com/vencik-go/libnn/rng"
	"github.com/vencik-go/libnn/train"
)

// Flags is the feed-forward factory's configuration bitmask.
type Flags uint

const (
	// NONE builds a plain layered topology with no bias or lateral wiring.
	NONE Flags = 0
	// BIAS prepends a hard-pinned constant-1 "bias source" neuron and wires
	// every INNER/OUTPUT neuron to it.
	BIAS Flags = 1 << 0
	// LATERAL_PREV wires every non-input-layer neuron to every previously
	// created sibling in its own layer (strictly lower-triangular, acyclic).
	LATERAL_PREV Flags = 1 << 1
	// DEFAULT is the factory's default flag set.
	DEFAULT = NONE
)

// Factory builds a layered topology and hands back forward-only and
// trainable views over it.
type Factory struct {
	net       *neuron.Network
	act       activation.Activation
	flags     Flags
	biasIndex int
	hasBias   bool
}

// New returns an empty Factory using act as every neuron's activation.
func New(act activation.Activation) *Factory {
	return &Factory{net: neuron.NewNetwork(), act: act}
}

// SetFlags sets the factory's configuration flags. Fails with
// errs.ErrInvariant once the topology is non-empty: features can be
// changed only while the topology is still empty.
func (f *Factory) SetFlags(flags Flags) error {
	if f.net.Size() > 0 {
		return errs.Wrapf(errs.ErrInvariant, "feedforward.Factory.SetFlags", "cannot change flags: topology already has %d neurons", f.net.Size())
	}
	f.flags = flags

	return nil
}

// Flags returns the factory's current configuration flags.
func (f *Factory) Flags() Flags { return f.flags }

// Net returns the underlying topology, for serialisation or inspection.
func (f *Factory) Net() *neuron.Network { return f.net }

// Build wires a layered topology from layersSpec (layersSpec[0] is the
// input width, layersSpec[len-1] the output width, everything between is a
// hidden layer width), drawing every new dendrite's weight from wInit.
// Requires len(layersSpec) >= 2; fails with errs.ErrConfig otherwise, or
// errs.ErrInvariant if the topology is already non-empty.
func (f *Factory) Build(layersSpec []int, wInit rng.WeightFn) error {
	const method = "feedforward.Factory.Build"

	if len(layersSpec) < 2 {
		return errs.Wrapf(errs.ErrConfig, method, "need at least 2 layers (input + output), got %d", len(layersSpec))
	}
	if f.net.Size() > 0 {
		return errs.Wrapf(errs.ErrInvariant, method, "topology already built (%d neurons)", f.net.Size())
	}

	hasBias := f.flags&BIAS != 0
	lateral := f.flags&LATERAL_PREV != 0

	if hasBias {
		n := f.net.AddNeuron(neuron.Inner, f.act)
		f.biasIndex = n.Index()
		f.hasBias = true
	}

	prevLayer := make([]int, layersSpec[0])
	for i := range prevLayer {
		prevLayer[i] = f.net.AddNeuron(neuron.Input, f.act).Index()
	}

	for li := 1; li < len(layersSpec); li++ {
		role := neuron.Inner
		if li == len(layersSpec)-1 {
			role = neuron.Output
		}

		layer := make([]int, layersSpec[li])
		for j := range layer {
			idx := f.net.AddNeuron(role, f.act).Index()
			layer[j] = idx

			if hasBias {
				if err := f.net.SetDendrite(idx, f.biasIndex, wInit()); err != nil {
					return err
				}
			}
			if lateral {
				for k := 0; k < j; k++ {
					if err := f.net.SetDendrite(idx, layer[k], wInit()); err != nil {
						return err
					}
				}
			}
			for _, p := range prevLayer {
				if err := f.net.SetDendrite(idx, p, wInit()); err != nil {
					return err
				}
			}
		}
		prevLayer = layer
	}

	return nil
}

// Function returns a forward-only evaluator over the built topology, with
// the bias source (if any) hard-pinned at (biasIndex, 1).
func (f *Factory) Function() (*forward.Evaluator, error) {
	ev := forward.New(f.net)
	if f.hasBias {
		if err := ev.Pin(f.biasIndex, 1); err != nil {
			return nil, err
		}
	}

	return ev, nil
}

// Training returns a backpropagation trainer over the built topology, with
// the bias source (if any) registered as a hard pin so every slot the
// trainer creates keeps it fixed at Phi=1 and absorbing no gradient.
func (f *Factory) Training() *train.Trainer {
	var pins []train.Pin
	if f.hasBias {
		pins = append(pins, train.Pin{Index: f.biasIndex, Phi: 1})
	}

	return train.New(f.net, pins)
}

// NewTwoLayer is the (input_d, output_d, flags) constructor shortcut for a
// single INPUT->OUTPUT layer, weights drawn from the default uniform
// initialiser seeded from src.
func NewTwoLayer(inputD, outputD int, flags Flags, act activation.Activation, src *rand.Rand) (*Factory, error) {
	return build(inputD, nil, outputD, flags, act, src)
}

// NewThreeLayer is the (input_d, hidden_d, output_d, flags) constructor
// shortcut for a single INPUT->INNER->OUTPUT layering.
func NewThreeLayer(inputD, hiddenD, outputD int, flags Flags, act activation.Activation, src *rand.Rand) (*Factory, error) {
	h := hiddenD
	return build(inputD, &h, outputD, flags, act, src)
}

func build(inputD int, hiddenD *int, outputD int, flags Flags, act activation.Activation, src *rand.Rand) (*Factory, error) {
	layers := []int{inputD}
	if hiddenD != nil {
		layers = append(layers, *hiddenD)
	}
	layers = append(layers, outputD)

	f := New(act)
	if err := f.SetFlags(flags); err != nil {
		return nil, err
	}
	wInit, err := rng.Default(src)
	if err != nil {
		return nil, err
	}
	if err := f.Build(layers, wInit); err != nil {
		return nil, err
	}

	return f, nil
}

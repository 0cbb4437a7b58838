package train

import (
	"gonum.org/v1/gonum/floats"

	"github.com/vencik-go/libnn/backward"
	"github.com/vencik-go/libnn/criterion"
	"github.com/vencik-go/libnn/errs"
	"github.com/vencik-go/libnn/forward"
	"github.com/vencik-go/libnn/neuron"
)

// Pin is a hard-fixed constant neuron: its forward Phi is pinned to a fixed
// value (e.g. a bias source), and its backward Delta is pinned to zero so
// it absorbs no gradient.
type Pin struct {
	Index int
	Phi   float64
}

// Sample is one (input, target) pair for batch training.
type Sample struct {
	Input  []float64
	Target []float64
}

// slot owns one forward and one backward evaluator sharing the trainer's
// reverse-adjacency map. Batch training grows one slot per sample so every
// sample's pass stays independent while they share the read-only adjacency.
type slot struct {
	fw *forward.Evaluator
	bw *backward.Evaluator
}

// Trainer is the backpropagation trainer: it mutably borrows net for the
// duration of every TrainOne/TrainBatch call. A Trainer is not safe for
// concurrent use.
type Trainer struct {
	net   *neuron.Network
	adj   neuron.Adjacency
	pins  []Pin
	slots []*slot
}

// New returns a Trainer over net, with adj built once at construction and
// owned by the Trainer for its whole lifetime. pins lists the neurons to
// hard-fix in every slot created afterward.
func New(net *neuron.Network, pins []Pin) *Trainer {
	return &Trainer{
		net:  net,
		adj:  neuron.BuildAdjacency(net),
		pins: append([]Pin(nil), pins...),
	}
}

// assertSlots grows the slot pool to at least n slots, hard-fixing every
// pin into each newly created slot's forward and backward evaluators.
func (t *Trainer) assertSlots(n int) error {
	for len(t.slots) < n {
		fw := forward.New(t.net)
		bw := backward.New(t.net, t.adj, fw)
		for _, p := range t.pins {
			if err := fw.Pin(p.Index, p.Phi); err != nil {
				return err
			}
			if err := bw.PinZero(p.Index); err != nil {
				return err
			}
		}
		t.slots = append(t.slots, &slot{fw: fw, bw: bw})
	}

	return nil
}

// compute runs one forward/backward pass for (input, target) on slot,
// returning the squared-error norm Σ error_i².
func (t *Trainer) compute(input, target []float64, s *slot) (float64, error) {
	const method = "train.Trainer.compute"

	out, err := s.fw.Run(input)
	if err != nil {
		return 0, err
	}
	if len(target) != len(out) {
		return 0, errs.Wrapf(errs.ErrShape, method, "got %d targets, network produces %d outputs", len(target), len(out))
	}

	errVec := make([]float64, len(out))
	for i := range out {
		errVec[i] = out[i] - target[i]
	}
	sumSq := floats.Dot(errVec, errVec)

	if err := s.bw.Run(errVec); err != nil {
		return 0, err
	}

	return sumSq, nil
}

// update applies the weight delta d.weight -= alpha * bw.fx(n).delta *
// fw.fx(d.source).phi for every dendrite of every neuron in the network.
func (t *Trainer) update(alpha float64, s *slot) error {
	for _, n := range t.net.Neurons() {
		bwR, err := s.bw.Fx(n.Index())
		if err != nil {
			return err
		}
		if bwR.Delta == 0 {
			continue
		}
		for pos, d := range n.Dendrites() {
			fwR, err := s.fw.Fx(d.Source)
			if err != nil {
				return err
			}
			entry := neuron.AdjacencyEntry{Consumer: n.Index(), DendritePos: pos}
			if err := t.net.AdjustWeight(entry, -alpha*bwR.Delta*fwR.Phi); err != nil {
				return err
			}
		}
	}

	return nil
}

// TrainOne runs a single on-line training step: compute the squared error
// for (input, target), ask crit for a learning rate, and apply the weight
// update if the rate is nonzero. Returns the squared error.
func (t *Trainer) TrainOne(input, target []float64, crit criterion.Criterion) (float64, error) {
	if err := t.assertSlots(1); err != nil {
		return 0, err
	}

	err2, err := t.compute(input, target, t.slots[0])
	if err != nil {
		return 0, err
	}

	if alpha := crit.Evaluate(err2); alpha != 0 {
		if err := t.update(alpha, t.slots[0]); err != nil {
			return 0, err
		}
	}

	return err2, nil
}

// TrainBatch runs one batch training step: each sample is computed against
// its own slot, the average squared error drives crit, and — if nonzero —
// the resulting rate is divided by the batch size and applied per-slot.
// Fails with errs.ErrShape if set is empty.
func (t *Trainer) TrainBatch(set []Sample, crit criterion.Criterion) (float64, error) {
	const method = "train.Trainer.TrainBatch"

	if len(set) == 0 {
		return 0, errs.Wrapf(errs.ErrShape, method, "batch set must not be empty")
	}
	if err := t.assertSlots(len(set)); err != nil {
		return 0, err
	}

	var sum float64
	for i, sample := range set {
		e2, err := t.compute(sample.Input, sample.Target, t.slots[i])
		if err != nil {
			return 0, err
		}
		sum += e2
	}
	avg := sum / float64(len(set))

	if alpha := crit.Evaluate(avg); alpha != 0 {
		alphaPrime := alpha / float64(len(set))
		for i := range set {
			if err := t.update(alphaPrime, t.slots[i]); err != nil {
				return 0, err
			}
		}
	}

	return avg, nil
}

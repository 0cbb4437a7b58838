package compute_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vencik-go/libnn/activation"
	"github.com/vencik-go/libnn/compute"
	"github.com/vencik-go/libnn/errs"
	"github.com/vencik-go/libnn/neuron"
)

// sumEval computes, for each neuron, 1 + the sum of fx(source) over its
// dendrites. It is a minimal additive Evaluator used purely to exercise
// Engine's fixed-point and cycle-breaking behavior.
type sumEval struct{}

func (sumEval) Default() int { return 0 }

func (sumEval) Compute(n *neuron.Neuron, fx compute.FxFunc[int]) (int, error) {
	total := 1
	for _, d := range n.Dendrites() {
		v, err := fx(d.Source)
		if err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}

func buildChain(t *testing.T) *neuron.Network {
	t.Helper()
	net := neuron.NewNetwork()
	a := net.AddNeuron(neuron.Inner, activation.Identity{})
	b := net.AddNeuron(neuron.Inner, activation.Identity{})
	c := net.AddNeuron(neuron.Inner, activation.Identity{})
	require.NoError(t, net.SetDendrite(b.Index(), a.Index(), 1))
	require.NoError(t, net.SetDendrite(c.Index(), b.Index(), 1))

	return net
}

func TestEngine_AcyclicFixedPoint(t *testing.T) {
	net := buildChain(t)
	eng := compute.New[int](net, sumEval{})

	v, err := eng.Fx(2)
	require.NoError(t, err)
	assert.Equal(t, 3, v) // c=1+b, b=1+a, a=1 => c=3
}

func TestEngine_CycleTerminatesWithDefault(t *testing.T) {
	net := neuron.NewNetwork()
	a := net.AddNeuron(neuron.Inner, activation.Identity{})
	b := net.AddNeuron(neuron.Inner, activation.Identity{})
	require.NoError(t, net.SetDendrite(a.Index(), b.Index(), 1))
	require.NoError(t, net.SetDendrite(b.Index(), a.Index(), 1))

	eng := compute.New[int](net, sumEval{})
	v, err := eng.Fx(a.Index())
	require.NoError(t, err)
	// a = 1 + fx(b); Fx(a) pre-fixes a SOFT to default(0) before recursing
	// into fx(b), so b = 1 + 0 = 1, and a = 1 + 1 = 2.
	assert.Equal(t, 2, v)
}

func TestEngine_ConstFxAndReset(t *testing.T) {
	net := buildChain(t)
	eng := compute.New[int](net, sumEval{})
	require.NoError(t, eng.ConstFx(0, 100))

	v, err := eng.Fx(2)
	require.NoError(t, err)
	assert.Equal(t, 102, v)

	eng.Reset()
	v2, err := eng.Fx(0)
	require.NoError(t, err)
	assert.Equal(t, 100, v2, "HARD pin must survive Reset")
}

func TestEngine_FxConst_UnfixedIsInvariantError(t *testing.T) {
	net := buildChain(t)
	eng := compute.New[int](net, sumEval{})
	_, err := eng.FxConst(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvariant))
}

func TestEngine_Fx_IndexOutOfRange(t *testing.T) {
	net := buildChain(t)
	eng := compute.New[int](net, sumEval{})
	_, err := eng.Fx(99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrIndex))
}

package neuron_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vencik-go/libnn/activation"
	"github.com/vencik-go/libnn/errs"
	"github.com/vencik-go/libnn/neuron"
)

func TestNetwork_AddNeuron_UpdatesRoleLists(t *testing.T) {
	net := neuron.NewNetwork()
	in := net.AddNeuron(neuron.Input, activation.Identity{})
	inner := net.AddNeuron(neuron.Inner, activation.Identity{})
	out := net.AddNeuron(neuron.Output, activation.Identity{})

	assert.Equal(t, []int{in.Index()}, net.Inputs())
	assert.Equal(t, []int{out.Index()}, net.Outputs())
	assert.Equal(t, 3, net.Size())
	assert.Equal(t, 3, net.SlotCount())
	assert.Equal(t, neuron.Inner, inner.Role())
}

func TestNetwork_GetNeuron_OutOfRangeOrVacant(t *testing.T) {
	net := neuron.NewNetwork()
	_, err := net.GetNeuron(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrIndex))

	n := net.AddNeuron(neuron.Inner, activation.Identity{})
	require.NoError(t, net.RemoveNeuron(n.Index()))
	_, err = net.GetNeuron(n.Index())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrIndex))
}

func TestNetwork_RemoveNeuron_ErasesIncomingDendrites(t *testing.T) {
	net := neuron.NewNetwork()
	a := net.AddNeuron(neuron.Inner, activation.Identity{})
	b := net.AddNeuron(neuron.Inner, activation.Identity{})
	require.NoError(t, net.SetDendrite(b.Index(), a.Index(), 0.5))

	require.NoError(t, net.RemoveNeuron(a.Index()))
	_, ok := b.GetDendrite(a.Index())
	assert.False(t, ok)
}

func TestNetwork_SetNeuron_ReplacesAndFillsVacancies(t *testing.T) {
	net := neuron.NewNetwork()
	_, err := net.SetNeuron(2, neuron.Inner, activation.Identity{})
	require.NoError(t, err)
	assert.Equal(t, 3, net.SlotCount())
	assert.Equal(t, 1, net.Size())

	_, err = net.SetNeuron(2, neuron.Output, activation.Identity{})
	require.NoError(t, err)
	n, err := net.GetNeuron(2)
	require.NoError(t, err)
	assert.Equal(t, neuron.Output, n.Role())
	assert.Equal(t, []int{2}, net.Outputs())
}

func TestNeuron_Dendrites_SetGetUnset(t *testing.T) {
	net := neuron.NewNetwork()
	a := net.AddNeuron(neuron.Inner, activation.Identity{})
	b := net.AddNeuron(neuron.Inner, activation.Identity{})

	require.NoError(t, net.SetDendrite(b.Index(), a.Index(), 1.5))
	d, ok := b.GetDendrite(a.Index())
	require.True(t, ok)
	assert.Equal(t, 1.5, d.Weight)

	require.NoError(t, net.SetDendrite(b.Index(), a.Index(), 2.5))
	d, _ = b.GetDendrite(a.Index())
	assert.Equal(t, 2.5, d.Weight)
	assert.Len(t, b.Dendrites(), 1)

	b.UnsetDendrite(a.Index())
	_, ok = b.GetDendrite(a.Index())
	assert.False(t, ok)
}

func TestNetwork_SetDendrite_UnknownSource(t *testing.T) {
	net := neuron.NewNetwork()
	a := net.AddNeuron(neuron.Inner, activation.Identity{})
	err := net.SetDendrite(a.Index(), 99, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrIndex))
}

func TestNetwork_Reindex_CompactsAndRewritesSources(t *testing.T) {
	net := neuron.NewNetwork()
	a := net.AddNeuron(neuron.Input, activation.Identity{})
	b := net.AddNeuron(neuron.Inner, activation.Identity{})
	c := net.AddNeuron(neuron.Output, activation.Identity{})
	require.NoError(t, net.SetDendrite(c.Index(), a.Index(), 1))
	require.NoError(t, net.RemoveNeuron(b.Index()))

	net.Reindex()

	assert.Equal(t, 2, net.SlotCount())
	for i, n := range net.Neurons() {
		assert.Equal(t, i, n.Index())
	}
	last, err := net.GetNeuron(1)
	require.NoError(t, err)
	d, ok := last.GetDendrite(0)
	require.True(t, ok)
	assert.Equal(t, 1.0, d.Weight)
}

func TestNetwork_Prune_DropsZeroWeightDendrites(t *testing.T) {
	net := neuron.NewNetwork()
	a := net.AddNeuron(neuron.Inner, activation.Identity{})
	b := net.AddNeuron(neuron.Inner, activation.Identity{})
	require.NoError(t, net.SetDendrite(b.Index(), a.Index(), 0))

	net.Prune()
	assert.Empty(t, b.Dendrites())
}

func TestNetwork_Minimise_RemovesDanglingInner(t *testing.T) {
	net := neuron.NewNetwork()
	in := net.AddNeuron(neuron.Input, activation.Identity{})
	dead := net.AddNeuron(neuron.Inner, activation.Identity{})
	out := net.AddNeuron(neuron.Output, activation.Identity{})
	require.NoError(t, net.SetDendrite(out.Index(), in.Index(), 1))
	_ = dead

	net.Minimise()
	assert.Equal(t, 2, net.Size())
}

func TestNetwork_Cycles_DetectsSelfLoopAndPair(t *testing.T) {
	net := neuron.NewNetwork()
	a := net.AddNeuron(neuron.Inner, activation.Identity{})
	b := net.AddNeuron(neuron.Inner, activation.Identity{})
	require.NoError(t, net.SetDendrite(a.Index(), b.Index(), 1))
	require.NoError(t, net.SetDendrite(b.Index(), a.Index(), 1))
	require.NoError(t, net.SetDendrite(a.Index(), a.Index(), 1))

	cycles := net.Cycles()
	assert.Len(t, cycles, 2) // the a<->b pair and the a self-loop
}

func TestNetwork_Cycles_AcyclicIsEmpty(t *testing.T) {
	net := neuron.NewNetwork()
	a := net.AddNeuron(neuron.Input, activation.Identity{})
	b := net.AddNeuron(neuron.Output, activation.Identity{})
	require.NoError(t, net.SetDendrite(b.Index(), a.Index(), 1))

	assert.Empty(t, net.Cycles())
}

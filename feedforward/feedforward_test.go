package feedforward_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vencik-go/libnn/activation"
	"github.com/vencik-go/libnn/feedforward"
	"github.com/vencik-go/libnn/neuron"
	"github.com/vencik-go/libnn/rng"
)

func defaultWeightFn(t *testing.T, src *rand.Rand) rng.WeightFn {
	t.Helper()
	w, err := rng.Default(src)
	require.NoError(t, err)

	return w
}

func TestFactory_Build_PlainLayers(t *testing.T) {
	f := feedforward.New(activation.Identity{})
	src := rand.New(rand.NewSource(1))
	require.NoError(t, f.Build([]int{2, 3, 1}, defaultWeightFn(t, src)))

	assert.Equal(t, 2+3+1, f.Net().Size())
	assert.Len(t, f.Net().Inputs(), 2)
	assert.Len(t, f.Net().Outputs(), 1)
}

func TestFactory_Build_RejectsFewerThanTwoLayers(t *testing.T) {
	f := feedforward.New(activation.Identity{})
	src := rand.New(rand.NewSource(1))
	err := f.Build([]int{3}, defaultWeightFn(t, src))
	require.Error(t, err)
}

func TestFactory_Build_BiasWiresEveryNonInputNeuron(t *testing.T) {
	f := feedforward.New(activation.Identity{})
	require.NoError(t, f.SetFlags(feedforward.BIAS))
	src := rand.New(rand.NewSource(1))
	require.NoError(t, f.Build([]int{2, 2, 1}, defaultWeightFn(t, src)))

	for _, n := range f.Net().Neurons() {
		if n.Role() == neuron.Input {
			continue
		}
		found := false
		for _, d := range n.Dendrites() {
			if d.Source == 0 { // bias is always index 0 when BIAS is set
				found = true
			}
		}
		assert.True(t, found, "neuron %d missing bias dendrite", n.Index())
	}
}

func TestFactory_Build_LateralPrevIsAcyclic(t *testing.T) {
	f := feedforward.New(activation.Identity{})
	require.NoError(t, f.SetFlags(feedforward.LATERAL_PREV))
	src := rand.New(rand.NewSource(1))
	require.NoError(t, f.Build([]int{2, 3, 1}, defaultWeightFn(t, src)))

	cycles := f.Net().Cycles()
	assert.Empty(t, cycles)
}

func TestFactory_SetFlags_RejectsAfterBuild(t *testing.T) {
	f := feedforward.New(activation.Identity{})
	src := rand.New(rand.NewSource(1))
	require.NoError(t, f.Build([]int{1, 1}, defaultWeightFn(t, src)))

	err := f.SetFlags(feedforward.BIAS)
	require.Error(t, err)
}

func TestFactory_Function_BiasPinnedToOne(t *testing.T) {
	f := feedforward.New(activation.Identity{})
	require.NoError(t, f.SetFlags(feedforward.BIAS))
	src := rand.New(rand.NewSource(1))
	require.NoError(t, f.Build([]int{1, 1}, defaultWeightFn(t, src)))

	ev, err := f.Function()
	require.NoError(t, err)
	_, err = ev.Run([]float64{0})
	require.NoError(t, err)

	r, err := ev.Fx(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Phi)
}

func TestNewTwoLayer(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	f, err := feedforward.NewTwoLayer(3, 2, feedforward.NONE, activation.Identity{}, src)
	require.NoError(t, err)
	assert.Equal(t, 5, f.Net().Size())
}

func TestNewThreeLayer(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	f, err := feedforward.NewThreeLayer(3, 4, 2, feedforward.BIAS, activation.Identity{}, src)
	require.NoError(t, err)
	assert.Equal(t, 1+3+4+2, f.Net().Size())
}

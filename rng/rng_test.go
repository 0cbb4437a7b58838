package rng_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vencik-go/libnn/rng"
)

func TestUniform_Bounds(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	w, err := rng.Uniform(src, -2, 2, 0)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		v := w()
		assert.GreaterOrEqual(t, v, -2.0)
		assert.LessOrEqual(t, v, 2.0)
	}
}

func TestUniform_Quantised(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	w, err := rng.Uniform(src, 0, 1, 4)
	require.NoError(t, err)
	allowed := map[float64]bool{0: true, 0.25: true, 0.5: true, 0.75: true, 1: true}
	for i := 0; i < 200; i++ {
		v := w()
		assert.True(t, allowed[v], "got non-quantised value %v", v)
	}
}

func TestUniform_DegenerateInterval(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	w, err := rng.Uniform(src, 3, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w())
}

func TestUniform_NilSourceYieldsMin(t *testing.T) {
	w, err := rng.Uniform(nil, -1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, -1.0, w())
}

func TestUniform_RejectsInvertedRange(t *testing.T) {
	_, err := rng.Uniform(rand.New(rand.NewSource(1)), 1, 0, 0)
	require.Error(t, err)
}

func TestDefault_MatchesDocumentedBounds(t *testing.T) {
	src := rand.New(rand.NewSource(7))
	w, err := rng.Default(src)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		v := w()
		assert.GreaterOrEqual(t, v, rng.RandWeightMin)
		assert.LessOrEqual(t, v, rng.RandWeightMax)
	}
}

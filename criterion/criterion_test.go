package criterion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vencik-go/libnn/criterion"
)

func TestConstant_ThresholdGate(t *testing.T) {
	c := criterion.NewConstant(0.1, 0.5)

	assert.Equal(t, 0.5, c.Evaluate(0.2))
	assert.True(t, c.LastUpdate())

	assert.Equal(t, 0.0, c.Evaluate(0.05))
	assert.False(t, c.LastUpdate())
}

func TestAdaptive_BelowSigmaNoUpdate(t *testing.T) {
	a := criterion.NewAdaptive(0.1, 1.0, 3, -3, 2, 0.5)
	assert.Equal(t, 0.0, a.Evaluate(0.01))
	assert.False(t, a.LastUpdate())
}

func TestAdaptive_SustainedImprovementIncreasesAlpha(t *testing.T) {
	a := criterion.NewAdaptive(0.0, 1.0, 2, -2, 2.0, 0.5)

	// first call: no last-err² yet, takes the non-improving branch (counter: -1).
	got := a.Evaluate(10)
	assert.Equal(t, 1.0, got)
	assert.True(t, a.LastUpdate())

	// three consecutive improving calls walk counter -1 -> 0 -> 1 -> 2,
	// reaching cmax=2 on the third and doubling alpha.
	a.Evaluate(9)
	a.Evaluate(8)
	got = a.Evaluate(7)
	assert.Equal(t, 2.0, got)
}

func TestAdaptive_StagnationDecreasesAlpha(t *testing.T) {
	a := criterion.NewAdaptive(0.0, 1.0, 100, -2, 2.0, 0.5)

	a.Evaluate(10) // counter: -1 (non-improving branch, first call)
	got := a.Evaluate(11)
	// 11 is not < 10 -> counter-- again to -2, reaches cmin=-2, halves alpha.
	assert.Equal(t, 0.5, got)
}

package rng

import (
	"math"
	"math/rand"

	"github.com/vencik-go/libnn/errs"
)

// RandWeightMin and RandWeightMax bound the default uniform initialiser used
// by the feed-forward factory's constructor shortcuts.
const (
	RandWeightMin = -1.0
	RandWeightMax = 1.0
)

// WeightFn is the random-weight initialiser capability: any callable
// returning a weight. Unlike the teacher's WeightFn, it takes no *rand.Rand
// parameter — the source is closed over at construction, so a built
// WeightFn can be handed to the feed-forward factory as a plain nullary
// callable.
type WeightFn func() float64

// Uniform returns a WeightFn sampling uniformly in [min, max], quantised to
// gran steps: the continuous sample is snapped to the nearest of gran+1
// equally spaced points spanning the interval. gran ≤ 0 disables
// quantisation and yields the raw continuous sample.
//
// Fails with errs.ErrConfig if max < min.
func Uniform(src *rand.Rand, min, max float64, gran int) (WeightFn, error) {
	if max < min {
		return nil, errs.Wrapf(errs.ErrConfig, "rng.Uniform", "require min ≤ max, got min=%g, max=%g", min, max)
	}

	return func() float64 {
		if src == nil {
			return min
		}
		if max == min {
			return min
		}

		sample := min + src.Float64()*(max-min)
		if gran <= 0 {
			return sample
		}

		step := (max - min) / float64(gran)
		quantised := min + math.Round((sample-min)/step)*step
		if quantised > max {
			quantised = max
		}
		if quantised < min {
			quantised = min
		}

		return quantised
	}, nil
}

// Default returns the feed-forward factory's default initialiser: uniform
// over [RandWeightMin, RandWeightMax] with no quantisation, seeded from src.
// Never fails, since RandWeightMin < RandWeightMax is fixed.
func Default(src *rand.Rand) (WeightFn, error) {
	return Uniform(src, RandWeightMin, RandWeightMax, 0)
}

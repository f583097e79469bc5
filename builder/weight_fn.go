// SPDX-License-Identifier: MIT
// Package: builder
//
// weight_fn.go — coupling distributions.
//
// Couplings are signed reals: J < 0 favours aligned neighbours and J > 0
// anti-aligned ones under E = Σ J s_i s_j. Every generator yields finite
// values. Stochastic generators fall back to a fixed value when the RNG is
// nil, so unseeded builds stay deterministic.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the coupling used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn produces a coupling given an optional *rand.Rand source.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Panics on NaN or ±Inf.
func ConstantWeightFn(value float64) WeightFn {
	mustFinite("ConstantWeightFn", value)

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max). A nil RNG yields the
// midpoint. Panics if max < min or either bound is not finite.
func UniformWeightFn(min, max float64) WeightFn {
	mustFinite("UniformWeightFn", min, max)
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min + (max-min)/2
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn samples N(mean, stddev²), the Gaussian spin-glass bond
// distribution. A nil RNG yields mean. Panics if stddev < 0 or a parameter
// is not finite.
func NormalWeightFn(mean, stddev float64) WeightFn {
	mustFinite("NormalWeightFn", mean, stddev)
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return mean
		}

		return rng.NormFloat64()*stddev + mean
	}
}

// BimodalWeightFn yields +j or −j with equal probability, the ±J
// Edwards–Anderson glass. A nil RNG yields +j. Panics if j is not finite.
func BimodalWeightFn(j float64) WeightFn {
	mustFinite("BimodalWeightFn", j)

	return func(rng *rand.Rand) float64 {
		if rng == nil || rng.Intn(2) == 0 {
			return j
		}

		return -j
	}
}

// ExponentialWeightFn samples Exp(rate) with mean 1/rate. A nil RNG yields
// 1/rate. Panics if rate ≤ 0 or not finite.
func ExponentialWeightFn(rate float64) WeightFn {
	mustFinite("ExponentialWeightFn", rate)
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return 1 / rate
		}

		return rng.ExpFloat64() / rate
	}
}

func mustFinite(name string, vs ...float64) {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("%s: parameters must be finite, got %g", name, v))
		}
	}
}

// WithConstantWeight sets a fixed coupling via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets couplings ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight sets couplings ∼ N(mean,stddev²) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithBimodalWeight sets couplings ±j via BimodalWeightFn.
func WithBimodalWeight(j float64) BuilderOption {
	return WithWeightFn(BimodalWeightFn(j))
}

// WithExponentialWeight sets couplings ∼ Exp(rate) via ExponentialWeightFn.
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}

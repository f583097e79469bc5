// SPDX-License-Identifier: MIT
// Package: ising
//
// distribution.go — normalised Boltzmann probabilities per configuration.

package ising

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxDistributionSpins caps the size of a materialised distribution
// (2^26 float64 values, 512 MiB) independently of the averager limit.
const MaxDistributionSpins = 26

// Distribution returns p[k] = exp(−E_k/T)/Z for every configuration index k,
// using a default Averager's limits.
func Distribution(m *Model, T float64) ([]float64, error) {
	return NewAverager().Distribution(m, T)
}

// Distribution returns the Boltzmann probability of every configuration.
// Weights are taken relative to the ground energy, so the largest entry is
// 1/W and no term overflows.
//
// Errors: as Average; the capacity limit is min(MaxSpins(), MaxDistributionSpins).
//
// Complexity: O(2^N · |couplings|) time, O(2^N) space.
func (a *Averager) Distribution(m *Model, T float64) ([]float64, error) {
	if err := checkTemperature(T); err != nil {
		return nil, fmt.Errorf("Distribution: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("Distribution: %w", ErrNilModel)
	}
	if limit := min(a.maxSpins, MaxDistributionSpins); m.n > limit {
		return nil, fmt.Errorf("Distribution: %w", &CapacityError{Spins: m.n, Limit: limit})
	}

	total := uint64(1) << uint(m.n)
	p := make([]float64, total)
	for k := range p {
		p[k] = m.energyOf(uint64(k))
	}
	ground := floats.Min(p)
	for k, e := range p {
		p[k] = math.Exp(-(e - ground) / T)
	}

	z := floats.Sum(p)
	if !(z > 0) || math.IsInf(z, 0) || math.IsNaN(z) {
		return nil, fmt.Errorf("Distribution: T=%g: %w", T, ErrDegeneratePartition)
	}
	floats.Scale(1/z, p)

	return p, nil
}

// SPDX-License-Identifier: MIT
// Package: ising
//
// temperatures.go — temperature grids for sweeps.

package ising

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// LinearTemperatures returns count evenly spaced temperatures from start to
// stop inclusive. count == 1 yields [start].
//
// Errors:
//   - ErrNoTemperatures: count < 1.
//   - ErrBadTemperature: start or stop is not a valid temperature.
func LinearTemperatures(start, stop float64, count int) ([]float64, error) {
	if count < 1 {
		return nil, fmt.Errorf("LinearTemperatures: count=%d: %w", count, ErrNoTemperatures)
	}
	for _, T := range []float64{start, stop} {
		if err := checkTemperature(T); err != nil {
			return nil, fmt.Errorf("LinearTemperatures: %w", err)
		}
	}
	if count == 1 {
		return []float64{start}, nil
	}

	return floats.Span(make([]float64, count), start, stop), nil
}

// SteppedTemperatures returns T_i = step·i for i = 1..count, the grid
// 0.1, 0.2, …, 9.9 being SteppedTemperatures(0.1, 99).
//
// Errors:
//   - ErrNoTemperatures: count < 1.
//   - ErrBadTemperature: step is not a valid temperature.
func SteppedTemperatures(step float64, count int) ([]float64, error) {
	if count < 1 {
		return nil, fmt.Errorf("SteppedTemperatures: count=%d: %w", count, ErrNoTemperatures)
	}
	if err := checkTemperature(step); err != nil {
		return nil, fmt.Errorf("SteppedTemperatures: %w", err)
	}

	out := make([]float64, count)
	for i := range out {
		out[i] = step * float64(i+1)
	}

	return out, nil
}

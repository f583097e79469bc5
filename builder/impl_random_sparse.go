// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go — RandomSparse(n, p): Erdős–Rényi G(n, p) bonds.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • For 0 < p < 1 a RNG is required (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and accepts a nil RNG.
//   • Pairs i<j are visited in lexicographic order; each is kept when
//     rng.Float64() < p. The coupling is drawn only for kept pairs, after
//     the Bernoulli draw, so the stream order is stable per seed.
//
// Complexity: O(n²) pair checks, O(1) extra space.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ising/core"
)

const minRandomSparseVertices = 1

// RandomSparse returns a Constructor for an Erdős–Rényi random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addIndexedVertices(g, cfg, methodRandomSparse, 0, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !keep(cfg, p) {
					continue
				}
				if err := addBond(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

func keep(cfg builderConfig, p float64) bool {
	switch {
	case p == 0:
		return false
	case p == 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}

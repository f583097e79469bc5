// SPDX-License-Identifier: MIT
// Package: ising
//
// energy.go — Hamiltonian evaluation for a single configuration.

package ising

import "fmt"

// Energy returns E(cfg) = Σ J_ij · s_i · s_j over the model's couplings,
// visiting each coupling exactly once.
//
// Errors:
//   - ErrNilModel: m == nil.
//   - ErrSizeMismatch: cfg.Len() != m.Size(). Configurations are never padded or truncated.
//
// Complexity: O(|couplings|).
func Energy(cfg BitString, m *Model) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("Energy: %w", ErrNilModel)
	}
	if cfg.Len() != m.n {
		return 0, fmt.Errorf("Energy: configuration length %d, model size %d: %w", cfg.Len(), m.n, ErrSizeMismatch)
	}

	return m.energyOf(cfg.bits), nil
}

// energyOf evaluates the Hamiltonian directly on an index k < 2^N.
// s_i·s_j is +1 when bits i and j agree and −1 otherwise.
func (m *Model) energyOf(k uint64) float64 {
	var e float64
	for _, c := range m.couplings {
		if (k>>uint(c.I)^k>>uint(c.J))&1 == 0 {
			e += c.Weight
		} else {
			e -= c.Weight
		}
	}

	return e
}

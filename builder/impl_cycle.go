// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go — Cycle(n) and Path(n): the periodic and open 1D chains.
//
// Contract:
//   • Cycle: n ≥ 3; Path: n ≥ 2 (else ErrTooFewVertices).
//   • Vertices cfg.idFn(0..n-1) in ascending order.
//   • Edges in stable order i–(i+1) for i = 0..n-2, then (n-1)–0 for Cycle.
//   • One coupling draw per edge, in emission order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ising/core"
)

const (
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor for the ring C_n, i.e. the chain with
// periodic boundary conditions.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodCycle, n, true)
	}
}

// Path returns a Constructor for the open chain P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodPath, n, false)
	}
}

func chain(g *core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	if err := addIndexedVertices(g, cfg, method, 0, n); err != nil {
		return err
	}
	for i := 0; i+1 < n; i++ {
		if err := addBond(g, cfg, method, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
			return err
		}
	}
	if closed {
		return addBond(g, cfg, method, cfg.idFn(n-1), cfg.idFn(0))
	}

	return nil
}

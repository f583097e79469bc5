// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go — Complete(n): every pair of spins coupled.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated spin.
//   • Edges in lexicographic index order (i<j): (0,1),(0,2),…,(n-2,n-1).
//   • With NormalWeightFn this is the Sherrington–Kirkpatrick geometry.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ising/core"
)

const minCompleteNodes = 1

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodComplete, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addBond(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

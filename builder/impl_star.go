// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - Star(n) and Wheel(n): hub-and-spoke topologies.
//
// Contract:
//   - Star: n ≥ 2; Wheel: n ≥ 4 (else ErrTooFewVertices).
//   - The hub has the fixed ID "Center"; rim/leaf vertices use cfg.idFn.
//   - Star leaves are cfg.idFn(1..n-1); Wheel rim is Cycle(n-1) on cfg.idFn(0..n-2).
//   - Spokes are emitted Center–leaf in ascending leaf index.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ising/core"
)

const (
	minStarNodes  = 2
	minWheelNodes = 4 // rim cycle needs n-1 ≥ 3
)

// Star returns a Constructor for a hub "Center" with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerVertexID, err)
		}
		if err := addIndexedVertices(g, cfg, methodStar, 1, n); err != nil {
			return err
		}

		return spokes(g, cfg, methodStar, 1, n)
	}
}

// Wheel returns a Constructor for W_n = C_{n-1} plus hub "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, centerVertexID, err)
		}

		return spokes(g, cfg, methodWheel, 0, n-1)
	}
}

func spokes(g *core.Graph, cfg builderConfig, method string, from, to int) error {
	for i := from; i < to; i++ {
		if err := addBond(g, cfg, method, centerVertexID, cfg.idFn(i)); err != nil {
			return err
		}
	}

	return nil
}

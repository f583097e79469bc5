// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go — Grid(rows, cols) and Torus(rows, cols): square lattices.
//
// Canonical model:
//   • 4-neighbourhood; vertex IDs use the fixed scheme "r,c" (row-major),
//     a deliberate exception to cfg.idFn to keep coordinates explicit.
//     Row and column parts are zero-padded to the widest index, so sorted
//     IDs follow row-major order ("00,0" … "10,1" for 11×2).
//   • Grid has open boundaries; Torus wraps both axes (periodic boundaries).
//
// Contract:
//   • Grid: rows, cols ≥ 1. Torus: rows, cols ≥ 3 so wrap bonds never
//     duplicate interior ones (else ErrTooFewVertices).
//   • For each (r,c) in row-major order emit Right then Bottom.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ising/core"
)

const (
	minGridDim  = 1
	minTorusDim = 3
)

// Grid returns a Constructor for the open rows×cols square lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		return lattice(g, cfg, methodGrid, rows, cols, false)
	}
}

// Torus returns a Constructor for the rows×cols square lattice with
// periodic boundaries in both directions.
func Torus(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minTorusDim || cols < minTorusDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodTorus, rows, cols, minTorusDim, ErrTooFewVertices)
		}

		return lattice(g, cfg, methodTorus, rows, cols, true)
	}
}

func lattice(g *core.Graph, cfg builderConfig, method string, rows, cols int, periodic bool) error {
	rw, cw := indexWidth(rows), indexWidth(cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := gridVertexID(r, c, rw, cw)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := gridVertexID(r, c, rw, cw)

			right, down := c+1, r+1
			if periodic {
				right, down = right%cols, down%rows
			}
			if right < cols {
				if err := addBond(g, cfg, method, u, gridVertexID(r, right, rw, cw)); err != nil {
					return err
				}
			}
			if down < rows {
				if err := addBond(g, cfg, method, u, gridVertexID(down, c, rw, cw)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

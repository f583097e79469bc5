// SPDX-License-Identifier: MIT
// Package: builder
//
// helpers.go — shared vertex/edge emission for constructors.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ising/core"
)

// Fixed IDs and minima shared by constructors.
const (
	centerVertexID = "Center"

	methodCycle         = "Cycle"
	methodPath          = "Path"
	methodStar          = "Star"
	methodWheel         = "Wheel"
	methodComplete      = "Complete"
	methodGrid          = "Grid"
	methodTorus         = "Torus"
	methodRandomSparse  = "RandomSparse"
	methodRandomRegular = "RandomRegular"
)

// addIndexedVertices adds cfg.idFn(i) for i in [from, to).
func addIndexedVertices(g *core.Graph, cfg builderConfig, method string, from, to int) error {
	for i := from; i < to; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addBond emits one undirected edge u–v with the next configured coupling.
func addBond(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weight(g.Weighted())
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// gridVertexID formats a lattice coordinate as "r,c", each part zero-padded
// to the width of the largest row or column index.
func gridVertexID(r, c, rw, cw int) string {
	return fmt.Sprintf("%0*d,%0*d", rw, r, cw, c)
}

// indexWidth is the decimal width of n-1, the largest index below n.
func indexWidth(n int) int {
	return len(strconv.Itoa(max(n-1, 0)))
}

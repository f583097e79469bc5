// SPDX-License-Identifier: MIT
// Package: ising
//
// gonum.go — adapter from gonum weighted undirected graphs.

package ising

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
)

// FromWeightedUndirected compiles a gonum weighted undirected graph into a
// Model. Spins are ordered by ascending node ID and labelled with the decimal
// ID; each edge contributes its Weight() once (for gonum multigraphs that is
// the combined weight of the parallel lines).
//
// Errors:
//   - ErrNilGraph: g == nil.
//   - ErrSelfCoupling: a node linked to itself.
//   - Any NewModel error.
//
// Complexity: O(V log V + E).
func FromWeightedUndirected(g graph.WeightedUndirected) (*Model, error) {
	if g == nil {
		return nil, fmt.Errorf("FromWeightedUndirected: %w", ErrNilGraph)
	}

	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	index := make(map[int64]int, len(nodes))
	labels := make([]string, len(nodes))
	for i, n := range nodes {
		index[n.ID()] = i
		labels[i] = strconv.FormatInt(n.ID(), 10)
	}

	var couplings []Coupling
	for _, u := range nodes {
		for _, v := range graph.NodesOf(g.From(u.ID())) {
			if v.ID() == u.ID() {
				return nil, fmt.Errorf("FromWeightedUndirected: node %d: %w", u.ID(), ErrSelfCoupling)
			}
			// Undirected edges are reported from both endpoints; keep one side.
			if v.ID() < u.ID() {
				continue
			}
			e := g.WeightedEdge(u.ID(), v.ID())
			if e == nil {
				continue
			}
			couplings = append(couplings, Coupling{I: index[u.ID()], J: index[v.ID()], Weight: e.Weight()})
		}
	}

	m, err := NewModel(len(nodes), couplings)
	if err != nil {
		return nil, fmt.Errorf("FromWeightedUndirected: %w", err)
	}

	return m.withLabels(labels), nil
}

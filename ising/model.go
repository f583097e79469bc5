// SPDX-License-Identifier: MIT
// Package: ising
//
// model.go — compiled spin model: N sites plus pairwise couplings.
//
// Contract:
//   • A Model is immutable after construction and safe for concurrent use.
//   • Couplings reference spins by index in [0, N); I ≠ J; weights finite.
//   • Duplicate couplings between the same pair are additive.

package ising

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/ising/core"
)

// Coupling is one undirected interaction J between spins I and J.
type Coupling struct {
	I, J   int
	Weight float64
}

// Model is the compiled Hamiltonian E(α) = Σ J_ij s_i s_j over its couplings.
type Model struct {
	n         int
	labels    []string
	couplings []Coupling
}

// NewModel validates and copies the couplings of an n-spin system.
// Sites are labelled "0".."n-1".
//
// Errors:
//   - ErrEmptyModel: n < 1.
//   - ErrCouplingIndex: an endpoint outside [0, n).
//   - ErrSelfCoupling: I == J.
//   - ErrBadCoupling: NaN or ±Inf weight.
//
// Complexity: O(n + |couplings|).
func NewModel(n int, couplings []Coupling) (*Model, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewModel: n=%d: %w", n, ErrEmptyModel)
	}
	cs := make([]Coupling, len(couplings))
	for idx, c := range couplings {
		if c.I < 0 || c.I >= n || c.J < 0 || c.J >= n {
			return nil, fmt.Errorf("NewModel: coupling %d (%d,%d) with n=%d: %w", idx, c.I, c.J, n, ErrCouplingIndex)
		}
		if c.I == c.J {
			return nil, fmt.Errorf("NewModel: coupling %d (%d,%d): %w", idx, c.I, c.J, ErrSelfCoupling)
		}
		if math.IsNaN(c.Weight) || math.IsInf(c.Weight, 0) {
			return nil, fmt.Errorf("NewModel: coupling %d weight %g: %w", idx, c.Weight, ErrBadCoupling)
		}
		cs[idx] = c
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	return &Model{n: n, labels: labels, couplings: cs}, nil
}

// FromGraph compiles a core.Graph into a Model. Spin i is the i-th vertex of
// g.Vertices() (lexicographic order); each edge becomes one coupling.
//
// Errors:
//   - ErrNilGraph: g == nil.
//   - ErrWeightRequired: g is unweighted, so its edges carry no coupling.
//   - Any NewModel error (self-loops surface as ErrSelfCoupling).
//
// Complexity: O(V log V + E log E).
func FromGraph(g *core.Graph) (*Model, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGraph: %w", ErrNilGraph)
	}
	if !g.Weighted() {
		return nil, fmt.Errorf("FromGraph: unweighted graph: %w", ErrWeightRequired)
	}

	labels := g.Vertices()
	index := make(map[string]int, len(labels))
	for i, id := range labels {
		index[id] = i
	}

	edges := g.Edges()
	couplings := make([]Coupling, 0, len(edges))
	for _, e := range edges {
		couplings = append(couplings, Coupling{I: index[e.From], J: index[e.To], Weight: e.Weight})
	}

	m, err := NewModel(len(labels), couplings)
	if err != nil {
		return nil, fmt.Errorf("FromGraph: %w", err)
	}

	return m.withLabels(labels), nil
}

// Size returns the number of spins N.
func (m *Model) Size() int { return m.n }

// Labels returns a copy of the site labels, label i for spin i.
func (m *Model) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)

	return out
}

// Couplings returns a copy of the coupling list.
func (m *Model) Couplings() []Coupling {
	out := make([]Coupling, len(m.couplings))
	copy(out, m.couplings)

	return out
}

// withLabels replaces the site labels; len(labels) must equal n.
func (m *Model) withLabels(labels []string) *Model {
	m.labels = labels

	return m
}

// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for ising/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only (no third-party assertion frameworks).
//   - No *testing.T usage inside goroutines; errors travel over channels.

package core_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/ising/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
	VertexY = "Y"

	VertexBase = "Base"
)

// Common couplings used across core tests (avoid magic numbers in test bodies).
const (
	Weight0    = 0.0
	Weight1    = 1.0
	WeightHalf = 0.5
	WeightNeg2 = -2.0
)

// Common concurrency sizes.
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NLoops            = 50
	NReaders          = 50
	NCloners          = 20
)

// NewGraphFull RETURNS a Graph with weights, multi-edges and loops enabled.
// TEST-FIXTURE constructor; use NewGraph + options to isolate strict policies.
func NewGraphFull() *core.Graph {
	return core.NewGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs FAILS the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: got error %v, want %v", op, err, target)
	}
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()
	if !cond {
		t.Fatalf("%s: expected true", op)
	}
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()
	if cond {
		t.Fatalf("%s: expected false", op)
	}
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", op, got, want)
	}
}

// MustEqualFloat FAILS the test if got != want (exact; use for stored values only).
func MustEqualFloat(t *testing.T, got, want float64, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %g, want %g", op, got, want)
	}
}

// MustEqualStrings FAILS the test unless got and want are element-wise equal.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v, want %v", op, got, want)
		}
	}
}

// MustSortedStrings FAILS the test unless ids is sorted ascending.
func MustSortedStrings(t *testing.T, ids []string, op string) {
	t.Helper()
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("%s: not sorted: %v", op, ids)
	}
}

// ExtractEdgeIDs RETURNS the IDs of edges in input order.
func ExtractEdgeIDs(edges []*core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}

	return out
}

// MustNoErrorsFromChan drains errCh (closed by the caller) and fails on the first error.
func MustNoErrorsFromChan(t *testing.T, errCh <-chan error, op string) {
	t.Helper()
	for err := range errCh {
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", op, err)
		}
	}
}

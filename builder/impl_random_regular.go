// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_regular.go — RandomRegular(n, d): random d-regular bond graph
// (a finite Bethe lattice) via stub matching.
//
// Contract:
//   • n ≥ 1, 0 ≤ d < n, n·d even (else ErrTooFewVertices).
//   • Requires cfg.rng (else ErrNeedRandSource).
//   • Shuffle the n·d stubs, pair consecutive entries; reject an attempt on a
//     self-pair (unless g.Looped()) or a repeated pair (unless g.Multigraph()).
//   • After maxStubMatchingAttempts rejected attempts → ErrConstructFailed.
//   • Edges are emitted only for an accepted matching, in pairing order.
//
// Complexity: O(n·d) per attempt; attempts are constant-bounded.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ising/core"
)

const (
	minRRVertices           = 1
	maxStubMatchingAttempts = 256
)

// RandomRegular returns a Constructor for a random d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}
		if err := addIndexedVertices(g, cfg, methodRandomRegular, 0, n); err != nil {
			return err
		}
		if d == 0 {
			return nil
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		allowLoops, allowMulti := g.Looped(), g.Multigraph()
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !validMatching(stubs, allowLoops, allowMulti) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := addBond(g, cfg, methodRandomRegular, cfg.idFn(stubs[i]), cfg.idFn(stubs[i+1])); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

func validMatching(stubs []int, allowLoops, allowMulti bool) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v && !allowLoops {
			return false
		}
		if allowMulti {
			continue
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}

// Package bfs walks the coupling graph of a spin system breadth-first.
//
// What
//
//   - BFS explores sites in non-decreasing bond distance from a start site and
//     returns the visit order, hop depths and BFS-tree parents.
//   - Clusters partitions all sites into connected clusters of interacting
//     spins. Spins in different clusters are statistically independent, so
//     ln Z, ⟨E⟩, ⟨M⟩, C and χ are sums of per-cluster values.
//   - WithBondFilter drops bonds (for example J = 0) before they are followed.
//
// Determinism
//
//	core.Neighbors returns edges sorted by Edge.ID and BFS follows them in that
//	order; Clusters seeds from the sorted vertex list. Equal graphs give equal
//	results.
//
// Complexity (V = sites, E = bonds)
//
//   - Time:   O(V + E log E) including the sorted neighbor snapshots.
//   - Memory: O(V).
package bfs

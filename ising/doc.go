// Package ising computes exact thermodynamic averages of a classical Ising
// spin system defined on a weighted graph.
//
// A Model holds N spins and a list of pairwise couplings J_ij. Every spin
// configuration α is an N-bit BitString (bit i set ⇔ spin i up, s_i = +1).
// The Hamiltonian is
//
//	E(α) = Σ_{(i,j)} J_ij · s_i · s_j
//
// so a positive coupling favours anti-aligned neighbours. The averager
// enumerates all 2^N configurations, weights each by exp(−E/T), and reports
//
//	⟨E⟩, ⟨M⟩                        Boltzmann averages of energy and magnetization
//	C = (⟨E²⟩ − ⟨E⟩²) / T²          heat capacity
//	χ = (⟨M²⟩ − ⟨M⟩²) / T           magnetic susceptibility
//
// where M(α) = Σ_i s_i.
//
// Units: the Boltzmann constant is folded into the temperature (k_B = 1).
// T is measured in the same units as the couplings; no physical-unit
// conversion is performed anywhere in the package.
//
// Numerics:
//   - Weights are taken relative to a running minimum energy, so the largest
//     weight is always exactly 1 and the partition sum cannot underflow to 0
//     or overflow at low temperature.
//   - Means and variances are accumulated incrementally (weighted West update,
//     pairwise merge across workers) instead of as raw ⟨E²⟩ − ⟨E⟩², which keeps
//     C and χ non-negative and free of catastrophic cancellation.
//
// Limits: enumeration costs O(2^N · |J|). The averager refuses models larger
// than its configured spin limit (DefaultMaxSpins unless WithMaxSpins is given)
// with a *CapacityError before doing any work.
//
// Errors:
//
//	ErrBitStringRange       – configuration index or length outside the representable range
//	ErrSpinIndex            – spin index outside [0, N)
//	ErrSizeMismatch         – configuration length differs from the model size
//	ErrEmptyModel           – model with no spins
//	ErrNilModel / ErrNilGraph
//	ErrCouplingIndex        – coupling endpoint outside [0, N)
//	ErrSelfCoupling         – coupling from a spin to itself
//	ErrBadCoupling          – NaN or ±Inf coupling
//	ErrWeightRequired       – edge without an explicit coupling weight
//	ErrBadTemperature       – T ≤ 0, NaN or ±Inf
//	ErrCapacityExceeded     – N above the enumeration limit (see CapacityError)
//	ErrDegeneratePartition  – partition sum evaluated to zero or non-finite
//	ErrNoTemperatures       – empty temperature list for a sweep
package ising

// SPDX-License-Identifier: MIT
// Package: ising
//
// accumulator.go — single-pass Boltzmann-weighted moments.
//
// Contract:
//   • Weights are taken relative to ref, the lowest energy folded so far:
//     w_k = exp(−(E_k − ref)/T) ≤ 1, and the configuration at ref weighs 1.
//   • Lowering ref rescales every weighted sum by exp(−(ref_old − ref_new)/T);
//     means are invariant under a common rescale.
//   • Means and centred second moments use the weighted incremental update,
//     partial states combine with the pairwise merge. Neither step forms
//     Σ w·E² directly.

package ising

import "math"

// moments is the running state of one enumeration block.
type moments struct {
	ref   float64 // lowest energy seen
	w     float64 // Σ w_k relative to ref
	meanE float64
	m2E   float64 // Σ w_k (E_k − ⟨E⟩)²
	meanM float64
	m2M   float64
	count uint64
}

// add folds one configuration with energy e and magnetization m at temperature t.
func (a *moments) add(e, m, t float64) {
	if a.count == 0 {
		*a = moments{ref: e, w: 1, meanE: e, meanM: m, count: 1}
		return
	}
	if e < a.ref {
		a.rescale(math.Exp(-(a.ref - e) / t))
		a.ref = e
	}

	wk := math.Exp(-(e - a.ref) / t)
	a.w += wk
	a.count++
	if wk == 0 {
		return
	}

	f := wk / a.w
	dE := e - a.meanE
	a.meanE += f * dE
	a.m2E += wk * dE * (e - a.meanE)

	dM := m - a.meanM
	a.meanM += f * dM
	a.m2M += wk * dM * (m - a.meanM)
}

// merge combines b into a. Both must have been built at the same temperature t.
func (a *moments) merge(b moments, t float64) {
	if b.count == 0 {
		return
	}
	if a.count == 0 {
		*a = b
		return
	}

	ref := math.Min(a.ref, b.ref)
	sa := math.Exp(-(a.ref - ref) / t)
	sb := math.Exp(-(b.ref - ref) / t)
	wa, wb := a.w*sa, b.w*sb
	w := wa + wb

	dE := b.meanE - a.meanE
	dM := b.meanM - a.meanM
	a.meanE += dE * wb / w
	a.meanM += dM * wb / w
	a.m2E = a.m2E*sa + b.m2E*sb + dE*dE*wa*wb/w
	a.m2M = a.m2M*sa + b.m2M*sb + dM*dM*wa*wb/w

	a.ref = ref
	a.w = w
	a.count += b.count
}

func (a *moments) rescale(s float64) {
	a.w *= s
	a.m2E *= s
	a.m2M *= s
}

// varE and varM are the Boltzmann variances; negative round-off is clamped to 0.
func (a *moments) varE() float64 { return math.Max(0, a.m2E/a.w) }

func (a *moments) varM() float64 { return math.Max(0, a.m2M/a.w) }

// logZ returns ln Σ exp(−E_k/T) = ln w − ref/T.
func (a *moments) logZ(t float64) float64 { return math.Log(a.w) - a.ref/t }

// degenerate reports a partition sum that cannot normalise probabilities.
func (a *moments) degenerate() bool {
	return a.count == 0 || !(a.w > 0) || math.IsInf(a.w, 0) ||
		math.IsNaN(a.meanE) || math.IsNaN(a.meanM) || math.IsNaN(a.ref)
}

// SPDX-License-Identifier: MIT
// Package: ising
//
// averager.go — exact canonical-ensemble averages by full enumeration.
//
// Contract:
//   • Every k ∈ [0, 2^N) is visited exactly once.
//   • Input validation (temperature, model, capacity) happens before any
//     configuration is evaluated.
//   • With more than one worker the index range is split into contiguous
//     blocks whose partial moments are merged in block order, so the result
//     is deterministic for a fixed worker count.

package ising

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the smallest configuration count worth splitting.
const parallelThreshold = 1 << 10

// cancelStride is how many configurations a block evaluates between
// context checks.
const cancelStride = 1 << 16

// Sample holds the thermodynamic averages of a model at one temperature.
type Sample struct {
	Temperature    float64 // T
	Energy         float64 // ⟨E⟩
	Magnetization  float64 // ⟨M⟩
	HeatCapacity   float64 // C = Var(E)/T²
	Susceptibility float64 // χ = Var(M)/T
	LogZ           float64 // ln Z
	GroundEnergy   float64 // min_k E_k
	Configurations uint64  // 2^N
}

// Averager computes Samples by exhaustive enumeration. It is safe for
// concurrent use once constructed.
type Averager struct {
	maxSpins int
	workers  int
	logger   *slog.Logger
	metrics  *Metrics
}

// NewAverager returns an Averager with defaults overridden by opts.
func NewAverager(opts ...Option) *Averager {
	a := &Averager{
		maxSpins: DefaultMaxSpins,
		workers:  1,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// MaxSpins returns the enumeration limit.
func (a *Averager) MaxSpins() int { return a.maxSpins }

// ComputeAverageValues returns ⟨E⟩, ⟨M⟩, C and χ of m at temperature T using
// a default Averager.
//
// Errors:
//   - ErrBadTemperature: T ≤ 0, NaN or ±Inf.
//   - ErrNilModel: m == nil.
//   - *CapacityError (matches ErrCapacityExceeded): m.Size() > DefaultMaxSpins.
//   - ErrDegeneratePartition: the partition sum is zero or non-finite.
//
// Complexity: O(2^N · (|couplings| + 1)) time, O(1) space.
func ComputeAverageValues(m *Model, T float64) (Sample, error) {
	return NewAverager().Average(m, T)
}

// Average is ComputeAverageValues under a's configuration.
func (a *Averager) Average(m *Model, T float64) (Sample, error) {
	return a.AverageContext(context.Background(), m, T)
}

// AverageContext is Average with cancellation. A cancelled context aborts
// enumeration and returns ctx.Err().
func (a *Averager) AverageContext(ctx context.Context, m *Model, T float64) (Sample, error) {
	start := time.Now()
	s, err := a.average(ctx, m, T)
	elapsed := time.Since(start)

	a.metrics.observe(err, s.Configurations, elapsed)
	if err != nil {
		a.logger.Debug("average failed", slog.Float64("temperature", T), slog.Any("error", err))
		return Sample{}, err
	}
	a.logger.Debug("average",
		slog.Int("spins", m.n),
		slog.Float64("temperature", T),
		slog.Uint64("configurations", s.Configurations),
		slog.Duration("elapsed", elapsed),
	)

	return s, nil
}

func (a *Averager) average(ctx context.Context, m *Model, T float64) (Sample, error) {
	if err := checkTemperature(T); err != nil {
		return Sample{}, fmt.Errorf("Average: %w", err)
	}
	if m == nil {
		return Sample{}, fmt.Errorf("Average: %w", ErrNilModel)
	}
	if m.n > a.maxSpins {
		return Sample{}, fmt.Errorf("Average: %w", &CapacityError{Spins: m.n, Limit: a.maxSpins})
	}

	acc, err := a.enumerate(ctx, m, T)
	if err != nil {
		return Sample{}, err
	}
	if acc.degenerate() {
		return Sample{}, fmt.Errorf("Average: T=%g, Z=%g·exp(%g): %w", T, acc.w, -acc.ref/T, ErrDegeneratePartition)
	}

	return Sample{
		Temperature:    T,
		Energy:         acc.meanE,
		Magnetization:  acc.meanM,
		HeatCapacity:   acc.varE() / T / T, // T*T underflows below ~1e-162
		Susceptibility: acc.varM() / T,
		LogZ:           acc.logZ(T),
		GroundEnergy:   acc.ref,
		Configurations: acc.count,
	}, nil
}

// enumerate folds all 2^N configurations, serially or in merged blocks.
func (a *Averager) enumerate(ctx context.Context, m *Model, T float64) (moments, error) {
	total := uint64(1) << uint(m.n)
	if a.workers <= 1 || total < parallelThreshold {
		return m.fold(ctx, 0, total, T)
	}

	blocks := uint64(a.workers)
	size := (total + blocks - 1) / blocks
	parts := make([]moments, blocks)

	g, gctx := errgroup.WithContext(ctx)
	for b := uint64(0); b < blocks; b++ {
		lo := b * size
		hi := min(lo+size, total)
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			acc, err := m.fold(gctx, lo, hi, T)
			parts[b] = acc

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return moments{}, err
	}

	var acc moments
	for _, p := range parts {
		acc.merge(p, T)
	}

	return acc, nil
}

// fold accumulates configurations k ∈ [lo, hi).
func (m *Model) fold(ctx context.Context, lo, hi uint64, T float64) (moments, error) {
	var acc moments
	for k := lo; k < hi; k++ {
		if (k-lo)%cancelStride == 0 {
			if err := ctx.Err(); err != nil {
				return moments{}, err
			}
		}
		acc.add(m.energyOf(k), float64(magnetizationOf(k, m.n)), T)
	}

	return acc, nil
}

func checkTemperature(T float64) error {
	if math.IsNaN(T) || math.IsInf(T, 0) || T <= 0 {
		return fmt.Errorf("T=%g: %w", T, ErrBadTemperature)
	}

	return nil
}

// resultLabel classifies an Average outcome for metrics.
func resultLabel(err error) string {
	var capErr *CapacityError
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, ErrBadTemperature):
		return resultBadTemperature
	case errors.As(err, &capErr):
		return resultCapacity
	case errors.Is(err, ErrDegeneratePartition):
		return resultDegenerate
	default:
		return resultError
	}
}

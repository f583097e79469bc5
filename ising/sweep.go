// SPDX-License-Identifier: MIT
// Package: ising
//
// sweep.go — averages over a list of temperatures.
//
// Contract:
//   • Points[i] always corresponds to temperatures[i], whatever the number
//     of workers.
//   • Every point is an independent Average call on the same Model.
//   • Default policy is fail-fast; WithCollectErrors keeps good points.

package ising

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Point is one temperature of a sweep. Err is non-nil only for failed points
// under WithCollectErrors, in which case Sample holds just the Temperature.
type Point struct {
	Sample
	Err error
}

// SweepResult is the ordered outcome of a sweep.
type SweepResult struct {
	Points []Point
}

// Sweep evaluates m at every temperature with a default Averager.
func Sweep(ctx context.Context, m *Model, temperatures []float64, opts ...SweepOption) (*SweepResult, error) {
	return NewAverager().Sweep(ctx, m, temperatures, opts...)
}

// Sweep evaluates m at every temperature in order.
//
// Errors:
//   - ErrNoTemperatures: empty temperature list.
//   - ErrNilModel: m == nil.
//   - fail-fast: the first failing point's error, wrapped with its index and T;
//     the result is nil.
//   - WithCollectErrors: errors.Join of all point errors, returned together
//     with the full result.
//
// Complexity: O(len(temperatures) · 2^N · |couplings|).
func (a *Averager) Sweep(ctx context.Context, m *Model, temperatures []float64, opts ...SweepOption) (*SweepResult, error) {
	if len(temperatures) == 0 {
		return nil, fmt.Errorf("Sweep: %w", ErrNoTemperatures)
	}
	if m == nil {
		return nil, fmt.Errorf("Sweep: %w", ErrNilModel)
	}
	cfg := sweepConfig{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	res := &SweepResult{Points: make([]Point, len(temperatures))}

	var (
		g    *errgroup.Group
		gctx = ctx
	)
	if cfg.collectErrors {
		g = new(errgroup.Group)
	} else {
		g, gctx = errgroup.WithContext(ctx)
	}
	g.SetLimit(cfg.workers)

	for i, T := range temperatures {
		g.Go(func() error {
			s, err := a.AverageContext(gctx, m, T)
			if err != nil {
				err = fmt.Errorf("Sweep: point %d (T=%g): %w", i, T, err)
				res.Points[i] = Point{Sample: Sample{Temperature: T}, Err: err}
				if cfg.collectErrors {
					return nil
				}

				return err
			}
			res.Points[i] = Point{Sample: s}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var errs []error
	for _, p := range res.Points {
		if p.Err != nil {
			errs = append(errs, p.Err)
		}
	}
	a.logger.Info("sweep",
		slog.Int("spins", m.n),
		slog.Int("points", len(temperatures)),
		slog.Int("failed", len(errs)),
		slog.Int("workers", cfg.workers),
		slog.Duration("elapsed", time.Since(start)),
	)

	return res, errors.Join(errs...)
}

// Temperatures returns the temperature of every point in order.
func (r *SweepResult) Temperatures() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.Temperature
	}

	return out
}

// Failed reports how many points carry an error.
func (r *SweepResult) Failed() int {
	n := 0
	for _, p := range r.Points {
		if p.Err != nil {
			n++
		}
	}

	return n
}

// PeakSusceptibility returns the temperature of the first maximum of χ among
// successful points; ok is false when none succeeded.
func (r *SweepResult) PeakSusceptibility() (T float64, ok bool) {
	return r.peak(func(s Sample) float64 { return s.Susceptibility })
}

// PeakHeatCapacity returns the temperature of the first maximum of C among
// successful points; ok is false when none succeeded.
func (r *SweepResult) PeakHeatCapacity() (T float64, ok bool) {
	return r.peak(func(s Sample) float64 { return s.HeatCapacity })
}

func (r *SweepResult) peak(field func(Sample) float64) (float64, bool) {
	var values, temps []float64
	for _, p := range r.Points {
		if p.Err != nil {
			continue
		}
		values = append(values, field(p.Sample))
		temps = append(temps, p.Temperature)
	}
	if len(values) == 0 {
		return 0, false
	}

	return temps[floats.MaxIdx(values)], true
}

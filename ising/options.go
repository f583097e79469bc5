// SPDX-License-Identifier: MIT
// Package: ising
//
// options.go — functional options for Averager and Sweep.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs;
//     the computations themselves never panic.
//   • Defaults: DefaultMaxSpins, one worker, discard logger, no metrics.

package ising

import (
	"fmt"
	"log/slog"
)

// DefaultMaxSpins is the default enumeration limit: 2^24 ≈ 1.7e7 configurations.
const DefaultMaxSpins = 24

// Option configures an Averager.
type Option func(*Averager)

// WithMaxSpins sets the largest model size the Averager will enumerate.
// Panics unless 1 ≤ n ≤ MaxBits.
func WithMaxSpins(n int) Option {
	if n < 1 || n > MaxBits {
		panic(fmt.Sprintf("ising: WithMaxSpins(%d) outside [1,%d]", n, MaxBits))
	}
	return func(a *Averager) {
		a.maxSpins = n
	}
}

// WithWorkers splits enumeration into n contiguous index blocks evaluated
// concurrently. Results do not depend on n beyond floating-point rounding.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("ising: WithWorkers(%d)", n))
	}
	return func(a *Averager) {
		a.workers = n
	}
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("ising: WithLogger(nil)")
	}
	return func(a *Averager) {
		a.logger = l
	}
}

// WithMetrics attaches Prometheus collectors; nil disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(a *Averager) {
		a.metrics = m
	}
}

// SweepOption configures Sweep.
type SweepOption func(*sweepConfig)

type sweepConfig struct {
	workers       int
	collectErrors bool
}

// WithSweepWorkers evaluates up to n temperature points concurrently.
// Panics if n < 1.
func WithSweepWorkers(n int) SweepOption {
	if n < 1 {
		panic(fmt.Sprintf("ising: WithSweepWorkers(%d)", n))
	}
	return func(c *sweepConfig) {
		c.workers = n
	}
}

// WithCollectErrors keeps sweeping past failing points; each failure is
// recorded in its Point and joined into the returned error.
func WithCollectErrors() SweepOption {
	return func(c *sweepConfig) {
		c.collectErrors = true
	}
}

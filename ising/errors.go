// SPDX-License-Identifier: MIT
// Package: ising
//
// errors.go — sentinel errors and the capacity error type.
//
// Error policy:
//   • Only sentinel variables (package-level) plus CapacityError are exposed.
//   • Callers use errors.Is / errors.As to branch on semantics.
//   • Implementations attach context with %w; sentinels carry no parameters.

package ising

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrBitStringRange indicates a configuration index ≥ 2^N or a length outside [0, MaxBits].
	ErrBitStringRange = errors.New("ising: configuration out of range")

	// ErrSpinIndex indicates a spin index outside [0, N).
	ErrSpinIndex = errors.New("ising: spin index out of range")

	// ErrSizeMismatch indicates a configuration whose length differs from the model size.
	ErrSizeMismatch = errors.New("ising: configuration length does not match model size")

	// ErrEmptyModel indicates a model without spins.
	ErrEmptyModel = errors.New("ising: model has no spins")

	// ErrNilModel indicates a nil *Model argument.
	ErrNilModel = errors.New("ising: nil model")

	// ErrNilGraph indicates a nil graph argument.
	ErrNilGraph = errors.New("ising: nil graph")

	// ErrCouplingIndex indicates a coupling endpoint outside [0, N).
	ErrCouplingIndex = errors.New("ising: coupling endpoint out of range")

	// ErrSelfCoupling indicates a coupling from a spin to itself.
	ErrSelfCoupling = errors.New("ising: self-coupling not allowed")

	// ErrBadCoupling indicates a NaN or infinite coupling weight.
	ErrBadCoupling = errors.New("ising: coupling weight must be finite")

	// ErrWeightRequired indicates an edge without an explicit coupling weight.
	ErrWeightRequired = errors.New("ising: edge weight required")

	// ErrBadTemperature indicates T ≤ 0, NaN or ±Inf.
	ErrBadTemperature = errors.New("ising: temperature must be finite and > 0")

	// ErrCapacityExceeded is matched by every *CapacityError.
	ErrCapacityExceeded = errors.New("ising: enumeration capacity exceeded")

	// ErrDegeneratePartition indicates the partition sum evaluated to zero or non-finite.
	ErrDegeneratePartition = errors.New("ising: degenerate partition function")

	// ErrNoTemperatures indicates an empty temperature list.
	ErrNoTemperatures = errors.New("ising: no temperatures")
)

// CapacityError reports a model too large for exact enumeration under the
// configured spin limit. It is returned before any configuration is visited.
type CapacityError struct {
	// Spins is the model size N.
	Spins int
	// Limit is the largest N the averager accepts.
	Limit int
}

// Configurations returns 2^Spins, the number of configurations the caller
// asked to enumerate.
func (e *CapacityError) Configurations() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(e.Spins))
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("ising: enumeration capacity exceeded: N=%d requires 2^%d = %s configurations, limit is N=%d",
		e.Spins, e.Spins, e.Configurations().String(), e.Limit)
}

// Is makes errors.Is(err, ErrCapacityExceeded) hold for capacity errors.
func (e *CapacityError) Is(target error) bool { return target == ErrCapacityExceeded }

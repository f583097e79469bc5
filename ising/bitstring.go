// SPDX-License-Identifier: MIT
// Package: ising
//
// bitstring.go — spin configurations as fixed-length bit strings.
//
// Contract:
//   • Bit i of a BitString equals bit i of its index k (LSB is spin 0).
//   • Length N is fixed at construction; values are immutable.
//   • Index ↔ configuration is a bijection on [0, 2^N), so enumeration is a
//     loop over integers.

package ising

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// MaxBits is the largest configuration length representable by a BitString.
// 2^MaxBits configurations still fit in a uint64 counter.
const MaxBits = 63

// BitString is one point of the 2^N configuration space.
// The zero value is the empty configuration (N = 0).
type BitString struct {
	bits uint64
	n    int
}

// NewBitString returns the configuration of length n whose bit i equals bit i of k.
//
// Errors:
//   - ErrBitStringRange: n < 0, n > MaxBits, or k ≥ 2^n.
//
// Complexity: O(1).
func NewBitString(k uint64, n int) (BitString, error) {
	if n < 0 || n > MaxBits {
		return BitString{}, fmt.Errorf("NewBitString: n=%d outside [0,%d]: %w", n, MaxBits, ErrBitStringRange)
	}
	if k>>uint(n) != 0 {
		return BitString{}, fmt.Errorf("NewBitString: k=%d ≥ 2^%d: %w", k, n, ErrBitStringRange)
	}

	return BitString{bits: k, n: n}, nil
}

// Len returns N.
func (b BitString) Len() int { return b.n }

// Uint64 returns the index k identifying this configuration.
func (b BitString) Uint64() uint64 { return b.bits }

// Bit returns bit i (0 or 1).
//
// Errors:
//   - ErrSpinIndex: i < 0 or i ≥ N.
func (b BitString) Bit(i int) (uint, error) {
	if i < 0 || i >= b.n {
		return 0, fmt.Errorf("Bit: i=%d, N=%d: %w", i, b.n, ErrSpinIndex)
	}

	return uint(b.bits>>uint(i)) & 1, nil
}

// Spin returns +1 if bit i is set and −1 otherwise.
//
// Errors:
//   - ErrSpinIndex: i < 0 or i ≥ N.
func (b BitString) Spin(i int) (int, error) {
	bit, err := b.Bit(i)
	if err != nil {
		return 0, fmt.Errorf("Spin: %w", err)
	}

	return spinOf(bit), nil
}

// Spins returns the ±1 spin sequence, spin i at index i.
// Complexity: O(N).
func (b BitString) Spins() []int {
	out := make([]int, b.n)
	for i := range out {
		out[i] = spinOf(uint(b.bits>>uint(i)) & 1)
	}

	return out
}

// Magnetization returns Σ_i s_i = (#up) − (#down).
// Complexity: O(1).
func (b BitString) Magnetization() int {
	return magnetizationOf(b.bits, b.n)
}

// Flip returns the global spin-flip complement of b (same length).
func (b BitString) Flip() BitString {
	return BitString{bits: ^b.bits & lowMask(b.n), n: b.n}
}

// String renders the configuration with spin 0 first, e.g. index 6 with
// N = 4 renders as "0110".
func (b BitString) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if b.bits>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Configurations yields every configuration of length n in index order,
// paired with its index. n outside [0, MaxBits] yields nothing.
func Configurations(n int) iter.Seq2[uint64, BitString] {
	return func(yield func(uint64, BitString) bool) {
		if n < 0 || n > MaxBits {
			return
		}
		total := uint64(1) << uint(n)
		for k := uint64(0); k < total; k++ {
			if !yield(k, BitString{bits: k, n: n}) {
				return
			}
		}
	}
}

func spinOf(bit uint) int {
	if bit == 1 {
		return 1
	}

	return -1
}

// magnetizationOf is 2·popcount(k) − n; k must have no bits above n.
func magnetizationOf(k uint64, n int) int {
	return 2*bits.OnesCount64(k) - n
}

func lowMask(n int) uint64 {
	return uint64(1)<<uint(n) - 1
}

// Package utils implements various helper functions.
package utils

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Min returns the minimum value of the input values.
func Min[V constraints.Ordered](a, b V) (r V) {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum value of the input values.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}

// BitMask returns 2^bitlen(v) - 1, the smallest mask of the form 2^k-1 covering v.
func BitMask(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	return (1 << bits.Len64(v)) - 1
}

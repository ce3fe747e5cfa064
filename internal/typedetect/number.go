// Package typedetect provides utilities for detecting characteristics of generic numeric
// type parameters at runtime. The checks are constant folded for each instantiation.
package typedetect

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number represents all int, uint and float types.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsSignedInteger returns true if T is a signed integer type.
func IsSignedInteger[T constraints.Integer]() bool {
	// All bits set: negative only when T carries a sign bit.
	return ^T(0) < 0
}

// BitSize returns the width of T in bits.
func BitSize[T Number]() int {
	var t T
	return int(unsafe.Sizeof(t)) * 8
}

// MaxMagnitude returns the largest magnitude a value of integer type T can hold for the given
// sign. For negative values of signed types this is one more than the positive maximum.
func MaxMagnitude[T constraints.Integer](negative bool) uint64 {
	size := BitSize[T]()
	if !IsSignedInteger[T]() {
		if negative {
			return 0
		}
		if size == 64 {
			return ^uint64(0)
		}
		return 1<<size - 1
	}
	limit := uint64(1) << (size - 1)
	if negative {
		return limit
	}
	return limit - 1
}

// Package bits provides generic bit-field helpers used to pick apart IEEE-754 values.
// This is not a replacement for math/bits.
package bits

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// width returns the number of bits in U.
func width[U constraints.Unsigned]() uint64 {
	var u U
	switch any(u).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	}
	panic(fmt.Sprintf("unsupported unsigned type %T", u))
}

// SetValue stores "val" in unsigned number "store" starting at bit "start" and
// ending at bit "end" (exclusive). The existing bits in the range are cleared first.
// If start >= end, this panics.
func SetValue[I, U constraints.Unsigned](val I, store U, start, end uint64) U {
	if start >= end {
		panic("start cannot be >= end")
	}
	store &^= Mask[U](start, end)
	return store | (U(val) << start & Mask[U](start, end))
}

// GetValue retrieves a value stored with SetValue. store is the unsigned number the value
// lives in, bitMask is the mask to apply (see Mask) and start is the bit position the
// value begins at. So if you did storage := SetValue(uint8(5), uint64(0), 17, 24),
// you would retrieve it with GetValue[uint64, uint8](storage, Mask[uint64](17, 24), 17).
func GetValue[U, U1 constraints.Unsigned](store U, bitMask U, start uint64) U1 {
	return U1((store & bitMask) >> start)
}

// GetBit gets a single bit value from "store" in position "pos". true if set, false if not.
func GetBit[U constraints.Unsigned](store U, pos uint8) bool {
	if uint64(pos) >= width[U]() {
		panic(fmt.Sprintf("can't GetBit() a %T position %d", store, pos))
	}
	return store&(1<<pos) != 0
}

// SetBit sets a single bit in "store" at position "pos" to value "val". If val is true,
// the bit is set to 1, if false, it is set to 0.
func SetBit[U constraints.Unsigned](store U, pos uint8, val bool) U {
	if uint64(pos) >= width[U]() {
		panic(fmt.Sprintf("can't SetBit() a %T position %d", store, pos))
	}
	if val {
		return store | (1 << pos)
	}
	return store &^ (1 << pos)
}

// Mask creates a mask for setting, getting and clearing a set of bits.
// start is the bit location you wish to start at and end is the bit you wish to end at (exclusive).
// Index starts at 0. So Mask(1, 4) will create a mask that includes bits at location 1 to 3.
// If start >= end or end is larger than U, this will panic.
func Mask[U constraints.Unsigned](start, end uint64) U {
	return setBits(U(0), start, end)
}

// setBits sets all bits to 1 from start (inclusive) to end (exclusive).
func setBits[U constraints.Unsigned](n U, start, end uint64) U {
	if start >= end {
		panic("start cannot be >= end")
	}
	if size := width[U](); end > size {
		panic(fmt.Sprintf("end cannot be %d, as that is the largest amount of bits in an %d bit number", end, size))
	}

	var r U
	for x := start; x < end; x++ {
		r |= U(1) << x
	}
	return n | r
}

// Binary renders the low "size" bits of store most significant bit first, prefixed with "0b".
// A space is inserted before each bit position listed in breaks, which lets callers show
// field boundaries.
func Binary[U constraints.Unsigned](store U, size int, breaks ...int) string {
	buff := strings.Builder{}
	buff.Grow(size + len(breaks) + 2)
	buff.WriteString("0b")
	for i := size - 1; i >= 0; i-- {
		for _, b := range breaks {
			if b == i+1 {
				buff.WriteByte(' ')
			}
		}
		if store&(U(1)<<uint(i)) != 0 {
			buff.WriteByte('1')
		} else {
			buff.WriteByte('0')
		}
	}
	return buff.String()
}

// Package intconv converts between integers and their text forms in radix 2, 8, 10 and 16.
//
// Encoders follow a measure-or-write contract: they never write past len(buf) and always
// return the number of bytes the full text needs. A nil buffer only measures:
//
//	n := intconv.EncodeInt(nil, v)
//	buf := make([]byte, n)
//	intconv.EncodeInt(buf, v)
//
// When buf is too small it receives the leading bytes of the text.
package intconv

import (
	"github.com/bearlytools/charconv/internal/assert"
	"golang.org/x/exp/constraints"
)

const hexDigits = "0123456789abcdef"

// MaxLen is the longest text any supported integer encodes to: a sign, a two byte prefix
// and 64 binary digits.
const MaxLen = 1 + 2 + 64

// EncodeInt writes v in decimal.
func EncodeInt[T constraints.Signed](buf []byte, v T) int {
	return encode(buf, v, Decimal)
}

// EncodeUint writes v in decimal.
func EncodeUint[T constraints.Unsigned](buf []byte, v T) int {
	return encode(buf, v, Decimal)
}

// EncodeIntRadix writes v in radix, with the sign before the radix prefix ("-0x1f").
func EncodeIntRadix[T constraints.Signed](buf []byte, v T, radix Radix) int {
	return encode(buf, v, radix)
}

// EncodeUintRadix writes v in radix with its prefix.
func EncodeUintRadix[T constraints.Unsigned](buf []byte, v T, radix Radix) int {
	return encode(buf, v, radix)
}

// Encode writes any integer in decimal.
func Encode[T constraints.Integer](buf []byte, v T) int {
	return encode(buf, v, Decimal)
}

// EncodeRadix writes any integer in radix.
func EncodeRadix[T constraints.Integer](buf []byte, v T, radix Radix) int {
	return encode(buf, v, radix)
}

func encode[T constraints.Integer](buf []byte, v T, radix Radix) int {
	assert.That(radix.Valid(), "radix must be 2, 8, 10 or 16")

	if len(buf) >= MaxLen {
		return format(buf, v, radix)
	}
	// Digits are produced backwards, so a short buffer is filled from a full rendering.
	var scratch [MaxLen]byte
	n := format(scratch[:], v, radix)
	copy(buf, scratch[:n])
	return n
}

// format writes the text of v into buf, which must hold MaxLen bytes.
func format[T constraints.Integer](buf []byte, v T, radix Radix) int {
	pos := 0
	if v < 0 {
		buf[pos] = '-'
		pos++
	}
	pos += copy(buf[pos:], radix.Prefix())

	// For negative values the remainder is negative. v is never negated, so the minimum
	// value of T is handled without overflow.
	start := pos
	r := T(radix)
	for {
		d := v % r
		if d < 0 {
			d = -d
		}
		buf[pos] = hexDigits[uint8(d)]
		pos++
		v /= r
		if v == 0 {
			break
		}
	}
	reverse(buf[start:pos])
	return pos
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

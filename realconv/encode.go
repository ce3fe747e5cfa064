// Package realconv converts between float32/float64 values and text.
//
// EncodeReal follows the same measure-or-write contract as the integer encoders: it never
// writes past len(buf) and returns the length of the full text, so a nil buffer measures.
// The decoders read the grammar
//
//	[+-]? digits? ('.' digits?)? ([eE] [+-]? digits)?
//
// with at least one mantissa digit, hex floats such as 0x1.8p+1 (the 'p' exponent is
// required), and the case-insensitive specials inf, infinity (both optionally signed) and nan.
package realconv

import (
	"math"

	"github.com/bearlytools/charconv/internal/assert"
	"github.com/bearlytools/charconv/internal/typedetect"
	"golang.org/x/exp/constraints"
)

// scratchLen covers every Scientific, Flex and HexFloat text and Fixed texts of values below
// about 1e100 without touching the heap.
const scratchLen = 128

// EncodeReal writes v in format with precision digits. For Fixed, Scientific and HexFloat
// precision counts the digits after the point; for Flex it counts significant digits.
// DefaultPrecision (-1) uses the backend's default; anything below it is a contract violation.
// Non-finite values are written as NaN, +Inf and -Inf.
func EncodeReal[F constraints.Float](buf []byte, v F, precision int, format Format) int {
	return encodeReal(activeBackend{}, buf, v, precision, format)
}

// EncodeRealWith is EncodeReal using the given Backend instead of the build's default.
func EncodeRealWith[F constraints.Float](b Backend, buf []byte, v F, precision int, format Format) int {
	return encodeReal(b, buf, v, precision, format)
}

func encodeReal[B Backend, F constraints.Float](b B, buf []byte, v F, precision int, format Format) int {
	assert.That(precision >= DefaultPrecision, "precision must be >= -1")
	assert.That(format <= HexFloat, "unknown format")

	var scratch [scratchLen]byte
	out := b.AppendReal(scratch[:0], float64(v), typedetect.BitSize[F](), precision, format)
	if format == HexFloat && !math.IsInf(float64(v), 0) && !math.IsNaN(float64(v)) {
		out = trimExponent(out)
	}
	copy(buf, out)
	return len(out)
}

// trimExponent removes leading zeros from the exponent of a hex float, so "0x1p+00" becomes
// "0x1p+0".
func trimExponent(text []byte) []byte {
	p := len(text) - 1
	for p >= 0 && text[p] != 'p' {
		p--
	}
	// 'p', then the sign, then the digits.
	digits := p + 2
	if p < 0 || digits >= len(text) {
		return text
	}
	z := digits
	for z < len(text)-1 && text[z] == '0' {
		z++
	}
	if z == digits {
		return text
	}
	n := copy(text[digits:], text[z:])
	return text[:digits+n]
}

package intconv

import (
	"github.com/bearlytools/charconv/internal/span"
	"github.com/bearlytools/charconv/internal/typedetect"
	"golang.org/x/exp/constraints"
)

// NotFound is returned by the *First decoders when no value could be read.
const NotFound = span.NotFound

// DecodeInt reads a signed integer from tok, which must hold exactly the numeral. The
// accepted forms are an optional '-' followed by decimal digits, "0x"/"0X" and hex digits,
// "0b"/"0B" and binary digits, "0o"/"0O" and octal digits, or a leading 0 and octal digits.
// It fails on any other byte, on a missing digit after a prefix and on values that do not
// fit in T. v is only meaningful when ok is true.
func DecodeInt[T constraints.Signed](tok []byte) (v T, ok bool) {
	return decode[T](tok)
}

// DecodeUint is DecodeInt for unsigned types. A leading '-' is rejected.
func DecodeUint[T constraints.Unsigned](tok []byte) (v T, ok bool) {
	return decode[T](tok)
}

// Decode reads any integer from tok. See DecodeInt.
func Decode[T constraints.Integer](tok []byte) (v T, ok bool) {
	return decode[T](tok)
}

// DecodeIntFirst skips leading whitespace in buf, then decodes the first integer numeral.
// It returns the offset in buf just past the numeral, or NotFound.
func DecodeIntFirst[T constraints.Signed](buf []byte) (T, int) {
	return decodeFirst[T](buf)
}

// DecodeUintFirst is DecodeIntFirst for unsigned types.
func DecodeUintFirst[T constraints.Unsigned](buf []byte) (T, int) {
	return decodeFirst[T](buf)
}

// DecodeFirst is DecodeIntFirst for any integer type.
func DecodeFirst[T constraints.Integer](buf []byte) (T, int) {
	return decodeFirst[T](buf)
}

func decodeFirst[T constraints.Integer](buf []byte) (T, int) {
	start, end := span.FirstInt(buf, &span.Whitespace, typedetect.IsSignedInteger[T]())
	if start == NotFound {
		return 0, NotFound
	}
	v, ok := decode[T](buf[start:end])
	if !ok {
		return 0, NotFound
	}
	return v, end
}

func decode[T constraints.Integer](tok []byte) (T, bool) {
	if len(tok) == 0 {
		return 0, false
	}
	neg := false
	if tok[0] == '-' {
		if !typedetect.IsSignedInteger[T]() {
			return 0, false
		}
		neg = true
		tok = tok[1:]
	}

	radix, digits := splitPrefix(tok)
	if len(digits) == 0 {
		return 0, false
	}

	// Accumulate the magnitude in a wide register and only convert on success.
	limit := typedetect.MaxMagnitude[T](neg)
	base := uint64(radix)
	var acc uint64
	for _, c := range digits {
		d := digitValue(c)
		if d >= base {
			return 0, false
		}
		if acc > (limit-d)/base {
			return 0, false
		}
		acc = acc*base + d
	}

	if neg {
		return -T(acc), true
	}
	return T(acc), true
}

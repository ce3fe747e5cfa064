package realconv

import (
	"math"

	"github.com/bearlytools/charconv/internal/span"
	"github.com/bearlytools/charconv/internal/typedetect"
	"golang.org/x/exp/constraints"
)

// NotFound is returned by DecodeRealFirst when no value could be read.
const NotFound = span.NotFound

// maxExp is where exponent accumulation saturates. Any exponent this large already
// over or underflows every supported type.
const maxExp = 1 << 20

type special uint8

const (
	notSpecial special = iota
	specialInf
	specialNaN
)

// numeral is a token split along the real grammar. The digit spans alias the token.
type numeral struct {
	neg     bool
	special special
	hex     bool
	// intDigits and fracDigits are the digits before and after the point.
	intDigits  []byte
	fracDigits []byte
	// exp is the written exponent, saturated at ±maxExp. It is a power of ten, or a power
	// of two for hex floats.
	exp int
}

// split checks tok against the real grammar and breaks it into its parts.
func split(tok []byte) (numeral, bool) {
	var n numeral
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		n.neg = tok[i] == '-'
		i++
	}

	switch rest := tok[i:]; {
	case equalFold(rest, "inf"), equalFold(rest, "infinity"):
		n.special = specialInf
		return n, true
	case equalFold(rest, "nan"):
		// strconv and fmt both refuse a signed nan.
		n.special = specialNaN
		return n, i == 0
	}

	isDigit := span.IsDigit
	if len(tok)-i >= 2 && tok[i] == '0' && tok[i+1]|0x20 == 'x' {
		n.hex = true
		isDigit = isHexDigit
		i += 2
	}

	start := i
	for i < len(tok) && isDigit(tok[i]) {
		i++
	}
	n.intDigits = tok[start:i]
	if i < len(tok) && tok[i] == '.' {
		i++
		start = i
		for i < len(tok) && isDigit(tok[i]) {
			i++
		}
		n.fracDigits = tok[start:i]
	}
	if len(n.intDigits)+len(n.fracDigits) == 0 {
		return n, false
	}

	if i == len(tok) {
		// Hex mantissas need a binary exponent.
		return n, !n.hex
	}
	c := tok[i] | 0x20
	if (n.hex && c != 'p') || (!n.hex && c != 'e') {
		return n, false
	}
	i++
	expNeg := false
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		expNeg = tok[i] == '-'
		i++
	}
	if i == len(tok) {
		return n, false
	}
	for ; i < len(tok); i++ {
		if !span.IsDigit(tok[i]) {
			return n, false
		}
		if n.exp < maxExp {
			n.exp = n.exp*10 + int(tok[i]-'0')
		}
	}
	if expNeg {
		n.exp = -n.exp
	}
	return n, true
}

func isHexDigit(c byte) bool {
	return span.IsDigit(c) || (c|0x20 >= 'a' && c|0x20 <= 'f')
}

// equalFold reports if b equals the lower case ASCII word s, ignoring case.
func equalFold(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := range b {
		if b[i]|0x20 != s[i] {
			return false
		}
	}
	return true
}

// specialValue returns the value of an inf or nan numeral.
func specialValue(n numeral) float64 {
	if n.special == specialNaN {
		return math.NaN()
	}
	if n.neg {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// DecodeReal reads a real number from tok, which must hold exactly the numeral. Values that
// overflow F fail; values too small for F round to zero or a subnormal.
func DecodeReal[F constraints.Float](tok []byte) (F, bool) {
	return decodeReal[activeBackend, F](activeBackend{}, tok)
}

// DecodeRealWith is DecodeReal using the given Backend instead of the build's default.
func DecodeRealWith[F constraints.Float](b Backend, tok []byte) (F, bool) {
	return decodeReal[Backend, F](b, tok)
}

func decodeReal[B Backend, F constraints.Float](b B, tok []byte) (F, bool) {
	n, ok := split(tok)
	if !ok {
		return 0, false
	}
	if n.special != notSpecial {
		return F(specialValue(n)), true
	}
	v, ok := b.ScanReal(tok, typedetect.BitSize[F]())
	if !ok {
		return 0, false
	}
	return F(v), true
}

// DecodeRealFirst skips leading whitespace in buf, then decodes the first real numeral. It
// returns the offset in buf just past the numeral, or NotFound.
func DecodeRealFirst[F constraints.Float](buf []byte) (F, int) {
	start, end := span.FirstReal(buf, &span.Whitespace)
	if start == NotFound {
		return 0, NotFound
	}
	v, ok := DecodeReal[F](buf[start:end])
	if !ok {
		return 0, NotFound
	}
	return v, end
}

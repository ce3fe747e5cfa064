// Package span finds the first value-shaped sub-span of a buffer. The finders never look past
// the end of the buffer they are handed and never allocate.
package span

import (
	"github.com/bearlytools/charconv/internal/bits"
)

// NotFound is returned by the finders when no span exists.
const NotFound = -1

// Set is a set of bytes, one bit per byte value.
type Set [4]uint64

// NewSet returns a Set holding every byte in chars.
func NewSet(chars string) Set {
	var s Set
	for i := 0; i < len(chars); i++ {
		s.Add(chars[i])
	}
	return s
}

// Add puts c in the set.
func (s *Set) Add(c byte) {
	s[c>>6] = bits.SetBit(s[c>>6], c&63, true)
}

// Has reports if c is in the set.
func (s *Set) Has(c byte) bool {
	return bits.GetBit(s[c>>6], c&63)
}

// Whitespace is the default separator set: space, tab, newline and carriage return.
var Whitespace = NewSet(" \t\n\r")

// Skip returns the index of the first byte of buf not in seps, or len(buf).
func Skip(buf []byte, seps *Set) int {
	i := 0
	for i < len(buf) && seps.Has(buf[i]) {
		i++
	}
	return i
}

// IsDigit reports if c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsAlnum reports if c is an ASCII letter or digit.
func IsAlnum(c byte) bool {
	return IsDigit(c) || (c|0x20 >= 'a' && c|0x20 <= 'z')
}

// terminated reports if a span ending at end is properly delimited: it is at the end of buf
// or followed by a byte that cannot continue a numeral.
func terminated(buf []byte, end int) bool {
	if end == len(buf) {
		return true
	}
	c := buf[end]
	return !IsAlnum(c) && c != '.' && c != '_'
}

// FirstInt locates the first integer numeral in buf after skipping seps. A leading '-' is part
// of the numeral only when signed is set. The numeral runs over letters and digits so prefixes
// and hex digits are kept together; validating the digits is left to the decoder.
// It returns the span bounds, or NotFound for both when there is no delimited numeral.
func FirstInt(buf []byte, seps *Set, signed bool) (start, end int) {
	start = Skip(buf, seps)
	i := start
	if signed && i < len(buf) && buf[i] == '-' {
		i++
	}
	digits := i
	for i < len(buf) && IsAlnum(buf[i]) {
		i++
	}
	if i == digits || !terminated(buf, i) {
		return NotFound, NotFound
	}
	return start, i
}

// FirstReal locates the first real numeral in buf after skipping seps. The span takes an
// optional sign, then letters, digits and '.', and a sign directly after an exponent marker
// ('e' or 'E', or 'p' or 'P' for hex floats).
func FirstReal(buf []byte, seps *Set) (start, end int) {
	start = Skip(buf, seps)
	i := start
	if i < len(buf) && (buf[i] == '-' || buf[i] == '+') {
		i++
	}
	body := i
	for i < len(buf) {
		c := buf[i]
		sign := (c == '-' || c == '+') && i > body && isExpMarker(buf[i-1])
		if !IsAlnum(c) && c != '.' && !sign {
			break
		}
		i++
	}
	if i == body || !terminated(buf, i) {
		return NotFound, NotFound
	}
	return start, i
}

func isExpMarker(c byte) bool {
	switch c {
	case 'e', 'E', 'p', 'P':
		return true
	}
	return false
}

// FirstNonEmpty locates the first run of bytes not in seps.
func FirstNonEmpty(buf []byte, seps *Set) (start, end int) {
	start = Skip(buf, seps)
	i := start
	for i < len(buf) && !seps.Has(buf[i]) {
		i++
	}
	if i == start {
		return NotFound, NotFound
	}
	return start, i
}

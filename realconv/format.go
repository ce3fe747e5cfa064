package realconv

import "strconv"

//go:generate stringer -type=Format

// Format selects the text form of a real number.
type Format uint8

const (
	// Fixed is the %f form: digits, a point and precision fractional digits.
	Fixed Format = iota
	// Scientific is the %e form: d.ddde±dd, with at least two exponent digits.
	Scientific
	// Flex is the %g form: precision significant digits, the shorter of Fixed and
	// Scientific, trailing zeros removed.
	Flex
	// HexFloat is the %a form: 0x1.hhhp±d, the exponent a power of two in decimal.
	HexFloat
)

// DefaultPrecision asks the backend for its default precision. For the standard backend that
// is the shortest text that reads back to the same value.
const DefaultPrecision = -1

// verb returns the format verb shared by strconv and fmt for f.
func (f Format) verb() byte {
	switch f {
	case Fixed:
		return 'f'
	case Scientific:
		return 'e'
	case Flex:
		return 'g'
	case HexFloat:
		return 'x'
	}
	panic("unknown realconv.Format " + strconv.Itoa(int(f)))
}

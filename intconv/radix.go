package intconv

//go:generate stringer -type=Radix

// Radix is the numeric base of an integer's text form. Only Binary, Octal, Decimal and Hex
// are supported; passing anything else to an encoder is a contract violation.
type Radix uint8

const (
	Binary  Radix = 2
	Octal   Radix = 8
	Decimal Radix = 10
	Hex     Radix = 16
)

// Canonical prefixes written after the sign. Decimal has no prefix.
const (
	BinaryPrefix = "0b"
	OctalPrefix  = "0o"
	HexPrefix    = "0x"
)

// Valid reports if r is one of the supported radixes.
func (r Radix) Valid() bool {
	switch r {
	case Binary, Octal, Decimal, Hex:
		return true
	}
	return false
}

// Prefix returns the canonical prefix for r.
func (r Radix) Prefix() string {
	switch r {
	case Binary:
		return BinaryPrefix
	case Octal:
		return OctalPrefix
	case Hex:
		return HexPrefix
	}
	return ""
}

// digitValue returns the value of an ASCII digit in any radix up to 16, or 255 if c is not a
// digit.
func digitValue(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10
	}
	return 255
}

// splitPrefix detects the radix of an unsigned numeral and returns it with the digits that
// follow the prefix. A lone "0" is decimal. A leading 0 that is not followed by x, b or o is
// the legacy octal form.
func splitPrefix(tok []byte) (Radix, []byte) {
	if len(tok) < 2 || tok[0] != '0' {
		return Decimal, tok
	}
	switch tok[1] {
	case 'x', 'X':
		return Hex, tok[2:]
	case 'b', 'B':
		return Binary, tok[2:]
	case 'o', 'O':
		return Octal, tok[2:]
	}
	return Octal, tok[1:]
}

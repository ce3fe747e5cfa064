package realconv

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/bearlytools/charconv/internal/conversions"
)

// Backend is a primitive that formats and scans real numbers. Values are carried as float64;
// bitSize (32 or 64) says which IEEE-754 type they belong to, so rounding follows that type.
//
// The package uses one Backend chosen at build time: StdBackend by default, FmtBackend when
// built with the charconv_fmt tag.
type Backend interface {
	// AppendReal appends the text of v to dst. precision is DefaultPrecision or >= 0.
	AppendReal(dst []byte, v float64, bitSize int, precision int, format Format) []byte
	// ScanReal reads a real number that spans all of tok. It fails on overflow.
	ScanReal(tok []byte, bitSize int) (float64, bool)
}

var (
	_ Backend = StdBackend{}
	_ Backend = FmtBackend{}
)

// StdBackend uses strconv. It is correctly rounded and DefaultPrecision gives the shortest
// round trip text.
type StdBackend struct{}

// AppendReal implements Backend.AppendReal.
func (StdBackend) AppendReal(dst []byte, v float64, bitSize int, precision int, format Format) []byte {
	return strconv.AppendFloat(dst, v, format.verb(), precision, bitSize)
}

// ScanReal implements Backend.ScanReal.
func (StdBackend) ScanReal(tok []byte, bitSize int) (float64, bool) {
	v, err := strconv.ParseFloat(conversions.ByteSlice2String(tok), bitSize)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FmtBackend uses the fmt package's formatted printing and scanning. DefaultPrecision leaves
// the precision out of the verb, so Fixed and Scientific print 6 fractional digits and Flex
// prints the shortest text.
type FmtBackend struct{}

// formatString builds "%[.precision]verb" in dst.
func formatString(dst []byte, precision int, format Format) []byte {
	dst = append(dst, '%')
	if precision >= 0 {
		dst = append(dst, '.')
		dst = strconv.AppendInt(dst, int64(precision), 10)
	}
	return append(dst, format.verb())
}

// AppendReal implements Backend.AppendReal.
func (FmtBackend) AppendReal(dst []byte, v float64, bitSize int, precision int, format Format) []byte {
	var fb [24]byte
	f := conversions.ByteSlice2String(formatString(fb[:0], precision, format))
	if bitSize == 32 {
		return fmt.Appendf(dst, f, float32(v))
	}
	return fmt.Appendf(dst, f, v)
}

// ScanReal implements Backend.ScanReal. The scan width is limited to len(tok) and the token
// must be consumed entirely.
func (FmtBackend) ScanReal(tok []byte, bitSize int) (float64, bool) {
	var fb [24]byte
	f := append(fb[:0], '%')
	f = strconv.AppendInt(f, int64(len(tok)), 10)
	f = append(f, 'g')

	r := bytes.NewReader(tok)
	var (
		v   float64
		err error
	)
	if bitSize == 32 {
		var v32 float32
		_, err = fmt.Fscanf(r, conversions.ByteSlice2String(f), &v32)
		v = float64(v32)
	} else {
		_, err = fmt.Fscanf(r, conversions.ByteSlice2String(f), &v)
	}
	if err != nil {
		return 0, false
	}
	if consumed := len(tok) - r.Len(); consumed != len(tok) {
		return 0, false
	}
	return v, true
}

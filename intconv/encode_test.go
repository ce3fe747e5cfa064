package intconv

import (
	"bytes"
	"math"
	"strconv"
	"testing"

	"github.com/bearlytools/charconv/internal/assert"
	"github.com/kylelemons/godebug/pretty"
	"golang.org/x/exp/constraints"
)

type radixCase struct {
	v                  int64
	bin, oct, dec, hex string
}

var radixCases = []radixCase{
	{v: 0, bin: "0b0", oct: "0o0", dec: "0", hex: "0x0"},
	{v: 1, bin: "0b1", oct: "0o1", dec: "1", hex: "0x1"},
	{v: 2, bin: "0b10", oct: "0o2", dec: "2", hex: "0x2"},
	{v: 3, bin: "0b11", oct: "0o3", dec: "3", hex: "0x3"},
	{v: 7, bin: "0b111", oct: "0o7", dec: "7", hex: "0x7"},
	{v: 8, bin: "0b1000", oct: "0o10", dec: "8", hex: "0x8"},
	{v: 9, bin: "0b1001", oct: "0o11", dec: "9", hex: "0x9"},
	{v: 10, bin: "0b1010", oct: "0o12", dec: "10", hex: "0xa"},
	{v: 15, bin: "0b1111", oct: "0o17", dec: "15", hex: "0xf"},
	{v: 16, bin: "0b10000", oct: "0o20", dec: "16", hex: "0x10"},
	{v: 17, bin: "0b10001", oct: "0o21", dec: "17", hex: "0x11"},
	{v: 31, bin: "0b11111", oct: "0o37", dec: "31", hex: "0x1f"},
	{v: 32, bin: "0b100000", oct: "0o40", dec: "32", hex: "0x20"},
	{v: 63, bin: "0b111111", oct: "0o77", dec: "63", hex: "0x3f"},
	{v: 64, bin: "0b1000000", oct: "0o100", dec: "64", hex: "0x40"},
	{v: 100, bin: "0b1100100", oct: "0o144", dec: "100", hex: "0x64"},
	{v: 127, bin: "0b1111111", oct: "0o177", dec: "127", hex: "0x7f"},
	{v: 128, bin: "0b10000000", oct: "0o200", dec: "128", hex: "0x80"},
	{v: 255, bin: "0b11111111", oct: "0o377", dec: "255", hex: "0xff"},
	{v: 256, bin: "0b100000000", oct: "0o400", dec: "256", hex: "0x100"},
}

func encodeString[T constraints.Integer](v T, radix Radix) string {
	buf := make([]byte, MaxLen)
	n := EncodeRadix(buf, v, radix)
	return string(buf[:n])
}

func TestEncodeRadix(t *testing.T) {
	for _, test := range radixCases {
		got := []string{
			encodeString(test.v, Binary),
			encodeString(test.v, Octal),
			encodeString(test.v, Decimal),
			encodeString(test.v, Hex),
		}
		want := []string{test.bin, test.oct, test.dec, test.hex}
		if diff := pretty.Compare(want, got); diff != "" {
			t.Errorf("TestEncodeRadix(%d): -want/+got:\n%s", test.v, diff)
		}

		ugot := []string{
			encodeString(uint64(test.v), Binary),
			encodeString(uint64(test.v), Octal),
			encodeString(uint64(test.v), Decimal),
			encodeString(uint64(test.v), Hex),
		}
		if diff := pretty.Compare(want, ugot); diff != "" {
			t.Errorf("TestEncodeRadix(uint64 %d): -want/+got:\n%s", test.v, diff)
		}

		if test.v == 0 {
			continue
		}
		ngot := []string{
			encodeString(-test.v, Binary),
			encodeString(-test.v, Octal),
			encodeString(-test.v, Decimal),
			encodeString(-test.v, Hex),
		}
		nwant := []string{"-" + test.bin, "-" + test.oct, "-" + test.dec, "-" + test.hex}
		if diff := pretty.Compare(nwant, ngot); diff != "" {
			t.Errorf("TestEncodeRadix(%d): -want/+got:\n%s", -test.v, diff)
		}
	}
}

// wantSigned builds the expected text of v with strconv, moving the sign before the prefix.
func wantSigned(v int64, radix Radix) string {
	s := strconv.FormatInt(v, int(radix))
	if v < 0 {
		return "-" + radix.Prefix() + s[1:]
	}
	return radix.Prefix() + s
}

func wantUnsigned(v uint64, radix Radix) string {
	return radix.Prefix() + strconv.FormatUint(v, int(radix))
}

func TestEncodeLimits(t *testing.T) {
	radixes := []Radix{Binary, Octal, Decimal, Hex}

	for _, radix := range radixes {
		signed := []struct {
			name string
			got  string
			v    int64
		}{
			{name: "int8 min", got: encodeString(int8(math.MinInt8), radix), v: math.MinInt8},
			{name: "int8 max", got: encodeString(int8(math.MaxInt8), radix), v: math.MaxInt8},
			{name: "int16 min", got: encodeString(int16(math.MinInt16), radix), v: math.MinInt16},
			{name: "int16 max", got: encodeString(int16(math.MaxInt16), radix), v: math.MaxInt16},
			{name: "int32 min", got: encodeString(int32(math.MinInt32), radix), v: math.MinInt32},
			{name: "int32 max", got: encodeString(int32(math.MaxInt32), radix), v: math.MaxInt32},
			{name: "int64 min", got: encodeString(int64(math.MinInt64), radix), v: math.MinInt64},
			{name: "int64 max", got: encodeString(int64(math.MaxInt64), radix), v: math.MaxInt64},
		}
		for _, test := range signed {
			if want := wantSigned(test.v, radix); test.got != want {
				t.Errorf("TestEncodeLimits(%s, %s): got %q, want %q", test.name, radix, test.got, want)
			}
		}

		unsigned := []struct {
			name string
			got  string
			v    uint64
		}{
			{name: "uint8 max", got: encodeString(uint8(math.MaxUint8), radix), v: math.MaxUint8},
			{name: "uint16 max", got: encodeString(uint16(math.MaxUint16), radix), v: math.MaxUint16},
			{name: "uint32 max", got: encodeString(uint32(math.MaxUint32), radix), v: math.MaxUint32},
			{name: "uint64 max", got: encodeString(uint64(math.MaxUint64), radix), v: math.MaxUint64},
		}
		for _, test := range unsigned {
			if want := wantUnsigned(test.v, radix); test.got != want {
				t.Errorf("TestEncodeLimits(%s, %s): got %q, want %q", test.name, radix, test.got, want)
			}
		}
	}
}

func TestEncodeMeasureWrite(t *testing.T) {
	values := []int64{0, 7, -7, 12345678, -12345678, math.MinInt64, math.MaxInt64}
	radixes := []Radix{Binary, Octal, Decimal, Hex}

	for _, v := range values {
		for _, radix := range radixes {
			n := EncodeRadix(nil, v, radix)
			full := make([]byte, MaxLen+8)
			if got := EncodeRadix(full, v, radix); got != n {
				t.Errorf("TestEncodeMeasureWrite(%d, %s): measured %d, wrote %d", v, radix, n, got)
				continue
			}

			for size := 0; size <= n+2; size++ {
				buf := bytes.Repeat([]byte{'#'}, size+4)
				if got := EncodeRadix(buf[:size], v, radix); got != n {
					t.Errorf("TestEncodeMeasureWrite(%d, %s, size %d): got length %d, want %d", v, radix, size, got, n)
				}
				w := min(size, n)
				if !bytes.Equal(buf[:w], full[:w]) {
					t.Errorf("TestEncodeMeasureWrite(%d, %s, size %d): got %q, want %q", v, radix, size, buf[:w], full[:w])
				}
				for i := w; i < len(buf); i++ {
					if buf[i] != '#' {
						t.Errorf("TestEncodeMeasureWrite(%d, %s, size %d): byte %d was overwritten", v, radix, size, i)
						break
					}
				}
			}
		}
	}
}

func TestEncodeExactFit(t *testing.T) {
	buf := make([]byte, 8)
	if n := EncodeInt(buf, int32(12345678)); n != 8 {
		t.Fatalf("TestEncodeExactFit: got length %d, want 8", n)
	}
	if string(buf) != "12345678" {
		t.Errorf("TestEncodeExactFit: got %q, want %q", buf, "12345678")
	}

	if n := EncodeInt(nil, int64(-12345678)); n != 9 {
		t.Errorf("TestEncodeExactFit(measure): got %d, want 9", n)
	}
}

func TestEncodeTypedEntryPoints(t *testing.T) {
	buf := make([]byte, MaxLen)

	n := EncodeUint(buf, uint16(65535))
	if string(buf[:n]) != "65535" {
		t.Errorf("TestEncodeTypedEntryPoints(EncodeUint): got %q", buf[:n])
	}
	n = EncodeIntRadix(buf, int16(-255), Hex)
	if string(buf[:n]) != "-0xff" {
		t.Errorf("TestEncodeTypedEntryPoints(EncodeIntRadix): got %q", buf[:n])
	}
	n = EncodeUintRadix(buf, uintptr(0xdead), Hex)
	if string(buf[:n]) != "0xdead" {
		t.Errorf("TestEncodeTypedEntryPoints(EncodeUintRadix): got %q", buf[:n])
	}
	n = Encode(buf, -42)
	if string(buf[:n]) != "-42" {
		t.Errorf("TestEncodeTypedEntryPoints(Encode): got %q", buf[:n])
	}
}

func TestEncodeBadRadix(t *testing.T) {
	if !assert.Enabled {
		t.Skip("assertions are compiled out")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("TestEncodeBadRadix: got no panic for radix 3")
		}
	}()
	EncodeRadix(make([]byte, MaxLen), 5, Radix(3))
}

func TestRadixString(t *testing.T) {
	tests := []struct {
		radix Radix
		want  string
	}{
		{Binary, "Binary"},
		{Octal, "Octal"},
		{Decimal, "Decimal"},
		{Hex, "Hex"},
		{Radix(3), "Radix(3)"},
		{Radix(0), "Radix(0)"},
	}

	for _, test := range tests {
		if got := test.radix.String(); got != test.want {
			t.Errorf("TestRadixString(%d): got %q, want %q", uint8(test.radix), got, test.want)
		}
	}
}

func BenchmarkEncodeInt(b *testing.B) {
	buf := make([]byte, MaxLen)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		EncodeInt(buf, int64(i)-int64(b.N/2))
	}
}

func BenchmarkEncodeHexShortBuffer(b *testing.B) {
	buf := make([]byte, 8)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		EncodeUintRadix(buf, uint64(i), Hex)
	}
}

// Package charconv converts values to and from text in caller owned buffers.
//
// The four functions ToText, FromText, FromTextFirst and ToTextSub work over a closed set of
// kinds (see Value). Numbers are handled by the intconv and realconv packages; this package
// adds booleans, single characters and byte spans and gives every kind the same contract:
//
//   - ToText writes as much of the text as fits in buf and returns the length of the full text.
//     Calling it with a nil buffer measures.
//   - FromText decodes a token that holds exactly the value.
//   - FromTextFirst skips separators and decodes the first value in a buffer, returning the
//     offset just past it or NotFound.
//
// The encoders and decoders do not allocate, apart from FromText into an Owned that must grow
// and FromTextFirst calls that pass options.
package charconv

import (
	"fmt"

	"github.com/bearlytools/charconv/intconv"
	"github.com/bearlytools/charconv/internal/assert"
	"github.com/bearlytools/charconv/internal/conversions"
	"github.com/bearlytools/charconv/internal/span"
	"github.com/bearlytools/charconv/internal/typedetect"
	"github.com/bearlytools/charconv/realconv"
	"golang.org/x/exp/constraints"
)

// NotFound is returned by FromTextFirst when no value could be read.
const NotFound = span.NotFound

// Value is the set of types the dispatch functions handle. uintptr stands in for opaque
// pointers and is written in hex.
type Value interface {
	bool | Char | int8 | int16 | int32 | int64 | int | uint8 | uint16 | uint32 | uint64 | uint |
		float32 | float64 | uintptr | string | []byte | Fixed | Owned
}

// Char is a single byte of text. It is a distinct type because byte is uint8, which is a
// number here.
type Char byte

// Owned is a byte string that owns its storage. Decoding into it copies the token and grows
// the storage as needed.
type Owned []byte

// Fixed is a byte string backed by storage of a fixed capacity. Decoding into it fails
// when the token is longer than the capacity.
type Fixed struct {
	storage []byte
	n       int
}

// NewFixed returns a Fixed that uses storage. The Fixed starts empty and can hold up to
// len(storage) bytes.
func NewFixed(storage []byte) Fixed {
	return Fixed{storage: storage}
}

// Bytes returns the held text. It aliases the storage.
func (f Fixed) Bytes() []byte {
	return f.storage[:f.n]
}

// Len returns the length of the held text.
func (f Fixed) Len() int {
	return f.n
}

// Cap returns the capacity of the storage.
func (f Fixed) Cap() int {
	return len(f.storage)
}

// set copies tok into the storage. When tok does not fit, the leading bytes that do are
// copied and false is returned.
func (f *Fixed) set(tok []byte) bool {
	assert.That(!conversions.Overlaps(tok, f.storage), "token overlaps the Fixed storage")
	f.n = copy(f.storage, tok)
	return f.n == len(tok)
}

// ToText writes the text of v into buf and returns the length of the full text, which may be
// more than len(buf). Integers are written in decimal, uintptr in hex with a "0x" prefix,
// floats in the Flex format with the shortest round trip precision, bools as "0" or "1" and
// spans verbatim. The source of a span must not overlap buf.
func ToText[T Value](buf []byte, v T) int {
	switch x := any(v).(type) {
	case bool:
		return encodeBool(buf, x)
	case Char:
		if len(buf) > 0 {
			buf[0] = byte(x)
		}
		return 1
	case int8:
		return intconv.EncodeInt(buf, x)
	case int16:
		return intconv.EncodeInt(buf, x)
	case int32:
		return intconv.EncodeInt(buf, x)
	case int64:
		return intconv.EncodeInt(buf, x)
	case int:
		return intconv.EncodeInt(buf, x)
	case uint8:
		return intconv.EncodeUint(buf, x)
	case uint16:
		return intconv.EncodeUint(buf, x)
	case uint32:
		return intconv.EncodeUint(buf, x)
	case uint64:
		return intconv.EncodeUint(buf, x)
	case uint:
		return intconv.EncodeUint(buf, x)
	case uintptr:
		return intconv.EncodeUintRadix(buf, x, intconv.Hex)
	case float32:
		return realconv.EncodeReal(buf, x, realconv.DefaultPrecision, realconv.Flex)
	case float64:
		return realconv.EncodeReal(buf, x, realconv.DefaultPrecision, realconv.Flex)
	case string:
		return copySpan(buf, conversions.UnsafeGetBytes(x))
	case []byte:
		return copySpan(buf, x)
	case Fixed:
		return copySpan(buf, x.Bytes())
	case Owned:
		return copySpan(buf, x)
	}
	panic(fmt.Sprintf("%T is a Value that isn't supported, meaning its a bug", v))
}

// ToTextSub is ToText returning the written part of buf.
func ToTextSub[T Value](buf []byte, v T) []byte {
	n := ToText(buf, v)
	return buf[:min(n, len(buf))]
}

func encodeBool(buf []byte, b bool) int {
	if len(buf) > 0 {
		if b {
			buf[0] = '1'
		} else {
			buf[0] = '0'
		}
	}
	return 1
}

func copySpan(buf, src []byte) int {
	assert.That(!conversions.Overlaps(buf, src), "source span overlaps the destination")
	copy(buf, src)
	return len(src)
}

// FromText decodes tok, which must hold exactly the text of the value, into v. It returns
// false if tok is not valid for the kind, in which case v is only changed for Fixed, which
// keeps the bytes that fit.
//
// bool takes "0" or "1" and Char takes a single byte. Integers take the grammar of
// intconv.Decode and must fit the type. Floats take the grammar of realconv.DecodeReal.
// string and []byte alias tok and always succeed; the caller must not change tok while
// they are in use. Owned copies tok.
func FromText[T Value](tok []byte, v *T) bool {
	switch p := any(v).(type) {
	case *bool:
		return decodeBool(tok, p)
	case *Char:
		if len(tok) != 1 {
			return false
		}
		*p = Char(tok[0])
		return true
	case *int8:
		return decodeInt(tok, p)
	case *int16:
		return decodeInt(tok, p)
	case *int32:
		return decodeInt(tok, p)
	case *int64:
		return decodeInt(tok, p)
	case *int:
		return decodeInt(tok, p)
	case *uint8:
		return decodeInt(tok, p)
	case *uint16:
		return decodeInt(tok, p)
	case *uint32:
		return decodeInt(tok, p)
	case *uint64:
		return decodeInt(tok, p)
	case *uint:
		return decodeInt(tok, p)
	case *uintptr:
		return decodeInt(tok, p)
	case *float32:
		return decodeReal(tok, p)
	case *float64:
		return decodeReal(tok, p)
	case *string:
		*p = conversions.ByteSlice2String(tok)
		return true
	case *[]byte:
		*p = tok
		return true
	case *Fixed:
		return p.set(tok)
	case *Owned:
		assert.That(!conversions.Overlaps(tok, *p), "token overlaps the Owned storage")
		*p = append((*p)[:0], tok...)
		return true
	}
	panic(fmt.Sprintf("%T is a Value that isn't supported, meaning its a bug", v))
}

func decodeBool(tok []byte, p *bool) bool {
	if len(tok) != 1 {
		return false
	}
	switch tok[0] {
	case '0':
		*p = false
	case '1':
		*p = true
	default:
		return false
	}
	return true
}

func decodeInt[I constraints.Integer](tok []byte, p *I) bool {
	v, ok := intconv.Decode[I](tok)
	if ok {
		*p = v
	}
	return ok
}

func decodeReal[F constraints.Float](tok []byte, p *F) bool {
	v, ok := realconv.DecodeReal[F](tok)
	if ok {
		*p = v
	}
	return ok
}

// FromTextFirst finds the first value in buf and decodes it into v. It returns the offset in
// buf just past the value, or NotFound.
//
// Separators (whitespace unless WithSeparators is passed) are skipped first. Numbers and
// bools then take the longest numeral and fail if it is followed by a letter, digit, '.' or
// '_'. Spans take the bytes up to the next separator. Char takes the first byte of buf
// without skipping anything.
func FromTextFirst[T Value](buf []byte, v *T, options ...FirstOption) int {
	seps := &span.Whitespace
	if len(options) > 0 {
		opts := firstOptions{seps: span.Whitespace}
		for _, o := range options {
			o(&opts)
		}
		seps = &opts.seps
	}

	switch p := any(v).(type) {
	case *bool:
		start, end := span.FirstInt(buf, seps, false)
		return firstResult(start, end, start != NotFound && decodeBool(buf[start:end], p))
	case *Char:
		if len(buf) == 0 {
			return NotFound
		}
		*p = Char(buf[0])
		return 1
	case *int8:
		return firstInt(buf, seps, p)
	case *int16:
		return firstInt(buf, seps, p)
	case *int32:
		return firstInt(buf, seps, p)
	case *int64:
		return firstInt(buf, seps, p)
	case *int:
		return firstInt(buf, seps, p)
	case *uint8:
		return firstInt(buf, seps, p)
	case *uint16:
		return firstInt(buf, seps, p)
	case *uint32:
		return firstInt(buf, seps, p)
	case *uint64:
		return firstInt(buf, seps, p)
	case *uint:
		return firstInt(buf, seps, p)
	case *uintptr:
		return firstInt(buf, seps, p)
	case *float32:
		return firstReal(buf, seps, p)
	case *float64:
		return firstReal(buf, seps, p)
	case *string:
		start, end := span.FirstNonEmpty(buf, seps)
		if start == NotFound {
			return NotFound
		}
		*p = conversions.ByteSlice2String(buf[start:end])
		return end
	case *[]byte:
		start, end := span.FirstNonEmpty(buf, seps)
		if start == NotFound {
			return NotFound
		}
		*p = buf[start:end]
		return end
	case *Fixed:
		start, end := span.FirstNonEmpty(buf, seps)
		return firstResult(start, end, start != NotFound && p.set(buf[start:end]))
	case *Owned:
		start, end := span.FirstNonEmpty(buf, seps)
		return firstResult(start, end, start != NotFound && FromText(buf[start:end], p))
	}
	panic(fmt.Sprintf("%T is a Value that isn't supported, meaning its a bug", v))
}

func firstResult(start, end int, ok bool) int {
	if start == NotFound || !ok {
		return NotFound
	}
	return end
}

func firstInt[I constraints.Integer](buf []byte, seps *span.Set, p *I) int {
	start, end := span.FirstInt(buf, seps, typedetect.IsSignedInteger[I]())
	return firstResult(start, end, start != NotFound && decodeInt(buf[start:end], p))
}

func firstReal[F constraints.Float](buf []byte, seps *span.Set, p *F) int {
	start, end := span.FirstReal(buf, seps)
	return firstResult(start, end, start != NotFound && decodeReal(buf[start:end], p))
}

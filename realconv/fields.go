package realconv

import (
	"math"
	mbits "math/bits"

	"github.com/bearlytools/charconv/internal/bits"
	"github.com/bearlytools/charconv/internal/typedetect"
	"golang.org/x/exp/constraints"
)

// FieldDescriptor describes where the sign, exponent and mantissa of an IEEE-754 type live.
// Bit positions count from the least significant bit. Ranges are [start, end).
type FieldDescriptor struct {
	Bits      int
	SignBit   int
	ExpStart  int
	ExpEnd    int
	MantStart int
	MantEnd   int
	ExpBits   int
	MantBits  int
	// Bias is subtracted from a stored exponent to get the power of two.
	Bias     int
	SignMask uint64
	ExpMask  uint64
	MantMask uint64
}

var (
	// Float32Fields describes float32.
	Float32Fields = describe(uint64(math.Float32bits(float32(math.Inf(1)))), 32)
	// Float64Fields describes float64.
	Float64Fields = describe(math.Float64bits(math.Inf(1)), 64)
)

// describe derives the layout of a float type from its +Inf pattern, which has every exponent
// bit set and nothing else.
func describe(inf uint64, size int) FieldDescriptor {
	mant := mbits.TrailingZeros64(inf)
	exp := mbits.OnesCount64(inf)
	sign := mant + exp
	if sign != size-1 {
		panic("realconv: unexpected +Inf layout")
	}
	return FieldDescriptor{
		Bits:      size,
		SignBit:   sign,
		ExpStart:  mant,
		ExpEnd:    sign,
		MantStart: 0,
		MantEnd:   mant,
		ExpBits:   exp,
		MantBits:  mant,
		Bias:      1<<(exp-1) - 1,
		SignMask:  bits.Mask[uint64](uint64(sign), uint64(size)),
		ExpMask:   bits.Mask[uint64](uint64(mant), uint64(sign)),
		MantMask:  bits.Mask[uint64](0, uint64(mant)),
	}
}

// FieldsOf returns the descriptor for F.
func FieldsOf[F constraints.Float]() *FieldDescriptor {
	if typedetect.BitSize[F]() == 32 {
		return &Float32Fields
	}
	return &Float64Fields
}

// Unbias returns the power of two a stored exponent stands for.
func (d *FieldDescriptor) Unbias(exp uint64) int {
	return int(exp) - d.Bias
}

// Parts are the raw fields of a float. Exp is the stored, biased exponent.
type Parts struct {
	Sign bool
	Exp  uint64
	Mant uint64
}

func toBits[F constraints.Float](v F) uint64 {
	if typedetect.BitSize[F]() == 32 {
		return uint64(math.Float32bits(float32(v)))
	}
	return math.Float64bits(float64(v))
}

func fromBits[F constraints.Float](b uint64) F {
	if typedetect.BitSize[F]() == 32 {
		return F(math.Float32frombits(uint32(b)))
	}
	return F(math.Float64frombits(b))
}

// Decompose splits v into its fields.
func Decompose[F constraints.Float](v F) Parts {
	d := FieldsOf[F]()
	b := toBits(v)
	return Parts{
		Sign: bits.GetBit(b, uint8(d.SignBit)),
		Exp:  bits.GetValue[uint64, uint64](b, d.ExpMask, uint64(d.ExpStart)),
		Mant: bits.GetValue[uint64, uint64](b, d.MantMask, uint64(d.MantStart)),
	}
}

// Compose builds a float from its fields. Bits of Exp and Mant that do not fit their field are
// dropped.
func Compose[F constraints.Float](p Parts) F {
	d := FieldsOf[F]()
	var b uint64
	b = bits.SetBit(b, uint8(d.SignBit), p.Sign)
	b = bits.SetValue(p.Exp, b, uint64(d.ExpStart), uint64(d.ExpEnd))
	b = bits.SetValue(p.Mant, b, uint64(d.MantStart), uint64(d.MantEnd))
	return fromBits[F](b)
}

// BitString renders the bits of v as "0b<sign> <exponent> <mantissa>".
func BitString[F constraints.Float](v F) string {
	d := FieldsOf[F]()
	return bits.Binary(toBits(v), d.Bits, d.SignBit, d.ExpStart)
}

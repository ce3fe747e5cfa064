package realconv

import (
	"math"
	"math/big"

	"github.com/bearlytools/charconv/internal/conversions"
	"github.com/bearlytools/charconv/internal/typedetect"
	"golang.org/x/exp/constraints"
)

// Exact powers of ten for the fast path.
var (
	pow10f64 = [...]float64{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
		1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
		1e20, 1e21, 1e22,
	}
	pow10f32 = [...]float32{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10}
)

// limits bound the decimal magnitude (digits before the point once written without an
// exponent) outside of which a value certainly overflows or becomes zero.
type limits struct {
	maxMag, minMag int
}

var (
	limits32 = limits{maxMag: 40, minMag: -50}
	limits64 = limits{maxMag: 310, minMag: -330}
)

// ScanReal parses tok without going through strconv or fmt. It accepts the same grammar as
// DecodeReal and returns the correctly rounded (round half to even) value. Overflow fails;
// underflow gives zero or a subnormal.
//
// Short mantissas with small exponents are computed with a single exact float multiply or
// divide. Everything else is computed exactly with big integers.
func ScanReal[F constraints.Float](tok []byte) (F, bool) {
	n, ok := split(tok)
	if !ok {
		return 0, false
	}
	if n.special != notSpecial {
		return F(specialValue(n)), true
	}

	var v float64
	if n.hex {
		v, ok = scanHex[F](n)
	} else {
		v, ok = scanDecimal[F](n)
	}
	if !ok {
		return 0, false
	}
	if n.neg {
		v = -v
	}
	return F(v), true
}

// digitsOf returns the significant digits of n with leading and trailing zeros removed, and
// the power of ten to scale them by.
func digitsOf(n numeral) (intPart, fracPart []byte, e10 int) {
	intPart, fracPart = n.intDigits, n.fracDigits
	e10 = n.exp - len(fracPart)

	for len(intPart) > 0 && intPart[0] == '0' {
		intPart = intPart[1:]
	}
	if len(intPart) == 0 {
		for len(fracPart) > 0 && fracPart[0] == '0' {
			fracPart = fracPart[1:]
		}
	}

	for len(fracPart) > 0 && fracPart[len(fracPart)-1] == '0' {
		fracPart = fracPart[:len(fracPart)-1]
		e10++
	}
	if len(fracPart) == 0 {
		for len(intPart) > 0 && intPart[len(intPart)-1] == '0' {
			intPart = intPart[:len(intPart)-1]
			e10++
		}
	}
	if len(intPart) == 0 && len(fracPart) == 0 {
		// Zero has no digits to scale.
		e10 = 0
	}
	return intPart, fracPart, e10
}

// accumulate adds the digits in part to m, reporting false if m would pass 19 digits.
func accumulate(m uint64, nd int, part []byte) (uint64, int, bool) {
	for _, c := range part {
		if nd == 19 {
			return m, nd, false
		}
		m = m*10 + uint64(c-'0')
		nd++
	}
	return m, nd, true
}

func scanDecimal[F constraints.Float](n numeral) (float64, bool) {
	intPart, fracPart, e10 := digitsOf(n)
	nd := len(intPart) + len(fracPart)
	if nd == 0 {
		return 0, true
	}

	lim := limits64
	if typedetect.BitSize[F]() == 32 {
		lim = limits32
	}
	mag := nd + e10
	if mag > lim.maxMag {
		return 0, false
	}
	if mag < lim.minMag {
		return 0, true
	}

	m, _, fits := accumulate(0, 0, intPart)
	if fits {
		m, _, fits = accumulate(m, len(intPart), fracPart)
	}
	if fits {
		if v, ok := fastPath[F](m, e10); ok {
			return v, true
		}
	}
	return slowPath[F](intPart, fracPart, e10)
}

// fastPath handles mantissas and powers of ten that are both exact in F, where one IEEE
// operation gives the correctly rounded result.
func fastPath[F constraints.Float](m uint64, e10 int) (float64, bool) {
	if typedetect.BitSize[F]() == 32 {
		if m > 1<<24 || e10 < -10 || e10 > 10 {
			return 0, false
		}
		f := float32(m)
		if e10 < 0 {
			f /= pow10f32[-e10]
		} else {
			f *= pow10f32[e10]
		}
		return float64(f), true
	}

	if m > 1<<53 || e10 < -22 || e10 > 22 {
		return 0, false
	}
	f := float64(m)
	if e10 < 0 {
		f /= pow10f64[-e10]
	} else {
		f *= pow10f64[e10]
	}
	return f, true
}

var bigTen = big.NewInt(10)

// slowPath computes digits * 10^e10 as an exact rational and rounds it once.
func slowPath[F constraints.Float](intPart, fracPart []byte, e10 int) (float64, bool) {
	num := new(big.Int)
	if len(intPart) > 0 {
		num.SetString(conversions.ByteSlice2String(intPart), 10)
	}
	if len(fracPart) > 0 {
		frac, _ := new(big.Int).SetString(conversions.ByteSlice2String(fracPart), 10)
		num.Mul(num, new(big.Int).Exp(bigTen, big.NewInt(int64(len(fracPart))), nil))
		num.Add(num, frac)
	}

	scale := new(big.Int).Exp(bigTen, big.NewInt(int64(abs(e10))), nil)
	r := new(big.Rat)
	if e10 >= 0 {
		r.SetInt(num.Mul(num, scale))
	} else {
		r.SetFrac(num, scale)
	}
	return round[F](r)
}

// round converts r to the nearest F, failing when it overflows.
func round[F constraints.Float](r *big.Rat) (float64, bool) {
	var v float64
	if typedetect.BitSize[F]() == 32 {
		f, _ := r.Float32()
		v = float64(f)
	} else {
		v, _ = r.Float64()
	}
	if math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// scanHex composes a hex float with exact binary scaling.
func scanHex[F constraints.Float](n numeral) (float64, bool) {
	digits := make([]byte, 0, len(n.intDigits)+len(n.fracDigits))
	digits = append(digits, n.intDigits...)
	digits = append(digits, n.fracDigits...)

	mant, _ := new(big.Int).SetString(conversions.ByteSlice2String(digits), 16)
	if mant.Sign() == 0 {
		return 0, true
	}
	e2 := n.exp - 4*len(n.fracDigits)

	d := FieldsOf[F]()
	top := mant.BitLen() + e2
	if top > d.Bias+2 {
		return 0, false
	}
	// Below the smallest subnormal by more than a rounding bit.
	if top < -d.Bias-d.MantBits-2 {
		return 0, true
	}

	r := new(big.Rat)
	if e2 >= 0 {
		r.SetInt(mant.Lsh(mant, uint(e2)))
	} else {
		r.SetFrac(mant, new(big.Int).Lsh(big.NewInt(1), uint(-e2)))
	}
	return round[F](r)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

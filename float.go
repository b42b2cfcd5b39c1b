package rational

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// floatFormat describes the bit layout of an IEEE-754 binary format.
type floatFormat struct {
	mantBits uint // number of explicit mantissa bits
	expBits  uint // number of exponent bits
	bias     int
}

var (
	binary64 = floatFormat{mantBits: 52, expBits: 11, bias: 1023}
	binary32 = floatFormat{mantBits: 23, expBits: 8, bias: 127}
)

// prec returns the precision in bits, including the implicit leading bit.
func (ff floatFormat) prec() int {
	return int(ff.mantBits) + 1
}

// minExp returns the unbiased exponent of the smallest normal number.
func (ff floatFormat) minExp() int {
	return 1 - ff.bias
}

// maxExp returns the unbiased exponent of the largest finite number.
func (ff floatFormat) maxExp() int {
	return ff.bias
}

// expMask returns the biased exponent of infinities and NaNs.
func (ff floatFormat) expMask() uint64 {
	return 1<<ff.expBits - 1
}

func (ff floatFormat) signBit() uint64 {
	return 1 << (ff.mantBits + ff.expBits)
}

// signOf reports whether the sign bit of b is set.
func (ff floatFormat) signOf(b uint64) bool {
	return b&ff.signBit() != 0
}

// biasedExpOf returns the raw exponent field of b.
func (ff floatFormat) biasedExpOf(b uint64) uint64 {
	return b >> ff.mantBits & ff.expMask()
}

// mantOf returns the raw mantissa field of b, without the implicit bit.
func (ff floatFormat) mantOf(b uint64) uint64 {
	return b & (1<<ff.mantBits - 1)
}

// isSubnormal reports whether b is a non-zero subnormal number.
func (ff floatFormat) isSubnormal(b uint64) bool {
	return ff.biasedExpOf(b) == 0 && ff.mantOf(b) != 0
}

// decompose splits b into a sign, an integer significand, and a binary
// exponent, such that the value of b is (-1)^neg * mant * 2^exp.
// decompose returns false for infinities and NaNs.
func (ff floatFormat) decompose(b uint64) (neg bool, mant uint64, exp int, ok bool) {
	neg = ff.signOf(b)
	mant = ff.mantOf(b)
	switch e := ff.biasedExpOf(b); e {
	case ff.expMask():
		return neg, 0, 0, false
	case 0:
		// Zero or subnormal: no implicit bit
		exp = ff.minExp() - int(ff.mantBits)
	default:
		mant |= 1 << ff.mantBits
		exp = int(e) - ff.bias - int(ff.mantBits)
	}
	return neg, mant, exp, true
}

// fraction returns the exact value of the bits b as num/den in lowest terms.
func (ff floatFormat) fraction(b uint64) (num, den *big.Int, ok bool) {
	neg, mant, exp, ok := ff.decompose(b)
	if !ok {
		return nil, nil, false
	}
	num, den = new(big.Int), big.NewInt(1)
	if mant == 0 {
		return num, den, true
	}
	// Remove trailing zeros, so that the denominator is minimal
	tz := bits.TrailingZeros64(mant)
	mant >>= tz
	exp += tz
	num.SetUint64(mant)
	if exp >= 0 {
		num.Lsh(num, uint(exp))
	} else {
		den.Lsh(den, uint(-exp))
	}
	if neg {
		num.Neg(num)
	}
	return num, den, true
}

// round returns the bits of the value nearest to num/den, rounding half to
// even.
// The value saturates to infinity on overflow and to zero on underflow.
// The arguments must be positive and are not modified.
func (ff floatFormat) round(neg bool, num, den *big.Int) (b uint64, exact, overflow bool) {
	if neg {
		b = ff.signBit()
	}
	if num.Sign() == 0 {
		return b, true, false
	}
	p := ff.prec()

	// Quotient q with p+2 or p+3 significant bits and a sticky bit
	shift := p + 2 - (num.BitLen() - den.BitLen())
	x, y := new(big.Int).Set(num), new(big.Int).Set(den)
	if shift > 0 {
		x.Lsh(x, uint(shift))
	} else {
		y.Lsh(y, uint(-shift))
	}
	q, r := x.QuoRem(x, y, new(big.Int))
	sticky := r.Sign() != 0

	// Binary exponent of the leading bit
	e := q.BitLen() - 1 - shift
	switch {
	case e > ff.maxExp():
		return b | ff.expMask()<<ff.mantBits, false, true
	case e < ff.minExp()-p:
		// Less than half of the smallest subnormal
		return b, false, false
	}

	// Exponent of the last mantissa bit; subnormals have fewer bits
	quantum := max(e, ff.minExp()) - (p - 1)
	drop := uint(quantum + shift)
	m := new(big.Int).Rsh(q, drop)
	rem := new(big.Int).Sub(q, new(big.Int).Lsh(m, drop))
	half := new(big.Int).Lsh(bigOne, drop-1)
	exact = rem.Sign() == 0 && !sticky
	switch c := rem.Cmp(half); {
	case c > 0, c == 0 && (sticky || m.Bit(0) == 1):
		m.Add(m, bigOne)
	}
	if m.BitLen() > p {
		// Rounding carried into a new bit
		m.Rsh(m, 1)
		quantum++
	}

	mant := m.Uint64()
	switch {
	case mant == 0:
		return b, false, false
	case mant < 1<<ff.mantBits:
		// Subnormal
		return b | mant, exact, false
	}
	biased := quantum + p - 1 + ff.bias
	if biased >= int(ff.expMask()) {
		return b | ff.expMask()<<ff.mantBits, false, true
	}
	return b | uint64(biased)<<ff.mantBits | ff.mantOf(mant), exact, false
}

// floatBits converts f to the format ff.
func floatBits[T Integer[T]](f Fraction[T], ff floatFormat) (b uint64, exact, overflow bool) {
	num, den := f.big()
	neg := num.Sign() < 0
	return ff.round(neg, num.Abs(num), den)
}

// Float64 returns the float64 value nearest to f, rounding half to even.
// If f is too large in magnitude, the result is ±Inf;
// if f is too small, the result is a zero with the sign of f.
// Also see method [Fraction.Float64Exact].
func (f Fraction[T]) Float64() float64 {
	b, _, _ := floatBits(f, binary64)
	return math.Float64frombits(b)
}

// Float32 returns the float32 value nearest to f, rounding half to even.
// The result is rounded once, directly to single precision.
// If f is too large in magnitude, the result is ±Inf;
// if f is too small, the result is a zero with the sign of f.
// Also see method [Fraction.Float32Exact].
func (f Fraction[T]) Float32() float32 {
	b, _, _ := floatBits(f, binary32)
	return math.Float32frombits(uint32(b))
}

// Float64Exact returns f as float64 if it is exactly representable.
//
// Float64Exact returns an error if:
//   - f is outside the range of finite float64 values;
//   - f cannot be represented without rounding, that is its denominator is
//     not a power of two or its value needs more than 53 significant bits.
func (f Fraction[T]) Float64Exact() (float64, error) {
	b, exact, overflow := floatBits(f, binary64)
	switch {
	case overflow:
		return 0, fmt.Errorf("converting %v to float64: %w", f, ErrOverflow)
	case !exact:
		return 0, fmt.Errorf("converting %v to float64: %w", f, ErrInexact)
	}
	return math.Float64frombits(b), nil
}

// Float32Exact returns f as float32 if it is exactly representable.
//
// Float32Exact returns an error if:
//   - f is outside the range of finite float32 values;
//   - f cannot be represented without rounding, that is its denominator is
//     not a power of two or its value needs more than 24 significant bits.
func (f Fraction[T]) Float32Exact() (float32, error) {
	b, exact, overflow := floatBits(f, binary32)
	switch {
	case overflow:
		return 0, fmt.Errorf("converting %v to float32: %w", f, ErrOverflow)
	case !exact:
		return 0, fmt.Errorf("converting %v to float32: %w", f, ErrInexact)
	}
	return math.Float32frombits(uint32(b)), nil
}

// newFractionFromFloatBits converts IEEE-754 bits of the format ff.
func newFractionFromFloatBits[T Integer[T]](b uint64, ff floatFormat) (Fraction[T], error) {
	num, den, ok := ff.fraction(b)
	if !ok {
		return Fraction[T]{}, errNotFinite
	}
	return newFractionFromBig[T](num, den)
}

// NewFromFloat64 returns a fraction exactly equal to f.
// Both positive and negative zeros are converted to 0.
//
// NewFromFloat64 returns an error if:
//   - f is NaN or ±Inf;
//   - the result does not fit into the backend T.
func NewFromFloat64[T Integer[T]](f float64) (Fraction[T], error) {
	r, err := newFractionFromFloatBits[T](math.Float64bits(f), binary64)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return r, nil
}

// NewFromFloat32 returns a fraction exactly equal to f.
// Both positive and negative zeros are converted to 0.
//
// NewFromFloat32 returns an error if:
//   - f is NaN or ±Inf;
//   - the result does not fit into the backend T.
func NewFromFloat32[T Integer[T]](f float32) (Fraction[T], error) {
	r, err := newFractionFromFloatBits[T](uint64(math.Float32bits(f)), binary32)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return r, nil
}

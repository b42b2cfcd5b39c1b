package rational

import (
	"fmt"
	"math/big"

	"fortio.org/safecast"
	"golang.org/x/exp/constraints"
)

// RoundingMode specifies how a fraction is mapped to the nearest value
// on a coarser grid, such as the integers or the multiples of a step.
type RoundingMode int

const (
	Up          RoundingMode = iota // away from zero
	Down                            // towards zero
	Ceiling                         // towards positive infinity
	Floor                           // towards negative infinity
	HalfUp                          // to nearest, ties away from zero
	HalfDown                        // to nearest, ties towards zero
	HalfEven                        // to nearest, ties to the even neighbor
	Unnecessary                     // asserts that no rounding is needed
)

var roundingModeNames = [...]string{
	Up:          "Up",
	Down:        "Down",
	Ceiling:     "Ceiling",
	Floor:       "Floor",
	HalfUp:      "HalfUp",
	HalfDown:    "HalfDown",
	HalfEven:    "HalfEven",
	Unnecessary: "Unnecessary",
}

func (m RoundingMode) String() string {
	if m < 0 || int(m) >= len(roundingModeNames) {
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
	return roundingModeNames[m]
}

// bump reports whether the magnitude of a truncated quotient has to be
// increased by one.
// The arguments describe the discarded remainder:
//
//	sign: the sign of the exact (unrounded) value, never 0
//	half: -1, 0, +1 if the remainder is below, at, or above the midpoint
//	odd:  whether the truncated quotient is odd
//
// This is the only place where rounding policies are decided.
func (m RoundingMode) bump(sign, half int, odd bool) (bool, error) {
	switch m {
	case Up:
		return true, nil
	case Down:
		return false, nil
	case Ceiling:
		return sign > 0, nil
	case Floor:
		return sign < 0, nil
	case HalfUp:
		return half >= 0, nil
	case HalfDown:
		return half > 0, nil
	case HalfEven:
		return half > 0 || (half == 0 && odd), nil
	case Unnecessary:
		return false, ErrInexact
	}
	return false, errRoundingMode
}

func (m RoundingMode) valid() bool {
	return m >= Up && m <= Unnecessary
}

// roundQuo rounds num/den to an integer using mode.
// The denominator must be positive.
func roundQuo[T Integer[T]](num, den T, mode RoundingMode) (T, error) {
	if !mode.valid() {
		return num, errRoundingMode
	}
	var c checked[T]
	q, r, err := num.quoRem(den)
	if err != nil {
		return num, err
	}
	if r.sign() == 0 {
		return q, nil
	}
	// Compare |r| with den - |r| instead of 2|r| with den,
	// so the bounded backend cannot overflow here.
	ar := c.abs(r)
	half := ar.cmp(c.sub(den, ar))
	if c.err != nil {
		return num, c.err
	}
	sign := num.sign()
	ok, err := mode.bump(sign, half, !q.isEven())
	if err != nil {
		return num, err
	}
	if ok {
		q = c.add(q, q.fromInt64(int64(sign)))
	}
	return q, c.err
}

// Round returns f rounded to an integer using the specified rounding mode.
// Rounding half cases are decided exactly, without any intermediate precision
// loss.
//
// Round returns an error if:
//   - mode is [Unnecessary] and f is not an integer;
//   - mode is not a valid rounding mode.
func (f Fraction[T]) Round(mode RoundingMode) (T, error) {
	q, err := roundQuo(f.num, f.denom(), mode)
	if err != nil {
		var t T
		return t, fmt.Errorf("rounding %v (%v): %w", f, mode, err)
	}
	return q, nil
}

// RoundToNumber returns the multiple of step nearest to f, selected using the
// specified rounding mode.
//
// RoundToNumber returns an error if:
//   - step is not positive;
//   - mode is [Unnecessary] and f is not a multiple of step;
//   - mode is not a valid rounding mode;
//   - the result overflows the backend.
func (f Fraction[T]) RoundToNumber(step Fraction[T], mode RoundingMode) (Fraction[T], error) {
	g, err := f.roundToNumber(step, mode)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("rounding %v to a multiple of %v (%v): %w", f, step, mode, err)
	}
	return g, nil
}

func (f Fraction[T]) roundToNumber(step Fraction[T], mode RoundingMode) (Fraction[T], error) {
	if !step.IsPos() {
		return Fraction[T]{}, errStepRange
	}
	q, err := f.quo(step)
	if err != nil {
		return Fraction[T]{}, err
	}
	k, err := roundQuo(q.num, q.denom(), mode)
	if err != nil {
		return Fraction[T]{}, err
	}
	return Fraction[T]{num: k, den: one[T]()}.mul(step)
}

// RoundToDenominator returns the multiple of 1/den nearest to f, selected
// using the specified rounding mode.
// The denominator of the result divides den.
//
// RoundToDenominator returns an error if:
//   - den is not positive;
//   - mode is [Unnecessary] and f is not a multiple of 1/den;
//   - mode is not a valid rounding mode;
//   - the result overflows the backend.
func (f Fraction[T]) RoundToDenominator(den int64, mode RoundingMode) (Fraction[T], error) {
	g, err := f.roundToDenominator(den, mode)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("rounding %v to denominator %v (%v): %w", f, den, mode, err)
	}
	return g, nil
}

func (f Fraction[T]) roundToDenominator(den int64, mode RoundingMode) (Fraction[T], error) {
	if den <= 0 {
		return Fraction[T]{}, errStepRange
	}
	var t T
	d := t.fromInt64(den)
	num, err := f.num.mul(d)
	if err != nil {
		// f·den does not fit, although the rounded result may
		return f.roundToDenominatorBig(den, mode)
	}
	k, err := roundQuo(num, f.denom(), mode)
	if err != nil {
		return Fraction[T]{}, err
	}
	return newFraction(k, d)
}

func (f Fraction[T]) roundToDenominatorBig(den int64, mode RoundingMode) (Fraction[T], error) {
	num := BigInt{new(big.Int).Mul(f.num.big(), big.NewInt(den))}
	k, err := roundQuo(num, BigInt{f.denom().big()}, mode)
	if err != nil {
		return Fraction[T]{}, err
	}
	return newFractionFromBig[T](k.get(), big.NewInt(den))
}

// ToInt returns f rounded to an integer using the specified rounding mode and
// converted to the integer type I.
//
// ToInt returns an error if:
//   - mode is [Unnecessary] and f is not an integer;
//   - mode is not a valid rounding mode;
//   - the rounded value does not fit into I.
func ToInt[I constraints.Integer, T Integer[T]](f Fraction[T], mode RoundingMode) (I, error) {
	q, err := f.Round(mode)
	if err != nil {
		return 0, err
	}
	b := q.big()
	var i I
	switch {
	case b.IsInt64():
		i, err = safecast.Conv[I](b.Int64())
	case b.IsUint64():
		i, err = safecast.Conv[I](b.Uint64())
	default:
		return 0, fmt.Errorf("converting %v to %T: %w", f, i, ErrOverflow)
	}
	if err != nil {
		return 0, fmt.Errorf("converting %v to %T: %w: %w", f, i, ErrOverflow, err)
	}
	return i, nil
}

// Int64 returns f rounded to an integer using the specified rounding mode.
// Also see function [ToInt].
func (f Fraction[T]) Int64(mode RoundingMode) (int64, error) {
	return ToInt[int64](f, mode)
}

// BigInt returns f rounded to an integer using the specified rounding mode.
func (f Fraction[T]) BigInt(mode RoundingMode) (*big.Int, error) {
	q, err := f.Round(mode)
	if err != nil {
		return nil, err
	}
	return q.big(), nil
}

// DivisionMode specifies the sign convention of integer division of fractions.
// The zero value is [Truncated].
type DivisionMode int

const (
	Truncated DivisionMode = iota // quotient rounds towards zero, remainder has the sign of the dividend
	Floored                       // quotient rounds towards negative infinity, remainder has the sign of the divisor
	Euclidean                     // remainder is never negative
)

var divisionModeNames = [...]string{
	Truncated: "Truncated",
	Floored:   "Floored",
	Euclidean: "Euclidean",
}

func (m DivisionMode) String() string {
	if m < 0 || int(m) >= len(divisionModeNames) {
		return fmt.Sprintf("DivisionMode(%d)", int(m))
	}
	return divisionModeNames[m]
}

// rounding returns the rounding mode of the quotient for a divisor with the
// given sign.
func (m DivisionMode) rounding(sign int) (RoundingMode, error) {
	switch m {
	case Truncated:
		return Down, nil
	case Floored:
		return Floor, nil
	case Euclidean:
		if sign < 0 {
			return Ceiling, nil
		}
		return Floor, nil
	}
	return 0, errDivisionMode
}

// QuoRem returns the integer quotient q and the remainder r of f and g
// such that f = g * q + r, where q is rounded according to mode:
//
//	Truncated: r has the sign of f, or is 0
//	Floored:   r has the sign of g, or is 0
//	Euclidean: r is never negative
//
// In every mode |r| < |g|.
//
// QuoRem returns an error if:
//   - g is 0;
//   - mode is not a valid division mode;
//   - the result overflows the backend.
func (f Fraction[T]) QuoRem(g Fraction[T], mode DivisionMode) (T, Fraction[T], error) {
	q, r, err := f.quoRem(g, mode)
	if err != nil {
		var t T
		return t, Fraction[T]{}, fmt.Errorf("computing [%v div %v] (%v): %w", f, g, mode, err)
	}
	return q, r, nil
}

func (f Fraction[T]) quoRem(g Fraction[T], mode DivisionMode) (T, Fraction[T], error) {
	var q T
	rm, err := mode.rounding(g.Sign())
	if err != nil {
		return q, Fraction[T]{}, err
	}
	h, err := f.quo(g)
	if err != nil {
		return q, Fraction[T]{}, err
	}
	q, err = roundQuo(h.num, h.denom(), rm)
	if err != nil {
		return q, Fraction[T]{}, err
	}
	p, err := g.mul(Fraction[T]{num: q, den: one[T]()})
	if err != nil {
		return q, Fraction[T]{}, err
	}
	r, err := f.sub(p)
	if err != nil {
		return q, Fraction[T]{}, err
	}
	return q, r, nil
}

// QuoInt returns the integer quotient of f and g.
// Also see method [Fraction.QuoRem].
func (f Fraction[T]) QuoInt(g Fraction[T], mode DivisionMode) (T, error) {
	q, _, err := f.QuoRem(g, mode)
	return q, err
}

// Rem returns the remainder of f and g.
// Also see method [Fraction.QuoRem].
func (f Fraction[T]) Rem(g Fraction[T], mode DivisionMode) (Fraction[T], error) {
	_, r, err := f.QuoRem(g, mode)
	return r, err
}

// Parts returns the integer part and the fractional part of f, such that
// f = i + r.
// Parts is equivalent to QuoRem with the divisor 1, so [Truncated] keeps the
// sign of f in both parts, while [Floored] and [Euclidean] return a
// fractional part in [0, 1).
func (f Fraction[T]) Parts(mode DivisionMode) (T, Fraction[T], error) {
	return f.QuoRem(Fraction[T]{num: one[T](), den: one[T]()}, mode)
}

// IntegerPart returns the integer part of f.
// Also see method [Fraction.Parts].
func (f Fraction[T]) IntegerPart(mode DivisionMode) (T, error) {
	i, _, err := f.Parts(mode)
	return i, err
}

// FractionPart returns the fractional part of f.
// Also see method [Fraction.Parts].
func (f Fraction[T]) FractionPart(mode DivisionMode) (Fraction[T], error) {
	_, r, err := f.Parts(mode)
	return r, err
}

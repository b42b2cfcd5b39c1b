package rational

import (
	"fmt"
	"math/big"
	"strings"

	"fortio.org/safecast"
	"github.com/govalues/decimal"
	"golang.org/x/exp/constraints"
)

// Number is implemented by numeric types that can be represented exactly as
// a ratio of two integers.
// NumDenom must return a non-zero denominator; the values are not modified.
type Number interface {
	NumDenom() (num, den *big.Int)
}

// NumDenom implements the [Number] interface.
func (f Fraction[T]) NumDenom() (num, den *big.Int) {
	return f.big()
}

// NewFromInteger returns a fraction equal to the integer i.
//
// NewFromInteger returns an error if i does not fit into the backend T.
func NewFromInteger[T Integer[T], I constraints.Integer](i I) (Fraction[T], error) {
	x := new(big.Int)
	if v, err := safecast.Conv[int64](i); err == nil {
		x.SetInt64(v)
	} else {
		v, err := safecast.Conv[uint64](i)
		if err != nil {
			return Fraction[T]{}, fmt.Errorf("converting %v: %w: %w", i, errUnsupported, err)
		}
		x.SetUint64(v)
	}
	f, err := newFractionFromBig[T](x, bigOne)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("converting %v: %w", i, err)
	}
	return f, nil
}

// NewFromFloat returns a fraction exactly equal to f.
// Also see functions [NewFromFloat64] and [NewFromFloat32].
func NewFromFloat[T Integer[T], F constraints.Float](f F) (Fraction[T], error) {
	// Every float32 is exactly representable as float64.
	return NewFromFloat64[T](float64(f))
}

// NewFromDecimal returns a fraction exactly equal to d.
//
// NewFromDecimal returns an error if the result does not fit into the
// backend T.
func NewFromDecimal[T Integer[T]](d decimal.Decimal) (Fraction[T], error) {
	num := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		num.Neg(num)
	}
	f, err := newFractionFromBig[T](num, bigPow(10, d.Scale()))
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return f, nil
}

// Decimal returns f rounded to the specified number of digits after the
// decimal point using the specified rounding mode.
//
// Decimal returns an error if:
//   - scale is not in the range [0, decimal.MaxScale];
//   - mode is [Unnecessary] and rounding is needed;
//   - mode is not a valid rounding mode;
//   - the rounded value has more than decimal.MaxPrec digits.
func (f Fraction[T]) Decimal(scale int, mode RoundingMode) (decimal.Decimal, error) {
	if scale < 0 || scale > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal with scale %v: %w", f, scale, errScaleRange)
	}
	s, err := f.radixString(10, scale, mode)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal with scale %v: %w", f, scale, err)
	}
	// ParseExact refuses to drop any of the scale digits
	d, err := decimal.ParseExact(s, scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal with scale %v: %w: %v", f, scale, ErrOverflow, err)
	}
	return d, nil
}

// ValueOf converts a value of a foreign numeric type to a fraction.
// The following types are supported:
//
//   - signed and unsigned integers of all sizes;
//   - float32 and float64, which are converted exactly;
//   - *big.Int, *big.Rat and *big.Float;
//   - [decimal.Decimal];
//   - string, which is parsed with [Parse];
//   - [Rat], [Rat64] and any other [Number].
//
// ValueOf returns an error if:
//   - v is nil or of an unsupported type;
//   - v is NaN or an infinity;
//   - v is a string that cannot be parsed;
//   - the result does not fit into the backend T.
func ValueOf[T Integer[T]](v any) (Fraction[T], error) {
	switch x := v.(type) {
	case nil:
		return Fraction[T]{}, fmt.Errorf("converting value: %w", errNilArgument)
	case Fraction[T]:
		return x, nil
	case int:
		return NewFromInteger[T](x)
	case int8:
		return NewFromInteger[T](x)
	case int16:
		return NewFromInteger[T](x)
	case int32:
		return NewFromInteger[T](x)
	case int64:
		return NewFromInteger[T](x)
	case uint:
		return NewFromInteger[T](x)
	case uint8:
		return NewFromInteger[T](x)
	case uint16:
		return NewFromInteger[T](x)
	case uint32:
		return NewFromInteger[T](x)
	case uint64:
		return NewFromInteger[T](x)
	case uintptr:
		return NewFromInteger[T](x)
	case float32:
		return NewFromFloat32[T](x)
	case float64:
		return NewFromFloat64[T](x)
	case string:
		return Parse[T](strings.TrimSpace(x))
	case decimal.Decimal:
		return NewFromDecimal[T](x)
	case *big.Int:
		if x == nil {
			return Fraction[T]{}, fmt.Errorf("converting value: %w", errNilArgument)
		}
		return NewFromBig[T](x, bigOne)
	case *big.Rat:
		if x == nil {
			return Fraction[T]{}, fmt.Errorf("converting value: %w", errNilArgument)
		}
		return NewFromBig[T](x.Num(), x.Denom())
	case *big.Float:
		return newFractionFromBigFloat[T](x)
	case Number:
		num, den := x.NumDenom()
		return NewFromBig[T](num, den)
	}
	return Fraction[T]{}, fmt.Errorf("converting %T: %w", v, errUnsupported)
}

// newFractionFromBigFloat converts a finite x exactly.
func newFractionFromBigFloat[T Integer[T]](x *big.Float) (Fraction[T], error) {
	switch {
	case x == nil:
		return Fraction[T]{}, fmt.Errorf("converting value: %w", errNilArgument)
	case x.IsInf():
		return Fraction[T]{}, fmt.Errorf("converting %v: %w", x, errNotFinite)
	}
	r, _ := x.Rat(nil)
	return NewFromBig[T](r.Num(), r.Denom())
}

// EqualNumber returns true if v is a number supported by [ValueOf] that is
// numerically equal to f, regardless of its type or backend.
// Unlike [Fraction.Equal], it never fails on overflow: values are compared
// without bounds.
func (f Fraction[T]) EqualNumber(v any) bool {
	g, err := ValueOf[BigInt](v)
	if err != nil {
		return false
	}
	num, den := f.big()
	return num.Cmp(g.num.get()) == 0 && den.Cmp(g.denom().get()) == 0
}

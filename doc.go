/*
Package rational implements immutable exact rational numbers.
Every value is a fraction of two integers kept in lowest terms, so arithmetic
on fractions never loses precision.

# Representation

[Fraction] is a generic struct with two fields:

  - Numerator: a signed integer carrying the sign of the fraction.
  - Denominator: a positive integer.

A fraction is always reduced, so every rational number has exactly one
representation.
Zero is represented as 0/1, and the zero value of [Fraction] is a valid 0.

The integers are provided by one of two backends:

  - [BigInt]: unbounded integers based on [big.Int].
    Fractions over this backend are available as [Rat].
  - [Int64]: 64-bit integers.
    Fractions over this backend are available as [Rat64].
    Arithmetic and comparison on them do not allocate, while parsing,
    formatting, float conversion and the Farey operations go through
    [big.Int]. Every operation whose exact result does not fit into
    64 bits returns [ErrOverflow].

Both backends share the same algorithms, and [Convert] moves a fraction
from one backend to the other.

# Conversions

The package provides methods for converting fractions:

  - from/to string:
    [Parse], [ParseRadix], [Fraction.String], [Fraction.MixedString],
    [Fraction.RadixString], [Fraction.DecimalString],
    [Fraction.RepeatingDigitString], [Fraction.Format].
  - from/to float64 and float32:
    [NewFromFloat64], [NewFromFloat32], [Fraction.Float64], [Fraction.Float32],
    [Fraction.Float64Exact], [Fraction.Float32Exact].
  - from/to integers:
    [New], [NewFromInteger], [NewFromBig], [ToInt], [Fraction.Int64],
    [Fraction.BigInt].
  - from/to [decimal.Decimal]:
    [NewFromDecimal], [Fraction.Decimal].
  - from any supported value:
    [ValueOf].

Floats are converted exactly in both directions when possible.
[Fraction.Float64] and [Fraction.Float32] round half to even and are
correctly rounded.

The parser accepts integers, ratios, decimal and exponential notation,
repeating groups, and mixed numbers:

	7/22  -1.25  .5e-3  0.1(6)  3 1/7

# Rounding

Rounding is always explicit. [RoundingMode] selects one of the following
policies:

	| Mode        | 2.5 | -2.5 | 1.5 | Description                         |
	| ----------- | --- | ---- | --- | ----------------------------------- |
	| Up          | 3   | -3   | 2   | away from zero                      |
	| Down        | 2   | -2   | 1   | towards zero                        |
	| Ceiling     | 3   | -2   | 2   | towards positive infinity           |
	| Floor       | 2   | -3   | 1   | towards negative infinity           |
	| HalfUp      | 3   | -3   | 2   | to nearest, ties away from zero     |
	| HalfDown    | 2   | -2   | 1   | to nearest, ties towards zero       |
	| HalfEven    | 2   | -2   | 2   | to nearest, ties to even            |
	| Unnecessary | err | err  | err | fails unless the value is exact     |

The mode is used by [Fraction.Round], [Fraction.RoundToNumber],
[Fraction.RoundToDenominator], [Fraction.RadixString] and [ToInt].

Integer division of fractions follows a [DivisionMode]:
[Truncated], [Floored], or [Euclidean].
See [Fraction.QuoRem] and [Fraction.Parts].

# Approximation

[Fraction.FareyClosest], [Fraction.FareyNext] and [Fraction.FareyPrev] find
the nearest fractions whose denominator does not exceed a given bound.
They descend the Stern-Brocot tree in runs, so they need a number of steps
proportional to the length of the continued fraction rather than to the bound.

# Errors

All methods are panic-free and pure, except Must* helpers.
Every error matches one of three kinds with [errors.Is]:

  - [ErrArgument]: an invalid argument, such as an unknown rounding mode,
    a non-finite float, or an unsupported type.
  - [ErrFormat]: a malformed string.
  - [ErrArithmetic]: a division by zero ([ErrDivisionByZero]),
    a result that does not fit into the backend ([ErrOverflow]),
    or a result that cannot be represented exactly ([ErrInexact]).

[big.Int]: https://pkg.go.dev/math/big#Int
[decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
*/
package rational

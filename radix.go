package rational

import (
	"fmt"
	"math/big"
	"strings"
)

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// RadixString returns f rounded to the specified number of digits after the
// radix point and formatted in the given radix, for example:
//
//	-12.375 with radix 10 and 2 digits: "-12.38" (HalfUp)
//	1/3 with radix 2 and 4 digits: "0.0101"
//	1234 with radix 10 and -2 digits: "1200"
//
// The result always has exactly digits digits after the point; for zero or
// negative digits no point is written, and negative digits round into the
// integer part.
// Letters 'a' to 'z' are used for digits above 9.
// If radix is not in the range [2, 36], radix 10 is used.
// A value that rounds to zero is formatted without a sign.
//
// RadixString returns an error if:
//   - mode is [Unnecessary] and rounding is needed;
//   - mode is not a valid rounding mode.
func (f Fraction[T]) RadixString(radix, digits int, mode RoundingMode) (string, error) {
	s, err := f.radixString(radix, digits, mode)
	if err != nil {
		return "", fmt.Errorf("formatting %v in radix %v with %v digit(s): %w", f, radix, digits, err)
	}
	return s, nil
}

func (f Fraction[T]) radixString(radix, digits int, mode RoundingMode) (string, error) {
	if radix < 2 || radix > 36 {
		radix = 10
	}
	num, den := f.big()

	// Scaling and rounding
	var k BigInt
	var err error
	if digits >= 0 {
		num.Mul(num, bigPow(radix, digits))
		k, err = roundQuo(BigInt{num}, BigInt{den}, mode)
	} else {
		scale := bigPow(radix, -digits)
		den.Mul(den, scale)
		k, err = roundQuo(BigInt{num}, BigInt{den}, mode)
		if err != nil {
			return "", err
		}
		k = BigInt{new(big.Int).Mul(k.get(), scale)}
		digits = 0
	}
	if err != nil {
		return "", err
	}

	// Digits
	s := new(big.Int).Abs(k.get()).Text(radix)
	if digits > 0 {
		if n := digits + 1 - len(s); n > 0 {
			s = strings.Repeat("0", n) + s
		}
		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}
	if k.sign() < 0 {
		s = "-" + s
	}
	return s, nil
}

// DecimalString returns f rounded half up to the specified number of digits
// after the decimal point.
// Also see method [Fraction.RadixString].
func (f Fraction[T]) DecimalString(digits int) string {
	s, err := f.radixString(10, digits, HalfUp)
	if err != nil {
		panic(fmt.Sprintf("%v.DecimalString(%v) failed: %v", f, digits, err)) // unexpected by design
	}
	return s
}

// RepeatingDigitString returns the exact positional representation of f in
// the given radix.
// The digits that recur infinitely are enclosed in parentheses:
//
//	1/3:  "0.(3)"
//	1/6:  "0.1(6)"
//	-5/4: "-1.25"
//	22/7: "3.(142857)"
//
// If useNines is true, a terminating expansion is written with an infinitely
// repeating highest digit instead, so 1/2 is "0.4(9)" and 1 is "0.(9)"
// in radix 10.
// Zero is always "0".
// If radix is not in the range [2, 36], radix 10 is used.
//
// The length of the cycle can be as large as the denominator, so callers
// should bound denominators when formatting untrusted values.
func (f Fraction[T]) RepeatingDigitString(radix int, useNines bool) string {
	if radix < 2 || radix > 36 {
		radix = 10
	}
	num, den := f.big()
	neg := num.Sign() < 0
	num.Abs(num)

	ipart, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	digs, cycle := expand(rem, den, radix)

	if useNines && cycle < 0 && (ipart.Sign() != 0 || len(digs) > 0) {
		// A terminating expansion ends with a non-zero digit,
		// decrement it and let the highest digit repeat.
		if len(digs) == 0 {
			ipart.Sub(ipart, bigOne)
		} else {
			digs[len(digs)-1]--
		}
		cycle = len(digs)
		digs = append(digs, byte(radix-1))
	}

	var buf strings.Builder
	if neg {
		buf.WriteByte('-')
	}
	buf.WriteString(ipart.Text(radix))
	if len(digs) > 0 {
		buf.WriteByte('.')
		for i, d := range digs {
			if i == cycle {
				buf.WriteByte('(')
			}
			buf.WriteByte(digitChars[d])
		}
		if cycle >= 0 {
			buf.WriteByte(')')
		}
	}
	return buf.String()
}

// expand performs the long division of rem by den in the given radix,
// where 0 <= rem < den.
// It returns the digits after the radix point and the position where the
// repeating part starts, or -1 if the expansion terminates.
// The digits from that position to the end recur infinitely.
func expand(rem, den *big.Int, radix int) (digits []byte, cycle int) {
	seen := make(map[string]int)
	r := new(big.Int).Set(rem)
	d := new(big.Int)
	base := big.NewInt(int64(radix))
	for r.Sign() != 0 {
		key := string(r.Bytes())
		if pos, ok := seen[key]; ok {
			return digits, pos
		}
		seen[key] = len(digits)
		r.Mul(r, base)
		d.QuoRem(r, den, r)
		digits = append(digits, byte(d.Uint64()))
	}
	return digits, -1
}

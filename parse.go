package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// maxExponent bounds the power of 10 computed for an exponent.
const maxExponent = 100_000

// Parse converts a base-10 string to a fraction.
// Also see function [ParseRadix].
func Parse[T Integer[T]](s string) (Fraction[T], error) {
	return ParseRadix[T](s, 10)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding fractions.
func MustParse[T Integer[T]](s string) Fraction[T] {
	f, err := Parse[T](s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return f
}

// ParseRadix converts a string in the given radix to a fraction.
// If radix is not in the range [2, 36], radix 10 is used.
// The input string must be in one of the following formats:
//
//	7/22
//	-1.25
//	+.5e-3
//	0.1(6)
//	3 1/7
//	dead.beef
//	1.2/-3.4e1
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' ... '9' | 'a' ... 'z' | 'A' ... 'Z' }
//	repeat         ::= '(' digits ')'
//	significand    ::= digits ['.' [digits] [repeat]] | '.' digits [repeat]
//	exponent       ::= ('e' | 'E') [sign] digits
//	number         ::= [sign] significand [exponent]
//	ratio          ::= number ['/' number]
//	mixed          ::= number ' ' significand '/' significand
//	numeric-string ::= ratio | mixed
//
// Only digits that are valid in the radix are accepted.
// The exponent is recognized in radix 10 only, it scales the significand
// by a power of 10 and its magnitude must not exceed 100000.
// A repeating group denotes digits that recur infinitely, so 0.(3) is 1/3.
// In the mixed form the fractional part takes the sign of the integer part,
// so "-3 1/7" is -22/7.
//
// ParseRadix returns an error if:
//   - the string does not match the grammar;
//   - the exponent is out of range;
//   - the divisor is 0;
//   - the reduced numerator or denominator does not fit into the backend T.
func ParseRadix[T Integer[T]](s string, radix int) (Fraction[T], error) {
	if radix < 2 || radix > 36 {
		radix = 10
	}
	num, den, err := parseMixed(s, radix)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	f, err := newFractionFromBig[T](num, den)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return f, nil
}

// parseMixed parses the mixed form "I N/D" or falls back to a ratio.
func parseMixed(s string, radix int) (num, den *big.Int, err error) {
	whole, rest, ok := strings.Cut(s, " ")
	if !ok {
		return parseRatio(s, radix)
	}
	if strings.Contains(whole, "/") || !strings.Contains(rest, "/") {
		return nil, nil, fmt.Errorf("invalid mixed number: %w", ErrFormat)
	}
	// Both terms of the fractional part are unsigned significands
	if strings.ContainsAny(rest, "+-") {
		return nil, nil, fmt.Errorf("signed fractional part: %w", ErrFormat)
	}
	if radix == 10 && strings.ContainsAny(rest, "eE") {
		return nil, nil, fmt.Errorf("exponent in fractional part: %w", ErrFormat)
	}
	wn, wd, err := parseNumber(whole, radix)
	if err != nil {
		return nil, nil, err
	}
	fn, fd, err := parseRatio(rest, radix)
	if err != nil {
		return nil, nil, err
	}
	if strings.HasPrefix(whole, "-") {
		fn.Neg(fn)
	}
	// wn/wd + fn/fd
	num = new(big.Int).Mul(wn, fd)
	num.Add(num, new(big.Int).Mul(fn, wd))
	den = new(big.Int).Mul(wd, fd)
	return num, den, nil
}

// parseRatio parses "a" or "a/b", where a and b are numbers.
func parseRatio(s string, radix int) (num, den *big.Int, err error) {
	left, right, ok := strings.Cut(s, "/")
	num, den, err = parseNumber(left, radix)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return num, den, nil
	}
	rn, rd, err := parseNumber(right, radix)
	if err != nil {
		return nil, nil, err
	}
	if rn.Sign() == 0 {
		return nil, nil, ErrDivisionByZero
	}
	// (num/den) / (rn/rd)
	num.Mul(num, rd)
	den.Mul(den, rn)
	return num, den, nil
}

// digitValue returns the value of the digit c, or 36 if c is not a digit.
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

// parseNumber parses a signed, possibly repeating, possibly exponential
// number and returns it as num/den, not necessarily reduced.
func parseNumber(s string, radix int) (num, den *big.Int, err error) {
	var (
		pos      int
		width    int
		neg      bool
		intpart  string
		frac     string
		repeat   string
		eneg     bool
		exp      int64
		hasesym  bool
		hasexp   bool
		hasdigit bool
	)

	width = len(s)

	// digits consumes a run of digits valid in the radix.
	digits := func() string {
		start := pos
		for pos < width && digitValue(s[pos]) < radix {
			pos++
		}
		return s[start:pos]
	}

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	intpart = digits()
	hasdigit = intpart != ""

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		frac = digits()
		// A leading point needs digits before the repeating group
		hasdigit = hasdigit || frac != ""
		// Repeating group
		if pos < width && s[pos] == '(' {
			pos++
			repeat = digits()
			if pos == width || s[pos] != ')' {
				return nil, nil, errRepeatGroup
			}
			if repeat == "" {
				return nil, nil, errRepeatGroup
			}
			pos++
		}
	}

	// Exponential part
	if radix == 10 && pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hasesym = true
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			exp = exp*10 + int64(s[pos]-'0')
			if exp > maxExponent {
				return nil, nil, errExponentRange
			}
			hasexp = true
			pos++
		}
	}

	switch {
	case pos != width:
		return nil, nil, fmt.Errorf("invalid character %q: %w", s[pos], errInvalidDigit)
	case !hasdigit:
		return nil, nil, errNoDigits
	case hasesym && !hasexp:
		return nil, nil, errNoExponent
	}

	num, den = repeatingValue(intpart+frac, len(frac), repeat, radix)

	// Exponent
	if exp != 0 && num.Sign() != 0 {
		scale := bigPow(10, int(exp))
		if eneg {
			den.Mul(den, scale)
		} else {
			num.Mul(num, scale)
		}
	}

	if neg {
		num.Neg(num)
	}
	return num, den, nil
}

// repeatingValue returns the value of the digits "nonrep" followed by the
// infinitely repeated digits "rep", with m digits after the radix point:
//
//	(nonrep·(R^k − 1) + rep) / ((R^k − 1)·R^m)
//
// where R is the radix and k is the length of rep.
// Without a repeating group the value is nonrep / R^m.
func repeatingValue(nonrep string, m int, rep string, radix int) (num, den *big.Int) {
	num = parseDigits(nonrep, radix)
	den = bigPow(radix, m)
	if rep == "" {
		return num, den
	}
	period := bigPow(radix, len(rep))
	period.Sub(period, bigOne)
	num.Mul(num, period)
	num.Add(num, parseDigits(rep, radix))
	den.Mul(den, period)
	return num, den
}

// parseDigits converts validated digits to an integer; "" is 0.
func parseDigits(s string, radix int) *big.Int {
	z := new(big.Int)
	if s == "" {
		return z
	}
	z.SetString(s, radix)
	return z
}

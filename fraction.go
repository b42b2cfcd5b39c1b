package rational

import (
	"fmt"
	"math/big"
)

// Fraction is an exact rational number over the integer backend T.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A fraction is always stored in lowest terms:
//
//   - the denominator is positive;
//   - the numerator and the denominator have no common divisor except 1;
//   - the sign is carried by the numerator;
//   - zero is represented as 0/1.
//
// Every operation returns a new fraction, fractions are never mutated.
// Two fractions over the [Int64] backend can be compared with ==,
// use [Fraction.Equal] for fractions over any backend.
type Fraction[T Integer[T]] struct {
	num T
	den T // zero for the zero fraction
}

type (
	// Rat is an unbounded fraction, its numerator and denominator never overflow.
	Rat = Fraction[BigInt]
	// Rat64 is a bounded fraction with 64-bit numerator and denominator.
	Rat64 = Fraction[Int64]
)

// one returns 1 in the backend T.
func one[T Integer[T]]() T {
	var t T
	return t.fromInt64(1)
}

// newFraction returns num/den in lowest terms.
func newFraction[T Integer[T]](num, den T) (Fraction[T], error) {
	if den.sign() == 0 {
		return Fraction[T]{}, ErrDivisionByZero
	}
	if num.sign() == 0 {
		return Fraction[T]{}, nil
	}
	g, err := num.gcd(den)
	if err != nil {
		// The divisor itself does not fit, but the reduced fraction may.
		return newFractionFromBig[T](num.big(), den.big())
	}
	var c checked[T]
	if g.cmp(one[T]()) != 0 {
		num = c.quo(num, g)
		den = c.quo(den, g)
	}
	if den.sign() < 0 {
		num = c.neg(num)
		den = c.neg(den)
	}
	if c.err != nil {
		return Fraction[T]{}, c.err
	}
	return Fraction[T]{num: num, den: den}, nil
}

// newFractionFromBig returns num/den in lowest terms converted to the backend T.
// Arguments are not modified.
func newFractionFromBig[T Integer[T]](num, den *big.Int) (Fraction[T], error) {
	if den.Sign() == 0 {
		return Fraction[T]{}, ErrDivisionByZero
	}
	if num.Sign() == 0 {
		return Fraction[T]{}, nil
	}
	var t T
	// The reduced numerator is at least |num/den| and the reduced
	// denominator is at least |den/num|, so skip the reduction when
	// either of them is known not to fit.
	if limit := t.bitLen(); limit > 0 {
		if diff := num.BitLen() - den.BitLen(); diff > limit || -diff > limit {
			return Fraction[T]{}, ErrOverflow
		}
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if g := new(big.Int).GCD(nil, nil, n, d); g.Cmp(bigOne) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	x, err := t.fromBig(n)
	if err != nil {
		return Fraction[T]{}, err
	}
	y, err := t.fromBig(d)
	if err != nil {
		return Fraction[T]{}, err
	}
	return Fraction[T]{num: x, den: y}, nil
}

// New returns a fraction equal to num/den in lowest terms.
//
// New returns an error if den is 0.
func New[T Integer[T]](num, den int64) (Fraction[T], error) {
	var t T
	f, err := newFraction(t.fromInt64(num), t.fromInt64(den))
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("converting fraction %v/%v: %w", num, den, err)
	}
	return f, nil
}

// MustNew is like [New] but panics if the fraction cannot be constructed.
// It simplifies safe initialization of global variables holding fractions.
func MustNew[T Integer[T]](num, den int64) Fraction[T] {
	f, err := New[T](num, den)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", num, den, err))
	}
	return f
}

// NewFromInt returns a fraction equal to num/den in lowest terms,
// where num and den are integers of the backend T.
//
// NewFromInt returns an error if den is 0.
func NewFromInt[T Integer[T]](num, den T) (Fraction[T], error) {
	f, err := newFraction(num, den)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("converting fraction %v/%v: %w", num.text(10), den.text(10), err)
	}
	return f, nil
}

// NewFromBig returns a fraction equal to num/den in lowest terms.
// The arguments are not modified.
//
// NewFromBig returns an error if:
//   - num or den is nil;
//   - den is 0;
//   - the reduced numerator or denominator does not fit into the backend T.
func NewFromBig[T Integer[T]](num, den *big.Int) (Fraction[T], error) {
	if num == nil || den == nil {
		return Fraction[T]{}, fmt.Errorf("converting fraction: %w", errNilArgument)
	}
	f, err := newFractionFromBig[T](num, den)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("converting fraction %v/%v: %w", num, den, err)
	}
	return f, nil
}

// Convert returns f over the backend U.
//
// Convert returns an error if the numerator or the denominator of f
// does not fit into the backend U.
func Convert[U Integer[U], T Integer[T]](f Fraction[T]) (Fraction[U], error) {
	num, den := f.big()
	var u U
	x, err := u.fromBig(num)
	if err != nil {
		return Fraction[U]{}, fmt.Errorf("converting %v: %w", f, err)
	}
	if f.IsZero() {
		return Fraction[U]{}, nil
	}
	y, err := u.fromBig(den)
	if err != nil {
		return Fraction[U]{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return Fraction[U]{num: x, den: y}, nil
}

// big returns copies of the numerator and the denominator of f.
func (f Fraction[T]) big() (num, den *big.Int) {
	return f.num.big(), f.denom().big()
}

// denom returns the denominator, which is stored as zero for the zero fraction.
func (f Fraction[T]) denom() T {
	if f.den.sign() == 0 {
		return one[T]()
	}
	return f.den
}

// Num returns the numerator of f.
// The sign of f is carried by the numerator.
func (f Fraction[T]) Num() T {
	return f.num
}

// Den returns the denominator of f, which is always positive.
func (f Fraction[T]) Den() T {
	return f.denom()
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f == 0
//	+1 if f > 0
func (f Fraction[T]) Sign() int {
	return f.num.sign()
}

// IsZero returns true if f == 0.
func (f Fraction[T]) IsZero() bool {
	return f.num.sign() == 0
}

// IsNeg returns true if f < 0.
func (f Fraction[T]) IsNeg() bool {
	return f.num.sign() < 0
}

// IsPos returns true if f > 0.
func (f Fraction[T]) IsPos() bool {
	return f.num.sign() > 0
}

// IsInt returns true if the denominator of f is 1.
func (f Fraction[T]) IsInt() bool {
	return f.denom().cmp(one[T]()) == 0
}

// Neg returns f with opposite sign.
//
// Neg returns an error if the result overflows the backend.
func (f Fraction[T]) Neg() (Fraction[T], error) {
	num, err := f.num.neg()
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("computing [-%v]: %w", f, err)
	}
	return Fraction[T]{num: num, den: f.den}, nil
}

// Abs returns the absolute value of f.
//
// Abs returns an error if the result overflows the backend.
func (f Fraction[T]) Abs() (Fraction[T], error) {
	if f.IsNeg() {
		return f.Neg()
	}
	return f, nil
}

// WithSign returns |f| if sign > 0, -|f| if sign < 0, and 0 if sign == 0.
func (f Fraction[T]) WithSign(sign int) (Fraction[T], error) {
	switch {
	case sign == 0:
		return Fraction[T]{}, nil
	case (sign < 0) == f.IsNeg():
		return f, nil
	}
	return f.Neg()
}

// Inv returns the reciprocal of f.
//
// Inv returns an error if f is 0.
func (f Fraction[T]) Inv() (Fraction[T], error) {
	g, err := f.inv()
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("computing [1 / %v]: %w", f, err)
	}
	return g, nil
}

func (f Fraction[T]) inv() (Fraction[T], error) {
	if f.IsZero() {
		return Fraction[T]{}, ErrDivisionByZero
	}
	num, den := f.denom(), f.num
	if den.sign() < 0 {
		var c checked[T]
		num = c.neg(num)
		den = c.neg(den)
		if c.err != nil {
			return Fraction[T]{}, c.err
		}
	}
	return Fraction[T]{num: num, den: den}, nil
}

// Add returns the sum of f and g.
//
// Add returns an error if the result overflows the backend.
func (f Fraction[T]) Add(g Fraction[T]) (Fraction[T], error) {
	h, err := f.add(g)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("computing [%v + %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction[T]) add(g Fraction[T]) (Fraction[T], error) {
	return f.combine(g, false)
}

// combine returns f + g, or f - g if sub is true.
// The subtrahend is never negated, so the bounded backend handles
// math.MinInt64 numerators.
func (f Fraction[T]) combine(g Fraction[T], sub bool) (Fraction[T], error) {
	switch {
	case g.IsZero():
		return f, nil
	case f.IsZero() && !sub:
		return g, nil
	}
	var c checked[T]
	b, d := f.denom(), g.denom()
	k := c.gcd(b, d)
	bk := c.quo(b, k)
	dk := c.quo(d, k)
	x, y := c.mul(f.num, dk), c.mul(g.num, bk)
	var num T
	if sub {
		num = c.sub(x, y)
	} else {
		num = c.add(x, y)
	}
	den := c.mul(b, dk)
	if c.err != nil {
		return Fraction[T]{}, c.err
	}
	return newFraction(num, den)
}

// Sub returns the difference of f and g.
//
// Sub returns an error if the result overflows the backend.
func (f Fraction[T]) Sub(g Fraction[T]) (Fraction[T], error) {
	h, err := f.sub(g)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("computing [%v - %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction[T]) sub(g Fraction[T]) (Fraction[T], error) {
	return f.combine(g, true)
}

// Complement returns 1 - f.
func (f Fraction[T]) Complement() (Fraction[T], error) {
	g, err := Fraction[T]{num: one[T](), den: one[T]()}.sub(f)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("computing [1 - %v]: %w", f, err)
	}
	return g, nil
}

// Mul returns the product of f and g.
//
// Mul returns an error if the result overflows the backend.
func (f Fraction[T]) Mul(g Fraction[T]) (Fraction[T], error) {
	h, err := f.mul(g)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("computing [%v * %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction[T]) mul(g Fraction[T]) (Fraction[T], error) {
	if f.IsZero() || g.IsZero() {
		return Fraction[T]{}, nil
	}
	// Cross-reduction keeps the result in lowest terms
	// and the intermediate products small.
	var c checked[T]
	a, b := f.num, f.denom()
	x, d := g.num, g.denom()
	g1 := c.gcd(a, d)
	g2 := c.gcd(x, b)
	num := c.mul(c.quo(a, g1), c.quo(x, g2))
	den := c.mul(c.quo(b, g2), c.quo(d, g1))
	if c.err != nil {
		return Fraction[T]{}, c.err
	}
	return Fraction[T]{num: num, den: den}, nil
}

// Quo returns the quotient of f and g.
//
// Quo returns an error if:
//   - g is 0;
//   - the result overflows the backend.
func (f Fraction[T]) Quo(g Fraction[T]) (Fraction[T], error) {
	h, err := f.quo(g)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("computing [%v / %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction[T]) quo(g Fraction[T]) (Fraction[T], error) {
	h, err := g.inv()
	if err != nil {
		return Fraction[T]{}, err
	}
	return f.mul(h)
}

// Pow returns f raised to the power of exp.
// A negative exp raises the reciprocal of f to -exp.
// Pow(0) returns 1 for every f, including 0.
//
// Pow returns an error if:
//   - f is 0 and exp is negative;
//   - the result overflows the backend.
func (f Fraction[T]) Pow(exp int) (Fraction[T], error) {
	h, err := f.pow(exp)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("computing [%v^%v]: %w", f, exp, err)
	}
	return h, nil
}

func (f Fraction[T]) pow(exp int) (Fraction[T], error) {
	// Special case: zero exponent
	if exp == 0 {
		return Fraction[T]{num: one[T](), den: one[T]()}, nil
	}
	// Special case: negative exponent
	e := uint(exp)
	if exp < 0 {
		var err error
		f, err = f.inv()
		if err != nil {
			return Fraction[T]{}, err
		}
		e = uint(-(exp + 1)) + 1
	}
	// Special case: zero base
	if f.IsZero() {
		return Fraction[T]{}, nil
	}
	// General case
	num, err := powInt(f.num, e)
	if err != nil {
		return Fraction[T]{}, err
	}
	den, err := powInt(f.denom(), e)
	if err != nil {
		return Fraction[T]{}, err
	}
	return Fraction[T]{num: num, den: den}, nil
}

// powInt calculates x^e using binary exponentiation.
func powInt[T Integer[T]](x T, e uint) (T, error) {
	var c checked[T]
	z := one[T]()
	for e > 0 {
		if e&1 == 1 {
			z = c.mul(z, x)
		}
		e >>= 1
		if e > 0 {
			x = c.mul(x, x)
		}
	}
	return z, c.err
}

// Cmp compares f and g numerically and returns:
//
//	-1 if f < g
//	 0 if f == g
//	+1 if f > g
//
// Cmp never overflows.
func (f Fraction[T]) Cmp(g Fraction[T]) int {
	fs, gs := f.Sign(), g.Sign()
	switch {
	case fs < gs:
		return -1
	case fs > gs:
		return 1
	case fs == 0:
		return 0
	}
	return f.num.cmpMul(g.denom(), g.num, f.denom())
}

// Equal returns true if f and g have identical numerators and denominators.
// Since fractions are always reduced, this is the same as f.Cmp(g) == 0.
// Also see method [Fraction.EqualNumber].
func (f Fraction[T]) Equal(g Fraction[T]) bool {
	return f.num.cmp(g.num) == 0 && f.denom().cmp(g.denom()) == 0
}

// Max returns the larger of f and g.
func (f Fraction[T]) Max(g Fraction[T]) Fraction[T] {
	if f.Cmp(g) >= 0 {
		return f
	}
	return g
}

// Min returns the smaller of f and g.
func (f Fraction[T]) Min(g Fraction[T]) Fraction[T] {
	if f.Cmp(g) <= 0 {
		return f
	}
	return g
}

// GCD returns the greatest common divisor of f and g, that is the largest
// fraction r such that both f / r and g / r are integers:
//
//	gcd(a/b, c/d) = gcd(a·d, c·b) / (b·d) = gcd(a, c) / lcm(b, d)
//
// The result is never negative. GCD(0, g) is |g|, GCD(0, 0) is 0.
func (f Fraction[T]) GCD(g Fraction[T]) (Fraction[T], error) {
	h, err := f.gcd(g)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("computing [gcd(%v, %v)]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction[T]) gcd(g Fraction[T]) (Fraction[T], error) {
	switch {
	case f.IsZero():
		return g.Abs()
	case g.IsZero():
		return f.Abs()
	}
	var c checked[T]
	b, d := f.denom(), g.denom()
	num := c.gcd(f.num, g.num)
	den := c.mul(c.quo(b, c.gcd(b, d)), d)
	if c.err != nil {
		return Fraction[T]{}, c.err
	}
	return Fraction[T]{num: num, den: den}, nil
}

// LCM returns the least common multiple of f and g, that is the smallest
// non-negative fraction r such that both r / f and r / g are integers:
//
//	lcm(a/b, c/d) = lcm(a, c) / gcd(b, d)
//
// LCM(0, g) is 0.
func (f Fraction[T]) LCM(g Fraction[T]) (Fraction[T], error) {
	h, err := f.lcm(g)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("computing [lcm(%v, %v)]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction[T]) lcm(g Fraction[T]) (Fraction[T], error) {
	if f.IsZero() || g.IsZero() {
		return Fraction[T]{}, nil
	}
	var c checked[T]
	a := c.abs(f.num)
	x := c.abs(g.num)
	num := c.mul(c.quo(a, c.gcd(a, x)), x)
	den := c.gcd(f.denom(), g.denom())
	if c.err != nil {
		return Fraction[T]{}, c.err
	}
	return Fraction[T]{num: num, den: den}, nil
}

// checked chains backend operations and keeps the first error.
// Once an error occurred, all subsequent operations are no-ops.
type checked[T Integer[T]] struct {
	err error
}

func (c *checked[T]) keep(z T, err error) T {
	if c.err == nil {
		c.err = err
	}
	return z
}

func (c *checked[T]) add(x, y T) T {
	if c.err != nil {
		return x
	}
	return c.keep(x.add(y))
}

func (c *checked[T]) sub(x, y T) T {
	if c.err != nil {
		return x
	}
	return c.keep(x.sub(y))
}

func (c *checked[T]) mul(x, y T) T {
	if c.err != nil {
		return x
	}
	return c.keep(x.mul(y))
}

// quo calculates trunc(x / y).
func (c *checked[T]) quo(x, y T) T {
	if c.err != nil {
		return x
	}
	q, _, err := x.quoRem(y)
	return c.keep(q, err)
}

func (c *checked[T]) neg(x T) T {
	if c.err != nil {
		return x
	}
	return c.keep(x.neg())
}

func (c *checked[T]) abs(x T) T {
	if c.err != nil {
		return x
	}
	return c.keep(x.abs())
}

func (c *checked[T]) gcd(x, y T) T {
	if c.err != nil {
		return x
	}
	return c.keep(x.gcd(y))
}

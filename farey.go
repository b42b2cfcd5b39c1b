package rational

import (
	"fmt"
	"math/big"
)

// Mediant returns the mediant of f and g, that is (a + c) / (b + d)
// for f = a/b and g = c/d, in lowest terms.
// The mediant of two different fractions lies strictly between them.
//
// Mediant returns an error if the result overflows the backend.
func (f Fraction[T]) Mediant(g Fraction[T]) (Fraction[T], error) {
	var c checked[T]
	num := c.add(f.num, g.num)
	den := c.add(f.denom(), g.denom())
	if c.err != nil {
		return Fraction[T]{}, fmt.Errorf("computing [mediant(%v, %v)]: %w", f, g, c.err)
	}
	h, err := newFraction(num, den)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("computing [mediant(%v, %v)]: %w", f, g, err)
	}
	return h, nil
}

// FareyNext returns the smallest fraction with a denominator not exceeding n
// that is strictly greater than f.
//
// FareyNext returns an error if:
//   - n is not positive;
//   - the result overflows the backend.
func (f Fraction[T]) FareyNext(n int64) (Fraction[T], error) {
	g, err := f.fareyNext(n)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("computing successor of %v of order %v: %w", f, n, err)
	}
	return g, nil
}

func (f Fraction[T]) fareyNext(n int64) (Fraction[T], error) {
	if n <= 0 {
		return Fraction[T]{}, errOrderRange
	}
	num, den := f.big()
	w := newFareyWalk(num, den, n)
	return newFractionFromBig[T](w.shift(w.hi))
}

// FareyPrev returns the largest fraction with a denominator not exceeding n
// that is strictly less than f.
//
// FareyPrev returns an error if:
//   - n is not positive;
//   - the result overflows the backend.
func (f Fraction[T]) FareyPrev(n int64) (Fraction[T], error) {
	g, err := f.fareyPrev(n)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("computing predecessor of %v of order %v: %w", f, n, err)
	}
	return g, nil
}

// fareyPrev is the successor of -f, negated.
func (f Fraction[T]) fareyPrev(n int64) (Fraction[T], error) {
	if n <= 0 {
		return Fraction[T]{}, errOrderRange
	}
	num, den := f.big()
	w := newFareyWalk(num.Neg(num), den, n)
	num, den = w.shift(w.hi)
	return newFractionFromBig[T](num.Neg(num), den)
}

// FareyClosest returns the fraction with a denominator not exceeding n that
// is nearest to f.
// If f lies exactly halfway between two such fractions, the one closer to
// zero is returned.
// If the denominator of f does not exceed n, the result is f itself.
//
// FareyClosest returns an error if:
//   - n is not positive;
//   - the result overflows the backend.
func (f Fraction[T]) FareyClosest(n int64) (Fraction[T], error) {
	g, err := f.fareyClosest(n)
	if err != nil {
		return Fraction[T]{}, fmt.Errorf("approximating %v with order %v: %w", f, n, err)
	}
	return g, nil
}

func (f Fraction[T]) fareyClosest(n int64) (Fraction[T], error) {
	if n <= 0 {
		return Fraction[T]{}, errOrderRange
	}
	num, den := f.big()
	w := newFareyWalk(num, den, n)
	a, b := w.gaps()
	if b.Sign() == 0 {
		// f is lo itself
		return newFractionFromBig[T](w.shift(w.lo))
	}
	// Compare y - lo = b / (q·lo.d) with hi - y = a / (q·hi.d)
	x := new(big.Int).Mul(b, w.hi.d)
	y := new(big.Int).Mul(a, w.lo.d)
	switch c := x.Cmp(y); {
	case c < 0, c == 0 && f.Sign() >= 0:
		return newFractionFromBig[T](w.shift(w.lo))
	}
	return newFractionFromBig[T](w.shift(w.hi))
}

// bigFrac is a non-negative fraction with unreduced big components.
type bigFrac struct {
	n, d *big.Int
}

// fareyWalk locates x = i + p/q with 0 <= p < q between two neighbors
// lo <= p/q < hi in the Farey sequence of order n on [0, 1].
type fareyWalk struct {
	i, p, q *big.Int
	lo, hi  bigFrac
}

// newFareyWalk runs the Stern-Brocot descent towards num/den, which must
// have a positive den.
// A run of k consecutive steps in the same direction is taken at once,
// so the number of iterations is proportional to the length of the
// continued fraction of num/den.
func newFareyWalk(num, den *big.Int, n int64) *fareyWalk {
	w := &fareyWalk{
		i:  new(big.Int),
		p:  new(big.Int),
		q:  den,
		lo: bigFrac{big.NewInt(0), big.NewInt(1)},
		hi: bigFrac{big.NewInt(1), big.NewInt(1)},
	}
	w.i.DivMod(num, den, w.p)
	order := big.NewInt(n)
	k := new(big.Int)
	t := new(big.Int)
	for {
		a, b := w.gaps()
		if a.Cmp(b) <= 0 {
			// The mediant is not above p/q: advance lo towards hi.
			k.Quo(b, a)
			t.Sub(order, w.lo.d)
			t.Quo(t, w.hi.d)
			if t.Cmp(k) < 0 {
				k.Set(t)
			}
			if k.Sign() <= 0 {
				return w
			}
			w.lo.n.Add(w.lo.n, t.Mul(k, w.hi.n))
			w.lo.d.Add(w.lo.d, t.Mul(k, w.hi.d))
		} else {
			// The mediant is above p/q: advance hi towards lo.
			t.Sub(order, w.hi.d)
			t.Quo(t, w.lo.d)
			k.Set(t)
			if b.Sign() > 0 {
				t.Sub(a, bigOne)
				t.Quo(t, b)
				if t.Cmp(k) < 0 {
					k.Set(t)
				}
			}
			if k.Sign() <= 0 {
				return w
			}
			w.hi.n.Add(w.hi.n, t.Mul(k, w.lo.n))
			w.hi.d.Add(w.hi.d, t.Mul(k, w.lo.d))
		}
	}
}

// gaps returns the scaled distances a = (hi - p/q)·q·hi.d > 0 and
// b = (p/q - lo)·q·lo.d >= 0.
func (w *fareyWalk) gaps() (a, b *big.Int) {
	a = new(big.Int).Mul(w.hi.n, w.q)
	a.Sub(a, new(big.Int).Mul(w.p, w.hi.d))
	b = new(big.Int).Mul(w.p, w.lo.d)
	b.Sub(b, new(big.Int).Mul(w.lo.n, w.q))
	return a, b
}

// shift returns i + r as a new numerator and denominator.
func (w *fareyWalk) shift(r bigFrac) (num, den *big.Int) {
	num = new(big.Int).Mul(w.i, r.d)
	num.Add(num, r.n)
	return num, new(big.Int).Set(r.d)
}

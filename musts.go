package rational

import "fmt"

// MustAdd is like [Fraction.Add] but panics if computing error.
func (f Fraction[T]) MustAdd(g Fraction[T]) Fraction[T] {
	h, err := f.Add(g)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", g, err))
	}
	return h
}

// MustSub is like [Fraction.Sub] but panics if computing error.
func (f Fraction[T]) MustSub(g Fraction[T]) Fraction[T] {
	h, err := f.Sub(g)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", g, err))
	}
	return h
}

// MustMul is like [Fraction.Mul] but panics if computing error.
func (f Fraction[T]) MustMul(g Fraction[T]) Fraction[T] {
	h, err := f.Mul(g)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", g, err))
	}
	return h
}

// MustQuo is like [Fraction.Quo] but panics if computing error.
func (f Fraction[T]) MustQuo(g Fraction[T]) Fraction[T] {
	h, err := f.Quo(g)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", g, err))
	}
	return h
}

// MustPow is like [Fraction.Pow] but panics if computing error.
func (f Fraction[T]) MustPow(exp int) Fraction[T] {
	h, err := f.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", exp, err))
	}
	return h
}

// MustValueOf is like [ValueOf] but panics if the value cannot be converted.
// It simplifies safe initialization of global variables holding fractions.
func MustValueOf[T Integer[T]](v any) Fraction[T] {
	f, err := ValueOf[T](v)
	if err != nil {
		panic(fmt.Sprintf("ValueOf(%v) failed: %v", v, err))
	}
	return f
}

package rational

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"sync"
)

// Integer is the set of operations a numerator/denominator backend provides.
// It is implemented by [Int64] and [BigInt] only.
//
// All methods are pure: they never modify the receiver or the arguments.
// Operations that cannot be represented by the backend return [ErrOverflow].
type Integer[T any] interface {
	fromInt64(x int64) T
	fromBig(x *big.Int) (T, error)
	bitLen() int
	big() *big.Int
	add(y T) (T, error)
	sub(y T) (T, error)
	mul(y T) (T, error)
	quoRem(y T) (q, r T, err error)
	neg() (T, error)
	abs() (T, error)
	gcd(y T) (T, error)
	cmp(y T) int
	cmpMul(y, u, v T) int
	sign() int
	isEven() bool
	text(base int) string
}

// Int64 is a bounded backend over int64.
// Any result that does not fit into 64 bits is reported as [ErrOverflow].
type Int64 int64

func (Int64) fromInt64(x int64) Int64 {
	return Int64(x)
}

// fromBig converts x to int64 and checks overflow.
func (Int64) fromBig(x *big.Int) (Int64, error) {
	if !x.IsInt64() {
		return 0, ErrOverflow
	}
	return Int64(x.Int64()), nil
}

// bitLen returns the bit length of the largest magnitude the backend holds.
func (Int64) bitLen() int {
	return 64
}

func (x Int64) big() *big.Int {
	return big.NewInt(int64(x))
}

// add calculates x + y and checks overflow.
func (x Int64) add(y Int64) (Int64, error) {
	z := x + y
	if (x > 0 && y > 0 && z < 0) || (x < 0 && y < 0 && z >= 0) {
		return 0, ErrOverflow
	}
	return z, nil
}

// sub calculates x - y and checks overflow.
func (x Int64) sub(y Int64) (Int64, error) {
	z := x - y
	if (x >= 0 && y < 0 && z < 0) || (x < 0 && y > 0 && z >= 0) {
		return 0, ErrOverflow
	}
	return z, nil
}

// mul calculates x * y and checks overflow.
func (x Int64) mul(y Int64) (Int64, error) {
	if x == 0 || y == 0 {
		return 0, nil
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, ErrOverflow
	}
	z := x * y
	if z/y != x {
		return 0, ErrOverflow
	}
	return z, nil
}

// quoRem calculates q = trunc(x / y), r = x - y * q.
func (x Int64) quoRem(y Int64) (q, r Int64, err error) {
	switch {
	case y == 0:
		return 0, 0, ErrDivisionByZero
	case x == math.MinInt64 && y == -1:
		return 0, 0, ErrOverflow
	}
	return x / y, x % y, nil
}

func (x Int64) neg() (Int64, error) {
	if x == math.MinInt64 {
		return 0, ErrOverflow
	}
	return -x, nil
}

func (x Int64) abs() (Int64, error) {
	if x < 0 {
		return x.neg()
	}
	return x, nil
}

// gcd returns the greatest common divisor of |x| and |y|.
// gcd(0, 0) is 0.
func (x Int64) gcd(y Int64) (Int64, error) {
	a, b := uabs(int64(x)), uabs(int64(y))
	for b != 0 {
		a, b = b, a%b
	}
	if a > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return Int64(a), nil
}

func (x Int64) cmp(y Int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// cmpMul compares x * y and u * v using 128-bit products.
func (x Int64) cmpMul(y, u, v Int64) int {
	s1, h1, l1 := mul128(int64(x), int64(y))
	s2, h2, l2 := mul128(int64(u), int64(v))
	switch {
	case s1 < s2:
		return -1
	case s1 > s2:
		return 1
	case s1 == 0:
		return 0
	}
	// Same non-zero sign: compare magnitudes.
	c := 0
	switch {
	case h1 < h2 || (h1 == h2 && l1 < l2):
		c = -1
	case h1 > h2 || (h1 == h2 && l1 > l2):
		c = 1
	}
	return c * s1
}

func (x Int64) sign() int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func (x Int64) isEven() bool {
	return x&1 == 0
}

func (x Int64) text(base int) string {
	return strconv.FormatInt(int64(x), base)
}

// String returns the base-10 representation of x.
func (x Int64) String() string {
	return x.text(10)
}

// uabs returns |x| as uint64, which is exact for math.MinInt64.
func uabs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// mul128 returns the sign and the 128-bit magnitude of x * y.
func mul128(x, y int64) (sign int, hi, lo uint64) {
	sign = Int64(x).sign() * Int64(y).sign()
	if sign == 0 {
		return 0, 0, 0
	}
	hi, lo = bits.Mul64(uabs(x), uabs(y))
	return sign, hi, lo
}

// BigInt is an unbounded backend over [big.Int].
// Its values are immutable, the zero value is 0.
type BigInt struct {
	v *big.Int
}

var (
	bigZero = new(big.Int)
	bigOne  = big.NewInt(1)
)

// NewBigInt returns a BigInt equal to x.
// The value of x is copied, a nil x is treated as 0.
func NewBigInt(x *big.Int) BigInt {
	if x == nil {
		return BigInt{}
	}
	return BigInt{new(big.Int).Set(x)}
}

// Int returns a copy of x as *big.Int.
func (x BigInt) Int() *big.Int {
	return new(big.Int).Set(x.get())
}

// String returns the base-10 representation of x.
func (x BigInt) String() string {
	return x.get().String()
}

// get returns the underlying value, which must not be modified.
func (x BigInt) get() *big.Int {
	if x.v == nil {
		return bigZero
	}
	return x.v
}

func (BigInt) fromInt64(x int64) BigInt {
	return BigInt{big.NewInt(x)}
}

func (BigInt) fromBig(x *big.Int) (BigInt, error) {
	return BigInt{new(big.Int).Set(x)}, nil
}

// bitLen returns 0, the backend is unbounded.
func (BigInt) bitLen() int {
	return 0
}

func (x BigInt) big() *big.Int {
	return x.Int()
}

func (x BigInt) add(y BigInt) (BigInt, error) {
	return BigInt{new(big.Int).Add(x.get(), y.get())}, nil
}

func (x BigInt) sub(y BigInt) (BigInt, error) {
	return BigInt{new(big.Int).Sub(x.get(), y.get())}, nil
}

func (x BigInt) mul(y BigInt) (BigInt, error) {
	return BigInt{new(big.Int).Mul(x.get(), y.get())}, nil
}

// quoRem calculates q = trunc(x / y), r = x - y * q.
func (x BigInt) quoRem(y BigInt) (q, r BigInt, err error) {
	if y.sign() == 0 {
		return BigInt{}, BigInt{}, ErrDivisionByZero
	}
	q.v, r.v = new(big.Int).QuoRem(x.get(), y.get(), new(big.Int))
	return q, r, nil
}

func (x BigInt) neg() (BigInt, error) {
	return BigInt{new(big.Int).Neg(x.get())}, nil
}

func (x BigInt) abs() (BigInt, error) {
	return BigInt{new(big.Int).Abs(x.get())}, nil
}

// gcd returns the greatest common divisor of |x| and |y|.
// gcd(0, 0) is 0.
func (x BigInt) gcd(y BigInt) (BigInt, error) {
	return BigInt{new(big.Int).GCD(nil, nil, x.get(), y.get())}, nil
}

func (x BigInt) cmp(y BigInt) int {
	return x.get().Cmp(y.get())
}

// cmpMul compares x * y and u * v.
func (x BigInt) cmpMul(y, u, v BigInt) int {
	a := getBint()
	defer putBint(a)
	b := getBint()
	defer putBint(b)
	a.Mul(x.get(), y.get())
	b.Mul(u.get(), v.get())
	return a.Cmp(b)
}

func (x BigInt) sign() int {
	return x.get().Sign()
}

func (x BigInt) isEven() bool {
	return x.get().Bit(0) == 0
}

func (x BigInt) text(base int) string {
	return x.get().Text(base)
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return new(big.Int)
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *big.Int {
	return pool.Get().(*big.Int)
}

// putBint returns the *big.Int into the pool.
func putBint(b *big.Int) {
	pool.Put(b)
}

// bigPow returns base^exp for exp >= 0.
func bigPow(base, exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exp)), nil)
}

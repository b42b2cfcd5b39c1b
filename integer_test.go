package rational

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestInt64_Overflow(t *testing.T) {
	const (
		minInt = Int64(math.MinInt64)
		maxInt = Int64(math.MaxInt64)
	)

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			op   func() (Int64, error)
			want Int64
		}{
			{"max + min", func() (Int64, error) { return maxInt.add(minInt) }, -1},
			{"min - (-1)", func() (Int64, error) { return minInt.sub(-1) }, minInt + 1},
			{"max - max", func() (Int64, error) { return maxInt.sub(maxInt) }, 0},
			{"min * 1", func() (Int64, error) { return minInt.mul(1) }, minInt},
			{"-2^62 * 2", func() (Int64, error) { return Int64(-1 << 62).mul(2) }, minInt},
			{"-max", func() (Int64, error) { return maxInt.neg() }, -maxInt},
			{"|min + 1|", func() (Int64, error) { return (minInt + 1).abs() }, maxInt},
			{"gcd(min, max)", func() (Int64, error) { return minInt.gcd(maxInt) }, 1},
			{"gcd(min, 2)", func() (Int64, error) { return minInt.gcd(2) }, 2},
			{"gcd(0, 0)", func() (Int64, error) { return Int64(0).gcd(0) }, 0},
			{"gcd(-12, 18)", func() (Int64, error) { return Int64(-12).gcd(18) }, 6},
		}
		for _, tt := range tests {
			got, err := tt.op()
			if err != nil {
				t.Errorf("%v failed: %v", tt.name, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%v = %v, want %v", tt.name, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]func() (Int64, error){
			"max + 1":      func() (Int64, error) { return maxInt.add(1) },
			"min + (-1)":   func() (Int64, error) { return minInt.add(-1) },
			"min - 1":      func() (Int64, error) { return minInt.sub(1) },
			"0 - min":      func() (Int64, error) { return Int64(0).sub(minInt) },
			"max * 2":      func() (Int64, error) { return maxInt.mul(2) },
			"min * -1":     func() (Int64, error) { return minInt.mul(-1) },
			"-1 * min":     func() (Int64, error) { return Int64(-1).mul(minInt) },
			"2^32 * 2^31":  func() (Int64, error) { return Int64(1 << 32).mul(1 << 31) },
			"-min":         func() (Int64, error) { return minInt.neg() },
			"|min|":        func() (Int64, error) { return minInt.abs() },
			"gcd(min, 0)":  func() (Int64, error) { return minInt.gcd(0) },
			"gcd(min,min)": func() (Int64, error) { return minInt.gcd(minInt) },
		}
		for name, op := range tests {
			_, err := op()
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("%v did not fail with overflow: %v", name, err)
			}
		}
	})
}

func TestInt64_QuoRem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, q, r Int64
		}{
			{7, 2, 3, 1},
			{-7, 2, -3, -1},
			{7, -2, -3, 1},
			{-7, -2, 3, -1},
			{math.MinInt64, 1, math.MinInt64, 0},
			{math.MinInt64, math.MaxInt64, -1, -1},
		}
		for _, tt := range tests {
			q, r, err := tt.x.quoRem(tt.y)
			if err != nil {
				t.Errorf("%v.quoRem(%v) failed: %v", tt.x, tt.y, err)
				continue
			}
			if q != tt.q || r != tt.r {
				t.Errorf("%v.quoRem(%v) = [%v %v], want [%v %v]", tt.x, tt.y, q, r, tt.q, tt.r)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, _, err := Int64(1).quoRem(0)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("1.quoRem(0) did not fail with division by zero: %v", err)
		}
		_, _, err = Int64(math.MinInt64).quoRem(-1)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("min.quoRem(-1) did not fail with overflow: %v", err)
		}
		_, _, err = BigInt{}.quoRem(BigInt{})
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("0.quoRem(0) did not fail with division by zero: %v", err)
		}
	})
}

func TestInt64_CmpMul(t *testing.T) {
	tests := []struct {
		x, y, u, v Int64
	}{
		{0, 0, 0, 0},
		{0, 5, -1, 1},
		{2, 3, 3, 2},
		{math.MaxInt64, math.MaxInt64, math.MinInt64, math.MinInt64},
		{math.MinInt64, math.MaxInt64, math.MaxInt64, math.MinInt64},
		{math.MinInt64, 2, math.MaxInt64, -2},
		{math.MaxInt64, -3, 3, math.MinInt64 + 1},
		{-1, math.MinInt64, 1, math.MaxInt64},
		{4294967296, 4294967296, 4294967295, 4294967297},
	}
	for _, tt := range tests {
		got := tt.x.cmpMul(tt.y, tt.u, tt.v)
		a := new(big.Int).Mul(tt.x.big(), tt.y.big())
		b := new(big.Int).Mul(tt.u.big(), tt.v.big())
		want := a.Cmp(b)
		if got != want {
			t.Errorf("%v.cmpMul(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.u, tt.v, got, want)
		}
		// The unbounded backend must agree
		got = NewBigInt(tt.x.big()).cmpMul(NewBigInt(tt.y.big()), NewBigInt(tt.u.big()), NewBigInt(tt.v.big()))
		if got != want {
			t.Errorf("BigInt %v.cmpMul(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.u, tt.v, got, want)
		}
	}
}

func TestBigInt_Immutable(t *testing.T) {
	x := NewBigInt(big.NewInt(12))
	y := NewBigInt(big.NewInt(-18))
	ops := []func() (BigInt, error){
		func() (BigInt, error) { return x.add(y) },
		func() (BigInt, error) { return x.sub(y) },
		func() (BigInt, error) { return x.mul(y) },
		func() (BigInt, error) { return x.neg() },
		func() (BigInt, error) { return y.abs() },
		func() (BigInt, error) { return x.gcd(y) },
		func() (BigInt, error) {
			q, _, err := y.quoRem(x)
			return q, err
		},
	}
	for _, op := range ops {
		if _, err := op(); err != nil {
			t.Errorf("operation failed: %v", err)
		}
	}
	if x.String() != "12" || y.String() != "-18" {
		t.Errorf("operands were modified: [%v %v], want [12 -18]", x, y)
	}

	b := x.Int()
	b.SetInt64(99)
	if x.String() != "12" {
		t.Errorf("x.Int() shares memory with x: %v", x)
	}

	var zero BigInt
	if zero.sign() != 0 || !zero.isEven() || zero.String() != "0" {
		t.Errorf("BigInt{} = %v, want 0", zero)
	}
	if got := NewBigInt(nil); got.sign() != 0 {
		t.Errorf("NewBigInt(nil) = %v, want 0", got)
	}
}

func TestBigInt_Gcd(t *testing.T) {
	tests := []struct {
		x, y, want int64
	}{
		{0, 0, 0},
		{0, -5, 5},
		{-12, 18, 6},
		{-12, -18, 6},
		{math.MinInt64, 0, math.MinInt64},
	}
	for _, tt := range tests {
		got, err := BigInt{}.fromInt64(tt.x).gcd(BigInt{}.fromInt64(tt.y))
		if err != nil {
			t.Errorf("gcd(%v, %v) failed: %v", tt.x, tt.y, err)
			continue
		}
		want := new(big.Int).Abs(big.NewInt(tt.want))
		if got.get().Cmp(want) != 0 {
			t.Errorf("gcd(%v, %v) = %v, want %v", tt.x, tt.y, got, want)
		}
	}
}

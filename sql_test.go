package rational

import (
	"errors"
	"testing"
)

func TestFraction_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  string
		}{
			{"3/4", "3/4"},
			{"-1.25", "-5/4"},
			{[]byte("0.(3)"), "1/3"},
			{int64(-5), "-5/1"},
			{float64(0.25), "1/4"},
			{float64(0), "0/1"},
		}
		for _, tt := range tests {
			var f Rat64
			if err := f.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if f.String() != tt.want {
				t.Errorf("Scan(%v) = %q, want %q", tt.value, f, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			value any
			want  error
		}{
			"bool":     {true, ErrArgument},
			"nil":      {nil, ErrArgument},
			"int":      {5, ErrArgument},
			"format":   {"abc", ErrFormat},
			"zero":     {[]byte("1/0"), ErrDivisionByZero},
			"overflow": {float64(1e300), ErrOverflow},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				var f Rat64
				err := f.Scan(tt.value)
				if !errors.Is(err, tt.want) {
					t.Errorf("Scan(%v) did not fail with %v: %v", tt.value, tt.want, err)
				}
			})
		}
	})
}

func TestFraction_Value(t *testing.T) {
	f := MustNew[Int64](-7, 2)
	v, err := f.Value()
	if err != nil {
		t.Fatalf("%q.Value() failed: %v", f, err)
	}
	if v != "-7/2" {
		t.Errorf("%q.Value() = %v, want -7/2", f, v)
	}
	// Value is read back by Scan without loss
	var g Rat
	if err := g.Scan(v); err != nil {
		t.Fatalf("Scan(%v) failed: %v", v, err)
	}
	if g.String() != f.String() {
		t.Errorf("Scan(%v) = %q, want %q", v, g, f)
	}
}

func TestNullFraction_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  NullFraction[Int64]
		}{
			{nil, NullFraction[Int64]{}},
			{"1/2", NullFraction[Int64]{Fraction: MustNew[Int64](1, 2), Valid: true}},
			{int64(0), NullFraction[Int64]{Valid: true}},
		}
		for _, tt := range tests {
			n := NullFraction[Int64]{Fraction: MustNew[Int64](9, 1), Valid: true}
			if err := n.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if n != tt.want {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, n, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		n := NullFraction[Int64]{Fraction: MustNew[Int64](9, 1), Valid: true}
		err := n.Scan("x")
		if !errors.Is(err, ErrFormat) {
			t.Errorf("Scan(\"x\") did not fail with %v: %v", ErrFormat, err)
		}
		if n.Valid || !n.Fraction.IsZero() {
			t.Errorf("Scan(\"x\") = %v, want null", n)
		}
	})
}

func TestNullFraction_Value(t *testing.T) {
	tests := []struct {
		n    NullFraction[Int64]
		want any
	}{
		{NullFraction[Int64]{}, nil},
		{NullFraction[Int64]{Fraction: MustNew[Int64](1, 2)}, nil},
		{NullFraction[Int64]{Fraction: MustNew[Int64](1, 2), Valid: true}, "1/2"},
		{NullFraction[Int64]{Valid: true}, "0/1"},
	}
	for _, tt := range tests {
		got, err := tt.n.Value()
		if err != nil {
			t.Errorf("%v.Value() failed: %v", tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v.Value() = %v, want %v", tt.n, got, tt.want)
		}
	}
}

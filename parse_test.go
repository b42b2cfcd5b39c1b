package rational

import (
	"errors"
	"math/big"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want string
		}{
			// Integers
			{"0", "0/1"},
			{"-0", "0/1"},
			{"+0", "0/1"},
			{"007", "7/1"},
			{"-9223372036854775808", "-9223372036854775808/1"},

			// Ratios
			{"7/22", "7/22"},
			{"-6/8", "-3/4"},
			{"6/-8", "-3/4"},
			{"-6/-8", "3/4"},
			{"+1/+2", "1/2"},
			{"0/5", "0/1"},
			{"1.2/-3.4e1", "-3/85"},
			{"0.5/0.25", "2/1"},

			// Decimals
			{"1.25", "5/4"},
			{"-1.25", "-5/4"},
			{".5", "1/2"},
			{"5.", "5/1"},
			{"0.000", "0/1"},
			{"+.5e-3", "1/2000"},
			{"1E2", "100/1"},
			{"1.5e+1", "15/1"},
			{"-1.25e1", "-25/2"},
			{"25e-2", "1/4"},

			// Repeating groups
			{"0.(3)", "1/3"},
			{"0.(9)", "1/1"},
			{"0.1(6)", "1/6"},
			{".5(142857)", "18/35"},
			{"3.(142857)", "22/7"},
			{"-0.(3)", "-1/3"},
			{"1.(0)", "1/1"},
			{"0.(3)e1", "10/3"},

			// Exponent limits
			{"1e100000/1e100000", "1/1"},
			{"0e100000", "0/1"},
			{"5e-100000/1e-100000", "5/1"},

			// Mixed numbers
			{"3 1/7", "22/7"},
			{"-3 1/7", "-22/7"},
			{"+3 1/7", "22/7"},
			{"1 0.5/2", "5/4"},
			{"0 1/2", "1/2"},
		}
		for _, tt := range tests {
			got, err := Parse[BigInt](tt.s)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", tt.s, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"empty":               {"", ErrFormat},
			"sign only":           {"-", ErrFormat},
			"point only":          {".", ErrFormat},
			"missing rhs":         {"1/", ErrFormat},
			"missing lhs":         {"/2", ErrFormat},
			"double slash":        {"1/2/3", ErrFormat},
			"double sign":         {"--1", ErrFormat},
			"double point":        {"1.2.3", ErrFormat},
			"letter":              {"12a", ErrFormat},
			"space":               {" 1", ErrFormat},
			"trailing space":      {"1 ", ErrFormat},
			"group unterminated":  {"0.(3", ErrFormat},
			"group empty":         {"0.()", ErrFormat},
			"group no point":      {"1(3)", ErrFormat},
			"group invalid":       {"0.(3a)", ErrFormat},
			"group trailing":      {"0.(3)4", ErrFormat},
			"no exponent 1":       {"1e", ErrFormat},
			"no exponent 2":       {"1e+", ErrFormat},
			"exponent range 1":    {"1e2147483648", ErrFormat},
			"exponent range 2":    {"1e100001", ErrFormat},
			"exponent range 3":    {"1e-100001", ErrFormat},
			"exponent range 4":    {"0e50000000", ErrFormat},
			"group only 1":        {".(3)", ErrFormat},
			"group only 2":        {"-.(3)", ErrFormat},
			"mixed no ratio":      {"3 1", ErrFormat},
			"mixed signed rest 1": {"3 -1/7", ErrFormat},
			"mixed signed rest 2": {"3 1/-7", ErrFormat},
			"mixed signed rest 3": {"-3 1/+7", ErrFormat},
			"mixed signed rest 4": {"-3 1/-7", ErrFormat},
			"mixed exponent rest": {"3 1e1/7", ErrFormat},
			"mixed ratio whole":   {"1/2 1/2", ErrFormat},
			"mixed two spaces":    {"3  1/7", ErrFormat},
			"zero divisor 1":      {"1/0", ErrDivisionByZero},
			"zero divisor 2":      {"0/0.0", ErrDivisionByZero},
			"zero divisor 3":      {"3 1/0", ErrDivisionByZero},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Parse[BigInt](tt.s)
				if !errors.Is(err, tt.want) {
					t.Errorf("Parse(%q) did not fail with %v: %v", tt.s, tt.want, err)
				}
			})
		}
	})

	t.Run("overflow", func(t *testing.T) {
		tests := []string{
			"9223372036854775808",
			"-9223372036854775809",
			"1/9223372036854775808",
			"0.(1)e20",
			"1e100000",
			"1e-100000",
			"-7e99999/3",
		}
		for _, s := range tests {
			_, err := Parse[Int64](s)
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("Parse(%q) did not fail with overflow: %v", s, err)
			}
		}
		// Reduction happens before the value is narrowed
		s := "18446744073709551614/36893488147419103228"
		got, err := Parse[Int64](s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		if want := MustNew[Int64](1, 2); got != want {
			t.Errorf("Parse(%q) = %q, want %q", s, got, want)
		}
	})
}

func TestParseRadix(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s     string
			radix int
			want  string
		}{
			{"dead.beef", 16, "3735928559/65536"},
			{"DEAD.BEEF", 16, "3735928559/65536"},
			{"-ff/10", 16, "-255/16"},
			{"0.(01)", 2, "1/3"},
			{"0.1", 2, "1/2"},
			{"0.1", 3, "1/3"},
			{"z", 36, "35/1"},
			{"1e1", 16, "481/1"},
			{"1e1", 10, "10/1"},
			{"12", 1, "12/1"},
			{"12", 37, "12/1"},
			{"3 1/2", 8, "7/2"},
		}
		for _, tt := range tests {
			got, err := ParseRadix[BigInt](tt.s, tt.radix)
			if err != nil {
				t.Errorf("ParseRadix(%q, %v) failed: %v", tt.s, tt.radix, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParseRadix(%q, %v) = %q, want %q", tt.s, tt.radix, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			s     string
			radix int
		}{
			{"2", 2},
			{"0.(2)", 2},
			{"g", 16},
			{"1e-1", 16},
		}
		for _, tt := range tests {
			_, err := ParseRadix[BigInt](tt.s, tt.radix)
			if !errors.Is(err, ErrFormat) {
				t.Errorf("ParseRadix(%q, %v) did not fail with format error: %v", tt.s, tt.radix, err)
			}
		}
	})
}

func TestFraction_UnmarshalText(t *testing.T) {
	var f Rat64
	if err := f.UnmarshalText([]byte("0.1(6)")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if want := MustNew[Int64](1, 6); f != want {
		t.Errorf("UnmarshalText(\"0.1(6)\") = %q, want %q", f, want)
	}
	if err := f.UnmarshalText([]byte("1/0")); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("UnmarshalText(\"1/0\") did not fail: %v", err)
	}
}

func FuzzParse(f *testing.F) {
	for _, s := range []string{"0", "-1/2", "1.25", "0.1(6)", "3 1/7", "+.5e-3", "1.2/-3.4e1", "9223372036854775808"} {
		f.Add(s)
	}

	f.Fuzz(
		func(t *testing.T, s string) {
			got, err := Parse[BigInt](s)
			if err != nil {
				t.Skip()
				return
			}
			if got.Den().sign() <= 0 {
				t.Errorf("Parse(%q) = %q, denominator is not positive", s, got)
			}
			g := new(big.Int).GCD(nil, nil, got.Num().get(), got.Den().get())
			if !got.IsZero() && g.Cmp(bigOne) != 0 {
				t.Errorf("Parse(%q) = %q, not in lowest terms", s, got)
			}
			back, err := Parse[BigInt](got.String())
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", got.String(), err)
				return
			}
			if !back.Equal(got) {
				t.Errorf("Parse(%q) = %q, want %q", got.String(), back, got)
			}
			// The bounded backend either agrees or overflows
			small, err := Parse[Int64](s)
			switch {
			case errors.Is(err, ErrOverflow):
			case err != nil:
				t.Errorf("Parse[Int64](%q) failed: %v", s, err)
			case small.String() != got.String():
				t.Errorf("Parse[Int64](%q) = %q, whereas Parse[BigInt](%q) = %q", s, small, s, got)
			}
		},
	)
}

package rational

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"
)

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a fraction in lowest terms.
// The denominator is always written, even if it is 1.
// The returned string is formatted according to the following formal
// EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits '/' digits
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction[T]) String() string {
	return f.num.text(10) + "/" + f.denom().text(10)
}

// MixedString returns f as a mixed number "I N/D" with a truncated integer
// part, for example:
//
//	7/2:  "3 1/2"
//	-7/2: "-3 1/2"
//	-1/2: "-1/2"
//	4/1:  "4"
//
// Integers are written without a denominator, and fractions between -1
// and 1 without an integer part.
// The result can be parsed back with [Parse].
func (f Fraction[T]) MixedString() string {
	num, den := f.big()
	if den.Cmp(bigOne) == 0 {
		return num.String()
	}
	ipart, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if ipart.Sign() == 0 {
		return rem.String() + "/" + den.String()
	}
	return ipart.String() + " " + rem.Abs(rem).String() + "/" + den.String()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (f *Fraction[T]) UnmarshalText(text []byte) error {
	var err error
	*f, err = Parse[T](string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Fraction.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (f Fraction[T]) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler] interface.
// Also see method [Fraction.MarshalBinary].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (f *Fraction[T]) UnmarshalBinary(data []byte) error {
	num, den, err := parseBinary(data)
	if err != nil {
		return fmt.Errorf("parsing binary %x: %w", data, err)
	}
	*f, err = newFractionFromBig[T](num, den)
	if err != nil {
		return fmt.Errorf("parsing binary %x: %w", data, err)
	}
	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler] interface.
// The encoding is a sign byte (0 or 1), the length of the numerator
// magnitude as an unsigned varint, the big-endian numerator magnitude, and
// the big-endian denominator.
// It does not depend on the backend.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (f Fraction[T]) MarshalBinary() ([]byte, error) {
	num, den := f.big()
	var sign byte
	if num.Sign() < 0 {
		sign = 1
	}
	n, d := num.Bytes(), den.Bytes()
	buf := make([]byte, 0, 1+binary.MaxVarintLen64+len(n)+len(d))
	buf = append(buf, sign)
	buf = binary.AppendUvarint(buf, uint64(len(n)))
	buf = append(buf, n...)
	buf = append(buf, d...)
	return buf, nil
}

// parseBinary decodes the output of [Fraction.MarshalBinary].
func parseBinary(data []byte) (num, den *big.Int, err error) {
	if len(data) == 0 || data[0] > 1 {
		return nil, nil, errBinary
	}
	size, w := binary.Uvarint(data[1:])
	if w <= 0 {
		return nil, nil, errBinary
	}
	rest := data[1+w:]
	if size >= uint64(len(rest)) {
		// The denominator needs at least one byte
		return nil, nil, errBinary
	}
	num = new(big.Int).SetBytes(rest[:size])
	den = new(big.Int).SetBytes(rest[size:])
	if den.Sign() == 0 {
		return nil, nil, ErrDivisionByZero
	}
	if data[0] == 1 {
		num.Neg(num)
	}
	return num, den, nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -7/2
//	%q:    "-7/2"
//	%f:     -3.500000
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for the %f verb, the default precision is 6.
// The %f verb rounds half away from zero.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (f Fraction[T]) Format(state fmt.State, verb rune) {
	var body string
	switch verb {
	case 'f', 'F':
		prec := 6
		if p, ok := state.Precision(); ok {
			prec = p
		}
		body = f.DecimalString(prec)
	default:
		body = f.String()
	}

	// Arithmetic sign
	sign := ""
	if strings.HasPrefix(body, "-") {
		sign, body = "-", body[1:]
	} else if state.Flag('+') {
		sign = "+"
	} else if state.Flag(' ') {
		sign = " "
	}

	// Quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	width := len(quote) + len(sign) + len(body) + len(quote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	// Writing buffer
	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", lspaces))
	buf.WriteString(quote)
	buf.WriteString(sign)
	buf.WriteString(strings.Repeat("0", lzeroes))
	buf.WriteString(body)
	buf.WriteString(quote)
	buf.WriteString(strings.Repeat(" ", tspaces))

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		state.Write([]byte(buf.String()))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(rational.Fraction="))
		state.Write([]byte(buf.String()))
		state.Write([]byte(")"))
	}
}

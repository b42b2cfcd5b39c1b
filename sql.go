package rational

import (
	"database/sql/driver"
	"fmt"
)

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices are parsed with [Parse], int64 and float64 values
// are converted exactly.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (f *Fraction[T]) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*f, err = Parse[T](value)
	case []byte:
		*f, err = Parse[T](string(value))
	case int64:
		*f, err = NewFromInteger[T](value)
	case float64:
		*f, err = NewFromFloat64[T](value)
	default:
		err = fmt.Errorf("converting from %T to %T: %w", value, f, errUnsupported)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The fraction is stored as a string in the format of [Fraction.String],
// which survives a round trip without loss.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (f Fraction[T]) Value() (driver.Value, error) {
	return f.String(), nil
}

// NullFraction represents a fraction that can be null.
// Its zero value is null.
// NullFraction is not thread-safe.
type NullFraction[T Integer[T]] struct {
	Fraction Fraction[T]
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Fraction.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullFraction[T]) Scan(value any) error {
	if value == nil {
		n.Fraction = Fraction[T]{}
		n.Valid = false
		return nil
	}
	err := n.Fraction.Scan(value)
	if err != nil {
		n.Fraction = Fraction[T]{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Fraction.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullFraction[T]) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Fraction.Value()
}

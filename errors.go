package rational

import "errors"

// Error kinds.
// Every error returned by this package matches exactly one of them
// with [errors.Is].
var (
	ErrArgument   = errors.New("invalid argument")
	ErrFormat     = errors.New("invalid format")
	ErrArithmetic = errors.New("arithmetic error")
)

// Arithmetic errors.
var (
	ErrDivisionByZero = &kindError{"division by zero", ErrArithmetic}
	ErrOverflow       = &kindError{"integer overflow", ErrArithmetic}
	ErrInexact        = &kindError{"rounding necessary", ErrArithmetic}
)

var (
	errStepRange     = &kindError{"rounding step is not positive", ErrArithmetic}
	errOrderRange    = &kindError{"order of farey sequence is not positive", ErrArgument}
	errRoundingMode  = &kindError{"unknown rounding mode", ErrArgument}
	errDivisionMode  = &kindError{"unknown division mode", ErrArgument}
	errNilArgument   = &kindError{"nil argument", ErrArgument}
	errNotFinite     = &kindError{"value is not finite", ErrArgument}
	errScaleRange    = &kindError{"scale out of range", ErrArgument}
	errUnsupported   = &kindError{"unsupported type", ErrArgument}
	errNoDigits      = &kindError{"no digits", ErrFormat}
	errInvalidDigit  = &kindError{"invalid digit", ErrFormat}
	errNoExponent    = &kindError{"no exponent", ErrFormat}
	errExponentRange = &kindError{"exponent out of range", ErrFormat}
	errRepeatGroup   = &kindError{"invalid repeating group", ErrFormat}
	errBinary        = &kindError{"invalid binary encoding", ErrFormat}
)

// kindError is a specific error that also matches its kind.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}

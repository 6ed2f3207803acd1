package formula

import "errors"

// ErrInvalidFormula is the umbrella sentinel for every parse failure.
// The specific sentinels below wrap it, so errors.Is(err, ErrInvalidFormula)
// holds for all of them.
var ErrInvalidFormula = errors.New("formula: invalid formula")

var (
	// ErrEmpty indicates an empty formula string.
	ErrEmpty = wrap("empty formula")

	// ErrInvalidChar indicates a character outside [A-Za-z0-9].
	ErrInvalidChar = wrap("invalid character")

	// ErrDanglingToken indicates a digit or lowercase letter that does not follow an element symbol.
	ErrDanglingToken = wrap("token without element symbol")

	// ErrZeroCount indicates an explicit count of 0.
	ErrZeroCount = wrap("zero atom count")

	// ErrCountOverflow indicates a count that does not fit in an int.
	ErrCountOverflow = wrap("atom count overflow")
)

type kindError struct{ msg string }

func (e *kindError) Error() string { return "formula: " + e.msg }
func (e *kindError) Unwrap() error { return ErrInvalidFormula }

func wrap(msg string) error { return &kindError{msg: msg} }

package reaction

import "errors"

// ErrFormat is the umbrella sentinel for every reaction-level format failure.
var ErrFormat = errors.New("reaction: invalid format")

var (
	// ErrMissingArrow indicates the "->" token is absent.
	ErrMissingArrow = wrap("missing \"->\"")

	// ErrMultipleArrows indicates more than one "->" token.
	ErrMultipleArrows = wrap("more than one \"->\"")

	// ErrEmptySide indicates a side with no terms at all.
	ErrEmptySide = wrap("empty side")

	// ErrEmptyTerm indicates an empty term between "+" signs.
	ErrEmptyTerm = wrap("empty term")
)

type formatError struct{ msg string }

func (e *formatError) Error() string { return "reaction: " + e.msg }
func (e *formatError) Unwrap() error { return ErrFormat }

func wrap(msg string) error { return &formatError{msg: msg} }

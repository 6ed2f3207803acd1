package balancer

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by Balance matches exactly one of them
// via errors.Is (plus the underlying cause).
var (
	// ErrFormat: missing arrow, empty side, or a term failing the flat-formula grammar.
	ErrFormat = errors.New("balancer: format error")

	// ErrUnbalanceable: the conservation matrix has full column rank.
	ErrUnbalanceable = errors.New("balancer: reaction cannot be balanced")

	// ErrInvalidCoefficients: the chosen null-space vector has a zero or negative
	// entry after clearing denominators, or fails conservation re-check.
	ErrInvalidCoefficients = errors.New("balancer: invalid coefficients")
)

// Stage names the pipeline step where an error originated.
type Stage string

const (
	StageReaction  Stage = "reaction"
	StageFormula   Stage = "formula"
	StageMatrix    Stage = "matrix"
	StageNullSpace Stage = "nullspace"
	StageNormalize Stage = "normalize"
	StageVerify    Stage = "verify"
)

// StageError tags a failure with its stage and kind.
// errors.Is matches both Kind and the wrapped cause.
type StageError struct {
	Stage Stage
	Kind  error
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Stage, e.Err)
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *StageError) Unwrap() []error { return []error{e.Kind, e.Err} }

func stageErrorf(stage Stage, kind, err error) error {
	return &StageError{Stage: stage, Kind: kind, Err: err}
}

// Kind names used by outer layers (HTTP, MCP, batch output).
const (
	KindFormat              = "format"
	KindUnbalanceable       = "unbalanceable"
	KindInvalidCoefficients = "invalid_coefficients"
	KindInternal            = "internal"
)

// KindOf maps err to a stable kind name; "" for nil.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFormat):
		return KindFormat
	case errors.Is(err, ErrUnbalanceable):
		return KindUnbalanceable
	case errors.Is(err, ErrInvalidCoefficients):
		return KindInvalidCoefficients
	default:
		return KindInternal
	}
}

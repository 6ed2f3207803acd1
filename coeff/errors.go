package coeff

import "errors"

var (
	// ErrEmptyVector indicates a nil or zero-length input.
	ErrEmptyVector = errors.New("coeff: empty vector")

	// ErrNilEntry indicates a nil *big.Rat in the input.
	ErrNilEntry = errors.New("coeff: nil entry")

	// ErrNonPositive indicates a zero or negative entry after clearing denominators.
	ErrNonPositive = errors.New("coeff: non-positive coefficient")

	// ErrOverflow indicates a reduced coefficient that does not fit in int64.
	ErrOverflow = errors.New("coeff: coefficient overflows int64")
)

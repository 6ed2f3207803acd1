// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/length checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math/big"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil, including a typed-nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty ensures m has at least one row and one column.
// Assumes m is not nil.
func ValidateNonEmpty(m Matrix) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateNonEmpty", ErrInvalidDimensions)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches n and holds no nil entries.
// Time: O(n). Space: O(1).
func ValidateVecLen(x []*big.Rat, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilValue)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	for j := range x {
		if x[j] == nil {
			return validatorErrorf(fmt.Sprintf("ValidateVecLen[%d]", j), ErrNilValue)
		}
	}

	return nil
}

// ValidateOperand is the composite guard used at kernel entry:
// NotNil → NonEmpty.
func ValidateOperand(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateNonEmpty(m)
}

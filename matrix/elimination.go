// SPDX-License-Identifier: MIT
// Package matrix provides the exact elimination kernels: reduced row echelon
// form, rank, null space, and matrix-vector products.
//
// Purpose:
//   - Declare the canonical elimination kernels used by balancing and verification.
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - All kernels work on a private *Dense copy; inputs are never mutated.
//   - No floating point anywhere: pivot selection relies on exact Sign() == 0.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping.
const (
	opRREF      = "RREF"
	opRank      = "Rank"
	opNullSpace = "NullSpace"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RREF reduces m to reduced row echelon form using exact Gauss–Jordan elimination.
// MAIN DESCRIPTION:
//   - Returns a fresh *Dense R together with the pivot column of each
//     non-zero row of R, in increasing order.
//
// Implementation:
//   - Stage 1: validate and copy m.
//   - Stage 2: for each column (left→right) find the first row at or below the
//     current lead row with a non-zero entry; skip the column if none exists.
//   - Stage 3: swap it into the lead row, scale the row so the pivot is 1, and
//     eliminate the column from every other row (above and below).
//
// Behavior highlights:
//   - Exact arithmetic makes "first non-zero" a sufficient pivot rule; no
//     magnitude pivoting is needed and results are bit-for-bit reproducible.
//   - Input m is read-only.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (validation), At errors for foreign
//     Matrix implementations.
//
// Determinism:
//   - Fixed column→row scan order.
//
// Complexity:
//   - Time O(r·c·min(r,c)) rational operations, Space O(r·c).
func RREF(m Matrix) (*Dense, []int, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	a := src.clone()

	var (
		rows, cols = a.r, a.c
		lead       int // next pivot row
		col, i, k  int
		pivots     = make([]int, 0, min(rows, cols))
		inv        = new(big.Rat)
		factor     = new(big.Rat)
		tmp        = new(big.Rat)
	)
	for col = 0; col < cols && lead < rows; col++ {
		// Stage 2: pivot search.
		p := -1
		for i = lead; i < rows; i++ {
			if a.data[i*cols+col].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue // free column
		}

		// Stage 3: swap, normalize, eliminate.
		if p != lead {
			a.swapRows(p, lead)
		}
		base := lead * cols
		inv.Inv(&a.data[base+col])
		for k = col; k < cols; k++ {
			a.data[base+k].Mul(&a.data[base+k], inv)
		}
		for i = 0; i < rows; i++ {
			if i == lead {
				continue
			}
			rowBase := i * cols
			if a.data[rowBase+col].Sign() == 0 {
				continue
			}
			factor.Set(&a.data[rowBase+col])
			for k = col; k < cols; k++ {
				tmp.Mul(factor, &a.data[base+k])
				a.data[rowBase+k].Sub(&a.data[rowBase+k], tmp)
			}
		}

		pivots = append(pivots, col)
		lead++
	}

	return a, pivots, nil
}

// swapRows exchanges rows i and j in place.
func (m *Dense) swapRows(i, j int) {
	bi, bj := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}
}

// Rank returns the number of pivots of RREF(m).
// Complexity: same as RREF.
func Rank(m Matrix) (int, error) {
	_, pivots, err := RREF(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return len(pivots), nil
}

// NullSpace returns a basis of {v : m·v = 0}.
// MAIN DESCRIPTION:
//   - One basis vector per free (non-pivot) column, in increasing column order.
//
// Implementation:
//   - Stage 1: R, pivots := RREF(m); mark pivot columns.
//   - Stage 2: for each free column f: v[f] = 1, every other free entry = 0,
//     and for the pivot of row i, v[pivot_i] = -R[i][f].
//
// Behavior highlights:
//   - Returns an empty (non-nil) basis when m has full column rank; only the
//     zero vector solves the system then.
//   - Every vector has a 1 on its own free column, so none is the zero vector.
//
// Errors:
//   - Propagated RREF validation errors.
//
// Determinism:
//   - Free-variable assignment order = column order.
//
// Complexity:
//   - Time O(RREF + c·(c−rank)), Space O(c·(c−rank)).
func NullSpace(m Matrix) ([][]*big.Rat, error) {
	r, pivots, err := RREF(m)
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}

	cols := r.c
	isPivot := make([]bool, cols)
	for _, p := range pivots {
		isPivot[p] = true
	}

	basis := make([][]*big.Rat, 0, cols-len(pivots))
	var f, i, j int
	for f = 0; f < cols; f++ {
		if isPivot[f] {
			continue
		}
		v := make([]*big.Rat, cols)
		for j = 0; j < cols; j++ {
			v[j] = new(big.Rat)
		}
		v[f].SetInt64(1)
		for i = 0; i < len(pivots); i++ {
			v[pivots[i]].Neg(&r.data[i*cols+f])
		}
		basis = append(basis, v)
	}

	return basis, nil
}

// Nullity returns cols − rank, the dimension of the null space.
func Nullity(m Matrix) (int, error) {
	rank, err := Rank(m)
	if err != nil {
		return 0, err
	}

	return m.Cols() - rank, nil
}

// MatVec computes y = m · x exactly.
//
// Contract: m non-nil; x non-nil with no nil entries; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []*big.Rat) ([]*big.Rat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]*big.Rat, d.r)
	tmp := new(big.Rat)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		acc := new(big.Rat)
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if x[j].Sign() == 0 {
				continue // skip zero multiplications
			}
			tmp.Mul(&d.data[base+j], x[j])
			acc.Add(acc, tmp)
		}
		y[i] = acc
	}

	return y, nil
}

// IsZeroVec reports whether every entry of v is exactly zero.
func IsZeroVec(v []*big.Rat) bool {
	for _, x := range v {
		if x != nil && x.Sign() != 0 {
			return false
		}
	}

	return true
}

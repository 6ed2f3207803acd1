// SPDX-License-Identifier: MIT

// Package matrix provides exact rational matrices and the elimination kernels
// built on them: reduced row echelon form, rank, null space and matrix-vector
// products.
//
// 🚀 What is it for?
//
//	Every cell is a *big.Rat, so elimination never rounds. Zero tests during
//	pivot search are exact, which is what integer-ratio recovery (chemical
//	balancing, conservation laws, integer relations) depends on.
//
// ✨ Key features:
//   - Dense: row-major storage with safe At/Set (copies in, copies out)
//   - RREF: deterministic Gauss–Jordan elimination, returns pivot columns
//   - NullSpace: one basis vector per free column, in column order
//   - MatVec: exact y = A·x, used to verify solutions
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stoich/matrix"
//
//	m, _ := matrix.NewFromInts([][]int64{
//	  {2, 0, -2}, // H
//	  {0, 2, -1}, // O
//	})
//	basis, _ := matrix.NullSpace(m) // [[1 1/2 1]]
//
// Complexity:
//
//   - RREF / NullSpace: O(r·c·min(r,c)) big.Rat operations
//   - MatVec: O(r·c)
//
// Errors are package sentinels (errors.go) wrapped with an operation tag;
// match them with errors.Is.
package matrix

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/stoich/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their At-based copy path.
type hide struct{ matrix.Matrix }

// MustInts builds a Dense from integer rows or fails the test.
func MustInts(tb testing.TB, rows [][]int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromInts(rows)
	if err != nil {
		tb.Fatalf("NewFromInts: %v", err)
	}

	return m
}

// ratStrings renders a vector as RatString values for compact assertions.
func ratStrings(v []*big.Rat) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = x.RatString()
	}

	return out
}

// rats parses "p/q" or "p" literals into a vector.
func rats(tb testing.TB, lits ...string) []*big.Rat {
	tb.Helper()
	out := make([]*big.Rat, len(lits))
	for i, s := range lits {
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			tb.Fatalf("bad rational literal %q", s)
		}
		out[i] = r
	}

	return out
}

package balancer

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/stoich/formula"
	"github.com/katalvlaran/stoich/matrix"
)

// BuildMatrix builds the conservation matrix.
//
// Entry (e, c) is the count of element e in term c; reactant columns come
// first in input order, then product columns with negated counts.
// Shape: len(elements) × (len(reactants) + len(products)).
//
// Errors:
//   - matrix.ErrInvalidDimensions when there are no elements or no terms.
func BuildMatrix(reactants, products []formula.Vector, elements []formula.Element) (*matrix.Dense, error) {
	cols := len(reactants) + len(products)
	m, err := matrix.NewDense(len(elements), cols)
	if err != nil {
		return nil, fmt.Errorf("BuildMatrix(%d×%d): %w", len(elements), cols, err)
	}

	v := new(big.Rat)
	for i, e := range elements {
		for j, vec := range reactants {
			if n := vec.Count(e); n != 0 {
				if err = m.Set(i, j, v.SetInt64(int64(n))); err != nil {
					return nil, err
				}
			}
		}
		for j, vec := range products {
			if n := vec.Count(e); n != 0 {
				if err = m.Set(i, len(reactants)+j, v.SetInt64(-int64(n))); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}

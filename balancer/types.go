package balancer

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/stoich/formula"
	"github.com/katalvlaran/stoich/matrix"
	"github.com/katalvlaran/stoich/reaction"
)

// Term is one compound with its coefficient. Formula is the original input
// text, never re-derived from the parsed vector.
type Term struct {
	Coefficient int64
	Formula     string
}

// Balanced is the result of a successful Balance call.
type Balanced struct {
	Reactants []Term
	Products  []Term

	// Elements is the sorted element universe (matrix row order).
	Elements []formula.Element

	// Nullity is the dimension of the null space the coefficients came from.
	Nullity int
}

// Coefficients returns the reactant and product coefficients in input order.
func (b *Balanced) Coefficients() (reactants, products []int64) {
	reactants = make([]int64, len(b.Reactants))
	for i, t := range b.Reactants {
		reactants[i] = t.Coefficient
	}
	products = make([]int64, len(b.Products))
	for i, t := range b.Products {
		products[i] = t.Coefficient
	}

	return reactants, products
}

// String renders "2 H2 + 1 O2 -> 2 H2O".
func (b *Balanced) String() string {
	return joinTerms(b.Reactants) + " " + reaction.Arrow + " " + joinTerms(b.Products)
}

func joinTerms(ts []Term) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = strconv.FormatInt(t.Coefficient, 10) + " " + t.Formula
	}

	return strings.Join(parts, " "+reaction.Plus+" ")
}

// Analysis carries every intermediate of the pipeline up to the null space.
// It backs explain-style reports; Balance consumes it.
type Analysis struct {
	Reaction reaction.Reaction

	// Vectors holds the parsed formula of every term, reactants then products.
	Vectors []formula.Vector

	Elements []formula.Element

	// Matrix is the conservation matrix (elements × terms).
	Matrix *matrix.Dense

	// Reduced is RREF(Matrix); Pivots its pivot columns.
	Reduced *matrix.Dense
	Pivots  []int

	// Basis is the null-space basis in free-column order; may be empty.
	Basis [][]*big.Rat
}

// Nullity returns len(Basis).
func (a *Analysis) Nullity() int { return len(a.Basis) }

package balancer

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/stoich/coeff"
	"github.com/katalvlaran/stoich/formula"
	"github.com/katalvlaran/stoich/matrix"
	"github.com/katalvlaran/stoich/reaction"
)

// Analyze runs the pipeline up to and including the null space.
//
// Implementation:
//   - Stage 1: reaction.Parse.
//   - Stage 2: formula.Parse for every term (first failure wins).
//   - Stage 3: element universe and conservation matrix.
//   - Stage 4: RREF and null-space basis.
//
// Errors: *StageError with Kind ErrFormat for stages 1–2; internal matrix
// failures carry no public kind beyond their cause.
func Analyze(s string, opts ...Option) (*Analysis, error) {
	o := gatherOptions(opts...)

	r, err := reaction.Parse(s)
	if err != nil {
		return nil, stageErrorf(StageReaction, ErrFormat, err)
	}

	terms := r.Terms()
	vectors := make([]formula.Vector, len(terms))
	for i, term := range terms {
		if vectors[i], err = formula.Parse(term); err != nil {
			return nil, stageErrorf(StageFormula, ErrFormat, fmt.Errorf("term %d: %w", i, err))
		}
	}

	nr := len(r.Reactants)
	elements := formula.Universe(vectors...)
	m, err := BuildMatrix(vectors[:nr], vectors[nr:], elements)
	if err != nil {
		return nil, &StageError{Stage: StageMatrix, Kind: errInternal, Err: err}
	}

	reduced, pivots, err := matrix.RREF(m)
	if err != nil {
		return nil, &StageError{Stage: StageNullSpace, Kind: errInternal, Err: err}
	}
	basis, err := matrix.NullSpace(m)
	if err != nil {
		return nil, &StageError{Stage: StageNullSpace, Kind: errInternal, Err: err}
	}

	o.logger.Debug("reaction analyzed",
		"reaction", r.String(),
		"elements", len(elements),
		"terms", len(terms),
		"rank", len(pivots),
		"nullity", len(basis),
	)

	return &Analysis{
		Reaction: r,
		Vectors:  vectors,
		Elements: elements,
		Matrix:   m,
		Reduced:  reduced,
		Pivots:   pivots,
		Basis:    basis,
	}, nil
}

// Balance computes the smallest positive integer coefficients for s.
//
// Implementation:
//   - Stage 1: Analyze.
//   - Stage 2: empty basis → ErrUnbalanceable.
//   - Stage 3: normalize Basis[0]; failure → ErrInvalidCoefficients.
//   - Stage 4: optional integer re-check of M·c = 0.
//   - Stage 5: pair coefficients with the original term text.
func Balance(s string, opts ...Option) (*Balanced, error) {
	o := gatherOptions(opts...)

	a, err := Analyze(s, opts...)
	if err != nil {
		return nil, err
	}

	return a.balance(o)
}

// Balance finishes the pipeline from an existing analysis.
func (a *Analysis) Balance(opts ...Option) (*Balanced, error) {
	return a.balance(gatherOptions(opts...))
}

func (a *Analysis) balance(o Options) (*Balanced, error) {
	nullity := a.Nullity()
	if nullity == 0 {
		return nil, stageErrorf(StageNullSpace, ErrUnbalanceable,
			fmt.Errorf("rank %d equals %d terms: only the zero vector conserves every element", len(a.Pivots), a.Reaction.Len()))
	}
	if nullity > 1 {
		o.logger.Warn("underdetermined reaction; using first null-space basis vector",
			"reaction", a.Reaction.String(),
			"nullity", nullity,
		)
	}

	coefs, err := coeff.Normalize(a.Basis[0])
	if err != nil {
		if nullity > 1 {
			err = fmt.Errorf("nullity %d, first basis vector: %w", nullity, err)
		}

		return nil, stageErrorf(StageNormalize, ErrInvalidCoefficients, err)
	}

	if o.verify {
		if err = verify(a.Matrix, coefs); err != nil {
			return nil, stageErrorf(StageVerify, ErrInvalidCoefficients, err)
		}
	}

	nr := len(a.Reaction.Reactants)
	out := &Balanced{
		Reactants: make([]Term, nr),
		Products:  make([]Term, len(a.Reaction.Products)),
		Elements:  a.Elements,
		Nullity:   nullity,
	}
	for i, f := range a.Reaction.Reactants {
		out.Reactants[i] = Term{Coefficient: coefs[i], Formula: f}
	}
	for i, f := range a.Reaction.Products {
		out.Products[i] = Term{Coefficient: coefs[nr+i], Formula: f}
	}

	o.logger.Debug("reaction balanced", "result", out.String())

	return out, nil
}

// errConservation reports a coefficient vector that does not annihilate the matrix.
var errConservation = errors.New("balancer: element not conserved")

// errInternal tags failures that no user input should be able to cause.
var errInternal = errors.New("balancer: internal error")

// errNotMinimal reports coefficients sharing a common factor.
var errNotMinimal = errors.New("balancer: coefficients not coprime")

// verify checks M·c = 0 exactly and gcd(c) = 1.
func verify(m *matrix.Dense, coefs []int64) error {
	x := make([]*big.Rat, len(coefs))
	for i, c := range coefs {
		x[i] = new(big.Rat).SetInt64(c)
	}
	y, err := matrix.MatVec(m, x)
	if err != nil {
		return err
	}
	if !matrix.IsZeroVec(y) {
		for i, v := range y {
			if v.Sign() != 0 {
				return fmt.Errorf("row %d sums to %s: %w", i, v.RatString(), errConservation)
			}
		}
	}
	if g := coeff.GCD64(coefs...); g != 1 {
		return fmt.Errorf("gcd %d: %w", g, errNotMinimal)
	}

	return nil
}

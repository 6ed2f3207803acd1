package reaction

import (
	"fmt"
	"strings"
)

// Arrow separates reactants from products.
const Arrow = "->"

// Plus separates terms on one side.
const Plus = "+"

// Reaction holds the ordered terms of both sides.
// Order fixes matrix column order and display order.
type Reaction struct {
	Reactants []string
	Products  []string
}

// Len returns the total number of terms.
func (r Reaction) Len() int { return len(r.Reactants) + len(r.Products) }

// Terms returns reactants followed by products.
func (r Reaction) Terms() []string {
	out := make([]string, 0, r.Len())
	out = append(out, r.Reactants...)

	return append(out, r.Products...)
}

// String re-renders the reaction in canonical spacing: "a + b -> c".
func (r Reaction) String() string {
	return strings.Join(r.Reactants, " "+Plus+" ") + " " + Arrow + " " + strings.Join(r.Products, " "+Plus+" ")
}

// Parse splits s into reactant and product terms.
//
// Implementation:
//   - Stage 1: split on "->"; exactly two sides are required.
//   - Stage 2: split each side on "+", trim each term.
//   - Stage 3: reject sides with no terms and empty terms.
//
// Errors (all wrap ErrFormat):
//   - ErrMissingArrow, ErrMultipleArrows, ErrEmptySide, ErrEmptyTerm.
func Parse(s string) (Reaction, error) {
	sides := strings.Split(s, Arrow)
	switch {
	case len(sides) < 2:
		return Reaction{}, fmt.Errorf("Parse(%q): %w", s, ErrMissingArrow)
	case len(sides) > 2:
		return Reaction{}, fmt.Errorf("Parse(%q): %w", s, ErrMultipleArrows)
	}

	left, err := splitSide(sides[0])
	if err != nil {
		return Reaction{}, fmt.Errorf("Parse(%q): reactants: %w", s, err)
	}
	right, err := splitSide(sides[1])
	if err != nil {
		return Reaction{}, fmt.Errorf("Parse(%q): products: %w", s, err)
	}

	return Reaction{Reactants: left, Products: right}, nil
}

func splitSide(side string) ([]string, error) {
	if strings.TrimSpace(side) == "" {
		return nil, ErrEmptySide
	}
	parts := strings.Split(side, Plus)
	terms := make([]string, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("term %d: %w", i, ErrEmptyTerm)
		}
		terms = append(terms, p)
	}

	return terms, nil
}

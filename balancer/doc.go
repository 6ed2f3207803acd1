// Package balancer balances chemical equations with exact linear algebra.
//
// 🚀 Pipeline
//
//	reaction.Parse → formula.Parse (per term) → formula.Universe
//	  → BuildMatrix → matrix.NullSpace → coeff.Normalize → verify
//
// The conservation matrix has one row per element and one column per term
// (reactants first, then products with negated counts). Any positive integer
// vector in its null space is a balancing; the first basis vector, scaled to
// coprime integers, is returned.
//
// ⚙️ Usage:
//
//	b, err := balancer.Balance("C3H8 + O2 -> CO2 + H2O")
//	if err != nil {
//	  switch {
//	  case errors.Is(err, balancer.ErrFormat):
//	  case errors.Is(err, balancer.ErrUnbalanceable):
//	  case errors.Is(err, balancer.ErrInvalidCoefficients):
//	  }
//	}
//	fmt.Println(b) // 1 C3H8 + 5 O2 -> 3 CO2 + 4 H2O
//
// Underdetermined reactions (null space dimension ≥ 2) keep the
// first-basis-vector policy. That vector has zeros on the other free
// columns, so such reactions are reported as ErrInvalidCoefficients with the
// nullity in the message rather than balanced by a guess.
//
// Every call is independent and allocation-local; concurrent use is safe.
package balancer

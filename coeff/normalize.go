package coeff

import (
	"fmt"
	"math/big"
)

// Normalize scales v to the smallest vector of positive integers with the same ratios.
//
// Implementation:
//   - Stage 1: validate; L = lcm of denominators.
//   - Stage 2: scaled[i] = v[i]·L (exact integer); reject ≤ 0 with its index.
//   - Stage 3: G = gcd(scaled); divide; check each fits int64.
//
// Errors:
//   - ErrEmptyVector, ErrNilEntry, ErrNonPositive, ErrOverflow.
//
// Complexity:
//   - Time O(n) big-integer operations, Space O(n).
func Normalize(v []*big.Rat) ([]int64, error) {
	if len(v) == 0 {
		return nil, ErrEmptyVector
	}
	for i, x := range v {
		if x == nil {
			return nil, fmt.Errorf("Normalize[%d]: %w", i, ErrNilEntry)
		}
	}

	l := big.NewInt(1)
	for _, x := range v {
		l = LCM(l, x.Denom())
	}

	scaled := make([]*big.Int, len(v))
	for i, x := range v {
		// x = num/den with den | L, so x·L = num·(L/den) is exact.
		s := new(big.Int).Quo(l, x.Denom())
		s.Mul(s, x.Num())
		if s.Sign() <= 0 {
			return nil, fmt.Errorf("Normalize[%d] = %s: %w", i, s, ErrNonPositive)
		}
		scaled[i] = s
	}

	g := GCD(scaled...)
	out := make([]int64, len(scaled))
	for i, s := range scaled {
		s.Quo(s, g)
		if !s.IsInt64() {
			return nil, fmt.Errorf("Normalize[%d] = %s: %w", i, s, ErrOverflow)
		}
		out[i] = s.Int64()
	}

	return out, nil
}

// LCM returns the least common multiple of |a| and |b|; LCM(0, x) = 0.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	out := new(big.Int).Quo(new(big.Int).Abs(a), g)

	return out.Mul(out, new(big.Int).Abs(b))
}

// GCD returns the greatest common divisor of the absolute values of xs.
// GCD() and GCD(0, 0, ...) return 0.
func GCD(xs ...*big.Int) *big.Int {
	g := new(big.Int)
	for _, x := range xs {
		g.GCD(nil, nil, g, new(big.Int).Abs(x))
	}

	return g
}

// GCD64 is GCD over int64 values; the balancer uses it to re-check minimality.
func GCD64(xs ...int64) int64 {
	var g int64
	for _, x := range xs {
		if x < 0 {
			x = -x
		}
		for x != 0 {
			g, x = x, g%x
		}
	}

	return g
}

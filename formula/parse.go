package formula

import (
	"fmt"
	"slices"
	"strconv"
)

// Parse scans s left to right and returns its element-count vector.
//
// Implementation:
//   - Stage 1: reject empty input.
//   - Stage 2: at each position expect an uppercase letter, consume the
//     lowercase tail as the symbol, then the digit run as the count.
//   - Stage 3: add the count to the running total of the symbol.
//
// Behavior highlights:
//   - Repeated symbols are summed, never overwritten.
//   - Leading zeros in a count are accepted ("H02" → H:2); a zero count is not.
//
// Errors (all wrap ErrInvalidFormula):
//   - ErrEmpty, ErrInvalidChar, ErrDanglingToken, ErrZeroCount, ErrCountOverflow.
//
// Complexity:
//   - Time O(len(s)), Space O(distinct elements).
func Parse(s string) (Vector, error) {
	if s == "" {
		return nil, ErrEmpty
	}

	v := make(Vector)
	i, n := 0, len(s)
	for i < n {
		ch := s[i]
		switch {
		case isUpper(ch):
		case isLower(ch) || isDigit(ch):
			return nil, parseErrorf(s, i, ErrDanglingToken)
		default:
			return nil, parseErrorf(s, i, ErrInvalidChar)
		}

		// Symbol: one uppercase letter plus lowercase tail.
		start := i
		i++
		for i < n && isLower(s[i]) {
			i++
		}
		sym := Element(s[start:i])

		// Count: optional digit run.
		count := 1
		if i < n && isDigit(s[i]) {
			dStart := i
			for i < n && isDigit(s[i]) {
				i++
			}
			c, err := strconv.Atoi(s[dStart:i])
			if err != nil {
				return nil, parseErrorf(s, dStart, ErrCountOverflow)
			}
			if c == 0 {
				return nil, parseErrorf(s, dStart, ErrZeroCount)
			}
			count = c
		}

		if v[sym] > maxInt-count {
			return nil, parseErrorf(s, start, ErrCountOverflow)
		}
		v[sym] += count
	}

	return v, nil
}

// Universe returns the sorted union of the elements of vs.
// Sorting is byte-wise lexicographic, so row order is stable run to run.
func Universe(vs ...Vector) []Element {
	seen := make(map[Element]struct{})
	for _, v := range vs {
		for e := range v {
			seen[e] = struct{}{}
		}
	}
	out := make([]Element, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	slices.Sort(out)

	return out
}

const maxInt = int(^uint(0) >> 1)

func parseErrorf(s string, pos int, err error) error {
	return fmt.Errorf("Parse(%q) at %d: %w", s, pos, err)
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

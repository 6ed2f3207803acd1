package formula

import (
	"slices"
	"strconv"
	"strings"
)

// Element is a chemical element symbol such as "H" or "Na".
// Equality is exact string match; no aliasing or case folding.
type Element string

// Vector maps each element of one compound to its atom count.
// Every key present has a count ≥ 1; absent elements count as 0.
type Vector map[Element]int

// Count returns the atom count of e, 0 when absent.
func (v Vector) Count(e Element) int { return v[e] }

// Elements returns the keys of v in sorted order.
func (v Vector) Elements() []Element {
	out := make([]Element, 0, len(v))
	for e := range v {
		out = append(out, e)
	}
	slices.Sort(out)

	return out
}

// String renders v in sorted element order, e.g. "H2O" for {H:2, O:1}.
// The rendering is canonical, not the original text.
func (v Vector) String() string {
	var b strings.Builder
	for _, e := range v.Elements() {
		b.WriteString(string(e))
		if n := v[e]; n != 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}

	return b.String()
}

// Package formula parses flat chemical formulas into element-count vectors
// and collects the sorted element universe of a set of compounds.
//
// 🚀 Grammar
//
//	formula := ( element count? )+
//	element := [A-Z][a-z]*
//	count   := [0-9]+        (default 1, must be ≥ 1)
//
// Repeated symbols are summed: "CH3CH2OH" → {C:2, H:6, O:1}.
// Parenthesised groups and hydrate dots are not supported and are rejected
// as invalid characters.
//
// ⚙️ Usage:
//
//	v, err := formula.Parse("Fe2O3")   // {Fe:2, O:3}
//	els := formula.Universe(v, w)     // sorted union of keys
package formula

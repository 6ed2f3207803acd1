// Package reaction splits a reaction string such as "H2 + O2 -> H2O" into
// ordered reactant and product terms.
//
// Terms are returned verbatim (trimmed of surrounding whitespace); formula
// validation is left to package formula.
package reaction

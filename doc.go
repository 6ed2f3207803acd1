// Package stoich balances chemical equations with exact rational arithmetic:
// no floating point, no search, one deterministic answer.
//
// 🚀 What is stoich?
//
//	A small pipeline that turns "C3H8 + O2 -> CO2 + H2O" into
//	"1 C3H8 + 5 O2 -> 3 CO2 + 4 H2O":
//		• formula/  : flat formula parser (H2O, CH3CH2OH, KMnO4) and element universe
//		• reaction/ : "a + b -> c + d" splitter
//		• matrix/   : dense big.Rat matrix, Gauss–Jordan RREF, rank, null space
//		• coeff/    : LCM/GCD reduction of a rational vector to coprime integers
//		• balancer/ : conservation matrix, orchestration, typed stage errors
//
// ✨ Why exact?
//
//   - Pivots are found by Sign() == 0, never by a tolerance
//   - Results are bit-for-bit reproducible across platforms
//   - Every returned coefficient vector is re-checked: M·c = 0 over the integers
//
// ⚙️ Surfaces (cmd/stoich):
//
//	stoich balance "H2 + O2 -> H2O"      one-shot, text/json/yaml
//	stoich repl                          interactive loop
//	stoich batch reactions.yaml          YAML list, concurrent
//	stoich explain "Fe + O2 -> Fe2O3"    markdown report of every stage
//	stoich serve --addr :8080            HTTP API + prometheus metrics
//	stoich mcp                           MCP tools over stdio
//
// Quick example:
//
//	b, err := balancer.Balance("Al + O2 -> Al2O3")
//	if err != nil { ... }
//	fmt.Println(b) // 4 Al + 3 O2 -> 2 Al2O3
//
// Limits: no parentheses or hydrate dots, no charges, and for reactions with
// more than one independent balancing the first null-space vector is used,
// which then fails with ErrInvalidCoefficients.
package stoich

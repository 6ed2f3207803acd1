// Package coeff reduces a rational vector to the smallest vector of positive
// integers with the same ratios.
//
// Algorithm:
//  1. L = lcm of all denominators.
//  2. Scale every entry by L (now integers); any entry ≤ 0 is rejected.
//  3. G = gcd of the scaled entries; divide every entry by G.
//
// The result has gcd 1 as a set and every entry ≥ 1.
package coeff

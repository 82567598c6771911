// Package ievalg implements the symbolic algebra underlying the MAB problem:
// given a rank-r unit upper-triangular matrix M over a small prime field with
// a prescribed sub-diagonal zero pattern, find unit upper-triangular matrices
// A and B such that A·A = I, B·B = I, and A·B = M.
//
// This package provides the algebra: [PrimeField] arithmetic, Laurent
// [Monomial]s, [Polynomial]s over a prime field, [UT] (unit upper-triangular
// matrix) multiplication, [Subconj] masking, and common-factor extraction.
// The search itself lives in the [github.com/ivan-efimov/ievalg/mab] package,
// built on top of this one.
package ievalg

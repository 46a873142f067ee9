// Package pbf implements multilinear pseudo-Boolean functions: polynomials
// over {0,1}-valued variables represented as a finite map from variable
// sets (terms) to nonzero coefficients.
//
// A PBF f over variables x_j ∈ {0,1} has the semantics
//
//	f(x) = Σ_{ω ∈ support(f)} c_ω · Π_{j ∈ ω} x_j
//
// with the empty set standing for the constant term. Because x² = x over
// {0,1}, every product reduces to multilinear form: terms are sets, and
// multiplying terms takes their union.
//
// Representation invariants (maintained by every operation):
//   - no term maps to a zero coefficient; assigning zero deletes the term;
//   - terms are canonical: sorted ascending, no duplicates;
//   - the support is finite.
//
// The package provides exact arithmetic (sum, difference, product, scalar
// scaling, fast exponentiation), substitution and evaluation, degree
// analysis, loose lower/upper bounds used for penalty sizing, and
// coefficient discretization. Pure operations never mutate their
// receivers; *Assign variants mutate in place and observably agree with
// the pure definitions.
//
// Errors:
//
//	ErrDivisionByZero   - scalar division by zero.
//	ErrNegativeExponent - Pow with a negative exponent.
//	ErrNotConstant      - scalar extraction from a non-constant PBF.
//	ErrDiscretization   - no admissible integer scaling within the limit.
package pbf

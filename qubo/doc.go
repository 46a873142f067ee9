// Package qubo holds the emitted target model: a scalar quadratic
// objective over binary variables,
//
//	E(x) = xᵀQx + c,   x ∈ {0,1}ⁿ,
//
// with Q stored upper-triangular. Diagonal entries carry the linear
// coefficients (x² = x over binaries) and each off-diagonal pair (i, j),
// i < j, carries the full quadratic coefficient of x_i·x_j. This is the
// one convention the compiler emits; consumers wanting the symmetric
// form split the off-diagonal entries in half.
//
// Model.Sense records whether the objective is to be minimized or
// maximized; the coefficients are always stated in the original sense.
//
// Triplets exports the sparse (i, j, value) view consumed by sampler
// adapters.
package qubo

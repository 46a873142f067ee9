// Package compiler reformulates a bounded mixed-variable optimization
// model into a Quadratic Unconstrained Binary Optimization problem.
//
// The pipeline, driven by Compile:
//
//  1. Encode every source variable into binary targets through the
//     virtual model's configured encodings (vmodel + encode).
//  2. Translate the objective and each constraint into pseudo-Boolean
//     functions by substituting each source variable with its expansion.
//     Equalities square their residual; inequalities gain an encoded
//     slack first; SOS1 squares the one-hot residual over the member
//     variables plus a slack binary.
//  3. Size the penalty weights ρ (constraint), θ (variable encoding),
//     and η (slack encoding) from the objective gap, unless the caller
//     overrode them through model attributes.
//  4. Assemble the Hamiltonian H = f + Σρ·g + Σθ·h + Σiη·s, negating
//     for maximization so the reduction always sees a minimization.
//  5. Quadratize any degree-≥3 terms by auxiliary substitution.
//  6. Emit the canonical quadratic form: an upper-triangular Q with
//     linear terms on the diagonal, plus a scalar offset (qubo.Model).
//
// Compilation follows the state machine NotStarted → InProgress →
// LocallyCompiled, or Failed on any fatal error; the virtual model must
// be Reset before a retry. Valid binary solutions of the emitted model
// map back to source values through DecodeSolution.
package compiler

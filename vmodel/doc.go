// Package vmodel maintains the virtual model: the registry binding
// source variables to their binary encodings, the intermediate
// pseudo-Boolean functions produced during compilation, and the
// attribute layer configuring how a model compiles.
//
// A Model owns an ordered list of encode.Variable records together with
// source→variable and target→variable lookup maps. Registration enforces
// the ownership invariants: a source variable is encoded at most once,
// and every target index belongs to exactly one virtual variable. Target
// indices are handed out by the model's allocator in a deterministic
// monotone order.
//
// During compilation the model accumulates the objective PBF f, one
// violation PBF g (and optional slack penalty s) per constraint, one
// encoding penalty h per constrained source variable, the penalty
// weights ρ, θ, η, and the working Hamiltonian H. Reset drops all of
// this derived state and returns the model to StatusNotStarted;
// attributes and per-entity overrides survive a reset.
//
// The model is single-writer: no operation may run concurrently with
// any other operation on the same Model. Distinct models are fully
// independent.
package vmodel

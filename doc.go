// Package toqubo compiles bounded mixed-variable optimization models —
// integer, real-interval, and binary variables under linear and
// quadratic objectives with equality, inequality, and SOS1 constraints —
// into Quadratic Unconstrained Binary Optimization problems.
//
// What you get:
//   - Exact pseudo-Boolean algebra: multilinear polynomials over {0,1}
//     variables with arithmetic, substitution, bounds, discretization
//   - Pluggable variable encodings: mirror, linear, unary, binary,
//     arithmetic-progression, one-hot, domain-wall — sized by bit budget
//     or tolerance, with validity penalties where the encoding needs one
//   - A virtual model registry binding sources to binary targets, with
//     per-model defaults and per-entity attribute overrides
//   - Constraint translation with automatic slack variables and
//     gap-based penalty sizing
//   - Degree reduction to a quadratic form by auxiliary substitution,
//     reproducible under the stable-quadratization attribute
//   - A canonical emitted model: upper-triangular Q, scalar offset,
//     sparse triplet export for sampler adapters, and a faithful
//     back-mapping from binary solutions to source values
//
// Everything lives in five subpackages:
//
//	pbf/      — pseudo-Boolean functions: the algebra under everything
//	encode/   — variable encodings: one source variable → binary targets
//	vmodel/   — the virtual model: registry, attributes, status
//	compiler/ — translation, penalty sizing, quadratization, emission
//	qubo/     — the emitted target model
//
// Quick example, minimizing x + y subject to x + y ≥ 1 over binaries:
//
//	src := compiler.NewSource()
//	src.AddVariable(0, compiler.Bounds{Kind: compiler.ZeroOne})
//	src.AddVariable(1, compiler.Bounds{Kind: compiler.ZeroOne})
//	src.Objective.Linear = []compiler.LinearTerm{{V: 0, Coef: 1}, {V: 1, Coef: 1}}
//	src.AddConstraint(compiler.Constraint{
//		Kind: compiler.GreaterEqual,
//		Fn:   compiler.Function{Linear: []compiler.LinearTerm{{V: 0, Coef: 1}, {V: 1, Coef: 1}}},
//		RHS:  1,
//	})
//
//	vm := vmodel.New()
//	target, err := compiler.Compile(src, vm)
//	// target.Q, target.Offset: minimize xᵀQx + c over x ∈ {0,1}ⁿ
//	// compiler.DecodeSolution(vm, x) maps a sample back to x₀, x₁.
//
// The compiler is a pure in-process library: single-threaded, no I/O,
// no solver. Samplers and modeling-language adapters sit on top of the
// qubo.Model triplet export and the vmodel status surface.
package toqubo

// Package compiler sentinel errors and the source-model value types.
package compiler

import (
	"errors"

	"github.com/psrenergy/toqubo/pbf"
	"github.com/psrenergy/toqubo/qubo"
)

// Sentinel errors for compilation.
var (
	// ErrCompilationFailure wraps every fatal compile error; the virtual
	// model transitions to StatusFailed and no target model is emitted.
	ErrCompilationFailure = errors.New("compiler: compilation failure")

	// ErrMissingBounds indicates a source variable without a fully
	// determined domain.
	ErrMissingBounds = errors.New("compiler: variable bounds not determined")

	// ErrUnknownVariable indicates an expression referencing a variable
	// the source model never declared.
	ErrUnknownVariable = errors.New("compiler: expression references undeclared variable")

	// ErrInfeasibleConstraint indicates an inequality whose slack range
	// is empty (right-hand side below the function's lower bound).
	ErrInfeasibleConstraint = errors.New("compiler: constraint infeasible over variable bounds")

	// ErrUnsupportedFeature indicates a constraint kind the translator
	// cannot handle; Supports lets callers avoid it.
	ErrUnsupportedFeature = errors.New("compiler: unsupported constraint")

	// ErrQuadratizationIncomplete indicates a degree-≥3 term survived to
	// emission. With quadratization disabled this is the expected failure
	// for higher-degree Hamiltonians.
	ErrQuadratizationIncomplete = errors.New("compiler: degree-3+ term after quadratization")

	// ErrNotReset indicates Compile on a model that already ran; Reset first.
	ErrNotReset = errors.New("compiler: virtual model requires reset")
)

// BoundKind classifies a source variable's domain declaration.
type BoundKind int

const (
	// BoundNone marks an undeclared domain; compilation rejects it.
	BoundNone BoundKind = iota
	// ZeroOne declares a binary variable.
	ZeroOne
	// IntegerBound declares an integer interval [Min, Max].
	IntegerBound
	// IntervalBound declares a real interval [Min, Max].
	IntervalBound
)

// Bounds is a source variable's domain.
type Bounds struct {
	Kind     BoundKind
	Min, Max float64
}

// LinearTerm is the affine summand Coef·x_V.
type LinearTerm struct {
	V    pbf.VI
	Coef float64
}

// QuadTerm is the quadratic summand Coef·x_U·x_V. U == V is legal and
// collapses multilinearly (x² = x), so a diagonal term contributes
// Coef·x_U; callers following the ½xᵀQx convention halve diagonal
// coefficients before building the term.
type QuadTerm struct {
	U, V pbf.VI
	Coef float64
}

// Function is a scalar polynomial over source variables:
// Constant + Σ Linear + Σ Quad.
type Function struct {
	Constant float64
	Linear   []LinearTerm
	Quad     []QuadTerm
}

// ConstraintKind classifies a source constraint.
type ConstraintKind int

const (
	// EqualTo constrains Fn == RHS.
	EqualTo ConstraintKind = iota
	// LessEqual constrains Fn ≤ RHS.
	LessEqual
	// GreaterEqual constrains Fn ≥ RHS; normalized to LessEqual by negation.
	GreaterEqual
	// SOS1 constrains at most one of Vars to be nonzero.
	SOS1
)

// Constraint is one source constraint. Fn and RHS apply to the relation
// kinds; Vars applies to SOS1.
type Constraint struct {
	Kind ConstraintKind
	Fn   Function
	RHS  float64
	Vars []pbf.VI
}

// Source is the ingested source model: declared variables with bounds,
// the objective sense and function, and the constraint list.
type Source struct {
	Variables   []pbf.VI
	Bounds      map[pbf.VI]Bounds
	Sense       qubo.Sense
	Objective   Function
	Constraints []Constraint
}

// NewSource returns an empty minimization model.
func NewSource() *Source {
	return &Source{Bounds: make(map[pbf.VI]Bounds)}
}

// AddVariable declares a source variable with its bounds.
func (s *Source) AddVariable(v pbf.VI, b Bounds) {
	s.Variables = append(s.Variables, v)
	s.Bounds[v] = b
}

// AddConstraint appends a constraint and returns its index.
func (s *Source) AddConstraint(c Constraint) int {
	s.Constraints = append(s.Constraints, c)

	return len(s.Constraints) - 1
}

// Supports reports whether the translator handles the constraint kind.
// It never fails; callers consult it instead of probing Compile.
func Supports(kind ConstraintKind) bool {
	switch kind {
	case EqualTo, LessEqual, GreaterEqual, SOS1:
		return true
	default:
		return false
	}
}

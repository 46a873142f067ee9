// Package compiler translation pass: variable encoding, expression
// substitution, constraint reformulation, and penalty sizing.
package compiler

import (
	"fmt"
	"math"

	"github.com/psrenergy/toqubo/encode"
	"github.com/psrenergy/toqubo/pbf"
	"github.com/psrenergy/toqubo/qubo"
	"github.com/psrenergy/toqubo/vmodel"
)

// encodeVariables walks the declared source variables in order and
// registers one virtual variable per source. ZeroOne variables always
// mirror; integer and interval variables use the resolved per-variable
// encoding attributes.
func encodeVariables(src *Source, vm *vmodel.Model) error {
	for _, v := range src.Variables {
		b, ok := src.Bounds[v]
		if !ok || b.Kind == BoundNone {
			return fmt.Errorf("%w: x%d", ErrMissingBounds, int(v))
		}

		var (
			method encode.Method
			dom    encode.Domain
			opts   []encode.Option
		)
		switch b.Kind {
		case ZeroOne:
			method = encode.Mirror
			dom = encode.IntegerDomain(0, 1)
		case IntegerBound:
			method = vm.EncodingFor(v)
			dom = encode.IntegerDomain(b.Min, b.Max)
		case IntervalBound:
			method = vm.EncodingFor(v)
			dom = encode.RealDomain(b.Min, b.Max)
		}
		if n := vm.BitsFor(v); n != 0 {
			opts = append(opts, encode.WithBits(n))
		}
		if tol := vm.ToleranceFor(v); tol != 0 {
			opts = append(opts, encode.WithTolerance(tol))
		}

		source := v
		vv, err := encode.Encode(method, &source, dom, vm.Allocate, opts...)
		if err != nil {
			return fmt.Errorf("encoding x%d: %w", int(v), err)
		}
		if err = vm.Register(vv); err != nil {
			return fmt.Errorf("registering x%d: %w", int(v), err)
		}
	}

	return nil
}

// translateFunction substitutes every source variable with its expansion
// and returns the resulting PBF over target variables.
//
// Affine terms accumulate c·ξ_x; quadratic terms accumulate c·ξ_x·ξ_y
// with multilinear collapse (so a diagonal term c·x·x contributes c·x);
// the constant lands on the empty term.
func translateFunction(fn Function, vm *vmodel.Model) (*pbf.PBF, error) {
	out := pbf.New()
	out.AddTerm(nil, fn.Constant)

	for _, lt := range fn.Linear {
		xi, err := vm.ExpansionOf(lt.V)
		if err != nil {
			return nil, fmt.Errorf("%w: x%d", ErrUnknownVariable, int(lt.V))
		}
		out.MulAddAssign(xi, lt.Coef)
	}

	for _, qt := range fn.Quad {
		xu, err := vm.ExpansionOf(qt.U)
		if err != nil {
			return nil, fmt.Errorf("%w: x%d", ErrUnknownVariable, int(qt.U))
		}
		xv, err := vm.ExpansionOf(qt.V)
		if err != nil {
			return nil, fmt.Errorf("%w: x%d", ErrUnknownVariable, int(qt.V))
		}
		out.MulAddAssign(xu.Mul(xv), qt.Coef)
	}

	return out, nil
}

// penaltyMagnitude is the default weight 1 + ⌈gap(f)⌉ against the
// translated objective. The sign flips for maximization so penalties
// always push violations away from the optimum.
func penaltyMagnitude(objective *pbf.PBF, sense qubo.Sense) float64 {
	w := 1 + math.Ceil(objective.Gap())
	if sense == qubo.Maximize {
		return -w
	}

	return w
}

// translateConstraint reformulates one source constraint into its
// violation PBF g, registering slack auxiliaries as needed, and fills
// the constraint entry (weights are sized by the caller).
func translateConstraint(c Constraint, vm *vmodel.Model) (*vmodel.ConstraintEntry, error) {
	switch c.Kind {
	case EqualTo, LessEqual, GreaterEqual:
		return translateRelation(c, vm)
	case SOS1:
		return translateSOS1(c, vm)
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedFeature, int(c.Kind))
	}
}

// translateRelation handles Fn (==|≤|≥) RHS.
//
// Equalities square the residual directly. Inequalities first gain an
// encoded slack s over [0, RHS − lower(φ)] so that φ − RHS + s = 0 is
// forced, then square. GreaterEqual negates into LessEqual.
func translateRelation(c Constraint, vm *vmodel.Model) (*vmodel.ConstraintEntry, error) {
	phi, err := translateFunction(c.Fn, vm)
	if err != nil {
		return nil, err
	}
	rhs := c.RHS
	if c.Kind == GreaterEqual {
		phi.ScaleAssign(-1)
		rhs = -rhs
	}

	// residual = φ − rhs
	phi.AddTerm(nil, -rhs)

	entry := &vmodel.ConstraintEntry{}
	if c.Kind != EqualTo {
		span := -phi.LowerBound()
		if span < 0 {
			return nil, ErrInfeasibleConstraint
		}
		slack, err := encode.Encode(vm.SlackEncoding(), nil,
			encode.IntegerDomain(0, math.Floor(span)), vm.Allocate)
		if err != nil {
			return nil, fmt.Errorf("encoding slack: %w", err)
		}
		if err = vm.Register(slack); err != nil {
			return nil, fmt.Errorf("registering slack: %w", err)
		}
		phi.AddAssign(slack.Expansion)
		entry.Slack = slack.Penalty
	}

	entry.Violation = phi.Mul(phi)

	return entry, nil
}

// translateSOS1 builds the at-most-one violation over the member
// variables: a slack binary z absorbs the all-zero case and
// g = (Σ ξ_xᵢ + z − 1)² vanishes exactly when at most one member is set.
func translateSOS1(c Constraint, vm *vmodel.Model) (*vmodel.ConstraintEntry, error) {
	sum := pbf.Constant(-1)
	for _, x := range c.Vars {
		xi, err := vm.ExpansionOf(x)
		if err != nil {
			return nil, fmt.Errorf("%w: x%d", ErrUnknownVariable, int(x))
		}
		sum.AddAssign(xi)
	}

	z := encode.MirrorAux(vm.Allocate)
	if err := vm.Register(z); err != nil {
		return nil, fmt.Errorf("registering sos1 slack: %w", err)
	}
	sum.AddAssign(z.Expansion)

	return &vmodel.ConstraintEntry{Violation: sum.Mul(sum)}, nil
}

// Package encode core types, options, and sentinel errors.
package encode

import (
	"errors"
	"math"

	"github.com/psrenergy/toqubo/pbf"
)

// Sentinel errors for encoding operations.
var (
	// ErrInvalidTolerance indicates a tolerance ≤ 0.
	ErrInvalidTolerance = errors.New("encode: tolerance must be positive")

	// ErrInvalidBits indicates a negative bit budget, or a real-domain
	// level encoding (OneHot, DomainWall) with fewer than two levels.
	// A zero budget means unset.
	ErrInvalidBits = errors.New("encode: bit budget must be positive")

	// ErrEmptyDomain indicates an integer domain with ⌈min⌉ > ⌊max⌋.
	ErrEmptyDomain = errors.New("encode: empty integer domain after conventioning")

	// ErrBitsRequired indicates a real domain with neither a bit budget
	// nor a tolerance to derive one from.
	ErrBitsRequired = errors.New("encode: real domain requires bits or tolerance")

	// ErrInvalidMethod indicates an unknown encoding method, or a method
	// without a closed-form tolerance sizing rule.
	ErrInvalidMethod = errors.New("encode: invalid encoding method")

	// ErrLinearSpec indicates Linear encoding without caller coefficients.
	ErrLinearSpec = errors.New("encode: linear encoding requires coefficients")
)

// Method selects an encoding strategy. It is the tag of the encoding
// variant dispatched by Encode.
type Method int

const (
	// Mirror is the one-to-one binary passthrough y ≡ x.
	Mirror Method = iota
	// Linear uses caller-supplied coefficients and offset.
	Linear
	// Unary uses unit coefficients.
	Unary
	// Binary uses powers of two with a capped top coefficient.
	Binary
	// Arithmetic uses arithmetic-progression coefficients.
	Arithmetic
	// OneHot uses one bit per admissible value with a validity penalty.
	OneHot
	// DomainWall uses the sequential encoding with a monotone-prefix penalty.
	DomainWall
)

// String implements fmt.Stringer for attribute reporting.
func (m Method) String() string {
	switch m {
	case Mirror:
		return "Mirror"
	case Linear:
		return "Linear"
	case Unary:
		return "Unary"
	case Binary:
		return "Binary"
	case Arithmetic:
		return "Arithmetic"
	case OneHot:
		return "OneHot"
	case DomainWall:
		return "DomainWall"
	default:
		return "Unknown"
	}
}

// Domain is a bounded source-variable domain [Min, Max]. Integer selects
// the integer conventioning α = ⌈min⌉, β = ⌊max⌋.
type Domain struct {
	Min, Max float64
	Integer  bool
}

// IntegerDomain is shorthand for an integer interval [a, b].
func IntegerDomain(a, b float64) Domain { return Domain{Min: a, Max: b, Integer: true} }

// RealDomain is shorthand for a real interval [a, b].
func RealDomain(a, b float64) Domain { return Domain{Min: a, Max: b} }

// convention applies the integer conventioning and returns (α, M).
//
// Errors: ErrEmptyDomain when ⌈min⌉ > ⌊max⌋.
func (d Domain) convention() (alpha float64, m int, err error) {
	lo, hi := d.Min, d.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	alpha = math.Ceil(lo)
	beta := math.Floor(hi)
	if beta < alpha {
		return 0, 0, ErrEmptyDomain
	}

	return alpha, int(beta - alpha), nil
}

// Allocator supplies n fresh target variable indices. Implementations
// must allocate in a deterministic monotone order.
type Allocator func(n int) []pbf.VI

// Variable bundles one encoded source variable (or auxiliary): the
// encoding tag, the optional source handle, the ordered target list, the
// expansion ξ over the targets, and the optional validity penalty h.
type Variable struct {
	Method    Method
	Source    *pbf.VI
	Targets   []pbf.VI
	Expansion *pbf.PBF
	Penalty   *pbf.PBF
}

// IsAux reports whether the variable has no source (quadratizer or slack
// auxiliaries).
func (v *Variable) IsAux() bool { return v.Source == nil }

// Decode evaluates the expansion under a full target assignment and
// returns the source-space value. This is the faithful back-mapping from
// binary solutions to original-variable values.
func (v *Variable) Decode(assign map[pbf.VI]bool) float64 {
	return v.Expansion.Value(assign)
}

// Valid reports whether the target assignment satisfies the encoding
// penalty (vacuously true for encodings without one).
func (v *Variable) Valid(assign map[pbf.VI]bool) bool {
	if v.Penalty == nil {
		return true
	}

	return v.Penalty.Value(assign) == 0
}

// Option configures an Encode call.
type Option func(*options)

type options struct {
	bits      int
	tol       float64
	alpha     float64
	gammas    []float64
	linearSet bool
}

// WithBits sets an explicit bit budget. Required for real domains unless
// WithTolerance is given; ignored for integer domains, whose budget is
// determined by the conventioned width.
func WithBits(n int) Option {
	return func(o *options) { o.bits = n }
}

// WithTolerance derives the bit budget from a target approximation error
// via the closed-form rules in sizing.go.
func WithTolerance(tol float64) Option {
	return func(o *options) { o.tol = tol }
}

// WithLinear supplies the offset and coefficients for Linear encoding:
// ξ = alpha + Σ gammas[i]·y_i.
func WithLinear(alpha float64, gammas []float64) Option {
	return func(o *options) {
		o.alpha = alpha
		o.gammas = gammas
		o.linearSet = true
	}
}

// Package vmodel core types, sentinel errors, and the attribute defaults.
package vmodel

import (
	"errors"

	"github.com/psrenergy/toqubo/encode"
	"github.com/psrenergy/toqubo/pbf"
)

// Sentinel errors for virtual-model operations.
var (
	// ErrSourceEncoded indicates the source variable already owns an encoding.
	ErrSourceEncoded = errors.New("vmodel: source variable already encoded")

	// ErrTargetOwned indicates a target index already belongs to another
	// virtual variable.
	ErrTargetOwned = errors.New("vmodel: target variable already owned")

	// ErrUnknownSource indicates a lookup for a source variable with no encoding.
	ErrUnknownSource = errors.New("vmodel: unknown source variable")

	// ErrUnknownTarget indicates a lookup for an unregistered target variable.
	ErrUnknownTarget = errors.New("vmodel: unknown target variable")

	// ErrConstraintIndex indicates a constraint index out of range.
	ErrConstraintIndex = errors.New("vmodel: constraint index out of range")
)

// Status is the compilation state of a Model.
type Status int

const (
	// StatusNotStarted is the initial (and post-Reset) state.
	StatusNotStarted Status = iota
	// StatusInProgress is set while compile runs.
	StatusInProgress
	// StatusLocallyCompiled is the terminal success state.
	StatusLocallyCompiled
	// StatusFailed is the terminal failure state; RawStatus carries the reason.
	StatusFailed
)

// String implements fmt.Stringer for status reporting.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "NotStarted"
	case StatusInProgress:
		return "InProgress"
	case StatusLocallyCompiled:
		return "LocallyCompiled"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// QuadMethod names a degree-reduction algorithm.
type QuadMethod int

const (
	// PairSubstitution is Rosenberg-style product substitution: the most
	// frequent variable pair inside high-degree terms is replaced by a
	// fresh auxiliary enforced by a dominating penalty.
	PairSubstitution QuadMethod = iota
)

// String implements fmt.Stringer for attribute reporting.
func (q QuadMethod) String() string {
	switch q {
	case PairSubstitution:
		return "PairSubstitution"
	default:
		return "Unknown"
	}
}

// Attribute defaults; the single source of truth for zero-value behavior.
const (
	// DefaultArchitecture selects the generic (architecture-agnostic) code path.
	DefaultArchitecture = "generic"

	// DefaultQuadratize enables degree reduction.
	DefaultQuadratize = true

	// DefaultQuadratizationMethod is the reduction algorithm used when
	// none is configured.
	DefaultQuadratizationMethod = PairSubstitution

	// DefaultStableQuadratization leaves the stable-quadratization
	// attribute unset. PairSubstitution visits terms in sorted order and
	// allocates auxiliaries reproducibly whether or not it is set.
	DefaultStableQuadratization = false

	// DefaultEncodingMethod is the fallback encoding for non-binary
	// source variables.
	DefaultEncodingMethod = encode.Binary

	// DefaultSlackEncodingMethod encodes inequality slacks.
	DefaultSlackEncodingMethod = encode.Binary
)

// ConstraintEntry holds the per-constraint compilation products: the
// violation PBF g, the optional slack encoding penalty s, and the
// weights ρ (constraint) and η (slack).
type ConstraintEntry struct {
	Violation *pbf.PBF
	Slack     *pbf.PBF
	Rho       float64
	Eta       float64
}

// PenaltyEntry holds the per-source-variable encoding penalty h and its
// weight θ.
type PenaltyEntry struct {
	Penalty *pbf.PBF
	Theta   float64
}

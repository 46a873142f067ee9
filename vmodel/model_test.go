package vmodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psrenergy/toqubo/encode"
	"github.com/psrenergy/toqubo/pbf"
	"github.com/psrenergy/toqubo/vmodel"
)

func encodeInto(t *testing.T, m *vmodel.Model, method encode.Method, source pbf.VI, a, b float64) *encode.Variable {
	t.Helper()
	vv, err := encode.Encode(method, &source, encode.IntegerDomain(a, b), m.Allocate)
	require.NoError(t, err)
	require.NoError(t, m.Register(vv))

	return vv
}

func TestAllocate_MonotoneContiguous(t *testing.T) {
	m := vmodel.New()
	first := m.Allocate(3)
	second := m.Allocate(2)
	require.Equal(t, []pbf.VI{0, 1, 2}, first)
	require.Equal(t, []pbf.VI{3, 4}, second)
	require.Equal(t, 5, m.TargetCount())
}

func TestRegister_LookupRoundTrip(t *testing.T) {
	m := vmodel.New()
	vv := encodeInto(t, m, encode.Unary, 10, 0, 3)

	got, ok := m.LookupSource(10)
	require.True(t, ok)
	require.Same(t, vv, got)

	for _, tgt := range vv.Targets {
		owner, ok := m.LookupTarget(tgt)
		require.True(t, ok)
		require.Same(t, vv, owner)
	}

	xi, err := m.ExpansionOf(10)
	require.NoError(t, err)
	require.Same(t, vv.Expansion, xi)

	_, err = m.ExpansionOf(99)
	require.ErrorIs(t, err, vmodel.ErrUnknownSource)
}

func TestRegister_DuplicateSourceRejected(t *testing.T) {
	m := vmodel.New()
	encodeInto(t, m, encode.Unary, 10, 0, 3)

	s := pbf.VI(10)
	vv, err := encode.Encode(encode.Binary, &s, encode.IntegerDomain(0, 3), m.Allocate)
	require.NoError(t, err)
	require.ErrorIs(t, m.Register(vv), vmodel.ErrSourceEncoded)
}

func TestRegister_ForeignTargetRejected(t *testing.T) {
	m := vmodel.New()
	vv := encodeInto(t, m, encode.Unary, 10, 0, 2)

	// A hand-built variable reusing an owned target must be rejected.
	stolen := &encode.Variable{
		Method:    encode.Mirror,
		Targets:   []pbf.VI{vv.Targets[0]},
		Expansion: pbf.Var(vv.Targets[0]),
	}
	require.ErrorIs(t, m.Register(stolen), vmodel.ErrTargetOwned)
}

func TestAttributes_OverrideThenDefault(t *testing.T) {
	m := vmodel.New(
		vmodel.WithDefaultEncoding(encode.Unary),
		vmodel.WithDefaultBits(4),
		vmodel.WithDefaultTolerance(0.25),
	)

	require.Equal(t, encode.Unary, m.EncodingFor(1))
	require.Equal(t, 4, m.BitsFor(1))
	require.Equal(t, 0.25, m.ToleranceFor(1))

	m.SetVariableEncodingMethod(1, encode.OneHot)
	m.SetVariableEncodingBits(1, 7)
	m.SetVariableEncodingTolerance(1, 0.5)
	require.Equal(t, encode.OneHot, m.EncodingFor(1))
	require.Equal(t, 7, m.BitsFor(1))
	require.Equal(t, 0.5, m.ToleranceFor(1))

	// Untouched variables keep the defaults.
	require.Equal(t, encode.Unary, m.EncodingFor(2))
}

func TestAttributes_PenaltyOverrides(t *testing.T) {
	m := vmodel.New()

	_, ok := m.ConstraintPenaltyOverride(0)
	require.False(t, ok)

	m.SetConstraintPenalty(0, 12)
	m.SetSlackPenalty(0, 3)
	m.SetVariableEncodingPenalty(5, 7)

	rho, ok := m.ConstraintPenaltyOverride(0)
	require.True(t, ok)
	require.Equal(t, 12.0, rho)
	eta, ok := m.SlackPenaltyOverride(0)
	require.True(t, ok)
	require.Equal(t, 3.0, eta)
	theta, ok := m.VariablePenaltyOverride(5)
	require.True(t, ok)
	require.Equal(t, 7.0, theta)
}

func TestStatus_TransitionsAndRawString(t *testing.T) {
	m := vmodel.New()
	require.Equal(t, vmodel.StatusNotStarted, m.Status())
	require.Equal(t, "NotStarted", m.RawStatus())

	m.SetStatus(vmodel.StatusInProgress)
	require.Equal(t, "InProgress", m.RawStatus())

	m.SetFailure("missing bound on x3")
	require.Equal(t, vmodel.StatusFailed, m.Status())
	require.Equal(t, "missing bound on x3", m.RawStatus())

	m.SetStatus(vmodel.StatusLocallyCompiled)
	require.Equal(t, "LocallyCompiled", m.RawStatus())
}

func TestReset_DropsDerivedKeepsAttributes(t *testing.T) {
	m := vmodel.New(vmodel.WithDefaultEncoding(encode.OneHot))
	m.SetConstraintPenalty(0, 9)
	encodeInto(t, m, encode.Unary, 10, 0, 3)
	m.SetObjective(pbf.Constant(1))
	m.AppendConstraint(&vmodel.ConstraintEntry{Violation: pbf.Constant(0)})
	m.SetVariablePenaltyEntry(10, &vmodel.PenaltyEntry{Penalty: pbf.New()})
	m.SetHamiltonian(pbf.Constant(2))
	m.SetStatus(vmodel.StatusLocallyCompiled)

	m.Reset()
	m.Reset() // idempotent

	require.Equal(t, vmodel.StatusNotStarted, m.Status())
	require.Equal(t, 0, m.TargetCount())
	require.Empty(t, m.Variables())
	require.Nil(t, m.Objective())
	require.Nil(t, m.Hamiltonian())
	require.Equal(t, 0, m.ConstraintCount())
	_, ok := m.LookupSource(10)
	require.False(t, ok)

	// Attributes and overrides survive.
	require.Equal(t, encode.OneHot, m.EncodingFor(1))
	rho, ok := m.ConstraintPenaltyOverride(0)
	require.True(t, ok)
	require.Equal(t, 9.0, rho)
}

func TestPenaltySources_SortedAscending(t *testing.T) {
	m := vmodel.New()
	for _, x := range []pbf.VI{9, 2, 5} {
		m.SetVariablePenaltyEntry(x, &vmodel.PenaltyEntry{Penalty: pbf.New()})
	}
	require.Equal(t, []pbf.VI{2, 5, 9}, m.PenaltySources())
}

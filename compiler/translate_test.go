package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psrenergy/toqubo/encode"
	"github.com/psrenergy/toqubo/pbf"
	"github.com/psrenergy/toqubo/qubo"
	"github.com/psrenergy/toqubo/vmodel"
)

// mirrorModel registers Mirror encodings for the given sources.
func mirrorModel(t *testing.T, sources ...pbf.VI) *vmodel.Model {
	t.Helper()
	vm := vmodel.New()
	for _, s := range sources {
		src := s
		vv, err := encode.Encode(encode.Mirror, &src, encode.IntegerDomain(0, 1), vm.Allocate)
		require.NoError(t, err)
		require.NoError(t, vm.Register(vv))
	}
	return vm
}

func TestTranslateFunction_AffineSubstitution(t *testing.T) {
	vm := vmodel.New()
	// x₅ unary over [2, 4]: ξ = 2 + y₀ + y₁.
	s := pbf.VI(5)
	vv, err := encode.Encode(encode.Unary, &s, encode.IntegerDomain(2, 4), vm.Allocate)
	require.NoError(t, err)
	require.NoError(t, vm.Register(vv))

	// 3·x₅ + 1 → 7 + 3y₀ + 3y₁
	got, err := translateFunction(Function{
		Constant: 1,
		Linear:   []LinearTerm{{V: 5, Coef: 3}},
	}, vm)
	require.NoError(t, err)

	want := pbf.New()
	want.Insert(nil, 7)
	want.Insert([]pbf.VI{0}, 3)
	want.Insert([]pbf.VI{1}, 3)
	require.True(t, got.Equal(want), "got %s", got)
}

func TestTranslateFunction_QuadraticProduct(t *testing.T) {
	vm := mirrorModel(t, 0, 1)

	// 2·x₀·x₁ over mirrors → 2·y₀y₁
	got, err := translateFunction(Function{
		Quad: []QuadTerm{{U: 0, V: 1, Coef: 2}},
	}, vm)
	require.NoError(t, err)
	require.Equal(t, 2.0, got.Coefficient([]pbf.VI{0, 1}))
	require.Equal(t, 1, got.Len())
}

func TestTranslateFunction_DiagonalCollapses(t *testing.T) {
	vm := mirrorModel(t, 0)

	// c·x₀·x₀ collapses to c·y₀ over binaries.
	got, err := translateFunction(Function{
		Quad: []QuadTerm{{U: 0, V: 0, Coef: -1}},
	}, vm)
	require.NoError(t, err)
	require.Equal(t, -1.0, got.Coefficient([]pbf.VI{0}))
	require.Equal(t, 1, got.Len())
}

func TestTranslateFunction_UnknownVariable(t *testing.T) {
	vm := mirrorModel(t, 0)
	_, err := translateFunction(Function{Linear: []LinearTerm{{V: 9, Coef: 1}}}, vm)
	require.ErrorIs(t, err, ErrUnknownVariable)
}

func TestTranslateSOS1_ZeroOnAtMostOne(t *testing.T) {
	vm := mirrorModel(t, 0, 1, 2)
	entry, err := translateSOS1(Constraint{Kind: SOS1, Vars: []pbf.VI{0, 1, 2}}, vm)
	require.NoError(t, err)

	// Slack binary is target 3; g = (y₀+y₁+y₂+z−1)².
	z := pbf.VI(3)
	for mask := 0; mask < 16; mask++ {
		a := bruteAssign(4, mask)
		ones := 0
		for _, v := range []pbf.VI{0, 1, 2} {
			if a[v] {
				ones++
			}
		}
		g := entry.Violation.Value(a)
		require.GreaterOrEqual(t, g, 0.0)
		if ones > 1 {
			require.Positive(t, g, "mask=%d", mask)
			continue
		}
		// At most one member set: the slack can always settle g to zero.
		aZero := map[pbf.VI]bool{0: a[0], 1: a[1], 2: a[2], z: ones == 0}
		require.Zero(t, entry.Violation.Value(aZero), "mask=%d", mask)
	}
}

func TestTranslateRelation_EqualitySquaresResidual(t *testing.T) {
	vm := mirrorModel(t, 0, 1)
	entry, err := translateRelation(Constraint{
		Kind: EqualTo,
		Fn:   Function{Linear: []LinearTerm{{V: 0, Coef: 1}, {V: 1, Coef: 1}}},
		RHS:  1,
	}, vm)
	require.NoError(t, err)
	require.Nil(t, entry.Slack)

	// (y₀+y₁−1)² is 1, 0, 0, 1 over the four assignments.
	require.Equal(t, 1.0, entry.Violation.Value(bruteAssign(2, 0)))
	require.Equal(t, 0.0, entry.Violation.Value(bruteAssign(2, 1)))
	require.Equal(t, 0.0, entry.Violation.Value(bruteAssign(2, 2)))
	require.Equal(t, 1.0, entry.Violation.Value(bruteAssign(2, 3)))
}

func TestTranslateRelation_InfeasibleSlackRange(t *testing.T) {
	vm := mirrorModel(t, 0)
	_, err := translateRelation(Constraint{
		Kind: GreaterEqual,
		Fn:   Function{Linear: []LinearTerm{{V: 0, Coef: 1}}},
		RHS:  3,
	}, vm)
	require.ErrorIs(t, err, ErrInfeasibleConstraint)
}

func TestPenaltyMagnitude_SenseSign(t *testing.T) {
	f := pbf.New()
	f.Insert([]pbf.VI{0}, 3)
	f.Insert([]pbf.VI{1}, -2)
	// gap = 5 → magnitude 6.
	require.Equal(t, 6.0, penaltyMagnitude(f, qubo.Minimize))
	require.Equal(t, -6.0, penaltyMagnitude(f, qubo.Maximize))
}

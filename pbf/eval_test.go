package pbf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psrenergy/toqubo/pbf"
)

func TestEvaluate_PartialResidual(t *testing.T) {
	// f = 1 + 2x + 3xy + 4yz
	f := pbf.New()
	f.Insert(nil, 1)
	f.Insert([]pbf.VI{x}, 2)
	f.Insert([]pbf.VI{x, y}, 3)
	f.Insert([]pbf.VI{y, z}, 4)

	// x = 1: f|x=1 = 3 + 3y + 4yz
	res := f.Evaluate(map[pbf.VI]bool{x: true})
	want := pbf.New()
	want.Insert(nil, 3)
	want.Insert([]pbf.VI{y}, 3)
	want.Insert([]pbf.VI{y, z}, 4)
	require.True(t, res.Equal(want), "residual = %s", res)

	// y = 0: terms containing y drop.
	res = f.Evaluate(map[pbf.VI]bool{y: false})
	want = pbf.New()
	want.Insert(nil, 1)
	want.Insert([]pbf.VI{x}, 2)
	require.True(t, res.Equal(want), "residual = %s", res)
}

func TestEvaluate_ResidualAccumulates(t *testing.T) {
	// f = x + xy; at y=1 both terms become x and must merge.
	f := pbf.New()
	f.Insert([]pbf.VI{x}, 1)
	f.Insert([]pbf.VI{x, y}, 1)

	res := f.Evaluate(map[pbf.VI]bool{y: true})
	require.Equal(t, 1, res.Len())
	require.Equal(t, 2.0, res.Coefficient([]pbf.VI{x}))
}

func TestValue_MatchesBooleanSumDefinition(t *testing.T) {
	f := pbf.New()
	f.Insert(nil, 1)
	f.Insert([]pbf.VI{x}, 2)
	f.Insert([]pbf.VI{x, y}, 3)
	f.Insert([]pbf.VI{y, z}, 4)

	// Exhaust all 8 assignments and compare with the explicit definition.
	for mask := 0; mask < 8; mask++ {
		xs := mask&1 != 0
		ys := mask&2 != 0
		zs := mask&4 != 0
		assign := map[pbf.VI]bool{x: xs, y: ys, z: zs}

		want := 1.0
		if xs {
			want += 2
		}
		if xs && ys {
			want += 3
		}
		if ys && zs {
			want += 4
		}
		require.Equal(t, want, f.Value(assign), "mask=%d", mask)
	}
}

func TestValue_AgreesWithEvaluate(t *testing.T) {
	f := pbf.New()
	f.Insert([]pbf.VI{x, y, z}, 5)
	f.Insert([]pbf.VI{y}, -2)

	full := map[pbf.VI]bool{x: true, y: true, z: true}
	res := f.Evaluate(full)
	v, err := res.ConstantValue()
	require.NoError(t, err)
	require.Equal(t, f.Value(full), v)
}

func TestDiscretize_IntegerRoundTrip(t *testing.T) {
	f := pbf.New()
	f.Insert(nil, 3)
	f.Insert([]pbf.VI{x}, -7)
	f.Insert([]pbf.VI{x, y}, 12)

	g, k, err := f.Discretize(1e-9)
	require.NoError(t, err)
	require.Equal(t, 1.0, k)
	require.True(t, g.Equal(f))
}

func TestDiscretize_ScalesFractions(t *testing.T) {
	// Coefficients in quarters scale by 4.
	f := pbf.New()
	f.Insert(nil, 0.25)
	f.Insert([]pbf.VI{x}, 0.5)
	f.Insert([]pbf.VI{x, y}, -0.75)

	g, k, err := f.Discretize(1e-9)
	require.NoError(t, err)
	require.Equal(t, 4.0, k)
	require.Equal(t, 1.0, g.ConstantTerm())
	require.Equal(t, 2.0, g.Coefficient([]pbf.VI{x}))
	require.Equal(t, -3.0, g.Coefficient([]pbf.VI{x, y}))
}

func TestBounds_LooseSums(t *testing.T) {
	// f = 2 + 3x − 5xy: lower = 2−5 = −3, upper = 2+3 = 5, gap = 8.
	f := pbf.New()
	f.Insert(nil, 2)
	f.Insert([]pbf.VI{x}, 3)
	f.Insert([]pbf.VI{x, y}, -5)

	require.Equal(t, -3.0, f.LowerBound())
	require.Equal(t, 5.0, f.UpperBound())
	require.Equal(t, 8.0, f.Gap())
	require.Equal(t, 2, f.Degree())
	require.Equal(t, 0, pbf.Constant(9).Degree())
}

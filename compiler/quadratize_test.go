package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psrenergy/toqubo/pbf"
)

// bruteAssign builds the assignment mapping VI i to bit i of mask.
func bruteAssign(n int, mask int) map[pbf.VI]bool {
	a := make(map[pbf.VI]bool, n)
	for i := 0; i < n; i++ {
		a[pbf.VI(i)] = mask&(1<<i) != 0
	}
	return a
}

// testAlloc hands out fresh VIs starting after the original variables.
func testAlloc(start pbf.VI) func(n int) []pbf.VI {
	next := start
	return func(n int) []pbf.VI {
		out := make([]pbf.VI, n)
		for i := range out {
			out[i] = next
			next++
		}
		return out
	}
}

func TestQuadratize_CubicProjectsGroundValues(t *testing.T) {
	// f = 2xyz − 5xz + 1 over x=0, y=1, z=2.
	f := pbf.New()
	f.Insert([]pbf.VI{0, 1, 2}, 2)
	f.Insert([]pbf.VI{0, 2}, -5)
	f.Insert(nil, 1)

	reduced := quadratizePBF(f, testAlloc(3))
	require.LessOrEqual(t, reduced.Degree(), 2)

	// Count auxiliaries from the support.
	maxVI := pbf.VI(2)
	for _, tc := range reduced.Terms() {
		for _, v := range tc.Vars {
			if v > maxVI {
				maxVI = v
			}
		}
	}
	aux := int(maxVI) - 2

	// For every original assignment, minimizing over the auxiliaries
	// recovers the original value.
	for mask := 0; mask < 8; mask++ {
		orig := f.Value(bruteAssign(3, mask))
		best := 0.0
		for amask := 0; amask < 1<<aux; amask++ {
			a := bruteAssign(3+aux, mask|(amask<<3))
			v := reduced.Value(a)
			if amask == 0 || v < best {
				best = v
			}
		}
		require.Equal(t, orig, best, "mask=%d", mask)
	}
}

func TestQuadratize_QuarticMixedSigns(t *testing.T) {
	// f = 3wxyz − 4xyz + 2wy − 1 over w=0, x=1, y=2, z=3.
	f := pbf.New()
	f.Insert([]pbf.VI{0, 1, 2, 3}, 3)
	f.Insert([]pbf.VI{1, 2, 3}, -4)
	f.Insert([]pbf.VI{0, 2}, 2)
	f.Insert(nil, -1)

	reduced := quadratizePBF(f, testAlloc(4))
	require.LessOrEqual(t, reduced.Degree(), 2)

	maxVI := pbf.VI(3)
	for _, tc := range reduced.Terms() {
		for _, v := range tc.Vars {
			if v > maxVI {
				maxVI = v
			}
		}
	}
	aux := int(maxVI) - 3

	for mask := 0; mask < 16; mask++ {
		orig := f.Value(bruteAssign(4, mask))
		best := 0.0
		for amask := 0; amask < 1<<aux; amask++ {
			a := bruteAssign(4+aux, mask|(amask<<4))
			v := reduced.Value(a)
			if amask == 0 || v < best {
				best = v
			}
		}
		require.Equal(t, orig, best, "mask=%d", mask)
	}
}

func TestQuadratize_AlreadyQuadraticUntouched(t *testing.T) {
	f := pbf.New()
	f.Insert([]pbf.VI{0, 1}, 2)
	f.Insert([]pbf.VI{1}, -1)

	reduced := quadratizePBF(f, testAlloc(2))
	require.True(t, reduced.Equal(f))
}

func TestQuadratize_Deterministic(t *testing.T) {
	build := func() *pbf.PBF {
		f := pbf.New()
		f.Insert([]pbf.VI{0, 1, 2}, 1)
		f.Insert([]pbf.VI{0, 1, 3}, 2)
		f.Insert([]pbf.VI{1, 2, 3}, -3)
		return f
	}

	a := quadratizePBF(build(), testAlloc(4))
	b := quadratizePBF(build(), testAlloc(4))
	require.True(t, a.Equal(b))
}

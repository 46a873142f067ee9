package pbf

import "math"

// discretizeLimit bounds the integer-multiplier search in Discretize.
const discretizeLimit = 1 << 20

// Discretize finds the smallest positive integer k such that k·c is
// within tol of an integer for every coefficient c of f, and returns the
// scaled-and-rounded PBF together with the factor k.
//
// Contracts:
//   - tol is expected to be > 0; with tol == 0 only factors making every
//     k·c exactly integral qualify, and a negative tol admits no factor;
//   - integer-coefficient inputs round-trip unchanged with k = 1.
//
// Errors: ErrDiscretization when no k ≤ 2²⁰ is admissible.
//
// Complexity: O(k·|f|) for the returned factor k.
func (f *PBF) Discretize(tol float64) (*PBF, float64, error) {
	for k := 1; k <= discretizeLimit; k++ {
		kf := float64(k)
		ok := true
		for _, e := range f.terms {
			scaled := e.coef * kf
			if math.Abs(scaled-math.Round(scaled)) > tol {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		out := New()
		for _, e := range f.terms {
			out.Insert(e.vars, math.Round(e.coef*kf))
		}

		return out, kf, nil
	}

	return nil, 0, ErrDiscretization
}

package pbf

// Evaluate substitutes a partial Boolean assignment into f and returns
// the residual PBF over the remaining variables.
//
// Contracts:
//   - terms containing a variable assigned 0 are dropped;
//   - variables assigned 1 are removed from their term sets, coefficients
//     of colliding residual terms accumulate;
//   - unassigned variables pass through untouched.
//
// Complexity: O(|f|·d) for maximum term size d.
func (f *PBF) Evaluate(assign map[VI]bool) *PBF {
	out := New()
	residual := make(Term, 0, 8)
	for _, e := range f.terms {
		residual = residual[:0]
		dropped := false
		for _, v := range e.vars {
			val, ok := assign[v]
			switch {
			case !ok:
				residual = append(residual, v)
			case !val:
				dropped = true
			}
			if dropped {
				break
			}
		}
		if dropped {
			continue
		}
		// residual preserves sorted order: filtering keeps relative order.
		t := make(Term, len(residual))
		copy(t, residual)
		out.addCanonical(t, termKey(t), e.coef)
	}

	return out
}

// Value evaluates f under a full assignment and returns the scalar
//
//	Σ { c_ω : ω ⊆ ones(assign) }.
//
// Variables absent from assign are treated as 0; the caller is expected
// to cover the support.
// Complexity: O(|f|·d).
func (f *PBF) Value(assign map[VI]bool) float64 {
	total := 0.0
	for _, e := range f.terms {
		active := true
		for _, v := range e.vars {
			if !assign[v] {
				active = false
				break
			}
		}
		if active {
			total += e.coef
		}
	}

	return total
}

// Package compiler degree reduction: Rosenberg-style pair substitution.
package compiler

import (
	"github.com/psrenergy/toqubo/encode"
	"github.com/psrenergy/toqubo/pbf"
)

// pairCount tracks how often a variable pair occurs inside degree-≥3 terms.
type pairCount struct {
	u, v  pbf.VI
	count int
}

// quadratizePBF reduces h to degree ≤ 2 by repeatedly substituting the
// most frequent variable pair inside high-degree terms with a fresh
// auxiliary binary w, enforced by the dominating penalty
//
//	M·(u·v − 2·u·w − 2·v·w + 3·w)
//
// which is zero exactly when w = u·v and at least M otherwise, so the
// ground state of the reduced function projects onto that of h.
//
// Contracts:
//   - alloc supplies fresh targets; the caller registers them as Mirror
//     virtual variables;
//   - the reduction assumes minimization;
//   - term visiting order is sorted (pbf.Terms) and ties break on the
//     lexicographically smallest pair, so auxiliary introduction order
//     is reproducible. The stable attribute promises this determinism;
//     the implementation provides it unconditionally.
//
// Complexity: O(r·|h|·d²) for r substitution rounds.
func quadratizePBF(h *pbf.PBF, alloc encode.Allocator) *pbf.PBF {
	current := h.Clone()

	for {
		terms := current.Terms()
		best, ok := mostFrequentPair(terms)
		if !ok {
			return current
		}

		aux := alloc(1)[0]
		next := pbf.NewCapacity(current.Len() + 4)
		weight := 1.0
		for _, tc := range terms {
			if len(tc.Vars) >= 3 && containsPair(tc.Vars, best.u, best.v) {
				next.AddTerm(substitutePair(tc.Vars, best.u, best.v, aux), tc.Coef)
				if tc.Coef < 0 {
					weight -= tc.Coef
				} else {
					weight += tc.Coef
				}
				continue
			}
			next.AddTerm(tc.Vars, tc.Coef)
		}

		// Dominating penalty forcing w = u·v at the ground state.
		next.AddTerm([]pbf.VI{best.u, best.v}, weight)
		next.AddTerm([]pbf.VI{best.u, aux}, -2*weight)
		next.AddTerm([]pbf.VI{best.v, aux}, -2*weight)
		next.AddTerm([]pbf.VI{aux}, 3*weight)

		current = next
	}
}

// mostFrequentPair scans sorted terms for the pair occurring in the most
// degree-≥3 terms. Ties break on the smaller (u, v).
func mostFrequentPair(terms []pbf.TermCoef) (pairCount, bool) {
	counts := make(map[[2]pbf.VI]int)
	order := make([][2]pbf.VI, 0, 16)
	for _, tc := range terms {
		if len(tc.Vars) < 3 {
			continue
		}
		for i := 0; i < len(tc.Vars); i++ {
			for j := i + 1; j < len(tc.Vars); j++ {
				key := [2]pbf.VI{tc.Vars[i], tc.Vars[j]}
				if _, seen := counts[key]; !seen {
					order = append(order, key)
				}
				counts[key]++
			}
		}
	}
	if len(order) == 0 {
		return pairCount{}, false
	}

	best := pairCount{count: -1}
	for _, key := range order {
		c := counts[key]
		if c > best.count || (c == best.count && lessPair(key, [2]pbf.VI{best.u, best.v})) {
			best = pairCount{u: key[0], v: key[1], count: c}
		}
	}

	return best, true
}

func lessPair(a, b [2]pbf.VI) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}

	return a[1] < b[1]
}

// containsPair reports whether the sorted term contains both u and v.
func containsPair(t pbf.Term, u, v pbf.VI) bool {
	foundU, foundV := false, false
	for _, x := range t {
		if x == u {
			foundU = true
		}
		if x == v {
			foundV = true
		}
	}

	return foundU && foundV
}

// substitutePair returns the term with u and v replaced by aux.
func substitutePair(t pbf.Term, u, v, aux pbf.VI) []pbf.VI {
	out := make([]pbf.VI, 0, len(t)-1)
	for _, x := range t {
		if x != u && x != v {
			out = append(out, x)
		}
	}

	return append(out, aux)
}

// Package compiler emission of the canonical quadratic form.
package compiler

import (
	"fmt"

	"github.com/psrenergy/toqubo/pbf"
	"github.com/psrenergy/toqubo/qubo"
)

// emit converts the degree-≤2 Hamiltonian into the target model:
// constants accumulate into the offset, singletons onto the diagonal,
// pairs into the upper triangle. Terms are visited in sorted order so
// repeated emission is byte-identical.
//
// Errors: ErrQuadratizationIncomplete on any term with three or more
// variables.
func emit(h *pbf.PBF, size int, sense qubo.Sense) (*qubo.Model, error) {
	q, err := qubo.NewDense(size)
	if err != nil {
		return nil, err
	}
	out := &qubo.Model{Q: q, Sense: sense}

	for _, tc := range h.Terms() {
		switch len(tc.Vars) {
		case 0:
			out.Offset += tc.Coef
		case 1:
			i := int(tc.Vars[0])
			if err = q.AddAt(i, i, tc.Coef); err != nil {
				return nil, err
			}
		case 2:
			if err = q.AddAt(int(tc.Vars[0]), int(tc.Vars[1]), tc.Coef); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: |ω| = %d", ErrQuadratizationIncomplete, len(tc.Vars))
		}
	}

	return out, nil
}

// Package compiler Hamiltonian assembly.
package compiler

import (
	"github.com/psrenergy/toqubo/pbf"
	"github.com/psrenergy/toqubo/vmodel"
)

// assemble builds the working Hamiltonian
//
//	H = f + Σ ρᵢ·gᵢ + Σ θₓ·hₓ + Σ ηᵢ·sᵢ
//
// in deterministic order: objective, constraints by index, variable
// penalties by ascending source VI. Weights carry the sense sign, so H
// is always stated in the original objective sense.
func assemble(vm *vmodel.Model) *pbf.PBF {
	f := vm.Objective()

	capacity := f.Len()
	for i := 0; i < vm.ConstraintCount(); i++ {
		e, _ := vm.Constraint(i)
		capacity += e.Violation.Len()
		if e.Slack != nil {
			capacity += e.Slack.Len()
		}
	}
	sources := vm.PenaltySources()
	for _, x := range sources {
		e, _ := vm.VariablePenaltyEntry(x)
		capacity += e.Penalty.Len()
	}

	h := pbf.NewCapacity(capacity)
	h.AddAssign(f)
	for i := 0; i < vm.ConstraintCount(); i++ {
		e, _ := vm.Constraint(i)
		h.MulAddAssign(e.Violation, e.Rho)
		if e.Slack != nil {
			h.MulAddAssign(e.Slack, e.Eta)
		}
	}
	for _, x := range sources {
		e, _ := vm.VariablePenaltyEntry(x)
		h.MulAddAssign(e.Penalty, e.Theta)
	}

	return h
}

// Package compiler pipeline driver.
package compiler

import (
	"fmt"
	"time"

	"github.com/psrenergy/toqubo/encode"
	"github.com/psrenergy/toqubo/pbf"
	"github.com/psrenergy/toqubo/qubo"
	"github.com/psrenergy/toqubo/vmodel"
)

// Compile reformulates src into a QUBO through vm, which must be fresh
// or Reset. On success the virtual model is LocallyCompiled and holds
// every intermediate product; on failure it is Failed with the reason in
// RawStatus and no target model is emitted.
//
// Errors: ErrNotReset on a used model; everything else wraps
// ErrCompilationFailure together with the underlying sentinel, so both
// errors.Is checks work.
func Compile(src *Source, vm *vmodel.Model) (*qubo.Model, error) {
	if vm.Status() != vmodel.StatusNotStarted {
		return nil, ErrNotReset
	}
	vm.SetStatus(vmodel.StatusInProgress)
	start := time.Now()

	target, err := compile(src, vm)
	vm.SetCompilationTime(time.Since(start))
	if err != nil {
		vm.SetFailure(err.Error())
		return nil, fmt.Errorf("%w: %w", ErrCompilationFailure, err)
	}
	vm.SetStatus(vmodel.StatusLocallyCompiled)

	return target, nil
}

// compile runs the pipeline stages; Compile handles state transitions.
func compile(src *Source, vm *vmodel.Model) (*qubo.Model, error) {
	// Stage 1 - encode every source variable.
	if err := encodeVariables(src, vm); err != nil {
		return nil, err
	}

	// Stage 2 - translate the objective.
	f, err := translateFunction(src.Objective, vm)
	if err != nil {
		return nil, err
	}
	vm.SetObjective(f)

	// Stage 3 - translate constraints and size ρ/η.
	defaultWeight := penaltyMagnitude(f, src.Sense)
	for i, c := range src.Constraints {
		entry, cerr := translateConstraint(c, vm)
		if cerr != nil {
			return nil, fmt.Errorf("constraint %d: %w", i, cerr)
		}
		if rho, ok := vm.ConstraintPenaltyOverride(i); ok {
			entry.Rho = rho
		} else {
			entry.Rho = defaultWeight
		}
		if entry.Slack != nil {
			if eta, ok := vm.SlackPenaltyOverride(i); ok {
				entry.Eta = eta
			} else {
				entry.Eta = defaultWeight
			}
		}
		vm.AppendConstraint(entry)
	}

	// Stage 4 - size θ for every encoding that carries a penalty.
	for _, vv := range vm.Variables() {
		if vv.Penalty == nil || vv.Source == nil {
			continue
		}
		entry := &vmodel.PenaltyEntry{Penalty: vv.Penalty}
		if theta, ok := vm.VariablePenaltyOverride(*vv.Source); ok {
			entry.Theta = theta
		} else {
			entry.Theta = defaultWeight
		}
		vm.SetVariablePenaltyEntry(*vv.Source, entry)
	}

	// Stage 5 - assemble H in the original sense.
	h := assemble(vm)

	// Stage 6 - quadratize under minimization.
	if src.Sense == qubo.Maximize {
		h.ScaleAssign(-1)
	}
	if vm.Quadratize() && h.Degree() > 2 {
		h = quadratizePBF(h, func(n int) []pbf.VI {
			targets := make([]pbf.VI, 0, n)
			for i := 0; i < n; i++ {
				aux := encode.MirrorAux(vm.Allocate)
				// Fresh targets cannot collide; Register only errors on reuse.
				_ = vm.Register(aux)
				targets = append(targets, aux.Targets[0])
			}
			return targets
		})
	}
	if src.Sense == qubo.Maximize {
		h.ScaleAssign(-1)
	}
	vm.SetHamiltonian(h)

	// Stage 7 - emit the canonical quadratic form.
	return emit(h, vm.TargetCount(), src.Sense)
}

// DecodeSolution maps a binary assignment of the emitted model back to
// source-variable values through each registered expansion. Auxiliary
// variables (slacks, quadratizer binaries) are skipped.
//
// Contracts: len(x) == the emitted model size; x[i] is the value of
// target variable i.
func DecodeSolution(vm *vmodel.Model, x []bool) map[pbf.VI]float64 {
	assign := make(map[pbf.VI]bool, len(x))
	for i, v := range x {
		assign[pbf.VI(i)] = v
	}

	out := make(map[pbf.VI]float64)
	for _, vv := range vm.Variables() {
		if vv.Source == nil {
			continue
		}
		out[*vv.Source] = vv.Decode(assign)
	}

	return out
}

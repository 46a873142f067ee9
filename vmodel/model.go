package vmodel

import (
	"time"

	"github.com/psrenergy/toqubo/encode"
	"github.com/psrenergy/toqubo/pbf"
)

// Model is the virtual model: encoding registry, intermediate PBFs,
// penalty weights, and compilation state. Construct with New; the zero
// value is not usable.
type Model struct {
	opts options
	over overrides

	vars       []*encode.Variable
	bySource   map[pbf.VI]*encode.Variable
	byTarget   map[pbf.VI]*encode.Variable
	nextTarget pbf.VI

	objective   *pbf.PBF
	constraints []*ConstraintEntry
	penalties   map[pbf.VI]*PenaltyEntry
	ham         *pbf.PBF

	status    Status
	rawStatus string
	compTime  time.Duration
}

// New creates an empty virtual model with the given attribute defaults.
func New(opts ...Option) *Model {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Model{
		opts:      o,
		over:      newOverrides(),
		bySource:  make(map[pbf.VI]*encode.Variable),
		byTarget:  make(map[pbf.VI]*encode.Variable),
		penalties: make(map[pbf.VI]*PenaltyEntry),
	}
}

// Allocate hands out n fresh target indices in monotone order.
func (m *Model) Allocate(n int) []pbf.VI {
	out := make([]pbf.VI, n)
	for i := range out {
		out[i] = m.nextTarget
		m.nextTarget++
	}

	return out
}

// TargetCount returns the number of target indices allocated so far.
func (m *Model) TargetCount() int { return int(m.nextTarget) }

// Register appends vv to the model, binding its source (when present)
// and claiming its targets.
//
// Errors: ErrSourceEncoded when the source already owns an encoding;
// ErrTargetOwned when any target belongs to another virtual variable.
func (m *Model) Register(vv *encode.Variable) error {
	if vv.Source != nil {
		if _, dup := m.bySource[*vv.Source]; dup {
			return ErrSourceEncoded
		}
	}
	for _, t := range vv.Targets {
		if _, dup := m.byTarget[t]; dup {
			return ErrTargetOwned
		}
	}

	m.vars = append(m.vars, vv)
	if vv.Source != nil {
		m.bySource[*vv.Source] = vv
	}
	for _, t := range vv.Targets {
		m.byTarget[t] = vv
	}

	return nil
}

// Variables returns the registered virtual variables in registration order.
func (m *Model) Variables() []*encode.Variable {
	out := make([]*encode.Variable, len(m.vars))
	copy(out, m.vars)

	return out
}

// LookupSource returns the virtual variable encoding source x.
func (m *Model) LookupSource(x pbf.VI) (*encode.Variable, bool) {
	vv, ok := m.bySource[x]

	return vv, ok
}

// LookupTarget returns the virtual variable owning target y.
func (m *Model) LookupTarget(y pbf.VI) (*encode.Variable, bool) {
	vv, ok := m.byTarget[y]

	return vv, ok
}

// ExpansionOf returns the expansion ξ of the virtual variable encoding x.
//
// Errors: ErrUnknownSource when x has no encoding.
func (m *Model) ExpansionOf(x pbf.VI) (*pbf.PBF, error) {
	vv, ok := m.bySource[x]
	if !ok {
		return nil, ErrUnknownSource
	}

	return vv.Expansion, nil
}

// ---------- per-entity attribute overrides ----------

// SetVariableEncodingMethod overrides the encoding method for source x.
func (m *Model) SetVariableEncodingMethod(x pbf.VI, method encode.Method) {
	m.over.method[int(x)] = method
}

// SetVariableEncodingBits overrides the bit budget for source x.
func (m *Model) SetVariableEncodingBits(x pbf.VI, n int) {
	m.over.bits[int(x)] = n
}

// SetVariableEncodingTolerance overrides the tolerance for source x.
func (m *Model) SetVariableEncodingTolerance(x pbf.VI, tol float64) {
	m.over.tolerance[int(x)] = tol
}

// SetVariableEncodingPenalty overrides the computed θ for source x.
func (m *Model) SetVariableEncodingPenalty(x pbf.VI, theta float64) {
	m.over.theta[int(x)] = theta
}

// SetConstraintPenalty overrides the computed ρ for constraint i.
func (m *Model) SetConstraintPenalty(i int, rho float64) {
	m.over.rho[i] = rho
}

// SetSlackPenalty overrides the computed η for constraint i's slack.
func (m *Model) SetSlackPenalty(i int, eta float64) {
	m.over.eta[i] = eta
}

// EncodingFor resolves the encoding method for source x:
// per-variable override, then the model default.
func (m *Model) EncodingFor(x pbf.VI) encode.Method {
	if method, ok := m.over.method[int(x)]; ok {
		return method
	}

	return m.opts.encoding
}

// BitsFor resolves the bit budget for source x (0 means unset).
func (m *Model) BitsFor(x pbf.VI) int {
	if n, ok := m.over.bits[int(x)]; ok {
		return n
	}

	return m.opts.bits
}

// ToleranceFor resolves the tolerance for source x (0 means unset).
func (m *Model) ToleranceFor(x pbf.VI) float64 {
	if tol, ok := m.over.tolerance[int(x)]; ok {
		return tol
	}

	return m.opts.tolerance
}

// VariablePenaltyOverride reports a caller-set θ for source x.
func (m *Model) VariablePenaltyOverride(x pbf.VI) (float64, bool) {
	theta, ok := m.over.theta[int(x)]

	return theta, ok
}

// ConstraintPenaltyOverride reports a caller-set ρ for constraint i.
func (m *Model) ConstraintPenaltyOverride(i int) (float64, bool) {
	rho, ok := m.over.rho[i]

	return rho, ok
}

// SlackPenaltyOverride reports a caller-set η for constraint i.
func (m *Model) SlackPenaltyOverride(i int) (float64, bool) {
	eta, ok := m.over.eta[i]

	return eta, ok
}

// ---------- compilation products ----------

// SetObjective stores the translated objective PBF f.
func (m *Model) SetObjective(f *pbf.PBF) { m.objective = f }

// Objective returns the translated objective PBF (nil before compile).
func (m *Model) Objective() *pbf.PBF { return m.objective }

// AppendConstraint stores one constraint's compilation products and
// returns its index.
func (m *Model) AppendConstraint(e *ConstraintEntry) int {
	m.constraints = append(m.constraints, e)

	return len(m.constraints) - 1
}

// Constraint returns the compilation products of constraint i.
//
// Errors: ErrConstraintIndex when i is out of range.
func (m *Model) Constraint(i int) (*ConstraintEntry, error) {
	if i < 0 || i >= len(m.constraints) {
		return nil, ErrConstraintIndex
	}

	return m.constraints[i], nil
}

// ConstraintCount returns the number of compiled constraints.
func (m *Model) ConstraintCount() int { return len(m.constraints) }

// SetVariablePenaltyEntry stores the encoding penalty products of source x.
func (m *Model) SetVariablePenaltyEntry(x pbf.VI, e *PenaltyEntry) {
	m.penalties[x] = e
}

// VariablePenaltyEntry returns the encoding penalty products of source x.
func (m *Model) VariablePenaltyEntry(x pbf.VI) (*PenaltyEntry, bool) {
	e, ok := m.penalties[x]

	return e, ok
}

// PenaltySources returns the source VIs carrying encoding penalties, in
// ascending order for deterministic assembly.
func (m *Model) PenaltySources() []pbf.VI {
	out := make([]pbf.VI, 0, len(m.penalties))
	for x := range m.penalties {
		out = append(out, x)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}

// SetHamiltonian stores the working Hamiltonian H.
func (m *Model) SetHamiltonian(h *pbf.PBF) { m.ham = h }

// Hamiltonian returns the working Hamiltonian (nil before assembly).
func (m *Model) Hamiltonian() *pbf.PBF { return m.ham }

// ---------- compilation state ----------

// Status returns the compilation status.
func (m *Model) Status() Status { return m.status }

// RawStatus returns the raw status string (failure reason, or the
// status name).
func (m *Model) RawStatus() string {
	if m.rawStatus != "" {
		return m.rawStatus
	}

	return m.status.String()
}

// SetStatus transitions the compilation status.
func (m *Model) SetStatus(s Status) {
	m.status = s
	if s != StatusFailed {
		m.rawStatus = ""
	}
}

// SetFailure transitions to StatusFailed with a raw reason string.
func (m *Model) SetFailure(reason string) {
	m.status = StatusFailed
	m.rawStatus = reason
}

// SetCompilationTime records the wall-clock compile duration.
func (m *Model) SetCompilationTime(d time.Duration) { m.compTime = d }

// CompilationTime returns the wall-clock compile duration in seconds.
func (m *Model) CompilationTime() float64 { return m.compTime.Seconds() }

// Reset drops all derived state: registry, intermediate PBFs, weights,
// Hamiltonian, status, and timing. Attributes and per-entity overrides
// survive. Reset is idempotent.
func (m *Model) Reset() {
	m.vars = nil
	m.bySource = make(map[pbf.VI]*encode.Variable)
	m.byTarget = make(map[pbf.VI]*encode.Variable)
	m.nextTarget = 0
	m.objective = nil
	m.constraints = nil
	m.penalties = make(map[pbf.VI]*PenaltyEntry)
	m.ham = nil
	m.status = StatusNotStarted
	m.rawStatus = ""
	m.compTime = 0
}

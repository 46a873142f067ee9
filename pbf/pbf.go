// Package pbf arithmetic: constructors, term mutation, and the ring
// operations (+, −, ·, scalar scaling, fast exponentiation).
package pbf

import (
	"fmt"
	"sort"
	"strings"
)

// New returns the zero PBF (empty support).
func New() *PBF {
	return &PBF{terms: make(map[string]entry)}
}

// NewCapacity returns the zero PBF with storage pre-reserved for n terms.
func NewCapacity(n int) *PBF {
	return &PBF{terms: make(map[string]entry, n)}
}

// Constant returns the PBF with constant value c.
func Constant(c float64) *PBF {
	f := New()
	f.Insert(nil, c)

	return f
}

// Var returns the PBF consisting of the single degree-1 term 1·x_v.
func Var(v VI) *PBF {
	f := New()
	f.Insert([]VI{v}, 1)

	return f
}

// Clone returns a deep copy of f.
// Complexity: O(|f|).
func (f *PBF) Clone() *PBF {
	g := &PBF{terms: make(map[string]entry, len(f.terms))}
	for k, e := range f.terms {
		vars := make(Term, len(e.vars))
		copy(vars, e.vars)
		g.terms[k] = entry{vars: vars, coef: e.coef}
	}

	return g
}

// Insert sets the coefficient of the term over vars to c, replacing any
// previous value. A zero c deletes the term. Repeated variables collapse
// multilinearly.
func (f *PBF) Insert(vars []VI, c float64) {
	t := canonical(vars)
	k := termKey(t)
	if c == 0 {
		delete(f.terms, k)
		return
	}
	f.terms[k] = entry{vars: t, coef: c}
}

// AddTerm accumulates c into the coefficient of the term over vars.
// A resulting zero deletes the term.
func (f *PBF) AddTerm(vars []VI, c float64) {
	if c == 0 {
		return
	}
	t := canonical(vars)
	f.addCanonical(t, termKey(t), c)
}

// addCanonical accumulates c into an already-canonical term.
func (f *PBF) addCanonical(t Term, k string, c float64) {
	e, ok := f.terms[k]
	if !ok {
		f.terms[k] = entry{vars: t, coef: c}
		return
	}
	e.coef += c
	if e.coef == 0 {
		delete(f.terms, k)
		return
	}
	f.terms[k] = e
}

// Coefficient returns the coefficient of the term over vars, or 0 when
// the term is not in the support.
func (f *PBF) Coefficient(vars []VI) float64 {
	return f.terms[termKey(canonical(vars))].coef
}

// ConstantTerm returns the coefficient of the empty term.
func (f *PBF) ConstantTerm() float64 {
	return f.terms[""].coef
}

// Len returns the support size.
func (f *PBF) Len() int { return len(f.terms) }

// IsZero reports whether f has empty support.
func (f *PBF) IsZero() bool { return len(f.terms) == 0 }

// IsConstant reports whether the support contains no non-empty term.
func (f *PBF) IsConstant() bool {
	switch len(f.terms) {
	case 0:
		return true
	case 1:
		_, ok := f.terms[""]
		return ok
	default:
		return false
	}
}

// ConstantValue extracts the scalar value of a constant PBF.
//
// Errors: ErrNotConstant when the support contains a non-empty term.
func (f *PBF) ConstantValue() (float64, error) {
	if !f.IsConstant() {
		return 0, ErrNotConstant
	}

	return f.ConstantTerm(), nil
}

// AddAssign adds g into f in place.
// Complexity: O(|g|).
func (f *PBF) AddAssign(g *PBF) {
	for k, e := range g.terms {
		f.addCanonical(e.vars, k, e.coef)
	}
}

// SubAssign subtracts g from f in place.
func (f *PBF) SubAssign(g *PBF) {
	for k, e := range g.terms {
		f.addCanonical(e.vars, k, -e.coef)
	}
}

// MulAddAssign adds k·g into f in place. A zero k is a no-op.
// Complexity: O(|g|).
func (f *PBF) MulAddAssign(g *PBF, k float64) {
	if k == 0 {
		return
	}
	for key, e := range g.terms {
		f.addCanonical(e.vars, key, k*e.coef)
	}
}

// ScaleAssign multiplies every coefficient by k in place; k == 0 empties
// the support.
func (f *PBF) ScaleAssign(k float64) {
	if k == 0 {
		f.terms = make(map[string]entry)
		return
	}
	for key, e := range f.terms {
		e.coef *= k
		f.terms[key] = e
	}
}

// Add returns f + g (pointwise coefficient sum).
func (f *PBF) Add(g *PBF) *PBF {
	out := f.Clone()
	out.AddAssign(g)

	return out
}

// Sub returns f − g.
func (f *PBF) Sub(g *PBF) *PBF {
	out := f.Clone()
	out.SubAssign(g)

	return out
}

// Neg returns −f.
func (f *PBF) Neg() *PBF {
	out := f.Clone()
	out.ScaleAssign(-1)

	return out
}

// Scale returns k·f.
func (f *PBF) Scale(k float64) *PBF {
	out := f.Clone()
	out.ScaleAssign(k)

	return out
}

// Div returns f / k.
//
// Errors: ErrDivisionByZero when k == 0.
func (f *PBF) Div(k float64) (*PBF, error) {
	if k == 0 {
		return nil, ErrDivisionByZero
	}

	return f.Scale(1 / k), nil
}

// Mul returns the multilinear product f·g: for every pair of support
// terms, the coefficients multiply and the term sets union.
// Complexity: O(|f|·|g|·d) for maximum term size d.
func (f *PBF) Mul(g *PBF) *PBF {
	out := &PBF{terms: make(map[string]entry, len(f.terms)*len(g.terms))}
	for _, ef := range f.terms {
		for _, eg := range g.terms {
			u := unionTerm(ef.vars, eg.vars)
			out.addCanonical(u, termKey(u), ef.coef*eg.coef)
		}
	}

	return out
}

// Pow returns fⁿ by fast exponentiation over the multilinear product.
// f⁰ is the constant 1 for every f, including the zero PBF.
//
// Errors: ErrNegativeExponent when n < 0.
func (f *PBF) Pow(n int) (*PBF, error) {
	if n < 0 {
		return nil, ErrNegativeExponent
	}
	result := Constant(1)
	base := f.Clone()
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return result, nil
}

// Equal reports exact mapping equality of f and g.
func (f *PBF) Equal(g *PBF) bool {
	if len(f.terms) != len(g.terms) {
		return false
	}
	for k, e := range f.terms {
		o, ok := g.terms[k]
		if !ok || o.coef != e.coef {
			return false
		}
	}

	return true
}

// ApproxEqual reports coefficient-wise equality within eps over the union
// of both supports.
func (f *PBF) ApproxEqual(g *PBF, eps float64) bool {
	for k, e := range f.terms {
		if d := e.coef - g.terms[k].coef; d > eps || d < -eps {
			return false
		}
	}
	for k, e := range g.terms {
		if _, ok := f.terms[k]; ok {
			continue
		}
		if e.coef > eps || e.coef < -eps {
			return false
		}
	}

	return true
}

// Terms returns the support in deterministic order: terms sorted
// lexicographically by variable sequence (constant first). This ordering
// is the contract behind stable quadratization.
// Complexity: O(|f| log |f|).
func (f *PBF) Terms() []TermCoef {
	out := make([]TermCoef, 0, len(f.terms))
	for _, e := range f.terms {
		out = append(out, TermCoef{Vars: e.vars, Coef: e.coef})
	}
	sort.Slice(out, func(i, j int) bool { return lessTerm(out[i].Vars, out[j].Vars) })

	return out
}

// String renders f in sorted term order for debugging.
func (f *PBF) String() string {
	if f.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, tc := range f.Terms() {
		if i > 0 {
			sb.WriteString(" + ")
		}
		if len(tc.Vars) == 0 {
			sb.WriteString(fmt.Sprintf("%g", tc.Coef))
			continue
		}
		sb.WriteString(fmt.Sprintf("%g", tc.Coef))
		for _, v := range tc.Vars {
			sb.WriteString(fmt.Sprintf("·x%d", int(v)))
		}
	}

	return sb.String()
}

package pbf

// Degree returns the maximum term size of f; the zero PBF and constants
// have degree 0.
func (f *PBF) Degree() int {
	d := 0
	for _, e := range f.terms {
		if len(e.vars) > d {
			d = len(e.vars)
		}
	}

	return d
}

// LowerBound returns the loose lower bound of f over {0,1} assignments:
// the constant term plus the sum of all negative non-constant
// coefficients. This is the bound used for penalty sizing; it is exact
// only when some assignment activates every negative term while leaving
// every positive term inactive.
func (f *PBF) LowerBound() float64 {
	lo := 0.0
	for k, e := range f.terms {
		if k == "" {
			lo += e.coef
			continue
		}
		if e.coef < 0 {
			lo += e.coef
		}
	}

	return lo
}

// UpperBound returns the loose upper bound: the constant term plus the
// sum of all positive non-constant coefficients.
func (f *PBF) UpperBound() float64 {
	hi := 0.0
	for k, e := range f.terms {
		if k == "" {
			hi += e.coef
			continue
		}
		if e.coef > 0 {
			hi += e.coef
		}
	}

	return hi
}

// Gap returns UpperBound − LowerBound; always ≥ 0.
func (f *PBF) Gap() float64 {
	return f.UpperBound() - f.LowerBound()
}

// Package encode: the Encode dispatcher and per-method builders.
package encode

import (
	"math"

	"github.com/psrenergy/toqubo/pbf"
)

// Encode expands one source variable over dom into a Variable record
// using the given method. Target indices come from alloc in a single
// contiguous request, so allocation order is deterministic.
//
// Contracts:
//   - source may be nil (auxiliary variables);
//   - integer domains derive their bit budget from the conventioned
//     width M = ⌊max⌋ − ⌈min⌉; M == 0 yields a constant expansion with
//     no targets and no penalty;
//   - real domains require WithBits or WithTolerance (except Mirror and
//     Linear, which carry their own shape).
//
// Errors: ErrEmptyDomain, ErrInvalidBits, ErrInvalidTolerance,
// ErrBitsRequired, ErrLinearSpec, ErrInvalidMethod.
func Encode(m Method, source *pbf.VI, dom Domain, alloc Allocator, opts ...Option) (*Variable, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.bits < 0 {
		return nil, ErrInvalidBits
	}
	if o.tol < 0 {
		return nil, ErrInvalidTolerance
	}

	switch m {
	case Mirror:
		return mirror(source, alloc), nil
	case Linear:
		if !o.linearSet {
			return nil, ErrLinearSpec
		}
		return linear(source, o.alpha, o.gammas, alloc), nil
	case Unary, Binary, Arithmetic:
		return encodeWidth(m, source, dom, alloc, o)
	case OneHot:
		return encodeOneHot(source, dom, alloc, o)
	case DomainWall:
		return encodeDomainWall(source, dom, alloc, o)
	default:
		return nil, ErrInvalidMethod
	}
}

// MirrorAux allocates one fresh sourceless Mirror variable. This is the
// auxiliary supply used by the quadratizer and by slack-free constraint
// reformulations.
func MirrorAux(alloc Allocator) *Variable {
	return mirror(nil, alloc)
}

// mirror builds the degree-1 passthrough ξ = y.
func mirror(source *pbf.VI, alloc Allocator) *Variable {
	targets := alloc(1)

	return &Variable{
		Method:    Mirror,
		Source:    source,
		Targets:   targets,
		Expansion: pbf.Var(targets[0]),
	}
}

// linear builds ξ = alpha + Σ gammas[i]·y_i with no penalty.
func linear(source *pbf.VI, alpha float64, gammas []float64, alloc Allocator) *Variable {
	targets := alloc(len(gammas))
	xi := pbf.Constant(alpha)
	for i, g := range gammas {
		xi.AddTerm([]pbf.VI{targets[i]}, g)
	}

	return &Variable{Method: Linear, Source: source, Targets: targets, Expansion: xi}
}

// constant builds the degenerate zero-width encoding ξ = alpha.
func constant(m Method, source *pbf.VI, alpha float64) *Variable {
	return &Variable{Method: m, Source: source, Targets: nil, Expansion: pbf.Constant(alpha)}
}

// encodeWidth handles the penalty-free width encodings (Unary, Binary,
// Arithmetic) for both integer and real domains.
func encodeWidth(m Method, source *pbf.VI, dom Domain, alloc Allocator, o options) (*Variable, error) {
	if dom.Integer {
		alpha, width, err := dom.convention()
		if err != nil {
			return nil, err
		}
		if width == 0 {
			return constant(m, source, alpha), nil
		}
		v := linear(source, alpha, integerGammas(m, width), alloc)
		v.Method = m

		return v, nil
	}

	n, err := realBits(m, dom, o)
	if err != nil {
		return nil, err
	}
	lo, hi := orderedBounds(dom)
	v := linear(source, lo, realGammas(m, hi-lo, n), alloc)
	v.Method = m

	return v, nil
}

// integerGammas returns the coefficient list covering 0..M exactly.
func integerGammas(m Method, width int) []float64 {
	switch m {
	case Unary:
		// M unit bits.
		g := make([]float64, width)
		for i := range g {
			g[i] = 1
		}
		return g
	case Binary:
		// N = ⌈log₂(M+1)⌉ bits; top coefficient capped so Σγ = M.
		n := bitsBinary(width)
		g := make([]float64, n)
		for i := 0; i < n-1; i++ {
			g[i] = float64(int(1) << i)
		}
		g[n-1] = float64(width - (1 << (n - 1)) + 1)
		return g
	default: // Arithmetic
		// N = ⌈(√(1+8M)−1)/2⌉; γ = 1, 2, …, N−1, M − N(N−1)/2.
		n := bitsArithmetic(width)
		g := make([]float64, n)
		for i := 0; i < n-1; i++ {
			g[i] = float64(i + 1)
		}
		g[n-1] = float64(width - n*(n-1)/2)
		return g
	}
}

// realGammas returns the coefficient list spanning a width-d real range
// with n bits.
func realGammas(m Method, d float64, n int) []float64 {
	g := make([]float64, n)
	switch m {
	case Unary:
		step := d / float64(n)
		for i := range g {
			g[i] = step
		}
	case Binary:
		step := d / float64((uint64(1)<<n)-1)
		for i := range g {
			g[i] = step * float64(uint64(1)<<i)
		}
	default: // Arithmetic
		step := d / float64(n*(n+1)/2)
		for i := range g {
			g[i] = step * float64(i+1)
		}
	}

	return g
}

// encodeOneHot builds the one-bit-per-value encoding with penalty
// h = (1 − Σ y_i)².
func encodeOneHot(source *pbf.VI, dom Domain, alloc Allocator, o options) (*Variable, error) {
	values, err := levelValues(dom, o)
	if err != nil {
		return nil, err
	}
	if len(values) == 1 {
		return constant(OneHot, source, values[0]), nil
	}

	targets := alloc(len(values))
	xi := pbf.New()
	sum := pbf.Constant(1)
	for i, val := range values {
		xi.AddTerm([]pbf.VI{targets[i]}, val)
		sum.AddTerm([]pbf.VI{targets[i]}, -1)
	}

	return &Variable{
		Method:    OneHot,
		Source:    source,
		Targets:   targets,
		Expansion: xi,
		Penalty:   sum.Mul(sum),
	}, nil
}

// encodeDomainWall builds the sequential encoding: n levels over n−1
// bits, ξ stepping by the level gaps, and the monotone-prefix penalty
// h = 2·Σ_{i≥2} (y_i − y_i·y_{i−1}).
func encodeDomainWall(source *pbf.VI, dom Domain, alloc Allocator, o options) (*Variable, error) {
	values, err := levelValues(dom, o)
	if err != nil {
		return nil, err
	}
	if len(values) == 1 {
		return constant(DomainWall, source, values[0]), nil
	}

	targets := alloc(len(values) - 1)
	xi := pbf.Constant(values[0])
	for i := 1; i < len(values); i++ {
		xi.AddTerm([]pbf.VI{targets[i-1]}, values[i]-values[i-1])
	}

	h := pbf.New()
	for i := 1; i < len(targets); i++ {
		h.AddTerm([]pbf.VI{targets[i]}, 2)
		h.AddTerm([]pbf.VI{targets[i], targets[i-1]}, -2)
	}

	return &Variable{
		Method:    DomainWall,
		Source:    source,
		Targets:   targets,
		Expansion: xi,
		Penalty:   h,
	}, nil
}

// levelValues enumerates the admissible values of a level encoding:
// every integer in the conventioned domain, or an even real grid sized
// by the bit budget.
func levelValues(dom Domain, o options) ([]float64, error) {
	if dom.Integer {
		alpha, width, err := dom.convention()
		if err != nil {
			return nil, err
		}
		values := make([]float64, width+1)
		for i := range values {
			values[i] = alpha + float64(i)
		}
		return values, nil
	}

	if o.bits == 0 && o.tol == 0 {
		return nil, ErrBitsRequired
	}
	n := o.bits
	if n == 0 {
		// Level count from tolerance: grid step ≤ 2·tol.
		lo, hi := orderedBounds(dom)
		n = int(math.Ceil(1+(hi-lo)/(2*o.tol))) + 1
	}
	if n < 2 {
		return nil, ErrInvalidBits
	}
	lo, hi := orderedBounds(dom)
	values := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range values {
		values[i] = lo + step*float64(i)
	}

	return values, nil
}

// realBits resolves the bit budget for a real-domain width encoding.
func realBits(m Method, dom Domain, o options) (int, error) {
	if o.bits > 0 {
		return o.bits, nil
	}
	if o.tol > 0 {
		lo, hi := orderedBounds(dom)
		return Bits(m, lo, hi, o.tol)
	}

	return 0, ErrBitsRequired
}

// orderedBounds normalizes dom to (lo, hi).
func orderedBounds(dom Domain) (float64, float64) {
	if dom.Min <= dom.Max {
		return dom.Min, dom.Max
	}

	return dom.Max, dom.Min
}

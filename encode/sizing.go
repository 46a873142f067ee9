package encode

import "math"

// Bits returns the smallest bit budget for a width encoding over [a, b]
// that satisfies the closed-form tolerance rule of its method:
//
//	Unary      n ≥ 1 + |b−a| / (4·tol)
//	Binary     n ≥ ⌈log₂(1 + |b−a| / (4·tol))⌉
//	Arithmetic n ≥ ⌈(1 + √(3 + |b−a| / (2·tol))) / 2⌉
//
// For Unary and Binary the resulting grid step is below 4·tol, so every
// point of [a, b] lies within 2·tol of a representable value.
//
// Errors: ErrInvalidTolerance for tol ≤ 0; ErrInvalidMethod for methods
// without a closed-form sizing rule.
func Bits(m Method, a, b, tol float64) (int, error) {
	if tol <= 0 {
		return 0, ErrInvalidTolerance
	}
	d := math.Abs(b - a)

	var n int
	switch m {
	case Unary:
		n = int(math.Ceil(1 + d/(4*tol)))
	case Binary:
		n = int(math.Ceil(math.Log2(1 + d/(4*tol))))
	case Arithmetic:
		n = int(math.Ceil((1 + math.Sqrt(3+d/(2*tol))) / 2))
	default:
		return 0, ErrInvalidMethod
	}
	if n < 1 {
		n = 1
	}

	return n, nil
}

// bitsBinary returns ⌈log₂(M+1)⌉ for a conventioned integer width M ≥ 1.
func bitsBinary(width int) int {
	n := 0
	for (1 << n) < width+1 {
		n++
	}

	return n
}

// bitsArithmetic returns ⌈(√(1+8M)−1)/2⌉ for a conventioned width M ≥ 1.
func bitsArithmetic(width int) int {
	n := int(math.Ceil((math.Sqrt(float64(1+8*width)) - 1) / 2))
	if n < 1 {
		n = 1
	}

	return n
}

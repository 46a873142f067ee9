// Package encode expands bounded source variables into sets of binary
// target variables.
//
// Each encoding is a tagged variant (Method) with a single entry point,
// Encode, that switches on the tag. The result is a Variable record
// bundling the ordered target list, the expansion polynomial ξ mapping
// target assignments back to source values, and, for the constrained
// encodings (OneHot, DomainWall), a penalty polynomial h that is zero
// precisely on valid target patterns and strictly positive otherwise.
//
// Supported methods:
//
//	Mirror     - one-to-one binary passthrough (y ≡ x); used for {0,1}
//	             source variables and for quadratizer auxiliaries.
//	Linear     - caller-supplied coefficients: ξ = α + Σ γ_i·y_i.
//	Unary      - unit coefficients; n = β−α bits for integer domains.
//	Binary     - powers of two with a capped top coefficient.
//	Arithmetic - arithmetic-progression coefficients 1, 2, …, capped.
//	OneHot     - one bit per admissible value; h = (1 − Σ y_i)².
//	DomainWall - sequential encoding over n−1 bits with a monotone-prefix
//	             penalty.
//
// Integer domains are conventioned as α = ⌈min⌉, β = ⌊max⌋; real domains
// are used as-is and require an explicit bit budget or a tolerance from
// which the budget follows by the closed-form rules in sizing.go.
package encode

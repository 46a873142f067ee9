// Package vmodel attribute layer: model-level defaults set through
// functional options at construction, and per-entity overrides set
// through writable attributes. Getters resolve override-then-default.
package vmodel

import "github.com/psrenergy/toqubo/encode"

// Option configures model-level attribute defaults.
type Option func(*options)

type options struct {
	architecture string
	quadratize   bool
	quadMethod   QuadMethod
	stable       bool

	encoding      encode.Method
	bits          int
	tolerance     float64
	slackEncoding encode.Method
}

func defaultOptions() options {
	return options{
		architecture:  DefaultArchitecture,
		quadratize:    DefaultQuadratize,
		quadMethod:    DefaultQuadratizationMethod,
		stable:        DefaultStableQuadratization,
		encoding:      DefaultEncodingMethod,
		slackEncoding: DefaultSlackEncodingMethod,
	}
}

// WithArchitecture sets the architecture attribute. Compilation does not
// read it; every architecture compiles through the same code path.
func WithArchitecture(name string) Option {
	return func(o *options) { o.architecture = name }
}

// WithQuadratize toggles degree reduction.
func WithQuadratize(on bool) Option {
	return func(o *options) { o.quadratize = on }
}

// WithQuadratizationMethod names the reduction algorithm.
func WithQuadratizationMethod(m QuadMethod) Option {
	return func(o *options) { o.quadMethod = m }
}

// WithStableQuadratization forces deterministic term ordering and
// reproducible auxiliary introduction order.
func WithStableQuadratization(on bool) Option {
	return func(o *options) { o.stable = on }
}

// WithDefaultEncoding sets the fallback encoding method for non-binary
// source variables.
func WithDefaultEncoding(m encode.Method) Option {
	return func(o *options) { o.encoding = m }
}

// WithDefaultBits sets the fallback bit budget for real-domain encodings.
func WithDefaultBits(n int) Option {
	return func(o *options) { o.bits = n }
}

// WithDefaultTolerance sets the fallback approximation tolerance for
// real-domain encodings.
func WithDefaultTolerance(tol float64) Option {
	return func(o *options) { o.tolerance = tol }
}

// WithSlackEncoding sets the encoding used for inequality slacks.
func WithSlackEncoding(m encode.Method) Option {
	return func(o *options) { o.slackEncoding = m }
}

// overrides stores per-entity writable attributes. Constraint keys are
// source-model constraint indices; variable keys are source VIs.
type overrides struct {
	method    map[int]encode.Method // keyed by source VI (as int)
	bits      map[int]int
	tolerance map[int]float64
	theta     map[int]float64
	rho       map[int]float64
	eta       map[int]float64
}

func newOverrides() overrides {
	return overrides{
		method:    make(map[int]encode.Method),
		bits:      make(map[int]int),
		tolerance: make(map[int]float64),
		theta:     make(map[int]float64),
		rho:       make(map[int]float64),
		eta:       make(map[int]float64),
	}
}

// Architecture returns the architecture attribute.
func (m *Model) Architecture() string { return m.opts.architecture }

// Quadratize reports whether degree reduction is enabled.
func (m *Model) Quadratize() bool { return m.opts.quadratize }

// QuadratizationMethod returns the configured reduction algorithm.
func (m *Model) QuadratizationMethod() QuadMethod { return m.opts.quadMethod }

// StableQuadratization reports whether deterministic ordering is forced.
func (m *Model) StableQuadratization() bool { return m.opts.stable }

// SlackEncoding returns the encoding method used for inequality slacks.
func (m *Model) SlackEncoding() encode.Method { return m.opts.slackEncoding }

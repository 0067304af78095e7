package calculus

import (
	"go.uber.org/zap"
)

// Func is the callable every routine consumes: a pure mapping from a
// complex input to a complex output. An error marks the point as
// unevaluable (domain error, overflow); the algorithms decide whether to
// skip it or degrade.
type Func func(complex128) (complex128, error)

// Params holds the tolerances shared by all routines of one Engine.
type Params struct {
	// Tol is the convergence and error-acceptance threshold.
	Tol float64
	// Step is the differential step used by the differentiation routines.
	Step float64
	// MaxIter caps Newton-Raphson iterations.
	MaxIter int
	// MaxDepth caps the adaptive quadrature recursion.
	MaxDepth int
}

// DefaultParams returns the standard tolerances: Tol 1e-15, Step 1e-12,
// one million iterations, recursion depth 50.
func DefaultParams() Params {
	return Params{
		Tol:      1e-15,
		Step:     1e-12,
		MaxIter:  1_000_000,
		MaxDepth: 50,
	}
}

// Engine bundles tolerances with a logger for degradation diagnostics.
// Engines are immutable after construction and safe for concurrent use.
type Engine struct {
	params Params
	log    *zap.Logger
}

// New creates an engine with explicit tolerances. A nil logger is replaced
// by a no-op logger.
func New(params Params, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{params: params, log: log}
}

// NewDefault creates an engine with DefaultParams and no logging.
func NewDefault() *Engine {
	return New(DefaultParams(), nil)
}

// Params returns the engine's tolerances.
func (e *Engine) Params() Params { return e.params }

// Status tags a numerical result with how it was obtained.
type Status int

const (
	// StatusExact means the primary method ran to completion.
	StatusExact Status = iota
	// StatusFallback means an alternate method produced the result.
	StatusFallback
	// StatusDegraded means accuracy was sacrificed to stay total: skipped
	// samples, a depth-capped estimate, or a zero stand-in.
	StatusDegraded
)

func (s Status) String() string {
	switch s {
	case StatusExact:
		return "exact"
	case StatusFallback:
		return "fallback"
	case StatusDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// worst combines two statuses, keeping the more pessimistic tag.
func worst(a, b Status) Status {
	if b > a {
		return b
	}
	return a
}

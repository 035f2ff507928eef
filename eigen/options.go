// SPDX-License-Identifier: MIT

// Package eigen: functional configuration of the pipeline.
// Options fan out to the numeric layers: root finding (poly.Option) and
// elimination (matrix.Option), plus snapping, verification and logging.
package eigen

import (
	"io"
	"math"

	"github.com/katalvlaran/eigendiag/matrix"
	"github.com/katalvlaran/eigendiag/poly"
	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance drives root-finding convergence, the inverse pivot
	// threshold and the eigenspace rank threshold (relative to ‖A − λI‖∞).
	DefaultTolerance = 1e-10

	// DefaultSnapTolerance: an eigenvalue within it of an integer becomes that integer.
	DefaultSnapTolerance = 1e-10

	// DefaultResidualTolerance: a reconstruction residual above it is logged
	// as a warning. The result is still returned.
	DefaultResidualTolerance = 1e-8
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "eigen: WithTolerance: tol must be finite and > 0"
	panicSnapInvalid      = "eigen: WithSnapTolerance: tol must be finite and >= 0"
	panicResidualInvalid  = "eigen: WithResidualTolerance: tol must be finite and >= 0"
	panicLoggerNil        = "eigen: WithLogger: logger must not be nil"
)

var discard logrus.FieldLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// Option mutates internal options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps         float64
	snapTol     float64
	residualTol float64
	rootOpts    []poly.Option
	logger      logrus.FieldLogger
	trace       *Trace
}

// WithTolerance sets root-finding tolerance and the elimination pivot threshold.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}
	po := poly.WithTolerance(tol)

	return func(o *Options) {
		o.eps = tol
		o.rootOpts = append(o.rootOpts, po)
	}
}

// WithSnapTolerance sets the integer-snapping distance for eigenvalues; 0 disables snapping.
func WithSnapTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSnapInvalid)
	}

	return func(o *Options) { o.snapTol = tol }
}

// WithResidualTolerance sets the reconstruction residual warning threshold.
func WithResidualTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicResidualInvalid)
	}

	return func(o *Options) { o.residualTol = tol }
}

// WithScanSteps forwards poly.WithScanSteps.
func WithScanSteps(steps int) Option { return WithRootOptions(poly.WithScanSteps(steps)) }

// WithScanInterval forwards poly.WithScanInterval.
func WithScanInterval(lo, hi float64) Option {
	return WithRootOptions(poly.WithScanInterval(lo, hi))
}

// WithRootOptions appends raw root-finder options.
func WithRootOptions(opts ...poly.Option) Option {
	kept := append([]poly.Option(nil), opts...)

	return func(o *Options) { o.rootOpts = append(o.rootOpts, kept...) }
}

// WithLogger routes pipeline and root-finder logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithTrace makes Diagonalize fill *t with its intermediate results, also on
// failure. A nil t disables tracing.
func WithTrace(t *Trace) Option {
	return func(o *Options) { o.trace = t }
}

// gatherOptions applies user-provided Option setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:         DefaultTolerance,
		snapTol:     DefaultSnapTolerance,
		residualTol: DefaultResidualTolerance,
		logger:      discard,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// polyOptions returns the root-finder options, logger last.
func (o Options) polyOptions() []poly.Option {
	out := make([]poly.Option, 0, len(o.rootOpts)+1)
	out = append(out, o.rootOpts...)

	return append(out, poly.WithLogger(o.logger))
}

// matrixOptions returns the elimination options.
func (o Options) matrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithEpsilon(o.eps)}
}

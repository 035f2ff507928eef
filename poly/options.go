// SPDX-License-Identifier: MIT

// Package poly: functional configuration of the root finder.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package poly

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the bisection target width, the Newton step
	// threshold (relative to 1+|x|), the leading-coefficient trim threshold and
	// the quadratic double-root discriminant threshold (relative to max(b², 4|c|)).
	DefaultTolerance = 1e-10

	// DefaultScanSteps is the number of equal subdivisions of the scan interval.
	DefaultScanSteps = 1000

	// DefaultMaxIter caps both bisection and Newton iterations per bracket.
	DefaultMaxIter = 100

	// DefaultDeflationTolerance is the |remainder| above which a deflation
	// step logs a warning.
	DefaultDeflationTolerance = 1e-8

	// DefaultVanishTolerance loosens the vanishing test beyond working
	// precision: q(x) also counts as zero when |q(x)| ≤ tol·Σ|a_i|·|x|^(n−i).
	// Zero keeps the test at the Horner rounding bound.
	DefaultVanishTolerance = 0.0

	// DefaultMergeTolerance merges a newly found root into an existing one
	// when |a−b| ≤ tol·max(1, |a|).
	DefaultMergeTolerance = 1e-7
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "poly: WithTolerance: tol must be finite and > 0"
	panicStepsInvalid     = "poly: WithScanSteps: steps must be >= 1"
	panicIntervalInvalid  = "poly: WithScanInterval: need finite lo < hi"
	panicMaxIterInvalid   = "poly: WithMaxIter: n must be >= 1"
	panicDeflationInvalid = "poly: WithDeflationTolerance: tol must be finite and >= 0"
	panicVanishInvalid    = "poly: WithVanishTolerance: tol must be finite and >= 0"
	panicMergeInvalid     = "poly: WithMergeTolerance: tol must be finite and >= 0"
	panicLoggerNil        = "poly: WithLogger: logger must not be nil"
)

// discard is the default logger: shared, concurrency-safe, silent.
var discard logrus.FieldLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol       float64
	steps     int
	lo, hi    float64
	fixed     bool // lo/hi set explicitly; otherwise the root bound is used
	maxIter   int
	deflTol   float64
	vanishTol float64
	mergeTol  float64
	logger    logrus.FieldLogger
}

// Tolerance reports the effective convergence tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// ScanSteps reports the number of scan subdivisions.
func (o Options) ScanSteps() int { return o.steps }

// ScanInterval reports a fixed scan interval; ok is false when the
// root bound of the working polynomial is in effect.
func (o Options) ScanInterval() (lo, hi float64, ok bool) { return o.lo, o.hi, o.fixed }

// MaxIter reports the per-bracket iteration cap.
func (o Options) MaxIter() int { return o.maxIter }

// Logger reports the effective logger.
func (o Options) Logger() logrus.FieldLogger { return o.logger }

// WithTolerance sets the convergence tolerance (see DefaultTolerance).
func WithTolerance(tol float64) Option {
	if !isFinite(tol) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithScanSteps sets the number of grid subdivisions of the scan interval.
// Larger values separate closer roots at a linear cost per pass.
func WithScanSteps(steps int) Option {
	if steps < 1 {
		panic(panicStepsInvalid)
	}

	return func(o *Options) { o.steps = steps }
}

// WithScanInterval replaces the root-bound interval by a fixed [lo, hi].
// Roots outside it are not found.
//
// AI-Hints:
//   - WithScanInterval(-100, 100) reproduces the classic fixed search window.
func WithScanInterval(lo, hi float64) Option {
	if !isFinite(lo) || !isFinite(hi) || lo >= hi {
		panic(panicIntervalInvalid)
	}

	return func(o *Options) { o.lo, o.hi, o.fixed = lo, hi, true }
}

// WithMaxIter caps bisection and Newton iterations per bracket.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithDeflationTolerance sets the remainder threshold above which deflation warns.
func WithDeflationTolerance(tol float64) Option {
	if !isFinite(tol) || tol < 0 {
		panic(panicDeflationInvalid)
	}

	return func(o *Options) { o.deflTol = tol }
}

// WithVanishTolerance sets the relative threshold of the vanishing test used
// for candidate acceptance and multiplicity counting. A positive tol merges
// distinct roots up to roughly √tol apart; use it only for noisy coefficients.
func WithVanishTolerance(tol float64) Option {
	if !isFinite(tol) || tol < 0 {
		panic(panicVanishInvalid)
	}

	return func(o *Options) { o.vanishTol = tol }
}

// WithMergeTolerance sets the distance under which two roots are merged.
func WithMergeTolerance(tol float64) Option {
	if !isFinite(tol) || tol < 0 {
		panic(panicMergeInvalid)
	}

	return func(o *Options) { o.mergeTol = tol }
}

// WithLogger routes numerical warnings to l.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// NewOptions resolves opts against the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins. Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:       DefaultTolerance,
		steps:     DefaultScanSteps,
		maxIter:   DefaultMaxIter,
		deflTol:   DefaultDeflationTolerance,
		vanishTol: DefaultVanishTolerance,
		mergeTol:  DefaultMergeTolerance,
		logger:    discard,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// SPDX-License-Identifier: MIT
// Package poly: real root finding with multiplicities.
//
// Determinism & Policy:
//   - Fixed scan grid x_i = lo + (hi−lo)·i/steps merged with the roots of the
//     next derivative, visited in increasing order.
//   - Candidate search order: derivative order k from deg−1 down to 0, then
//     increasing x within one k.
//   - "Vanishes" means zero to working precision: |q(x)| within the Horner
//     rounding bound 2·(n+1)·machEps·Σ|a_i|·|x|^(n−i).
//   - All loops are bounded by steps, maxIter and the polynomial degree.

package poly

import (
	"math"
	"slices"

	"github.com/sirupsen/logrus"
)

// machEps is the float64 unit roundoff (2^-52).
const machEps = 0x1p-52

// Root is a real root with its multiplicity (≥ 1).
type Root struct {
	Value        float64
	Multiplicity int
}

// FindRoots returns the real roots of p with their multiplicities.
// MAIN DESCRIPTION:
//   - Roots are reported in discovery order; Σ Multiplicity ≤ degree(p).
//
// Implementation:
//   - Stage 1: reject NaN/Inf; trim leading |c| < tol; make monic.
//   - Stage 2: degree 1 and 2 in closed form.
//   - Stage 3 (degree ≥ 3): repeat { locate one root on p^(k), count its
//     multiplicity m by differentiation, deflate m times } until the degree
//     drops to 1 (solved directly) or no further real root is found.
//
// Behavior highlights:
//   - Even-multiplicity roots are found although p does not change sign there.
//   - A root of p^(k) counts as a (k+1)-fold root of p only when p, …, p^(k−1)
//     vanish there to working precision; two distinct roots are never merged
//     because they are close.
//   - Consecutive roots of p' bracket the roots of p, so two roots inside one
//     grid cell are still separated.
//   - The quadratic double-root test is relative: |b² − 4c| ≤ tol·max(b², 4|c|),
//     so it behaves the same for roots of size 1e-6 and 1e6.
//   - The scan interval defaults to the root bound of the current quotient
//     (min of the Cauchy and Fujiwara bounds), so roots of any magnitude are
//     inside it.
//   - A deflation remainder above the deflation tolerance and a vanishing
//     Newton derivative are logged as warnings, never returned.
//
// Inputs:
//   - p: coefficients, highest degree first.
//   - opts: WithTolerance, WithScanSteps, WithScanInterval, WithMaxIter,
//     WithDeflationTolerance, WithVanishTolerance, WithMergeTolerance, WithLogger.
//
// Returns:
//   - []Root; nil for constant, empty or all-zero input.
//
// Errors:
//   - ErrNaNInf.
//
// Complexity:
//   - Time O(deg^3 · steps) worst case, Space O(deg).
//
// AI-Hints:
//   - The count of complex roots is degree − Σ Multiplicity.
func FindRoots(p Polynomial, opts ...Option) ([]Root, error) {
	if err := p.validate(); err != nil {
		return nil, polyErrorf("FindRoots", err)
	}
	o := gatherOptions(opts...)

	work := p.Trim(o.tol).Monic()
	switch work.Degree() {
	case -1, 0:
		return nil, nil
	case 1:
		return []Root{{Value: normZero(-work[1]), Multiplicity: 1}}, nil
	case 2:
		return solveQuadratic(work[1], work[2], o.tol), nil
	}

	f := &finder{o: o}

	return f.run(work), nil
}

// solveQuadratic solves x² + b·x + c = 0, roots ascending.
// The discriminant counts as zero within tol relative to max(b², 4|c|).
func solveQuadratic(b, c, tol float64) []Root {
	disc := b*b - 4*c
	scale := math.Max(b*b, 4*math.Abs(c))
	switch {
	case math.Abs(disc) <= tol*scale:
		return []Root{{Value: normZero(-b / 2), Multiplicity: 2}}
	case disc < 0:
		return nil
	}
	// q = −(b + sign(b)·√Δ)/2 avoids cancellation; the second root is c/q.
	sign := 1.0
	if b < 0 {
		sign = -1
	}
	q := -(b + sign*math.Sqrt(disc)) / 2
	r1, r2 := q, c/q
	if r1 > r2 {
		r1, r2 = r2, r1
	}

	return []Root{
		{Value: normZero(r1), Multiplicity: 1},
		{Value: normZero(r2), Multiplicity: 1},
	}
}

// finder carries the resolved options through one FindRoots call.
type finder struct {
	o Options
}

// run is the deflation loop for a monic polynomial of degree ≥ 3.
func (f *finder) run(work Polynomial) []Root {
	var roots []Root
	for work.Degree() >= 1 {
		if work.Degree() == 1 {
			roots = f.merge(roots, -work[1]/work[0], 1)
			break
		}
		r, atLeast, ok := f.locate(work)
		if !ok {
			f.o.logger.WithField("degree", work.Degree()).Debug("poly: no further real root")
			break
		}
		m := max(atLeast, f.multiplicity(work, r))
		for i := 0; i < m; i++ {
			q, rem := work.Deflate(r)
			if math.Abs(rem) > f.o.deflTol {
				f.o.logger.WithFields(logrus.Fields{
					"root":      r,
					"remainder": rem,
				}).Warn("poly: deflation remainder")
			}
			work = q
		}
		roots = f.merge(roots, r, m)
	}

	return roots
}

// locate returns one root of p and a lower bound of its multiplicity: the
// first candidate x (k = deg−1 … 0, then increasing x) with p^(k)(x) ≈ 0 and
// p, …, p^(k−1) all vanishing at x. The roots of p^(k+1) found on the way
// bracket the scan of p^(k).
func (f *finder) locate(p Polynomial) (float64, int, bool) {
	derivs := make([]Polynomial, p.Degree())
	derivs[0] = p
	for k := 1; k < len(derivs); k++ {
		derivs[k] = derivs[k-1].Derivative()
	}

	lo, hi := f.interval(p)
	var crit []float64
	for k := len(derivs) - 1; k >= 0; k-- {
		found := f.candidates(derivs[k], lo, hi, crit)
	candidates:
		for _, x := range found {
			for j := 0; j < k; j++ {
				if !f.vanishes(derivs[j], x) {
					continue candidates
				}
			}
			return x, k + 1, true
		}
		crit = found
	}

	return 0, 0, false
}

// interval returns the fixed scan interval or [−B, B], B slightly above the
// root bound of p so that no root sits on the last grid point.
func (f *finder) interval(p Polynomial) (float64, float64) {
	if f.o.fixed {
		return f.o.lo, f.o.hi
	}
	b := 1.01 * p.RootBound()
	if b == 0 {
		b = 1 // every root is 0
	}

	return -b, b
}

// candidates lists the roots of q on [lo, hi] in increasing order.
// Linear q is solved directly; otherwise every sign change between
// consecutive scan points is refined and every exact zero is taken as is.
// crit holds the roots of q' and joins the grid as extra scan points.
func (f *finder) candidates(q Polynomial, lo, hi float64, crit []float64) []float64 {
	if q.Degree() == 1 {
		return []float64{normZero(-q[1] / q[0])}
	}

	var (
		out          []float64
		points       = f.scanPoints(lo, hi, crit)
		xPrev, fPrev = points[0], q.Eval(points[0])
		fx           float64
	)
	if fPrev == 0 {
		out = append(out, normZero(xPrev))
	}
	for _, x := range points[1:] {
		fx = q.Eval(x)
		switch {
		case fx == 0:
			out = append(out, normZero(x))
		case fPrev != 0 && (fPrev < 0) != (fx < 0):
			out = append(out, f.refine(q, xPrev, x, fPrev))
		}
		xPrev, fPrev = x, fx
	}

	return out
}

// scanPoints returns the grid lo + (hi−lo)·i/steps, i = 0…steps, together
// with the points of crit strictly inside (lo, hi), sorted and deduplicated.
func (f *finder) scanPoints(lo, hi float64, crit []float64) []float64 {
	steps := float64(f.o.steps)
	points := make([]float64, 0, f.o.steps+1+len(crit))
	for i := 0; i <= f.o.steps; i++ {
		points = append(points, lo+(hi-lo)*float64(i)/steps)
	}
	for _, c := range crit {
		if c > lo && c < hi {
			points = append(points, c)
		}
	}
	slices.Sort(points)

	return slices.Compact(points)
}

// refine bisects the sign-change bracket [a, b] down to width tol and
// polishes the midpoint with Newton's method.
func (f *finder) refine(q Polynomial, a, b, fa float64) float64 {
	lo, hi := a, b
	var mid, fm float64
	for it := 0; it < f.o.maxIter && b-a > f.o.tol; it++ {
		mid = a + (b-a)/2
		if mid <= a || mid >= b {
			break // no representable progress
		}
		fm = q.Eval(mid)
		if fm == 0 {
			return normZero(mid)
		}
		if (fm < 0) == (fa < 0) {
			a, fa = mid, fm
		} else {
			b = mid
		}
	}

	return normZero(f.polish(q, a+(b-a)/2, lo, hi))
}

// polish runs Newton's method from x0 and keeps the iterate inside [lo, hi].
// Falls back to x0 when the derivative vanishes or an iterate escapes.
func (f *finder) polish(q Polynomial, x0, lo, hi float64) float64 {
	dq := q.Derivative()
	x := x0
	var fx, d, step float64
	for it := 0; it < f.o.maxIter; it++ {
		fx = q.Eval(x)
		if math.Abs(fx) <= noiseFloor(q, q.magnitude(x)) {
			return x // covers fx == 0
		}
		d = dq.Eval(x)
		if math.Abs(d) <= machEps*dq.magnitude(x) {
			f.o.logger.WithField("x", x).Warn("poly: newton derivative underflow")
			return x0
		}
		step = fx / d
		x -= step
		if x < lo || x > hi {
			f.o.logger.WithField("x", x).Debug("poly: newton left bracket")
			return x0
		}
		if math.Abs(step) < f.o.tol*(1+math.Abs(x)) {
			return x
		}
	}

	return x
}

// vanishes reports whether q(x) is zero to working precision, or within
// vanishTol · Σ|a_i|·|x|^(n−i) when a looser test was configured.
func (f *finder) vanishes(q Polynomial, x float64) bool {
	mag := q.magnitude(x)

	return math.Abs(q.Eval(x)) <= math.Max(noiseFloor(q, mag), f.o.vanishTol*mag)
}

// noiseFloor bounds the rounding error of Horner's rule for q at a point
// where Σ|a_i|·|x|^(n−i) = mag.
func noiseFloor(q Polynomial, mag float64) float64 {
	return 2 * float64(q.Degree()+1) * machEps * mag
}

// multiplicity counts the consecutive derivatives of p that vanish at r,
// clamped to [1, degree].
func (f *finder) multiplicity(p Polynomial, r float64) int {
	m := 0
	for q := p; q.Degree() >= 1 && f.vanishes(q, r); q = q.Derivative() {
		m++
	}

	return max(1, min(m, p.Degree()))
}

// merge adds (r, m) to roots, folding it into an existing root within mergeTol.
func (f *finder) merge(roots []Root, r float64, m int) []Root {
	r = normZero(r)
	for i := range roots {
		if math.Abs(roots[i].Value-r) <= f.o.mergeTol*math.Max(1, math.Abs(roots[i].Value)) {
			roots[i].Multiplicity += m
			return roots
		}
	}

	return append(roots, Root{Value: r, Multiplicity: m})
}

// normZero maps −0 to +0.
func normZero(x float64) float64 {
	if x == 0 {
		return 0
	}

	return x
}

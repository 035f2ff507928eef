// Package poly implements real polynomials with float64 coefficients and a
// real root finder that reports multiplicities.
//
// Representation:
//
//	Polynomial{a0, a1, ..., an} = a0·xⁿ + a1·xⁿ⁻¹ + ... + an
//
// Coefficients are stored highest degree first; len(p) = degree + 1.
//
// Root finding (FindRoots):
//
//   - Degree 1 and 2 are solved in closed form (stable quadratic formula,
//     |Δ| below tolerance ⇒ double root, Δ < 0 ⇒ no real roots).
//   - Degree ≥ 3 is iterative: a grid scan for sign changes over a root
//     bound interval, bisection, Newton polishing, then deflation by
//     synthetic division. Multiple roots do not change sign, so candidates are
//     searched on the derivatives p^(k) from the highest k down; a root of
//     multiplicity m is a simple root of p^(m−1).
//   - Complex roots are never reported; their count is the gap between the
//     degree and the sum of returned multiplicities.
//
// Numerical warnings (large deflation remainder, vanishing Newton derivative)
// are logged through a logrus.FieldLogger supplied with WithLogger and never
// returned as errors.
package poly

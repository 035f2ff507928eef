// SPDX-License-Identifier: MIT
// Package poly: the Polynomial value type and its elementary operations.
//
// Purpose:
//   - Horner evaluation, differentiation, synthetic division, trimming and
//     normalization used by the root finder.
//
// Notes:
//   - Every method returns a fresh slice; receivers are never mutated.

package poly

import (
	"math"
	"strconv"
	"strings"
)

// Polynomial holds real coefficients, highest degree first.
type Polynomial []float64

// FromRoots builds the monic polynomial Π (x − r) over roots.
// An empty argument list yields the constant 1.
// Complexity: O(k^2).
func FromRoots(roots ...float64) Polynomial {
	p := Polynomial{1}
	for _, r := range roots {
		next := make(Polynomial, len(p)+1)
		for i, c := range p {
			next[i] += c
			next[i+1] -= c * r
		}
		p = next
	}

	return p
}

// Degree returns len(p)−1; the empty polynomial reports −1.
func (p Polynomial) Degree() int { return len(p) - 1 }

// Clone returns an independent copy.
func (p Polynomial) Clone() Polynomial {
	if p == nil {
		return nil
	}
	out := make(Polynomial, len(p))
	copy(out, p)

	return out
}

// Eval evaluates p at x by Horner's scheme. Empty → 0.
// Complexity: O(n).
func (p Polynomial) Eval(x float64) float64 {
	acc := 0.0
	for _, c := range p {
		acc = acc*x + c
	}

	return acc
}

// magnitude evaluates Σ|a_i|·|x|^(n−i), the scale against which a computed
// value of p(x) is compared when deciding whether it vanishes.
func (p Polynomial) magnitude(x float64) float64 {
	ax := math.Abs(x)
	acc := 0.0
	for _, c := range p {
		acc = acc*ax + math.Abs(c)
	}

	return acc
}

// Derivative returns p′. Constants and the empty polynomial give {0}.
// Complexity: O(n).
func (p Polynomial) Derivative() Polynomial {
	n := p.Degree()
	if n < 1 {
		return Polynomial{0}
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		out[i] = p[i] * float64(n-i)
	}

	return out
}

// Deflate divides p by (x − r) using synthetic division and returns the
// quotient (degree n−1) with the remainder p(r).
// For degree < 1 the quotient is empty and the remainder is p(r).
// Complexity: O(n).
func (p Polynomial) Deflate(r float64) (Polynomial, float64) {
	if p.Degree() < 1 {
		return Polynomial{}, p.Eval(r)
	}
	q := make(Polynomial, len(p)-1)
	acc := 0.0
	for i := 0; i < len(q); i++ {
		acc = acc*r + p[i]
		q[i] = acc
	}

	return q, acc*r + p[len(p)-1]
}

// Trim strips leading coefficients with |c| < tol.
// A polynomial whose coefficients are all below tol trims to empty.
func (p Polynomial) Trim(tol float64) Polynomial {
	i := 0
	for i < len(p) && math.Abs(p[i]) < tol {
		i++
	}

	return p[i:].Clone()
}

// Monic divides every coefficient by the leading one.
// Empty input or a zero leading coefficient returns an unchanged copy.
func (p Polynomial) Monic() Polynomial {
	out := p.Clone()
	if len(out) == 0 || out[0] == 0 {
		return out
	}
	lead := out[0]
	for i := range out {
		out[i] /= lead
	}
	out[0] = 1

	return out
}

// CauchyBound returns 1 + max_{i≥1} |a_i / a_0|: every root z of p
// (real or complex) satisfies |z| < bound. Degree < 1 returns 0.
func (p Polynomial) CauchyBound() float64 {
	if p.Degree() < 1 || p[0] == 0 {
		return 0
	}
	worst := 0.0
	for _, c := range p[1:] {
		worst = math.Max(worst, math.Abs(c/p[0]))
	}

	return 1 + worst
}

// FujiwaraBound returns 2·max(|a_1/a_0|, |a_2/a_0|^(1/2), …, |a_n/(2a_0)|^(1/n)):
// every root z satisfies |z| ≤ bound. Usually far tighter than CauchyBound
// when the constant term dominates. Degree < 1 returns 0.
func (p Polynomial) FujiwaraBound() float64 {
	n := p.Degree()
	if n < 1 || p[0] == 0 {
		return 0
	}
	worst := 0.0
	for i := 1; i <= n; i++ {
		c := math.Abs(p[i] / p[0])
		if i == n {
			c /= 2
		}
		worst = math.Max(worst, math.Pow(c, 1/float64(i)))
	}

	return 2 * worst
}

// RootBound returns min(CauchyBound, FujiwaraBound).
func (p Polynomial) RootBound() float64 {
	return math.Min(p.CauchyBound(), p.FujiwaraBound())
}

// validate rejects NaN/Inf coefficients.
func (p Polynomial) validate() error {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// String renders p in descending powers, e.g. "-x^3 - 3x^2 + 4".
// Zero coefficients are skipped; the zero polynomial renders as "0".
func (p Polynomial) String() string {
	var sb strings.Builder
	n := p.Degree()
	for i, c := range p {
		if c == 0 {
			continue
		}
		deg := n - i
		abs := math.Abs(c)
		switch {
		case sb.Len() == 0 && c < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && c < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		if abs != 1 || deg == 0 {
			sb.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		}
		switch deg {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(deg))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}

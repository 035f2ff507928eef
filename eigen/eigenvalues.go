// SPDX-License-Identifier: MIT

package eigen

import (
	"math"

	"github.com/katalvlaran/eigendiag/poly"
)

// Eigenvalue is a real eigenvalue with its algebraic multiplicity.
type Eigenvalue struct {
	Value        float64
	Multiplicity int
}

// FindEigenvalues returns the real roots of the characteristic polynomial p
// in discovery order. Values within the snap tolerance of an integer are
// replaced by that integer; roots that snap to the same value are merged.
//
// Errors: poly.ErrNaNInf.
func FindEigenvalues(p poly.Polynomial, opts ...Option) ([]Eigenvalue, error) {
	return findEigenvalues(p, gatherOptions(opts...))
}

func findEigenvalues(p poly.Polynomial, o Options) ([]Eigenvalue, error) {
	roots, err := poly.FindRoots(p, o.polyOptions()...)
	if err != nil {
		return nil, eigenErrorf(opEigenvalues, err)
	}

	out := make([]Eigenvalue, 0, len(roots))
next:
	for _, r := range roots {
		v := snap(r.Value, o.snapTol)
		for i := range out {
			if out[i].Value == v {
				out[i].Multiplicity += r.Multiplicity
				continue next
			}
		}
		out = append(out, Eigenvalue{Value: v, Multiplicity: r.Multiplicity})
	}

	return out, nil
}

// Multiplicities returns the eigenvalue → multiplicity view of evs.
func Multiplicities(evs []Eigenvalue) map[float64]int {
	m := make(map[float64]int, len(evs))
	for _, ev := range evs {
		m[ev.Value] += ev.Multiplicity
	}

	return m
}

// TotalMultiplicity returns Σ multiplicities.
func TotalMultiplicity(evs []Eigenvalue) int {
	sum := 0
	for _, ev := range evs {
		sum += ev.Multiplicity
	}

	return sum
}

// snap rounds v to the nearest integer when closer than tol; −0 becomes +0.
func snap(v, tol float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < tol {
		v = r
	}

	return normZero(v)
}

// normZero maps −0 to +0.
func normZero(x float64) float64 {
	if x == 0 {
		return 0
	}

	return x
}

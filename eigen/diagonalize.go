// SPDX-License-Identifier: MIT
// Package eigen: the diagonalization orchestrator.

package eigen

import (
	"github.com/katalvlaran/eigendiag/matrix"
	"github.com/katalvlaran/eigendiag/poly"
	"github.com/sirupsen/logrus"
)

const opDiagonalize = "Diagonalize"

// Decomposition is the result of a successful diagonalization: A = P·D·P⁻¹.
// Column j of P is an eigenvector for the eigenvalue D[j,j].
type Decomposition struct {
	P, PInv, D  *matrix.Dense
	Eigenvalues []Eigenvalue // discovery order; P's columns follow it
	Residual    float64      // max |P·D·P⁻¹ − A|
}

// Reconstruct returns P·D·P⁻¹.
func (d *Decomposition) Reconstruct() (*matrix.Dense, error) {
	pd, err := matrix.Mul(d.P, d.D)
	if err != nil {
		return nil, eigenErrorf(opReconstruct, err)
	}
	out, err := matrix.Mul(pd, d.PInv)
	if err != nil {
		return nil, eigenErrorf(opReconstruct, err)
	}

	return out, nil
}

// Eigenspace records one eigenvalue's eigenspace as seen by Diagonalize.
type Eigenspace struct {
	Value     float64
	Algebraic int
	Geometric int
	Basis     [][]float64
}

// Trace is filled by Diagonalize when passed through WithTrace.
// Fields past the failing step stay zero.
type Trace struct {
	Polynomial  poly.Polynomial
	Eigenvalues []Eigenvalue
	Eigenspaces []Eigenspace
	Reason      Reason
	Residual    float64
}

// Diagonalize computes A = P·D·P⁻¹ for a real square matrix A.
// MAIN DESCRIPTION:
//   - Returns P (eigenvectors as columns), D (eigenvalues on the diagonal,
//     aligned with P) and P⁻¹, or explains why A is not diagonalizable.
//
// Implementation:
//   - Stage 1: characteristic polynomial; real eigenvalues with multiplicities.
//   - Stage 2: Σ multiplicities < n ⇒ ReasonIncompleteSpectrum.
//   - Stage 3: per eigenvalue in discovery order, eigenspace basis; a basis
//     smaller than the multiplicity ⇒ ReasonDefective (first offender wins).
//   - Stage 4: assemble P and D; invert P; measure the reconstruction residual.
//
// Behavior highlights:
//   - A is never mutated; every returned matrix is freshly allocated.
//   - The residual is informational: above the residual tolerance it is
//     logged as a warning, and the decomposition is still returned.
//
// Inputs:
//   - a: square matrix.
//   - opts: WithTolerance, WithSnapTolerance, WithResidualTolerance,
//     WithScanSteps, WithScanInterval, WithRootOptions, WithLogger, WithTrace.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - *NotDiagonalizableError (errors.Is(err, ErrNotDiagonalizable)).
//   - matrix.ErrSingular when the eigenvector matrix cannot be inverted.
//
// Complexity:
//   - Dominated by the characteristic polynomial for larger n; O(n^3) per
//     eigenspace and for the inverse.
func Diagonalize(a matrix.Matrix, opts ...Option) (*Decomposition, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, eigenErrorf(opDiagonalize, err)
	}
	o := gatherOptions(opts...)
	n := a.Rows()
	log := o.logger.WithField("n", n)

	tr := &Trace{}
	if o.trace != nil {
		defer func() { *o.trace = *tr }()
	}

	p, err := CharacteristicPolynomial(a)
	if err != nil {
		return nil, eigenErrorf(opDiagonalize, err)
	}
	tr.Polynomial = p
	log.WithField("polynomial", p.String()).Debug("eigen: characteristic polynomial")

	evs, err := findEigenvalues(p, o)
	if err != nil {
		return nil, eigenErrorf(opDiagonalize, err)
	}
	tr.Eigenvalues = evs
	log.WithField("eigenvalues", Multiplicities(evs)).Debug("eigen: eigenvalues")

	if found := TotalMultiplicity(evs); found != n {
		tr.Reason = ReasonIncompleteSpectrum
		return nil, &NotDiagonalizableError{
			Reason:    ReasonIncompleteSpectrum,
			RealRoots: found,
			Dimension: n,
		}
	}

	cols := make([][]float64, 0, n)
	diag := make([]float64, 0, n)
	for _, ev := range evs {
		basis, err := nullSpaceBasis(a, ev.Value, o)
		if err != nil {
			return nil, eigenErrorf(opDiagonalize, err)
		}
		tr.Eigenspaces = append(tr.Eigenspaces, Eigenspace{
			Value:     ev.Value,
			Algebraic: ev.Multiplicity,
			Geometric: len(basis),
			Basis:     basis,
		})

		if len(basis) < ev.Multiplicity {
			tr.Reason = ReasonDefective
			return nil, &NotDiagonalizableError{
				Reason:     ReasonDefective,
				Eigenvalue: ev.Value,
				Algebraic:  ev.Multiplicity,
				Geometric:  len(basis),
			}
		}
		if len(basis) > ev.Multiplicity {
			log.WithFields(logrus.Fields{
				"eigenvalue": ev.Value,
				"algebraic":  ev.Multiplicity,
				"geometric":  len(basis),
			}).Warn("eigen: eigenspace larger than multiplicity, truncated")
			basis = basis[:ev.Multiplicity]
		}
		for _, v := range basis {
			cols = append(cols, v)
			diag = append(diag, ev.Value)
		}
	}

	P, err := matrix.FromColumns(cols)
	if err != nil {
		return nil, eigenErrorf(opDiagonalize, err)
	}
	D, err := matrix.NewDiagonal(diag)
	if err != nil {
		return nil, eigenErrorf(opDiagonalize, err)
	}
	PInv, err := matrix.Inverse(P, o.matrixOptions()...)
	if err != nil {
		return nil, eigenErrorf(opDiagonalize, err)
	}

	dec := &Decomposition{P: P, PInv: PInv, D: D, Eigenvalues: evs}
	back, err := dec.Reconstruct()
	if err != nil {
		return nil, eigenErrorf(opDiagonalize, err)
	}
	if dec.Residual, err = matrix.MaxAbsDiff(back, a); err != nil {
		return nil, eigenErrorf(opDiagonalize, err)
	}
	tr.Residual = dec.Residual
	if dec.Residual > o.residualTol {
		log.WithField("residual", dec.Residual).Warn("eigen: reconstruction residual")
	}

	return dec, nil
}

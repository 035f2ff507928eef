// SPDX-License-Identifier: MIT
// Package eigen: sentinel error and the typed not-diagonalizable result.

package eigen

import (
	"errors"
	"fmt"
)

// ErrNotDiagonalizable is matched by every *NotDiagonalizableError.
var ErrNotDiagonalizable = errors.New("eigen: matrix is not diagonalizable")

// Reason tells why a matrix is not diagonalizable.
type Reason int

const (
	// ReasonNone marks a successful decomposition (used in Trace).
	ReasonNone Reason = iota

	// ReasonIncompleteSpectrum: fewer than n real eigenvalues counted with
	// multiplicity; the rest are complex.
	ReasonIncompleteSpectrum

	// ReasonDefective: some eigenvalue has fewer independent eigenvectors
	// than its algebraic multiplicity.
	ReasonDefective
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonIncompleteSpectrum:
		return "incomplete spectrum"
	case ReasonDefective:
		return "defective"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// NotDiagonalizableError carries the evidence behind ErrNotDiagonalizable.
//
// ReasonIncompleteSpectrum fills RealRoots and Dimension.
// ReasonDefective fills Eigenvalue, Algebraic and Geometric.
type NotDiagonalizableError struct {
	Reason     Reason
	Eigenvalue float64
	Algebraic  int
	Geometric  int
	RealRoots  int
	Dimension  int
}

// Error implements error.
func (e *NotDiagonalizableError) Error() string {
	switch e.Reason {
	case ReasonIncompleteSpectrum:
		return fmt.Sprintf("%v: %d of %d eigenvalues are real",
			ErrNotDiagonalizable, e.RealRoots, e.Dimension)
	case ReasonDefective:
		return fmt.Sprintf("%v: eigenvalue %g has algebraic multiplicity %d but geometric multiplicity %d",
			ErrNotDiagonalizable, e.Eigenvalue, e.Algebraic, e.Geometric)
	default:
		return ErrNotDiagonalizable.Error()
	}
}

// Unwrap exposes ErrNotDiagonalizable to errors.Is.
func (e *NotDiagonalizableError) Unwrap() error { return ErrNotDiagonalizable }

// eigenErrorf wraps err with an operation tag, preserving it via %w.
func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

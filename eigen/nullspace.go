// SPDX-License-Identifier: MIT

package eigen

import (
	"github.com/katalvlaran/eigendiag/matrix"
)

// NullSpaceBasis returns a basis of the eigenspace ker(A − λI).
// MAIN DESCRIPTION:
//   - One vector per free column of the reduced A − λI; the free entry is 1,
//     the other free entries 0, pivot entries solve (A − λI)v = 0.
//
// Implementation:
//   - Stage 1: M = A − λI (matrix.ShiftDiagonal).
//   - Stage 2: matrix.NullSpace(M): Gauss–Jordan with complete pivoting; a
//     pivot below tol·max(1, ‖M‖∞) ends the elimination.
//
// Behavior highlights:
//   - Never reports insufficiency: a λ that is not an eigenvalue yields an
//     empty basis; comparing the size to a multiplicity is the caller's job.
//   - The rank decision is relative to the entries of A, so an eigenvalue
//     that is correct to working precision keeps its eigenvector when A has
//     entries in the thousands.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf (λ).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func NullSpaceBasis(a matrix.Matrix, lambda float64, opts ...Option) ([][]float64, error) {
	return nullSpaceBasis(a, lambda, gatherOptions(opts...))
}

func nullSpaceBasis(a matrix.Matrix, lambda float64, o Options) ([][]float64, error) {
	shifted, err := matrix.ShiftDiagonal(a, lambda)
	if err != nil {
		return nil, eigenErrorf(opNullSpace, err)
	}
	basis, err := matrix.NullSpace(shifted, o.matrixOptions()...)
	if err != nil {
		return nil, eigenErrorf(opNullSpace, err)
	}

	return basis, nil
}

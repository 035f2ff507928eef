// SPDX-License-Identifier: MIT
// Package eigen: characteristic polynomial from principal minors.
//
// Determinism & Policy:
//   - k-subsets are enumerated in lexicographic order; every sum is taken in
//     that fixed order.
//   - Minors use matrix.Determinant (cofactor expansion), exact on integer
//     input of moderate size.

package eigen

import (
	"fmt"

	"github.com/katalvlaran/eigendiag/matrix"
	"github.com/katalvlaran/eigendiag/poly"
)

const (
	opCharPoly       = "CharacteristicPolynomial"
	opPrincipalMinor = "PrincipalMinorSum"
	opEigenvalues    = "FindEigenvalues"
	opNullSpace      = "NullSpaceBasis"
	opReconstruct    = "Reconstruct"
)

// CharacteristicPolynomial returns the coefficients of det(A − λI) in λ,
// highest degree first.
// MAIN DESCRIPTION:
//   - n = 1: [1, −a00].
//   - n = 2: [1, −trace, det].
//   - n = 3: [−1, trace, −E₂, det].
//   - n > 3: coeff[0] = (−1)ⁿ, coeff[k] = (−1)^(n−k)·E_k.
//
// E_k is the sum of all k×k principal minors (PrincipalMinorSum); E₁ is the
// trace and Eₙ the determinant.
//
// Behavior highlights:
//   - For n ≥ 2, p.Eval(λ) equals det(A − λI). The 1×1 form is its negation;
//     both have the same root.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity:
//   - Σ_k C(n,k)·k! determinant work; intended for small n.
func CharacteristicPolynomial(a matrix.Matrix) (poly.Polynomial, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, eigenErrorf(opCharPoly, err)
	}
	n := a.Rows()

	switch n {
	case 1:
		a00, err := a.At(0, 0)
		if err != nil {
			return nil, eigenErrorf(opCharPoly, err)
		}

		return poly.Polynomial{1, -a00}, nil
	case 2:
		tr, det, err := traceDet(a)
		if err != nil {
			return nil, eigenErrorf(opCharPoly, err)
		}

		return poly.Polynomial{1, -tr, det}, nil
	case 3:
		tr, det, err := traceDet(a)
		if err != nil {
			return nil, eigenErrorf(opCharPoly, err)
		}
		e2, err := PrincipalMinorSum(a, 2)
		if err != nil {
			return nil, eigenErrorf(opCharPoly, err)
		}

		return poly.Polynomial{-1, tr, -e2, det}, nil
	}

	coeffs := make(poly.Polynomial, n+1)
	coeffs[0] = sign(n)
	for k := 1; k <= n; k++ {
		ek, err := PrincipalMinorSum(a, k)
		if err != nil {
			return nil, eigenErrorf(opCharPoly, err)
		}
		coeffs[k] = sign(n-k) * ek
	}

	return coeffs, nil
}

// PrincipalMinorSum returns E_k, the sum of the determinants of all k×k
// principal submatrices of the square matrix a (1 ≤ k ≤ n).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrOutOfRange (k).
func PrincipalMinorSum(a matrix.Matrix, k int) (float64, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, eigenErrorf(opPrincipalMinor, err)
	}
	n := a.Rows()
	if k < 1 || k > n {
		return 0, eigenErrorf(opPrincipalMinor, fmt.Errorf("k=%d, n=%d: %w", k, n, matrix.ErrOutOfRange))
	}

	sum := 0.0
	var failure error
	combinations(n, k, func(idx []int) bool {
		sub, err := matrix.PrincipalSubmatrix(a, idx)
		if err != nil {
			failure = err
			return false
		}
		det, err := matrix.Determinant(sub)
		if err != nil {
			failure = err
			return false
		}
		sum += det

		return true
	})
	if failure != nil {
		return 0, eigenErrorf(opPrincipalMinor, failure)
	}

	return sum, nil
}

// combinations calls visit with every k-subset of {0..n−1} in lexicographic
// order until visit returns false. The slice is reused between calls.
func combinations(n, k int, visit func([]int) bool) {
	if k < 1 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !visit(idx) {
			return
		}
		// Rightmost position that can still advance.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// traceDet returns trace(a) and det(a).
func traceDet(a matrix.Matrix) (float64, float64, error) {
	tr, err := matrix.Trace(a)
	if err != nil {
		return 0, 0, err
	}
	det, err := matrix.Determinant(a)
	if err != nil {
		return 0, 0, err
	}

	return tr, det, nil
}

// sign returns (−1)^k.
func sign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

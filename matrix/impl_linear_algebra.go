// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling, diagonal shifts, minors and determinants.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the module.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Kernels use the central validators and wrap sentinels via matrixErrorf.
//   - Every kernel returns a fresh *Dense; operands are read-only.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMatVec      = "MatVec"
	opShift       = "ShiftDiagonal"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opTrace       = "Trace"
	opInverse     = "Inverse"
	opRREF        = "RREF"
	opAllClose    = "AllClose"
	opPrincipal   = "PrincipalSubmatrix"
	opFromColumns = "FromColumns"
	opMaxAbsDiff  = "MaxAbsDiff"
	opNormInf     = "NormInf"
	opNullSpace   = "NullSpace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, or a materialized *Dense copy
// read through At otherwise. The caller must treat the result as read-only.
//
// Behavior highlights:
//   - Collapses the fast-path/fallback split into one place: kernels loop over
//     flat slices only.
//
// Complexity:
//   - O(1) for *Dense, O(r*c) for other implementations.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 over the dense views.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides, skipping zero A[i,k].
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c), C[i,j] = Σ_k A[i,k]·B[k,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(dm.c, dm.r) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < dm.r; i++ {
		for j = 0; j < dm.c; j++ {
			res.data[j*dm.r+i] = dm.data[i*dm.c+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix, ErrNaNInf (alpha must be finite).
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dm.clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, dm.r)
	var (
		i, j int
		sum  float64
		base int
	)
	for i = 0; i < dm.r; i++ {
		sum = ZeroSum
		base = i * dm.c
		for j = 0; j < dm.c; j++ {
			sum += dm.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// ShiftDiagonal returns a copy of the square matrix m with lambda subtracted
// from every diagonal entry, i.e. m − λI.
//
// Behavior highlights:
//   - The input is never mutated; this is the building block of both the
//     characteristic-polynomial checks and the eigenspace computation.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (lambda must be finite).
//
// Complexity:
//   - Time O(n^2) (copy) + O(n) (diagonal), Space O(n^2).
func ShiftDiagonal(m Matrix, lambda float64) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opShift, err)
	}
	if isNonFinite(lambda) {
		return nil, matrixErrorf(opShift, ErrNaNInf)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opShift, err)
	}
	res := dm.clone()
	n := res.r
	for i := 0; i < n; i++ {
		res.data[i*n+i] -= lambda
	}

	return res, nil
}

// Minor returns the submatrix of m with the given row and column index sets
// deleted, preserving the relative order of the remaining rows and columns.
// Duplicated indices are ignored.
//
// Implementation:
//   - Stage 1: validate indices (ErrOutOfRange) and build keep-lists.
//   - Stage 2: copy kept cells in i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (index outside [0,rows) / [0,cols)),
//     ErrInvalidDimensions (every row or every column removed).
//
// Complexity:
//   - Time O(r*c), Space O(r'*c').
func Minor(m Matrix, removeRows, removeCols []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	keepRows, err := complementIndices(m.Rows(), removeRows)
	if err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("rows: %w", err))
	}
	keepCols, err := complementIndices(m.Cols(), removeCols)
	if err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("cols: %w", err))
	}

	return submatrix(m, keepRows, keepCols, opMinor)
}

// PrincipalSubmatrix returns the square submatrix of m restricted to the given
// row/column indices (same set for both), in ascending index order.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange, ErrInvalidDimensions (empty set).
// Complexity: O(k^2) for k=len(indices).
func PrincipalSubmatrix(m Matrix, indices []int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPrincipal, err)
	}
	keep := append([]int(nil), indices...)
	sort.Ints(keep)
	for _, idx := range keep {
		if idx < 0 || idx >= m.Rows() {
			return nil, matrixErrorf(opPrincipal, ErrOutOfRange)
		}
	}

	return submatrix(m, keep, keep, opPrincipal)
}

// submatrix copies the cells (keepRows × keepCols) of m into a fresh Dense.
func submatrix(m Matrix, keepRows, keepCols []int, opTag string) (*Dense, error) {
	if len(keepRows) == 0 || len(keepCols) == 0 {
		return nil, matrixErrorf(opTag, ErrInvalidDimensions)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(len(keepRows), len(keepCols))
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for i, src := range keepRows {
		for j, col := range keepCols {
			res.data[i*res.c+j] = dm.data[src*dm.c+col]
		}
	}

	return res, nil
}

// complementIndices returns [0,n) minus remove, ascending.
func complementIndices(n int, remove []int) ([]int, error) {
	drop := make([]bool, n)
	for _, idx := range remove {
		if idx < 0 || idx >= n {
			return nil, ErrOutOfRange
		}
		drop[idx] = true
	}
	keep := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !drop[i] {
			keep = append(keep, i)
		}
	}

	return keep, nil
}

// Determinant computes det(m) by cofactor expansion along the first row.
// MAIN DESCRIPTION:
//   - det(A) = Σ_j (−1)^j · A[0,j] · det(M_0j), M_0j = A without row 0 and column j.
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: explicit 1×1 and 2×2 base cases; recursive expansion above that.
//
// Behavior highlights:
//   - Exact for integer-valued inputs of moderate size (no division).
//   - Zero entries in row 0 skip their whole subtree.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!) worst case, Space O(n^2) per recursion level. Intended for
//     the small matrices this module targets.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return cofactorDet(dm.data, dm.r), nil
}

// cofactorDet expands the n×n row-major block a along its first row.
func cofactorDet(a []float64, n int) float64 {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	}

	var (
		det   = ZeroSum
		sign  = 1.0
		minor = make([]float64, (n-1)*(n-1)) // reused across columns
		i, j  int
		k, w  int
	)
	for j = 0; j < n; j++ {
		if a[j] != 0 {
			w = 0
			for i = 1; i < n; i++ {
				for k = 0; k < n; k++ {
					if k == j {
						continue
					}
					minor[w] = a[i*n+k]
					w++
				}
			}
			det += sign * a[j] * cofactorDet(minor, n-1)
		}
		sign = -sign // (−1)^j
	}

	return det
}

// Trace returns Σ m[i,i] for a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < dm.r; i++ {
		sum += dm.data[i*dm.r+i]
	}

	return sum, nil
}

// NormInf returns the maximum absolute row sum max_i Σ_j |m[i,j]|.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func NormInf(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNormInf, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opNormInf, err)
	}
	var (
		worst, sum float64
		i, j       int
	)
	for i = 0; i < dm.r; i++ {
		sum = ZeroSum
		for j = 0; j < dm.c; j++ {
			sum += math.Abs(dm.data[i*dm.c+j])
		}
		worst = math.Max(worst, sum)
	}

	return worst, nil
}

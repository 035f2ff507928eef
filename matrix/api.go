// SPDX-License-Identifier: MIT
// Package matrix: constructors for assembled matrices and numeric comparison.
//
// Purpose:
//   - NewDiagonal and FromColumns build D and P for the eigen pipeline.
//   - AllClose and MaxAbsDiff compare a reconstruction against its input.
//
// AI-Hints:
//   - AllClose with small atol/rtol is the comparison used by reconstruction checks and tests.

package matrix

import "math"

// NewDiagonal returns the n×n matrix with d on the main diagonal (n = len(d)).
// Errors: ErrInvalidDimensions (empty d), ErrNaNInf.
// Complexity: O(n^2).
func NewDiagonal(d []float64) (*Dense, error) {
	D, err := NewDense(len(d), len(d))
	if err != nil {
		return nil, err
	}
	for i, v := range d {
		if isNonFinite(v) {
			return nil, denseErrorf(ctxSet, i, i, ErrNaNInf)
		}
		D.data[i*D.c+i] = v
	}

	return D, nil
}

// FromColumns assembles an n×k matrix whose j-th column is cols[j].
// Errors: ErrInvalidDimensions (no columns / empty column), ErrBadShape (ragged), ErrNaNInf.
// Complexity: O(n*k).
func FromColumns(cols [][]float64) (*Dense, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, matrixErrorf(opFromColumns, ErrInvalidDimensions)
	}
	n := len(cols[0])
	out, err := NewDense(n, len(cols))
	if err != nil {
		return nil, matrixErrorf(opFromColumns, err)
	}
	for j, col := range cols {
		if len(col) != n {
			return nil, matrixErrorf(opFromColumns, ErrBadShape)
		}
		for i, v := range col {
			if isNonFinite(v) {
				return nil, matrixErrorf(opFromColumns, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN/Inf tolerances are rejected with ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range da.data {
		if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// MaxAbsDiff returns max |a[i,j] − b[i,j]| over identical shapes.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	da, err := asDense(a)
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	db, err := asDense(b)
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	worst := 0.0
	for idx := range da.data {
		worst = math.Max(worst, math.Abs(da.data[idx]-db.data[idx]))
	}

	return worst, nil
}

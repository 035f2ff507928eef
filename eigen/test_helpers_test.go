// SPDX-License-Identifier: MIT
// Package eigen_test contains fixtures shared by the pipeline tests.

package eigen_test

import (
	"testing"

	"github.com/katalvlaran/eigendiag/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-8

// sample is the 3×3 matrix with eigenvalues −2 (twice) and 1.
var sample = [][]float64{
	{1, 3, 3},
	{-3, -5, -3},
	{3, 3, 1},
}

// MustRows BUILDS a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// Similar RETURNS P·diag(d)·P⁻¹; with a unimodular integer P the result is an integer matrix.
func Similar(t *testing.T, p [][]float64, d []float64) *matrix.Dense {
	t.Helper()
	P := MustRows(t, p)
	D, err := matrix.NewDiagonal(d)
	require.NoError(t, err)
	PInv, err := matrix.Inverse(P)
	require.NoError(t, err)
	PD, err := matrix.Mul(P, D)
	require.NoError(t, err)
	A, err := matrix.Mul(PD, PInv)
	require.NoError(t, err)

	// Round away elimination dust so the fixture is exactly integral.
	rows := A.ToRows()
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] = float64(int64(rows[i][j] + 0.5*sgn(rows[i][j])))
		}
	}

	return MustRows(t, rows)
}

func sgn(x float64) float64 {
	if x < 0 {
		return -1
	}

	return 1
}

// RequireEigenpairs ASSERTS (A − λI)v ≈ 0 for every vector in basis.
func RequireEigenpairs(t *testing.T, a matrix.Matrix, lambda float64, basis [][]float64) {
	t.Helper()
	shifted, err := matrix.ShiftDiagonal(a, lambda)
	require.NoError(t, err)
	for _, v := range basis {
		r, err := matrix.MatVec(shifted, v)
		require.NoError(t, err)
		for i, x := range r {
			require.InDeltaf(t, 0, x, tol, "(A − %gI)v[%d] for v=%v", lambda, i, v)
		}
	}
}

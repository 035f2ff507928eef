// SPDX-License-Identifier: MIT
package eigen_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eigendiag/eigen"
	"github.com/katalvlaran/eigendiag/matrix"
	"github.com/stretchr/testify/require"
)

func TestNullSpaceBasis_Sample(t *testing.T) {
	a := MustRows(t, sample)

	t.Run("double eigenvalue", func(t *testing.T) {
		basis, err := eigen.NullSpaceBasis(a, -2)
		require.NoError(t, err)
		require.Equal(t, [][]float64{{-1, 1, 0}, {-1, 0, 1}}, basis)
		RequireEigenpairs(t, a, -2, basis)
	})

	t.Run("simple eigenvalue", func(t *testing.T) {
		basis, err := eigen.NullSpaceBasis(a, 1)
		require.NoError(t, err)
		require.Len(t, basis, 1)
		require.InDeltaSlice(t, []float64{1, -1, 1}, basis[0], tol)
		RequireEigenpairs(t, a, 1, basis)
	})

	t.Run("not an eigenvalue", func(t *testing.T) {
		basis, err := eigen.NullSpaceBasis(a, 5)
		require.NoError(t, err)
		require.Empty(t, basis)
	})
}

func TestNullSpaceBasis_Shapes(t *testing.T) {
	tests := []struct {
		name   string
		rows   [][]float64
		lambda float64
		want   [][]float64
	}{
		{"nilpotent", [][]float64{{0, 1}, {0, 0}}, 0, [][]float64{{1, 0}}},
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1,
			[][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
		{"zero matrix", [][]float64{{0, 0}, {0, 0}}, 0, [][]float64{{1, 0}, {0, 1}}},
		{"1x1", [][]float64{{7}}, 7, [][]float64{{1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			basis, err := eigen.NullSpaceBasis(MustRows(t, tc.rows), tc.lambda)
			require.NoError(t, err)
			require.Equal(t, tc.want, basis)
		})
	}
}

func TestNullSpaceBasis_LargeEntries(t *testing.T) {
	a := MustRows(t, [][]float64{{1000, 1, 0}, {1, 2000, 1}, {0, 1, 3000}})

	basis, err := eigen.NullSpaceBasis(a, 2000)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.001, 1, -0.001}}, basis)

	// Smallest eigenvalue, 1000 − 1/1000 to working precision.
	lambda := 999.9990000005
	basis, err = eigen.NullSpaceBasis(a, lambda)
	require.NoError(t, err)
	require.Len(t, basis, 1)
	require.Equal(t, 1.0, basis[0][0])
	RequireEigenpairs(t, a, lambda, basis)

	basis, err = eigen.NullSpaceBasis(a, 1500)
	require.NoError(t, err)
	require.Empty(t, basis)
}

func TestNullSpaceBasis_NoNegativeZero(t *testing.T) {
	basis, err := eigen.NullSpaceBasis(MustRows(t, sample), -2)
	require.NoError(t, err)
	for _, v := range basis {
		for _, x := range v {
			if x == 0 {
				require.False(t, math.Signbit(x))
			}
		}
	}
}

func TestNullSpaceBasis_DoesNotMutate(t *testing.T) {
	a := MustRows(t, sample)
	_, err := eigen.NullSpaceBasis(a, -2)
	require.NoError(t, err)
	require.Equal(t, sample, a.ToRows())
}

func TestNullSpaceBasis_Errors(t *testing.T) {
	_, err := eigen.NullSpaceBasis(MustRows(t, [][]float64{{1, 2}}), 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = eigen.NullSpaceBasis(MustRows(t, sample), math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = eigen.NullSpaceBasis(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// SPDX-License-Identifier: MIT
package eigen_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eigendiag/eigen"
	"github.com/stretchr/testify/require"
)

func TestCombinations_Lexicographic(t *testing.T) {
	var got [][]int
	eigen.ExportedCombinations(4, 2, func(idx []int) bool {
		got = append(got, append([]int(nil), idx...))
		return true
	})
	require.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)
}

func TestCombinations_EdgesAndStop(t *testing.T) {
	calls := 0
	eigen.ExportedCombinations(3, 0, func([]int) bool { calls++; return true })
	eigen.ExportedCombinations(3, 4, func([]int) bool { calls++; return true })
	require.Zero(t, calls)

	eigen.ExportedCombinations(3, 3, func(idx []int) bool {
		calls++
		require.Equal(t, []int{0, 1, 2}, idx)
		return true
	})
	require.Equal(t, 1, calls)

	calls = 0
	eigen.ExportedCombinations(5, 2, func([]int) bool { calls++; return calls < 3 })
	require.Equal(t, 3, calls)
}

func TestSnap(t *testing.T) {
	tests := []struct {
		in, tol, want float64
	}{
		{3 + 5e-11, 1e-10, 3},
		{-2 - 9e-11, 1e-10, -2},
		{0.5, 1e-10, 0.5},
		{3 + 5e-11, 0, 3 + 5e-11},
		{-1e-12, 1e-10, 0},
	}
	for _, tc := range tests {
		got := eigen.ExportedSnap(tc.in, tc.tol)
		require.Equal(t, tc.want, got, "snap(%v, %v)", tc.in, tc.tol)
		require.False(t, got == 0 && math.Signbit(got), "snap(%v) returned −0", tc.in)
	}
}

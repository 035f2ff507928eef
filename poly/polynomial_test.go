// SPDX-License-Identifier: MIT
package poly_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eigendiag/poly"
	"github.com/stretchr/testify/require"
)

func TestFromRootsAndEval(t *testing.T) {
	p := poly.FromRoots(1, -2, -2)
	require.Equal(t, poly.Polynomial{1, 3, 0, -4}, p)
	require.Equal(t, 3, p.Degree())

	for _, x := range []float64{1, -2} {
		require.Equal(t, 0.0, p.Eval(x))
	}
	require.Equal(t, -4.0, p.Eval(0))
	require.Equal(t, poly.Polynomial{1}, poly.FromRoots())
	require.Equal(t, 0.0, poly.Polynomial{}.Eval(3))
	require.Equal(t, -1, poly.Polynomial{}.Degree())
}

func TestDerivative(t *testing.T) {
	tests := []struct {
		name string
		in   poly.Polynomial
		want poly.Polynomial
	}{
		{"cubic", poly.Polynomial{-1, -3, 0, 4}, poly.Polynomial{-3, -6, 0}},
		{"linear", poly.Polynomial{5, 7}, poly.Polynomial{5}},
		{"constant", poly.Polynomial{9}, poly.Polynomial{0}},
		{"empty", poly.Polynomial{}, poly.Polynomial{0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.Derivative())
		})
	}
}

func TestDeflate(t *testing.T) {
	p := poly.Polynomial{1, 3, 0, -4} // (x−1)(x+2)²

	q, rem := p.Deflate(1)
	require.Equal(t, poly.Polynomial{1, 4, 4}, q)
	require.Equal(t, 0.0, rem)

	q, rem = p.Deflate(0)
	require.Equal(t, poly.Polynomial{1, 3, 0}, q)
	require.Equal(t, -4.0, rem) // remainder equals p(r)

	q, rem = poly.Polynomial{7}.Deflate(2)
	require.Empty(t, q)
	require.Equal(t, 7.0, rem)
}

func TestTrimMonicClone(t *testing.T) {
	p := poly.Polynomial{1e-14, -2, 4, 6}

	trimmed := p.Trim(1e-10)
	require.Equal(t, poly.Polynomial{-2, 4, 6}, trimmed)
	require.Equal(t, poly.Polynomial{1, -2, -3}, trimmed.Monic())
	require.Equal(t, poly.Polynomial{1e-14, -2, 4, 6}, p) // receiver untouched

	require.Empty(t, poly.Polynomial{0, 1e-12}.Trim(1e-10))

	c := p.Clone()
	c[0] = 5
	require.Equal(t, 1e-14, p[0])
	require.Nil(t, poly.Polynomial(nil).Clone())
}

func TestRootBounds(t *testing.T) {
	p := poly.FromRoots(-150, 3, 200)
	for _, b := range []float64{p.CauchyBound(), p.FujiwaraBound(), p.RootBound()} {
		require.Greater(t, b, 200.0)
	}
	require.Less(t, p.RootBound(), 400.0)
	require.Equal(t, math.Min(p.CauchyBound(), p.FujiwaraBound()), p.RootBound())

	require.Equal(t, 0.0, poly.Polynomial{3}.CauchyBound())
	require.Equal(t, 0.0, poly.Polynomial{3}.FujiwaraBound())
	require.Equal(t, 5.0, poly.Polynomial{1, 3, 0, -4}.CauchyBound())
}

func TestString(t *testing.T) {
	tests := []struct {
		in   poly.Polynomial
		want string
	}{
		{poly.Polynomial{-1, -3, 0, 4}, "-x^3 - 3x^2 + 4"},
		{poly.Polynomial{1, -2, 1}, "x^2 - 2x + 1"},
		{poly.Polynomial{2.5, 0}, "2.5x"},
		{poly.Polynomial{0, 0, -1}, "-1"},
		{poly.Polynomial{0}, "0"},
		{poly.Polynomial{}, "0"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.String())
		})
	}
}

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/eigendiag/matrix"
)

// ExampleRREF reduces A − λI for an eigenvalue and reads off the free columns.
func ExampleRREF() {
	a, _ := matrix.NewFromRows([][]float64{
		{1, 3, 3},
		{-3, -5, -3},
		{3, 3, 1},
	})
	shifted, _ := matrix.ShiftDiagonal(a, -2) // A − (−2)·I
	r, pivots, _ := matrix.RREF(shifted)

	fmt.Print(r)
	fmt.Println("pivots:", pivots)
	// Output:
	// [1, 1, 1]
	// [0, 0, 0]
	// [0, 0, 0]
	// pivots: [0]
}

// ExampleInverse shows that eigenvector matrices with zero diagonal entries invert cleanly.
func ExampleInverse() {
	p, _ := matrix.NewFromRows([][]float64{{0, 2}, {1, 0}})
	inv, _ := matrix.Inverse(p)
	fmt.Print(inv)
	// Output:
	// [0, 1]
	// [0.5, 0]
}

func ExampleDeterminant() {
	a, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
	det, _ := matrix.Determinant(a)
	fmt.Println(det)
	// Output: 10
}

// ExampleNullSpace reads an eigenvector off A − λI for a matrix with large entries.
func ExampleNullSpace() {
	a, _ := matrix.NewFromRows([][]float64{
		{1000, 1, 0},
		{1, 2000, 1},
		{0, 1, 3000},
	})
	shifted, _ := matrix.ShiftDiagonal(a, 2000)
	basis, _ := matrix.NullSpace(shifted)
	fmt.Println(basis)
	// Output:
	// [[0.001 1 -0.001]]
}

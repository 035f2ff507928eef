// Package eigendiag diagonalizes small real square matrices by the textbook
// route: characteristic polynomial, real roots, eigenspaces, then
// A = P·D·P⁻¹.
//
// What is inside?
//
//	A dependency-light pipeline whose every intermediate result can be
//	inspected:
//		• Dense matrices with checked arithmetic, determinant, RREF, inverse
//		• Polynomials with a deflating real-root finder and multiplicities
//		• The eigen pipeline with typed "not diagonalizable" explanations
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/ — Dense type, validators, arithmetic, Determinant, RREF, NullSpace, Inverse
//	poly/   — Polynomial type, root bounds, FindRoots
//	eigen/  — CharacteristicPolynomial, FindEigenvalues, NullSpaceBasis, Diagonalize
//
// and one command:
//
//	cmd/diagonalize — reads a matrix (flag, YAML/JSON file or the built-in
//	                  sample) and prints P, P⁻¹, D and the reconstruction.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 3, 3}, {-3, -5, -3}, {3, 3, 1}})
//	dec, err := eigen.Diagonalize(a)
//	// dec.D = diag(−2, −2, 1); columns of dec.P are eigenvectors.
//
// Matrices with complex eigenvalues or defective eigenvalues are reported
// through *eigen.NotDiagonalizableError.
//
//	go get github.com/katalvlaran/eigendiag
package eigendiag

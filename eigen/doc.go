// Package eigen decides whether a real square matrix is diagonalizable over
// the reals and, if so, computes A = P·D·P⁻¹.
//
// Pipeline (Diagonalize):
//
//  1. CharacteristicPolynomial: det(A − λI) from sums of principal minors.
//  2. FindEigenvalues: real roots with multiplicities (poly.FindRoots);
//     values within the snap tolerance of an integer are snapped to it.
//  3. If the multiplicities do not add up to n, some eigenvalues are complex:
//     NotDiagonalizableError{Reason: ReasonIncompleteSpectrum}.
//  4. NullSpaceBasis per eigenvalue, in discovery order. A basis smaller than
//     the algebraic multiplicity: NotDiagonalizableError{Reason: ReasonDefective}.
//  5. P holds the basis vectors as columns, D the matching eigenvalues.
//  6. P⁻¹ by Gauss–Jordan elimination (matrix.Inverse).
//  7. The reconstruction residual max|P·D·P⁻¹ − A| is stored in the result and
//     logged as a warning above the residual tolerance.
//
// Errors are matched with errors.Is / errors.As:
//
//	d, err := eigen.Diagonalize(A)
//	var nd *eigen.NotDiagonalizableError
//	switch {
//	case errors.As(err, &nd):
//		fmt.Println(nd.Reason, nd.Eigenvalue)
//	case errors.Is(err, matrix.ErrSingular):
//		// eigenvectors numerically dependent
//	}
//
// Every call is pure and synchronous; concurrent calls on distinct or shared
// read-only inputs are safe. WithTrace exposes the intermediate results.
package eigen

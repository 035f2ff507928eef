// Package matrix provides the dense real-valued linear algebra used by the
// diagonalization pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major Matrix with bounds-checked At/Set and a finite-only
//     numeric policy.
//   - Arithmetic kernels: Add, Sub, Scale, Mul, Transpose, MatVec,
//     ShiftDiagonal (A − λI), Minor, PrincipalSubmatrix, Trace.
//   - Determinant by cofactor expansion along the first row.
//   - Gauss–Jordan elimination: RREF (with pivot columns), NullSpace (complete
//     pivoting, rank threshold relative to ‖m‖∞) and Inverse.
//   - NormInf, the maximum absolute row sum.
//   - AllClose / MaxAbsDiff for tolerance-based comparison.
//
// Every kernel returns a freshly allocated *Dense; inputs are never mutated.
// Failures are reported through the sentinels in errors.go, wrapped with an
// operation tag, and matched with errors.Is:
//
//	inv, err := matrix.Inverse(P)
//	if errors.Is(err, matrix.ErrSingular) {
//		// P has dependent columns
//	}
//
// Matrices here are small (tens of rows at most); kernels favor clarity and
// determinism over blocking or SIMD.
package matrix

// SPDX-License-Identifier: MIT
// Package matrix: Gauss–Jordan elimination kernels.
//
// Purpose:
//   - RREF: reduced row-echelon form with partial pivoting and pivot-column report.
//   - NullSpace: kernel basis by rank-revealing elimination with complete pivoting.
//   - Inverse: A^{-1} via the augmented matrix [A | I].
//
// Determinism & Policy:
//   - RREF and Inverse pivot on the largest |value| in the column from the
//     current row down; the first such row wins ties (stable row order).
//   - NullSpace pivots on the largest |value| of the trailing block, scanned
//     row-major; the first such entry wins ties.
//   - A pivot candidate below Options.eps is treated as zero (NullSpace scales
//     eps by max(1, ‖m‖∞)).
//   - All kernels operate on a private copy; the input is never mutated.

package matrix

import (
	"math"
	"sort"
)

// RREF reduces m to reduced row-echelon form.
// MAIN DESCRIPTION:
//   - Returns the reduced matrix and the ordered pivot column indices.
//
// Implementation:
//   - Stage 1: copy m into a private Dense.
//   - Stage 2: for each column k (row h = next unfilled row):
//     pick argmax_{i≥h} |M[i,k]|; if below eps the column is free (k advances,
//     h stays); otherwise swap into row h, normalize the row so M[h,k] = 1 and
//     eliminate column k from every other row (above and below).
//   - Stage 3: snap every |x| < eps to exactly 0.
//
// Behavior highlights:
//   - Idempotent: RREF(RREF(M)) == RREF(M) with identical pivots.
//   - Rectangular input is allowed.
//
// Inputs:
//   - m: non-nil matrix (r×c).
//   - opts: WithEpsilon to override DefaultEpsilon.
//
// Returns:
//   - *Dense: the reduced matrix.
//   - []int : pivot columns in increasing order (len == rank).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func RREF(m Matrix, opts ...Option) (*Dense, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	o := gatherOptions(opts...)

	a := src.clone() // private working copy
	rows, cols := a.r, a.c
	pivots := make([]int, 0, min(rows, cols))

	var (
		h, k, i, j    int
		best          int
		maxAbs, v     float64
		pivot, factor float64
		baseH, baseI  int
	)
	for h, k = 0, 0; h < rows && k < cols; k++ {
		// Partial pivoting: largest magnitude from row h downward.
		best, maxAbs = h, math.Abs(a.data[h*cols+k])
		for i = h + 1; i < rows; i++ {
			if v = math.Abs(a.data[i*cols+k]); v > maxAbs {
				best, maxAbs = i, v
			}
		}
		if maxAbs < o.eps {
			continue // free column: advance k without consuming a row
		}
		a.swapRows(h, best)
		pivots = append(pivots, k)

		// Normalize pivot row.
		baseH = h * cols
		pivot = a.data[baseH+k]
		for j = 0; j < cols; j++ {
			a.data[baseH+j] /= pivot
		}
		a.data[baseH+k] = 1 // exact

		// Eliminate column k from every other row.
		for i = 0; i < rows; i++ {
			if i == h {
				continue
			}
			baseI = i * cols
			factor = a.data[baseI+k]
			if factor == 0 {
				continue
			}
			for j = 0; j < cols; j++ {
				a.data[baseI+j] -= factor * a.data[baseH+j]
			}
			a.data[baseI+k] = 0 // exact
		}
		h++
	}

	// Snap numerical dust.
	for idx, x := range a.data {
		if math.Abs(x) < o.eps {
			a.data[idx] = 0
		}
	}

	return a, pivots, nil
}

// NullSpace returns a basis of ker(m) = {x : m·x = 0}.
// MAIN DESCRIPTION:
//   - One vector per free column; the free entry is 1, the other free entries
//     0, the pivot entries solve m·x = 0. Vectors are ordered by the index of
//     their free column.
//
// Implementation:
//   - Stage 1: copy m; threshold t = eps·max(1, ‖m‖∞).
//   - Stage 2: Gauss–Jordan with complete pivoting: at step h pick the largest
//     |value| of the trailing block; stop when it is below t (rank = h);
//     otherwise swap it to (h, h), record the column swap, normalize row h and
//     eliminate column h from every other row. The reduced system is [I F | 0].
//   - Stage 3: for each free position f: x[perm[f]] = 1, x[perm[i]] = −F[i,f].
//
// Behavior highlights:
//   - Each pivot is the largest remaining entry, so the block left at the stop
//     has the size of the smallest singular values of m.
//   - Scaling m by a constant does not change the reported rank.
//   - Free entries are usually the dominant components of their vectors.
//
// Inputs:
//   - m: non-nil matrix (r×c); rectangular input is allowed.
//   - opts: WithEpsilon to override DefaultEpsilon.
//
// Returns:
//   - [][]float64: c − rank vectors of length c; empty for full column rank.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func NullSpace(m Matrix, opts ...Option) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}
	norm, err := NormInf(src)
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}
	o := gatherOptions(opts...)
	threshold := o.eps * math.Max(1, norm)

	a := src.clone() // private working copy
	rows, cols := a.r, a.c
	perm := make([]int, cols) // perm[k] = original column now at position k
	for k := range perm {
		perm[k] = k
	}

	var (
		h, i, j       int
		bi, bj        int
		maxAbs, v     float64
		pivot, factor float64
		baseH, baseI  int
	)
	for h = 0; h < rows && h < cols; h++ {
		bi, bj, maxAbs = h, h, -1
		for i = h; i < rows; i++ {
			for j = h; j < cols; j++ {
				if v = math.Abs(a.data[i*cols+j]); v > maxAbs {
					bi, bj, maxAbs = i, j, v
				}
			}
		}
		if maxAbs == 0 || maxAbs < threshold {
			break // the trailing block is numerically zero
		}
		a.swapRows(h, bi)
		a.swapCols(h, bj)
		perm[h], perm[bj] = perm[bj], perm[h]

		baseH = h * cols
		pivot = a.data[baseH+h]
		for j = 0; j < cols; j++ {
			a.data[baseH+j] /= pivot
		}
		a.data[baseH+h] = 1 // exact

		for i = 0; i < rows; i++ {
			if i == h {
				continue
			}
			baseI = i * cols
			factor = a.data[baseI+h]
			if factor == 0 {
				continue
			}
			for j = 0; j < cols; j++ {
				a.data[baseI+j] -= factor * a.data[baseH+j]
			}
			a.data[baseI+h] = 0 // exact
		}
	}
	rank := h

	free := make([]int, 0, cols-rank)
	for f := rank; f < cols; f++ {
		free = append(free, f)
	}
	sort.Slice(free, func(x, y int) bool { return perm[free[x]] < perm[free[y]] })

	basis := make([][]float64, 0, len(free))
	for _, f := range free {
		x := make([]float64, cols)
		x[perm[f]] = 1
		for i = 0; i < rank; i++ {
			x[perm[i]] = normZero(-a.data[i*cols+f])
		}
		basis = append(basis, x)
	}

	return basis, nil
}

// Inverse computes A^{-1} by Gauss–Jordan elimination on [A | I] with row swaps.
// MAIN DESCRIPTION:
//   - Reduce the left block to the identity; the right block becomes A^{-1}.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); build the n×2n augmented buffer.
//   - Stage 2: for each column i: pick argmax_{k≥i} |aug[k,i]|; if below eps →
//     ErrSingular; swap, normalize, eliminate the column from all other rows.
//   - Stage 3: copy the right block out.
//
// Behavior highlights:
//   - Partial pivoting (unlike a plain LU without pivoting) keeps eigenvector
//     matrices with zero diagonal entries invertible.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	n := src.r
	w := 2 * n
	aug, err := NewDense(n, w)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var i, j, k int
	for i = 0; i < n; i++ {
		copy(aug.data[i*w:i*w+n], src.data[i*n:(i+1)*n])
		aug.data[i*w+n+i] = 1
	}

	var (
		best          int
		maxAbs, v     float64
		pivot, factor float64
		baseI, baseK  int
	)
	for i = 0; i < n; i++ {
		best, maxAbs = i, math.Abs(aug.data[i*w+i])
		for k = i + 1; k < n; k++ {
			if v = math.Abs(aug.data[k*w+i]); v > maxAbs {
				best, maxAbs = k, v
			}
		}
		if maxAbs < o.eps {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		aug.swapRows(i, best)

		baseI = i * w
		pivot = aug.data[baseI+i]
		for j = 0; j < w; j++ {
			aug.data[baseI+j] /= pivot
		}
		for k = 0; k < n; k++ {
			if k == i {
				continue
			}
			baseK = k * w
			factor = aug.data[baseK+i]
			if factor == 0 {
				continue
			}
			for j = 0; j < w; j++ {
				aug.data[baseK+j] -= factor * aug.data[baseI+j]
			}
		}
	}

	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug.data[i*w+n:(i+1)*w])
	}

	return inv, nil
}

// swapRows exchanges rows p and q in place (no-op when p == q).
func (m *Dense) swapRows(p, q int) {
	if p == q {
		return
	}
	rp := m.data[p*m.c : (p+1)*m.c]
	rq := m.data[q*m.c : (q+1)*m.c]
	for j := range rp {
		rp[j], rq[j] = rq[j], rp[j]
	}
}

// swapCols exchanges columns p and q in place (no-op when p == q).
func (m *Dense) swapCols(p, q int) {
	if p == q {
		return
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		m.data[base+p], m.data[base+q] = m.data[base+q], m.data[base+p]
	}
}

// normZero maps −0 to +0.
func normZero(x float64) float64 {
	if x == 0 {
		return 0
	}

	return x
}

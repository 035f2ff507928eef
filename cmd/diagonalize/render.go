// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/eigendiag/eigen"
	"github.com/katalvlaran/eigendiag/matrix"
)

// displayDigits is the number of decimals kept when printing matrix entries.
const displayDigits = 10

// formatValue rounds x to displayDigits decimals; −0 prints as 0.
func formatValue(x float64) string {
	scale := math.Pow(10, displayDigits)
	r := math.Round(x*scale) / scale
	if r == 0 {
		r = 0
	}

	return strconv.FormatFloat(r, 'g', -1, 64)
}

// writeMatrix prints a titled matrix, one bracketed row per line.
func writeMatrix(w io.Writer, title string, m *matrix.Dense) {
	fmt.Fprintf(w, "%s:\n", title)
	for _, row := range m.ToRows() {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = formatValue(v)
		}
		fmt.Fprintf(w, "[%s]\n", strings.Join(cells, ", "))
	}
	fmt.Fprintln(w)
}

func formatVector(v []float64) string {
	cells := make([]string, len(v))
	for i, x := range v {
		cells[i] = formatValue(x)
	}

	return "[" + strings.Join(cells, ", ") + "]"
}

// renderSteps prints the intermediate results collected in tr.
func renderSteps(w io.Writer, tr *eigen.Trace) {
	fmt.Fprintln(w, "Step 1: characteristic polynomial")
	fmt.Fprintf(w, "  p(x) = %s\n\n", tr.Polynomial)

	fmt.Fprintln(w, "Step 2: eigenvalues and eigenspaces")
	if len(tr.Eigenvalues) == 0 {
		fmt.Fprintln(w, "  no real eigenvalues")
	}
	for _, ev := range tr.Eigenvalues {
		fmt.Fprintf(w, "  eigenvalue %s, multiplicity %d\n", formatValue(ev.Value), ev.Multiplicity)
	}
	for _, es := range tr.Eigenspaces {
		fmt.Fprintf(w, "  eigenvalue %s: algebraic %d, geometric %d\n",
			formatValue(es.Value), es.Algebraic, es.Geometric)
		for _, v := range es.Basis {
			fmt.Fprintf(w, "    %s\n", formatVector(v))
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Step 3: assemble P and D")
	if tr.Reason != eigen.ReasonNone {
		fmt.Fprintf(w, "  skipped: %s\n", tr.Reason)
	} else {
		fmt.Fprintf(w, "  residual %.3g\n", tr.Residual)
	}
	fmt.Fprintln(w)
}

// renderDecomposition prints the successful result.
func renderDecomposition(w io.Writer, a *matrix.Dense, dec *eigen.Decomposition) error {
	back, err := dec.Reconstruct()
	if err != nil {
		return err
	}
	writeMatrix(w, "Matrix A", a)
	writeMatrix(w, "Matrix P (eigenvectors as columns)", dec.P)
	writeMatrix(w, "Matrix P^-1", dec.PInv)
	writeMatrix(w, "Diagonal matrix D", dec.D)
	writeMatrix(w, "P*D*P^-1", back)
	fmt.Fprintf(w, "Residual: %.3g\n", dec.Residual)

	return nil
}

// renderNotDiagonalizable prints the explanation of a failed decomposition.
func renderNotDiagonalizable(w io.Writer, a *matrix.Dense, nd *eigen.NotDiagonalizableError) {
	writeMatrix(w, "Matrix A", a)
	fmt.Fprintf(w, "The matrix is not diagonalizable (%s).\n", nd.Reason)
	switch nd.Reason {
	case eigen.ReasonIncompleteSpectrum:
		fmt.Fprintf(w, "Only %d of %d eigenvalues are real.\n", nd.RealRoots, nd.Dimension)
	case eigen.ReasonDefective:
		fmt.Fprintf(w, "Eigenvalue %s has multiplicity %d but its eigenspace has dimension %d.\n",
			formatValue(nd.Eigenvalue), nd.Algebraic, nd.Geometric)
	}
}

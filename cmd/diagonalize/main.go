// SPDX-License-Identifier: MIT

// Command diagonalize factors a real square matrix as A = P·D·P⁻¹.
//
// Usage:
//
//	diagonalize [file] [--matrix "1,3,3;-3,-5,-3;3,3,1"] [--steps]
//
// The matrix comes from --matrix, a YAML/JSON file (matrix: [[…]]), the
// "matrix" key of the config file, or the built-in 3×3 sample, in that order.
// Settings are read from flags, EIGENDIAG_* environment variables and an
// optional eigendiag.yaml config file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

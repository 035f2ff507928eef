// SPDX-License-Identifier: MIT

package eigen

// Test bridge: exposes private helpers to package eigen_test only.
var (
	ExportedCombinations = combinations
	ExportedSnap         = snap
)

// SPDX-License-Identifier: MIT
// Package poly: sentinel error set.
// Callers match with errors.Is; operations wrap with a tag via polyErrorf.

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrNaNInf signals a NaN or ±Inf coefficient.
	ErrNaNInf = errors.New("poly: NaN or Inf coefficient")
)

// polyErrorf wraps err with an operation tag, preserving the sentinel via %w.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

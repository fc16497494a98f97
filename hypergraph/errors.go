// SPDX-License-Identifier: MIT
// Package hypergraph: sentinel error set.
//
// Errors from the numeric backend (matrix.ErrDimensionMismatch for ragged
// input, matrix.ErrNaNInf for non-finite entries, matrix.ErrInvalidDimensions
// for non-positive sizes) are wrapped and surface unchanged for errors.Is.
// matrix.ErrSingular never leaves this package: it is the expected signal of
// linear dependence.

package hypergraph

import "errors"

var (
	// ErrEmptyHypergraph indicates that no column survived cleaning:
	// the input had no arcs or every column was all zeros.
	ErrEmptyHypergraph = errors.New("hypergraph: no non-empty arc columns")
)

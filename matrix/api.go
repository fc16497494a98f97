// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for building matrices from Go slices.
//   - Keep validation in one place: ragged input, NaN/Inf and empty input are
//     rejected here with the package sentinels.
//
// AI-Hints:
//   - Incidence data arrives as one slice per arc. Build it with
//     NewDenseFromRows (arcs × vertices) and Transpose to reach vertices × arcs.

package matrix

import "fmt"

const ctxFromRows = "NewDenseFromRows"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewDenseFromRows copies a row-major [][]float64 into a fresh *Dense.
//
// Implementation:
//   - Stage 1: len(rows) == 0 or len(rows[0]) == 0 ⇒ ErrInvalidDimensions.
//   - Stage 2: every row must have len(rows[0]) entries ⇒ else ErrDimensionMismatch.
//   - Stage 3: every value must be finite ⇒ else ErrNaNInf.
//
// Behavior highlights:
//   - The input is never aliased; callers may reuse their slices.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(row), c, ErrDimensionMismatch)
		}
		if err = ValidateFinite(row); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", ctxFromRows, i, err)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// SPDX-License-Identifier: MIT
// Package hypergraph - IncidenceMatrix construction, cleaning & accessors.
//
// Purpose:
//   - Normalize raw column-major input (one slice per arc) by dropping
//     all-zero columns, then build the vertex×arc backend matrix.
//   - Eagerly compute independence, rank and bases when raw data is supplied.
//
// Complexity quicksheet:
//   - NewIncidenceMatrix: O(V*A) cleaning + Rank + Bases (see bases.go).
//   - Columns/Dense: O(V*A) deep copies; NumRows/NumCols: O(1).

package hypergraph

import (
	"fmt"

	"github.com/ErikRauer/3DHypergraphGenerator/matrix"
)

const (
	opNew      = "NewIncidenceMatrix"
	opNewEmpty = "NewEmptyIncidenceMatrix"
)

// IncidenceMatrix is a cleaned vertex-arc incidence matrix with its analysis.
//
// Invariants after NewIncidenceMatrix:
//   - numCols ≥ 1 and no stored column is all zeros.
//   - dense is numRows×numCols (vertices × arcs) and exclusively owned.
//   - every entry of bases is ascending, has exactly rank elements and is
//     distinct from every other entry.
type IncidenceMatrix struct {
	numRows, numCols int

	dense *matrix.Dense // vertices × arcs; column j is arc j

	rank        int
	independent bool
	bases       [][]int
}

// NewIncidenceMatrix builds an IncidenceMatrix from raw arc columns and
// analyzes it.
//
// Implementation:
//   - Stage 1: validate shape (every column as long as raw[0]) and finiteness.
//   - Stage 2: drop all-zero columns; none left ⇒ ErrEmptyHypergraph.
//   - Stage 3: build arcs×vertices via matrix.NewDenseFromRows, transpose it.
//   - Stage 4: compute independence, rank and bases.
//
// Errors:
//   - ErrEmptyHypergraph, matrix.ErrDimensionMismatch (ragged input),
//     matrix.ErrNaNInf, or any numeric failure of the analysis.
//
// AI-Hints:
//   - raw is copied; later edits to it do not reach the IncidenceMatrix.
func NewIncidenceMatrix(raw [][]float64) (*IncidenceMatrix, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: %w", opNew, ErrEmptyHypergraph)
	}
	numVertices := len(raw[0])
	for j, col := range raw {
		if len(col) != numVertices {
			return nil, fmt.Errorf("%s: column %d has %d entries, want %d: %w",
				opNew, j, len(col), numVertices, matrix.ErrDimensionMismatch)
		}
		if err := matrix.ValidateFinite(col); err != nil {
			return nil, fmt.Errorf("%s: column %d: %w", opNew, j, err)
		}
	}

	cleaned := removeEmptyColumns(raw)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%s: %w", opNew, ErrEmptyHypergraph)
	}

	arcsByVertex, err := matrix.NewDenseFromRows(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	t, err := matrix.Transpose(arcsByVertex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	im := &IncidenceMatrix{
		numRows: numVertices,
		numCols: len(cleaned),
		dense:   t.(*matrix.Dense),
	}
	if _, err = im.IsLinearlyIndependent(); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	if _, err = im.Bases(); err != nil { // also refreshes rank
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return im, nil
}

// NewEmptyIncidenceMatrix returns a numVertices×numArcs all-zero matrix with
// rank 0, no bases and the independence flag unset. Nothing is computed.
//
// Errors: matrix.ErrInvalidDimensions when either size is ≤ 0.
func NewEmptyIncidenceMatrix(numVertices, numArcs int) (*IncidenceMatrix, error) {
	d, err := matrix.NewZeros(numVertices, numArcs)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNewEmpty, numVertices, numArcs, err)
	}

	return &IncidenceMatrix{
		numRows: numVertices,
		numCols: numArcs,
		dense:   d,
	}, nil
}

// removeEmptyColumns returns the columns holding at least one nonzero entry,
// in input order. The slices are shared with raw; NewDenseFromRows copies them.
func removeEmptyColumns(raw [][]float64) [][]float64 {
	out := make([][]float64, 0, len(raw))
	for _, col := range raw {
		if !isZeroColumn(col) {
			out = append(out, col)
		}
	}

	return out
}

func isZeroColumn(col []float64) bool {
	for _, v := range col {
		if v != 0 {
			return false
		}
	}

	return true
}

// NumRows returns the vertex count.
func (im *IncidenceMatrix) NumRows() int { return im.numRows }

// NumCols returns the arc count after cleaning.
func (im *IncidenceMatrix) NumCols() int { return im.numCols }

// Columns returns the cleaned arc columns as fresh slices, one per arc.
// Complexity: O(V*A).
func (im *IncidenceMatrix) Columns() [][]float64 {
	out := make([][]float64, im.numCols)
	for j := range out {
		// j < numCols == dense.Cols(), so Column cannot fail.
		out[j], _ = im.dense.Column(j)
	}

	return out
}

// Dense returns a copy of the vertex×arc backend matrix.
// Complexity: O(V*A).
func (im *IncidenceMatrix) Dense() *matrix.Dense {
	return im.dense.Clone().(*matrix.Dense)
}

// String renders the vertex×arc matrix one vertex per line.
func (im *IncidenceMatrix) String() string {
	return im.dense.String()
}

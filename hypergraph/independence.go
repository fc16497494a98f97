// SPDX-License-Identifier: MIT
// Package hypergraph - rank and linear-independence queries.
//
// Both queries recompute from the backend matrix on every call and store the
// result for the Cached* accessors.

package hypergraph

import (
	"errors"
	"fmt"

	"github.com/ErikRauer/3DHypergraphGenerator/matrix"
)

const (
	opRank        = "Rank"
	opIndependent = "IsLinearlyIndependent"
)

// testIndependence reports whether the columns of a are linearly independent.
//
// More columns than rows are always dependent. Otherwise a·x = 0 is solved:
// success means x = 0 is the only solution; matrix.ErrSingular means a
// nontrivial null space exists and is reported as false, not as an error.
func testIndependence(a *matrix.Dense) (bool, error) {
	if a.Cols() > a.Rows() {
		return false, nil
	}
	_, err := matrix.Solve(a, make([]float64, a.Rows()))
	if errors.Is(err, matrix.ErrSingular) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// IsLinearlyIndependent recomputes whether all arc columns are linearly
// independent. It is never O(1); see CachedIndependent.
func (im *IncidenceMatrix) IsLinearlyIndependent() (bool, error) {
	ok, err := testIndependence(im.dense)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opIndependent, err)
	}
	im.independent = ok

	return ok, nil
}

// Rank recomputes the numeric rank of the vertex×arc matrix.
// It is never O(1); see CachedRank.
func (im *IncidenceMatrix) Rank() (int, error) {
	r, err := matrix.Rank(im.dense)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opRank, err)
	}
	im.rank = r

	return r, nil
}

// CachedRank returns the rank stored by the last Rank or Bases call.
func (im *IncidenceMatrix) CachedRank() int { return im.rank }

// CachedIndependent returns the flag stored by the last IsLinearlyIndependent call.
func (im *IncidenceMatrix) CachedIndependent() bool { return im.independent }

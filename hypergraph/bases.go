// SPDX-License-Identifier: MIT
// Package hypergraph - greedy circular-walk basis search.
//
// Purpose:
//   - Find distinct rank-sized independent column subsets, one candidate per
//     start column, in a fixed and reproducible order.
//
// Complexity:
//   - O(A · A) independence tests in the worst case (each walk visits at most
//     A-1 candidates), each test an O(V · k²) QR on a V×k submatrix.
//   - At most A bases are returned.

package hypergraph

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"
)

const (
	opBases           = "Bases"
	opBasesConcurrent = "BasesConcurrent"
)

// Bases recomputes the rank and then the greedy basis list.
//
// Implementation:
//   - Stage 1: refresh rank via Rank().
//   - Stage 2: for every start column i, run walkFrom(i).
//   - Stage 3: keep each ascending result with exactly rank elements that is
//     not already in the list, in start order.
//
// Behavior highlights:
//   - Deterministic: identical input gives an identical ordered list.
//   - Not exhaustive: a matrix can have bases that no walk reaches.
//   - A zero matrix (rank 0) has no bases.
//
// The returned slices are fresh copies; CachedBases returns the same list
// without recomputing.
func (im *IncidenceMatrix) Bases() ([][]int, error) {
	rank, err := im.Rank()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBases, err)
	}

	found := make([][]int, 0, im.numCols)
	var basis []int
	for i := 0; i < im.numCols; i++ {
		if basis, err = im.walkFrom(i, rank); err != nil {
			return nil, fmt.Errorf("%s: start %d: %w", opBases, i, err)
		}
		found = appendBasis(found, basis, rank)
	}
	im.bases = found

	return copyBases(found), nil
}

// BasesConcurrent computes the same list as Bases with the per-start walks
// spread over at most workers goroutines (workers ≤ 0 means no limit).
//
// Results are merged in start order after all walks finish, so the output
// does not depend on scheduling. The first walk error, or ctx cancellation,
// aborts the search and leaves CachedBases untouched.
func (im *IncidenceMatrix) BasesConcurrent(ctx context.Context, workers int) ([][]int, error) {
	rank, err := im.Rank()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBasesConcurrent, err)
	}

	walks := make([][]int, im.numCols)
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < im.numCols; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			basis, err := im.walkFrom(i, rank)
			if err != nil {
				return fmt.Errorf("start %d: %w", i, err)
			}
			walks[i] = basis

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opBasesConcurrent, err)
	}

	found := make([][]int, 0, im.numCols)
	for _, basis := range walks {
		found = appendBasis(found, basis, rank)
	}
	im.bases = found

	return copyBases(found), nil
}

// CachedBases returns a copy of the list stored by the last Bases or
// BasesConcurrent call.
func (im *IncidenceMatrix) CachedBases() [][]int { return copyBases(im.bases) }

// walkFrom runs one greedy walk starting at column start and returns the
// accepted indices in ascending order.
//
// The walk visits start+1, start+2, … modulo numCols and stops once rank
// columns are accepted or it is back at start. A candidate j is accepted when
// the accepted columns plus j are still independent. Only the backend matrix
// is read, so concurrent walks are safe.
func (im *IncidenceMatrix) walkFrom(start, rank int) ([]int, error) {
	accepted := make([]int, 1, max(rank, 1))
	accepted[0] = start

	var (
		cand []int
		ok   bool
	)
	for j := (start + 1) % im.numCols; j != start && len(accepted) < rank; j = (j + 1) % im.numCols {
		cand = append(slices.Clip(accepted), j)
		sub, err := im.dense.InducedColumns(cand)
		if err != nil {
			return nil, err
		}
		if ok, err = testIndependence(sub); err != nil {
			return nil, err
		}
		if ok {
			accepted = cand
		}
	}
	sort.Ints(accepted)

	return accepted, nil
}

// appendBasis appends basis to found when it has exactly rank elements and
// is not already present.
func appendBasis(found [][]int, basis []int, rank int) [][]int {
	if len(basis) != rank || rank == 0 {
		return found
	}
	for _, b := range found {
		if slices.Equal(b, basis) {
			return found
		}
	}

	return append(found, basis)
}

func copyBases(in [][]int) [][]int {
	out := make([][]int, len(in))
	for i, b := range in {
		out[i] = slices.Clone(b)
	}

	return out
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/ErikRauer/3DHypergraphGenerator/matrix"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// LinearAlgebraSuite groups the kernels that the incidence analysis relies on.
type LinearAlgebraSuite struct {
	suite.Suite
	incidence *matrix.Dense // 4 vertices × 2 independent arcs
	dependent *matrix.Dense // 3 vertices × 2 opposite arcs
}

func (s *LinearAlgebraSuite) SetupTest() {
	t := s.T()
	s.incidence = MustFromRows(t, [][]float64{
		{-1, 1},
		{1, -1},
		{1, 0},
		{0, 0},
	})
	s.dependent = MustFromRows(t, [][]float64{
		{1, -1},
		{-1, 1},
		{0, 0},
	})
}

func (s *LinearAlgebraSuite) TestTranspose() {
	m := MustFromRows(s.T(), [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, tr.Rows())
	require.Equal(s.T(), 2, tr.Cols())
	require.Equal(s.T(), 6.0, MustAt(s.T(), tr, 2, 1))
	require.Equal(s.T(), 2.0, MustAt(s.T(), tr, 1, 0))

	// the generic path must agree with the *Dense fast-path
	tr2, err := matrix.Transpose(hide{m})
	require.NoError(s.T(), err)
	require.Equal(s.T(), tr.(*matrix.Dense).String(), tr2.(*matrix.Dense).String())

	_, err = matrix.Transpose(nil)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
}

func (s *LinearAlgebraSuite) TestMatVec() {
	m := MustFromRows(s.T(), [][]float64{{1, 2}, {3, 4}})
	y, err := matrix.MatVec(m, []float64{1, 1})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{3, 7}, y)

	_, err = matrix.MatVec(m, []float64{1})
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)
}

// TestQRReconstructs checks Q*A = R with R upper trapezoidal and A = Qᵀ*R.
func (s *LinearAlgebraSuite) TestQRReconstructs() {
	t := s.T()
	a := MustFromRows(t, [][]float64{
		{1, 0},
		{1, 1},
		{0, 1},
	})
	q, r, err := matrix.QR(a)
	require.NoError(t, err)
	require.Equal(t, 3, q.Rows())
	require.Equal(t, 3, r.Rows())
	require.Equal(t, 2, r.Cols())

	var i, j, k int
	for i = 1; i < 3; i++ {
		for j = 0; j < i && j < 2; j++ {
			require.InDelta(t, 0, MustAt(t, r, i, j), tol, "R[%d,%d]", i, j)
		}
	}
	var sum float64
	for i = 0; i < 3; i++ {
		for j = 0; j < 2; j++ {
			sum = 0
			for k = 0; k < 3; k++ {
				sum += MustAt(t, q, k, i) * MustAt(t, r, k, j)
			}
			require.InDelta(t, MustAt(t, a, i, j), sum, tol, "A[%d,%d]", i, j)
		}
	}

	_, _, err = matrix.QR(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func (s *LinearAlgebraSuite) TestSolveSquare() {
	a := MustFromRows(s.T(), [][]float64{{2, 1}, {1, 3}})
	x, err := matrix.Solve(a, []float64{3, 5})
	require.NoError(s.T(), err)
	require.True(s.T(), vecClose(x, []float64{0.8, 1.4}, tol), "x=%v", x)

	y, err := matrix.MatVec(a, x)
	require.NoError(s.T(), err)
	require.True(s.T(), vecClose(y, []float64{3, 5}, tol))
}

// TestSolveZeroRHSIndependent covers the independence check a·x = 0.
func (s *LinearAlgebraSuite) TestSolveZeroRHSIndependent() {
	x, err := matrix.Solve(s.incidence, make([]float64, 4))
	require.NoError(s.T(), err)
	require.True(s.T(), vecClose(x, []float64{0, 0}, tol))

	// generic fallback path
	x, err = matrix.Solve(hide{s.incidence}, make([]float64, 4))
	require.NoError(s.T(), err)
	require.True(s.T(), vecClose(x, []float64{0, 0}, tol))
}

func (s *LinearAlgebraSuite) TestSolveSingular() {
	t := s.T()
	tests := []struct {
		name string
		a    *matrix.Dense
	}{
		{"opposite columns", s.dependent},
		{"zero column", MustFromRows(t, [][]float64{{1, 0}, {0, 0}})},
		{"wide", MustFromRows(t, [][]float64{{1, 0, 1}, {0, 1, 1}})},
		{"cycle", MustFromRows(t, [][]float64{
			{1, 0, -1},
			{-1, 1, 0},
			{0, -1, 1},
		})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Solve(tc.a, make([]float64, tc.a.Rows()))
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func (s *LinearAlgebraSuite) TestSolveValidation() {
	_, err := matrix.Solve(nil, []float64{0})
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)

	_, err = matrix.Solve(s.incidence, []float64{0, 0})
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(s.incidence, []float64{0, 0, math.NaN(), 0})
	require.ErrorIs(s.T(), err, matrix.ErrNaNInf)
}

func (s *LinearAlgebraSuite) TestSingularValues() {
	t := s.T()
	sv, err := matrix.SingularValues(MustFromRows(t, [][]float64{{2, 0}, {0, 3}}))
	require.NoError(t, err)
	require.True(t, vecClose(sv, []float64{3, 2}, tol), "sv=%v", sv)

	sv, err = matrix.SingularValues(MustFromRows(t, [][]float64{{1, 1}, {1, 1}}))
	require.NoError(t, err)
	require.True(t, vecClose(sv, []float64{2, 0}, tol), "sv=%v", sv)

	// a duplicated column leaves a round-off remainder that must not stall the sweeps
	sv, err = matrix.SingularValues(MustFromRows(t, [][]float64{
		{1, 1, 1},
		{-1, 1, 1},
		{-1, -1, -1},
	}))
	require.NoError(t, err)
	require.Len(t, sv, 3)
	require.InDelta(t, 0, sv[2], tol, "sv=%v", sv)
	require.Greater(t, sv[1], 0.5, "sv=%v", sv)

	// wide input is handled through its transpose
	sv, err = matrix.SingularValues(MustFromRows(t, [][]float64{{3, 0, 0}, {0, 0, 4}}))
	require.NoError(t, err)
	require.True(t, vecClose(sv, []float64{4, 3}, tol), "sv=%v", sv)
}

func (s *LinearAlgebraSuite) TestRank() {
	t := s.T()
	tests := []struct {
		name string
		a    matrix.Matrix
		want int
	}{
		{"identity", MustFromRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}), 3},
		{"rank one", MustFromRows(t, [][]float64{{1, 2}, {2, 4}}), 1},
		{"zero", MustDense(t, 3, 2), 0},
		{"incidence", s.incidence, 2},
		{"dependent", s.dependent, 1},
		{"wide", MustFromRows(t, [][]float64{{1, 0, 1}, {0, 1, 1}}), 2},
		{"cycle", MustFromRows(t, [][]float64{
			{1, 0, -1},
			{-1, 1, 0},
			{0, -1, 1},
		}), 2},
		{"hidden", hide{s.incidence}, 2},
		// arcs (1,-1,-1), (1,1,-1), (1,1,-1) as columns
		{"duplicated column", MustFromRows(t, [][]float64{
			{1, 1, 1},
			{-1, 1, 1},
			{-1, -1, -1},
		}), 2},
		{"duplicated pair", MustFromRows(t, [][]float64{
			{1, 1},
			{-1, -1},
			{0, 0},
		}), 1},
		{"two duplicated pairs", MustFromRows(t, [][]float64{
			{-1, -1, 1, 1},
			{1, 1, 0, 0},
			{1, 1, -1, -1},
			{0, 0, 0, 0},
		}), 2},
		{"duplicate plus independent wide", MustFromRows(t, [][]float64{
			{1, 1, 0, -1},
			{-1, -1, 1, 0},
			{0, 0, -1, 1},
		}), 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Rank(tc.a)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := matrix.Rank(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// Entry point for running the suite.
func TestLinearAlgebraSuite(t *testing.T) {
	suite.Run(t, new(LinearAlgebraSuite))
}

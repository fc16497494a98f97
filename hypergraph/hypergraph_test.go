// SPDX-License-Identifier: MIT
// Package hypergraph_test contains tests for DirectionalHypergraph and arc shapes.
package hypergraph_test

import (
	"testing"

	"github.com/ErikRauer/3DHypergraphGenerator/hypergraph"
	"github.com/ErikRauer/3DHypergraphGenerator/matrix"
	"github.com/stretchr/testify/require"
)

func TestDirectionalHypergraphCounts(t *testing.T) {
	h, err := hypergraph.NewDirectionalHypergraph(scenario)
	require.NoError(t, err)

	require.Equal(t, 4, h.NumVertices())
	require.Equal(t, 2, h.NumArcs())
	// (-1,1,1,0) sums to 1; the regular arc sums to 0.
	require.Equal(t, 1, h.NumHyperArcs())
	require.Equal(t, 2, h.IncidenceMatrix().CachedRank())

	h.SetNumHyperArcs(7)
	require.Equal(t, 7, h.NumHyperArcs())
	require.Equal(t, 1, h.CountHyperArcs())
	require.Equal(t, 1, h.NumHyperArcs())

	counts := h.ShapeCounts()
	require.Equal(t, 1, counts[hypergraph.ShapeTwoHead])
	require.Equal(t, 1, counts[hypergraph.ShapeRegular])
	require.Zero(t, counts[hypergraph.ShapeTwoTail])
}

func TestDirectionalHypergraphErrors(t *testing.T) {
	_, err := hypergraph.NewDirectionalHypergraph([][]float64{{0, 0, 0}})
	require.ErrorIs(t, err, hypergraph.ErrEmptyHypergraph)

	_, err = hypergraph.NewEmptyDirectionalHypergraph(3, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestEmptyDirectionalHypergraph(t *testing.T) {
	h, err := hypergraph.NewEmptyDirectionalHypergraph(5, 2)
	require.NoError(t, err)
	require.Equal(t, 5, h.NumVertices())
	require.Equal(t, 2, h.NumArcs())
	require.Zero(t, h.NumHyperArcs())
	require.Zero(t, h.CountHyperArcs())
	require.Equal(t, 2, h.IncidenceMatrix().NumCols())
}

func TestClassifyArc(t *testing.T) {
	tests := []struct {
		col  []float64
		want hypergraph.ArcShape
	}{
		{[]float64{1, -1, 0}, hypergraph.ShapeRegular},
		{[]float64{-1, 1, 1}, hypergraph.ShapeTwoHead},
		{[]float64{1, -1, 0, -1}, hypergraph.ShapeTwoTail},
		{[]float64{0, 0, 0}, hypergraph.ShapeUnknown},
		{[]float64{1, 1, 0}, hypergraph.ShapeUnknown},
		{[]float64{2, -1, 0}, hypergraph.ShapeUnknown},
		{[]float64{-1, -1, 1, 1}, hypergraph.ShapeUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.want.String(), func(t *testing.T) {
			require.Equal(t, tc.want, hypergraph.ClassifyArc(tc.col), "col %v", tc.col)
		})
	}
}

// SPDX-License-Identifier: MIT
// Package hypergraph - DirectionalHypergraph facade.

package hypergraph

import "fmt"

// DirectionalHypergraph owns exactly one IncidenceMatrix and exposes its
// vertex, arc and hyperarc counts.
type DirectionalHypergraph struct {
	incidence *IncidenceMatrix

	numVertices  int
	numArcs      int
	numHyperArcs int
}

// NewDirectionalHypergraph builds and analyzes the incidence matrix of raw
// (one slice per arc) and counts its hyperarcs.
//
// Errors: those of NewIncidenceMatrix.
func NewDirectionalHypergraph(raw [][]float64) (*DirectionalHypergraph, error) {
	im, err := NewIncidenceMatrix(raw)
	if err != nil {
		return nil, fmt.Errorf("NewDirectionalHypergraph: %w", err)
	}
	h := &DirectionalHypergraph{
		incidence:   im,
		numVertices: im.NumRows(),
		numArcs:     im.NumCols(),
	}
	h.CountHyperArcs()

	return h, nil
}

// NewEmptyDirectionalHypergraph returns a hypergraph over an all-zero
// numVertices×numArcs matrix with zero hyperarcs.
//
// Errors: matrix.ErrInvalidDimensions when either size is ≤ 0.
func NewEmptyDirectionalHypergraph(numVertices, numArcs int) (*DirectionalHypergraph, error) {
	im, err := NewEmptyIncidenceMatrix(numVertices, numArcs)
	if err != nil {
		return nil, fmt.Errorf("NewEmptyDirectionalHypergraph: %w", err)
	}

	return &DirectionalHypergraph{
		incidence:   im,
		numVertices: numVertices,
		numArcs:     numArcs,
	}, nil
}

// CountHyperArcs recounts the columns whose entries do not sum to zero,
// stores the count and returns it.
func (h *DirectionalHypergraph) CountHyperArcs() int {
	n := 0
	var sum float64
	for _, col := range h.incidence.Columns() {
		sum = 0
		for _, v := range col {
			sum += v
		}
		if sum != 0 {
			n++
		}
	}
	h.numHyperArcs = n

	return n
}

// ShapeCounts tallies the columns by ClassifyArc.
func (h *DirectionalHypergraph) ShapeCounts() map[ArcShape]int {
	out := make(map[ArcShape]int, 4)
	for _, col := range h.incidence.Columns() {
		out[ClassifyArc(col)]++
	}

	return out
}

// IncidenceMatrix returns the owned incidence matrix.
func (h *DirectionalHypergraph) IncidenceMatrix() *IncidenceMatrix { return h.incidence }

// NumVertices returns the vertex count.
func (h *DirectionalHypergraph) NumVertices() int { return h.numVertices }

// NumArcs returns the arc count after cleaning.
func (h *DirectionalHypergraph) NumArcs() int { return h.numArcs }

// NumHyperArcs returns the stored hyperarc count.
func (h *DirectionalHypergraph) NumHyperArcs() int { return h.numHyperArcs }

// SetNumHyperArcs overrides the stored hyperarc count.
func (h *DirectionalHypergraph) SetNumHyperArcs(n int) { h.numHyperArcs = n }

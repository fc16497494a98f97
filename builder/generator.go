// SPDX-License-Identifier: MIT
// Package: builder
//
// generator.go: batches of random directional hypergraphs.
//
// Contract:
//   • Bad sizes are soft-rejected: Generate returns an empty, non-nil slice
//     plus a wrapped sentinel and logs a warning. It never panics.
//   • Each column gets up to MaxRetries draws to differ from the columns
//     already accepted into the same matrix. When the budget runs out the
//     last draw is kept: duplicate suppression is best-effort.
//   • Graphs share no state; each owns its columns and incidence matrix.
//
// Complexity:
//   • Columns: O(numArcs · MaxRetries · numArcs · numVertices) comparisons.
//   • Analysis per graph: see hypergraph.NewIncidenceMatrix.

package builder

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/ErikRauer/3DHypergraphGenerator/hypergraph"
)

// HypergraphGenerator assembles random incidence matrices from an ArcSource
// and wraps each in a DirectionalHypergraph.
type HypergraphGenerator struct {
	source ArcSource
	logger *log.Logger
}

// NewHypergraphGenerator returns a generator drawing columns from source.
// Only the logger option is read here; shape and RNG options belong to the
// ArcSource.
//
// Errors: ErrNeedArcSource when source is nil.
func NewHypergraphGenerator(source ArcSource, opts ...BuilderOption) (*HypergraphGenerator, error) {
	if source == nil {
		return nil, builderErrorf(MethodNewHypergraphGenerator, ErrNeedArcSource, "source is nil")
	}
	cfg := newBuilderConfig(opts...)

	return &HypergraphGenerator{source: source, logger: cfg.logger}, nil
}

// NewRandomHypergraphGenerator is NewArcGenerator followed by
// NewHypergraphGenerator with the same options.
func NewRandomHypergraphGenerator(opts ...BuilderOption) (*HypergraphGenerator, error) {
	arcs, err := NewArcGenerator(opts...)
	if err != nil {
		return nil, err
	}

	return NewHypergraphGenerator(arcs, opts...)
}

// Generate builds numGraphs hypergraphs with numVertices vertices and
// numArcs arcs each.
//
// Implementation:
//   - Stage 1: validate numGraphs ≥ 0, numVertices ≥ MinHyperarcVertices,
//     numArcs ≥ MinArcs; on failure warn and return an empty list + error.
//   - Stage 2: per graph, draw numArcs columns through drawColumn.
//   - Stage 3: hypergraph.NewDirectionalHypergraph analyzes the columns.
//
// Errors:
//   - ErrBadSize, ErrTooFewVertices, ErrTooFewArcs (empty result).
//   - Source errors and ErrConstructFailed stop the batch; the graphs built
//     so far are returned with the error.
func (g *HypergraphGenerator) Generate(numGraphs, numVertices, numArcs int) ([]*hypergraph.DirectionalHypergraph, error) {
	out := make([]*hypergraph.DirectionalHypergraph, 0, max(numGraphs, 0))

	if err := g.validateSizes(numGraphs, numVertices, numArcs); err != nil {
		g.logger.Warn("rejecting generation request",
			"graphs", numGraphs, "vertices", numVertices, "arcs", numArcs, "err", err)
		return out, err
	}

	for i := 0; i < numGraphs; i++ {
		cols := make([][]float64, 0, numArcs)
		for a := 0; a < numArcs; a++ {
			col, err := g.drawColumn(cols, numVertices)
			if err != nil {
				return out, builderErrorf(MethodGenerate, err, "graph %d arc %d", i, a)
			}
			cols = append(cols, col)
		}

		h, err := hypergraph.NewDirectionalHypergraph(cols)
		if err != nil {
			return out, fmt.Errorf("%s: graph %d: %w: %w", MethodGenerate, i, ErrConstructFailed, err)
		}
		g.logger.Debug("generated hypergraph",
			"index", i,
			"arcs", h.NumArcs(),
			"hyperarcs", h.NumHyperArcs(),
			"rank", h.IncidenceMatrix().CachedRank())
		out = append(out, h)
	}

	return out, nil
}

func (g *HypergraphGenerator) validateSizes(numGraphs, numVertices, numArcs int) error {
	if err := validateMin(MethodGenerate, "numGraphs", numGraphs, 0, ErrBadSize); err != nil {
		return err
	}
	if err := validateMin(MethodGenerate, "numVertices", numVertices, MinHyperarcVertices, ErrTooFewVertices); err != nil {
		return err
	}

	return validateMin(MethodGenerate, "numArcs", numArcs, MinArcs, ErrTooFewArcs)
}

// drawColumn draws up to MaxRetries columns and returns the first one not
// equal to any of accepted, or the last draw when all of them were duplicates.
func (g *HypergraphGenerator) drawColumn(accepted [][]float64, numVertices int) ([]float64, error) {
	var (
		col []float64
		err error
	)
	for attempt := 0; attempt < MaxRetries; attempt++ {
		if col, err = g.source.GenerateColumn(numVertices); err != nil {
			return nil, err
		}
		if !containsColumn(accepted, col) {
			return col, nil
		}
	}
	g.logger.Debug("retry budget exhausted, keeping duplicate column",
		"retries", MaxRetries, "position", len(accepted))

	return col, nil
}

func containsColumn(cols [][]float64, col []float64) bool {
	for _, c := range cols {
		if slices.Equal(c, col) {
			return true
		}
	}

	return false
}

// SPDX-License-Identifier: MIT
// Package: builder
//
// arc_generator.go: random incidence columns of the three arc shapes.
//
// Contract:
//   • One uniform draw u ∈ [0,1) picks the shape:
//       u < pTwoHead            ⇒ two-headed  [-1, +1, +1]
//       u < pTwoHead + pTwoTail ⇒ two-tailed  [-1, -1, +1]
//       otherwise               ⇒ regular     [+1, -1]
//   • The pattern is written at the first indices of a Fisher-Yates
//     permutation of 0..n-1; every other entry is 0.
//   • Too few vertices for the drawn shape ⇒ ErrTooFewVertices, never a panic.
//
// Complexity:
//   • GenerateColumn / GenerateShape: O(n) time, O(n) space.

package builder

import (
	"math/rand"

	"github.com/ErikRauer/3DHypergraphGenerator/hypergraph"
)

// Sign patterns placed on the leading permuted vertices.
var (
	patternRegular = []float64{1, -1}
	patternTwoHead = []float64{-1, 1, 1}
	patternTwoTail = []float64{-1, -1, 1}
)

// ArcSource draws one incidence column over numVertices vertices.
// *ArcGenerator implements it; tests substitute deterministic sources.
type ArcSource interface {
	GenerateColumn(numVertices int) ([]float64, error)
}

var _ ArcSource = (*ArcGenerator)(nil)

// ArcGenerator draws random arc columns with a configured shape mix.
// It is not safe for concurrent use (it owns a *rand.Rand).
type ArcGenerator struct {
	rng      *rand.Rand
	pTwoHead float64
	pTwoTail float64
}

// NewArcGenerator validates the options and returns a ready generator.
//
// Errors:
//   - ErrInvalidProbability: a probability outside [0,1] or a sum above 1.
//   - ErrNeedRandSource: neither WithSeed nor WithRand was supplied.
func NewArcGenerator(opts ...BuilderOption) (*ArcGenerator, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateShapeMix(MethodNewArcGenerator, cfg.pTwoHead, cfg.pTwoTail); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, builderErrorf(MethodNewArcGenerator, ErrNeedRandSource, "no WithSeed/WithRand option")
	}

	return &ArcGenerator{rng: cfg.rng, pTwoHead: cfg.pTwoHead, pTwoTail: cfg.pTwoTail}, nil
}

// Probabilities returns the configured two-head and two-tail chances.
func (g *ArcGenerator) Probabilities() (pTwoHead, pTwoTail float64) {
	return g.pTwoHead, g.pTwoTail
}

// GenerateColumn draws a shape by the configured mix and returns a column of
// that shape over numVertices vertices.
//
// Errors: ErrTooFewVertices when numVertices cannot hold the drawn shape.
func (g *ArcGenerator) GenerateColumn(numVertices int) ([]float64, error) {
	if err := validateMin(MethodGenerateColumn, "numVertices", numVertices, MinRegularVertices, ErrTooFewVertices); err != nil {
		return nil, err
	}

	return g.GenerateShape(g.pickShape(), numVertices)
}

// pickShape maps one uniform draw onto the shape mix.
func (g *ArcGenerator) pickShape() hypergraph.ArcShape {
	u := g.rng.Float64()
	switch {
	case u < g.pTwoHead:
		return hypergraph.ShapeTwoHead
	case u < g.pTwoHead+g.pTwoTail:
		return hypergraph.ShapeTwoTail
	default:
		return hypergraph.ShapeRegular
	}
}

// GenerateShape returns a random column of the given shape.
//
// Errors:
//   - ErrUnknownShape for hypergraph.ShapeUnknown or out-of-range values.
//   - ErrTooFewVertices when numVertices < len(pattern) (2 or 3).
func (g *ArcGenerator) GenerateShape(shape hypergraph.ArcShape, numVertices int) ([]float64, error) {
	var pattern []float64
	switch shape {
	case hypergraph.ShapeRegular:
		pattern = patternRegular
	case hypergraph.ShapeTwoHead:
		pattern = patternTwoHead
	case hypergraph.ShapeTwoTail:
		pattern = patternTwoTail
	default:
		return nil, builderErrorf(MethodGenerateShape, ErrUnknownShape, "shape %d", int(shape))
	}
	if err := validateMin(MethodGenerateShape, "numVertices", numVertices, len(pattern), ErrTooFewVertices); err != nil {
		return nil, err
	}

	col := make([]float64, numVertices)
	perm := permRange(numVertices, g.rng)
	for k, v := range pattern {
		col[perm[k]] = v
	}

	return col, nil
}

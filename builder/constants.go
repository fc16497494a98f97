// Package builder defines shared constants used by the arc and hypergraph
// generators, ensuring consistent defaults and validation.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodNewArcGenerator is the canonical name for the NewArcGenerator constructor.
	MethodNewArcGenerator = "NewArcGenerator"
	// MethodGenerateColumn is the canonical name for ArcGenerator.GenerateColumn.
	MethodGenerateColumn = "GenerateColumn"
	// MethodGenerateShape is the canonical name for ArcGenerator.GenerateShape.
	MethodGenerateShape = "GenerateShape"
	// MethodNewHypergraphGenerator is the canonical name for the NewHypergraphGenerator constructor.
	MethodNewHypergraphGenerator = "NewHypergraphGenerator"
	// MethodGenerate is the canonical name for HypergraphGenerator.Generate.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinRegularVertices is the smallest vertex count a regular arc fits in.
const MinRegularVertices = 2

// MinHyperarcVertices is the smallest vertex count a two-headed or two-tailed
// arc fits in, and the smallest vertex count Generate accepts.
const MinHyperarcVertices = 3

// MinArcs is the smallest arc count Generate accepts.
const MinArcs = 1

//-----------------------------------------------------------------------------
// Retry Budget
//-----------------------------------------------------------------------------

// MaxRetries is the number of draws per column Generate spends trying to
// avoid a column already present in the same matrix. After the last draw the
// column is kept even if it is a duplicate.
const MaxRetries = 5

//-----------------------------------------------------------------------------
// Default Probabilities and Bounds
//-----------------------------------------------------------------------------

// DefaultTwoHeadProbability is the default chance of drawing a two-headed arc.
const DefaultTwoHeadProbability = 0.2

// DefaultTwoTailProbability is the default chance of drawing a two-tailed arc.
// The remaining mass (0.6 by default) goes to regular arcs.
const DefaultTwoTailProbability = 0.2

// MinProbability is the inclusive lower bound for a shape probability.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for a shape probability and
// for the sum of the two hyperarc probabilities.
const MaxProbability = 1.0

// Package builder generates random directional hypergraphs.
//
// The package offers two generators and the functional options shared by both:
//
//   - ArcGenerator: draws one incidence column at a time. A uniform draw picks
//     the shape (two-headed with probability pTwoHead, two-tailed with
//     pTwoTail, regular otherwise) and the sign pattern is placed on the first
//     entries of a Fisher-Yates permutation of the vertices.
//   - HypergraphGenerator: draws numArcs columns per graph from any ArcSource,
//     spending up to MaxRetries draws per column to avoid duplicating a column
//     already in the same matrix, and wraps the result in a
//     hypergraph.DirectionalHypergraph.
//   - Configuration primitives:
//     - BuilderOption:              a function that mutates builderConfig before use.
//     - WithSeed / WithRand:        the RNG; required by ArcGenerator.
//     - WithHyperarcProbabilities:  the shape mix (defaults 0.2 / 0.2).
//     - WithLogger:                 a *log.Logger (charmbracelet/log) for diagnostics.
//   - Shared constants:
//     - MinRegularVertices, MinHyperarcVertices, MinArcs, MaxRetries.
//     - DefaultTwoHeadProbability, DefaultTwoTailProbability.
//     - MethodGenerate, … tokens for error context.
//
// Guarantees:
//
//   - Deterministic per seed: the same options and sizes reproduce the same batch.
//   - Fast-fail on nil option arguments via panics in option constructors.
//   - Structured runtime errors wrapping package sentinels for errors.Is.
//   - Generate soft-rejects bad sizes with an empty, non-nil slice and an error.
//
// Example:
//
//	gen, err := builder.NewRandomHypergraphGenerator(builder.WithSeed(42))
//	if err != nil { … }
//	graphs, err := gen.Generate(10, 6, 4)
package builder

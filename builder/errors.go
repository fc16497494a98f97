// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context with builderErrorf, which keeps `%w`.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// AI-Hints:
//   • Generate soft-rejects bad sizes: it returns an empty, non-nil slice
//     together with ErrTooFewVertices / ErrTooFewArcs / ErrBadSize.
//   • Retry exhaustion while avoiding duplicate columns is NOT an error.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that the vertex count is below the minimum for
// the requested arc shape (3 for hyperarcs, 2 for regular arcs) or for Generate.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrTooFewArcs indicates that Generate was asked for fewer than MinArcs arcs.
var ErrTooFewArcs = errors.New("builder: too few arcs")

// ErrBadSize indicates a negative batch size (numGraphs < 0).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrInvalidProbability indicates a shape probability outside [0,1], or
// probabilities whose sum exceeds 1.
// Usage: if errors.Is(err, ErrInvalidProbability) { /* fix the mix */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that an ArcGenerator was built without an RNG
// (WithSeed or WithRand must be supplied).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNeedArcSource indicates a nil ArcSource passed to NewHypergraphGenerator.
var ErrNeedArcSource = errors.New("builder: arc source is required")

// ErrUnknownShape indicates GenerateShape was called with a shape it cannot draw.
var ErrUnknownShape = errors.New("builder: unknown arc shape")

// ErrConstructFailed indicates that an assembled column set was rejected by
// the hypergraph constructor; the wrapped cause is kept in the chain.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps sentinel with the method context and a formatted detail.
// The result reads "<Method>: <detail>: <sentinel>" and satisfies
// errors.Is(result, sentinel).
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// --- Implementation Notes ----------------------------------------------------
//
// Priority (tie-break guidance when multiple validations fail):
//    • ErrBadSize: batch size first.
//    • ErrTooFewVertices: then vertex counts.
//    • ErrTooFewArcs: then arc counts.
//    • ErrInvalidProbability: then shape probabilities.
//    • ErrNeedRandSource: then RNG presence.
//    • ErrConstructFailed: only after columns were drawn.

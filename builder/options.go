// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on nil inputs. Range checks on probabilities
//     surface as ErrInvalidProbability from the constructors instead, so
//     values read from flags or config files can be reported, not crashed on.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible runs.
//   • *rand.Rand is not goroutine-safe: do not pass the same WithRand value to
//     generators used from different goroutines.

package builder

import (
	"math/rand"

	"github.com/charmbracelet/log"
)

// BuilderOption customizes a generator by mutating a builderConfig instance
// before construction.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for the generators.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithHyperarcProbabilities sets the chance of drawing a two-headed and a
// two-tailed arc. Each must lie in [0,1] and their sum must not exceed 1;
// violations are reported by NewArcGenerator as ErrInvalidProbability.
// Complexity: O(1) time, O(1) space.
func WithHyperarcProbabilities(pTwoHead, pTwoTail float64) BuilderOption {
	return func(c *builderConfig) {
		c.pTwoHead, c.pTwoTail = pTwoHead, pTwoTail
	}
}

// WithLogger routes generator diagnostics to l. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithLogger(l *log.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng      = nil   (NewArcGenerator then fails with ErrNeedRandSource)
//   • pTwoHead = DefaultTwoHeadProbability
//   • pTwoTail = DefaultTwoTailProbability
//   • logger   = discards everything
//
// AI-Hints:
//   • Set WithSeed for reproducible batches.
//   • The same option list may be passed to NewArcGenerator and
//     NewHypergraphGenerator; each reads only the knobs it needs.

package builder

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// builderConfig aggregates all knobs used by the generators.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “not configured”.
	rng *rand.Rand

	// Shape mix; regular arcs take 1 - pTwoHead - pTwoTail.
	pTwoHead float64
	pTwoTail float64

	// Destination for validation warnings and retry diagnostics.
	logger *log.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		pTwoHead: DefaultTwoHeadProbability,
		pTwoTail: DefaultTwoTailProbability,
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// discardLogger returns a logger that writes nowhere.
func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

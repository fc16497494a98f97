// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.Nil(t, cfg.rng)
	require.Equal(t, DefaultTwoHeadProbability, cfg.pTwoHead)
	require.Equal(t, DefaultTwoTailProbability, cfg.pTwoTail)
	require.NotNil(t, cfg.logger)
}

// TestRNGOptions verifies seeding reproducibility and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithSeed(7), WithRand(r))
	require.Same(t, r, c.rng)

	require.Panics(t, func() { WithRand(nil) })
}

func TestProbabilityAndLoggerOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithHyperarcProbabilities(0.5, 0.25))
	require.Equal(t, 0.5, cfg.pTwoHead)
	require.Equal(t, 0.25, cfg.pTwoTail)

	var buf bytes.Buffer
	l := log.New(&buf)
	cfg = newBuilderConfig(WithLogger(l))
	require.Same(t, l, cfg.logger)

	require.Panics(t, func() { WithLogger(nil) })
}

func TestPermRangeIsPermutation(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	p := permRange(9, rng)
	seen := make([]bool, 9)
	for _, v := range p {
		require.False(t, seen[v])
		seen[v] = true
	}
	require.Empty(t, permRange(0, rng))
}

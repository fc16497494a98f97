package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ErikRauer/3DHypergraphGenerator/builder"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogDebug)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func decodeBatch(t *testing.T, s string) BatchReport {
	t.Helper()
	var b BatchReport
	require.NoError(t, json.Unmarshal([]byte(s), &b))
	return b
}

func TestGenerateJSON(t *testing.T) {
	out, err := execute(t, "generate", "--graphs", "2", "--vertices", "5", "--arcs", "3", "--seed", "42", "--format", "json")
	require.NoError(t, err)

	b := decodeBatch(t, out)
	require.NotNil(t, b.Seed)
	require.Equal(t, int64(42), *b.Seed)
	_, err = uuid.Parse(b.ID)
	require.NoError(t, err)
	require.Len(t, b.Graphs, 2)
	for _, g := range b.Graphs {
		_, err = uuid.Parse(g.ID)
		require.NoError(t, err)
		require.Equal(t, 5, g.Vertices)
		require.Equal(t, 3, g.Arcs)
		require.Len(t, g.Columns, 3)
		for _, basis := range g.Bases {
			require.Len(t, basis, g.Rank)
		}
	}
}

func TestGenerateReproducible(t *testing.T) {
	args := []string{"generate", "-n", "3", "--seed", "7", "--format", "json", "--workers", "2"}
	a, err := execute(t, args...)
	require.NoError(t, err)
	b, err := execute(t, args...)
	require.NoError(t, err)

	ba, bb := decodeBatch(t, a), decodeBatch(t, b)
	for i := range ba.Graphs {
		require.Equal(t, ba.Graphs[i].Columns, bb.Graphs[i].Columns)
		require.Equal(t, ba.Graphs[i].Bases, bb.Graphs[i].Bases)
	}
}

// TestGenerateSeedZero checks that 0 is an ordinary seed, from a flag or a file.
func TestGenerateSeedZero(t *testing.T) {
	args := []string{"generate", "-n", "3", "--seed", "0", "--format", "json"}
	a, err := execute(t, args...)
	require.NoError(t, err)
	b, err := execute(t, args...)
	require.NoError(t, err)

	ba, bb := decodeBatch(t, a), decodeBatch(t, b)
	require.NotNil(t, ba.Seed)
	require.Equal(t, int64(0), *ba.Seed)
	for i := range ba.Graphs {
		require.Equal(t, ba.Graphs[i].Columns, bb.Graphs[i].Columns)
	}

	path := writeTemp(t, "zero.toml", "[generate]\ngraphs = 3\nseed = 0\nformat = \"json\"\n")
	out, err := execute(t, "generate", "--config", path)
	require.NoError(t, err)
	bf := decodeBatch(t, out)
	require.NotNil(t, bf.Seed)
	require.Equal(t, int64(0), *bf.Seed)
	for i := range ba.Graphs {
		require.Equal(t, ba.Graphs[i].Columns, bf.Graphs[i].Columns)
	}
}

// TestGenerateSeedFromClock checks that an unset seed is still reported.
func TestGenerateSeedFromClock(t *testing.T) {
	out, err := execute(t, "generate", "--format", "json")
	require.NoError(t, err)
	require.NotNil(t, decodeBatch(t, out).Seed)
}

func TestGenerateConfigFileAndFlagOverride(t *testing.T) {
	path := writeTemp(t, "batch.toml", "[generate]\ngraphs = 4\nvertices = 6\nseed = 3\nformat = \"json\"\n")
	out, err := execute(t, "generate", "--config", path, "--graphs", "1")
	require.NoError(t, err)

	b := decodeBatch(t, out)
	require.Len(t, b.Graphs, 1)
	require.Equal(t, 6, b.Graphs[0].Vertices)
	require.NotNil(t, b.Seed)
	require.Equal(t, int64(3), *b.Seed)
}

func TestGenerateText(t *testing.T) {
	out, err := execute(t, "generate", "--seed", "5")
	require.NoError(t, err)
	require.Contains(t, out, "batch ")
	require.Contains(t, out, "hypergraph 0")
	require.Contains(t, out, "rank:")
	require.Contains(t, out, "bases:")
}

func TestGenerateRejects(t *testing.T) {
	_, err := execute(t, "generate", "--vertices", "2", "--seed", "1")
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = execute(t, "generate", "--arcs", "0", "--seed", "1")
	require.ErrorIs(t, err, builder.ErrTooFewArcs)

	_, err = execute(t, "generate", "--p-two-head", "0.9", "--p-two-tail", "0.9")
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = execute(t, "generate", "--format", "xml")
	require.ErrorContains(t, err, "unknown format")
}

func TestAnalyze(t *testing.T) {
	path := writeTemp(t, "m.json", `[[-1,1,1,0],[1,-1,0,0],[0,0,0,0]]`)

	out, err := execute(t, "analyze", path, "--format", "json")
	require.NoError(t, err)
	b := decodeBatch(t, out)
	require.Nil(t, b.Seed)
	require.Len(t, b.Graphs, 1)

	g := b.Graphs[0]
	require.Equal(t, 4, g.Vertices)
	require.Equal(t, 2, g.Arcs)
	require.Equal(t, 1, g.HyperArcs)
	require.Equal(t, 2, g.Rank)
	require.True(t, g.Independent)
	require.Equal(t, [][]int{{0, 1}}, g.Bases)
	require.Equal(t, map[string]int{"regular": 1, "two-head": 1}, g.Shapes)

	out, err = execute(t, "analyze", path)
	require.NoError(t, err)
	require.Contains(t, out, "independent")
	require.Contains(t, out, "two-head=1")
	require.Contains(t, out, "[[0 1]]")
}

func TestAnalyzeErrors(t *testing.T) {
	_, err := execute(t, "analyze")
	require.Error(t, err)

	path := writeTemp(t, "zero.json", `[[0,0,0]]`)
	_, err = execute(t, "analyze", path)
	require.Error(t, err)
}

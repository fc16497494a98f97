package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/ErikRauer/3DHypergraphGenerator/hypergraph"
)

// GraphReport is the per-hypergraph analysis written by both commands.
type GraphReport struct {
	ID          string         `json:"id"`
	Vertices    int            `json:"vertices"`
	Arcs        int            `json:"arcs"`
	HyperArcs   int            `json:"hyperarcs"`
	Shapes      map[string]int `json:"shapes"`
	Rank        int            `json:"rank"`
	Independent bool           `json:"independent"`
	Bases       [][]int        `json:"bases"`
	Columns     [][]float64    `json:"columns"`
	matrix      string
}

// BatchReport groups the reports of one command run.
type BatchReport struct {
	ID     string        `json:"id"`
	Seed   *int64        `json:"seed,omitempty"`
	Graphs []GraphReport `json:"graphs"`
}

// newGraphReport collects the analysis of h. Bases are recomputed with
// BasesConcurrent over workers goroutines.
func newGraphReport(ctx context.Context, h *hypergraph.DirectionalHypergraph, workers int) (GraphReport, error) {
	im := h.IncidenceMatrix()
	bases, err := im.BasesConcurrent(ctx, workers)
	if err != nil {
		return GraphReport{}, err
	}
	shapes := make(map[string]int)
	for shape, n := range h.ShapeCounts() {
		shapes[shape.String()] = n
	}

	return GraphReport{
		ID:          uuid.NewString(),
		Vertices:    h.NumVertices(),
		Arcs:        h.NumArcs(),
		HyperArcs:   h.NumHyperArcs(),
		Shapes:      shapes,
		Rank:        im.CachedRank(),
		Independent: im.CachedIndependent(),
		Bases:       bases,
		Columns:     im.Columns(),
		matrix:      im.String(),
	}, nil
}

// writeReport renders batch in the requested format.
func writeReport(w io.Writer, format string, batch BatchReport) error {
	if format == formatJSON {
		return writeJSON(w, batch)
	}
	return writeText(w, batch)
}

func writeJSON(w io.Writer, batch BatchReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(batch)
}

func writeText(w io.Writer, batch BatchReport) error {
	var b strings.Builder
	b.WriteString(styleTitle.Render("batch "+batch.ID) + "\n")
	if batch.Seed != nil {
		b.WriteString(field("seed", *batch.Seed) + "\n")
	}
	for i, g := range batch.Graphs {
		b.WriteString("\n" + styleTitle.Render(fmt.Sprintf("hypergraph %d", i)) + " " + styleLabel.Render(g.ID) + "\n")
		b.WriteString(strings.Join([]string{
			number("vertices", g.Vertices),
			number("arcs", g.Arcs),
			number("hyperarcs", g.HyperArcs),
			number("rank", g.Rank),
			independence(g.Independent),
		}, "  ") + "\n")
		b.WriteString(field("shapes", formatShapes(g.Shapes)) + "\n")
		b.WriteString(field("bases", formatBases(g.Bases)) + "\n")
		if g.matrix != "" {
			b.WriteString(styleMatrix.Render(strings.TrimRight(g.matrix, "\n")) + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// formatShapes renders shape counts in a fixed order.
func formatShapes(shapes map[string]int) string {
	order := []hypergraph.ArcShape{
		hypergraph.ShapeRegular, hypergraph.ShapeTwoHead, hypergraph.ShapeTwoTail, hypergraph.ShapeUnknown,
	}
	parts := make([]string, 0, len(order))
	for _, s := range order {
		if n := shapes[s.String()]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", s, n))
		}
	}
	return strings.Join(parts, " ")
}

func formatBases(bases [][]int) string {
	if len(bases) == 0 {
		return "none"
	}
	return fmt.Sprint(bases)
}

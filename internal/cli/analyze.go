package cli

import (
	"runtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ErikRauer/3DHypergraphGenerator/hypergraph"
)

// analyzeCommand creates the analyze command for matrices stored on disk.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		format  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Analyze an incidence matrix read from a .json or .toml file",
		Long: `Analyze reads raw arc columns (one array per arc) and reports the
cleaned matrix, its rank, whether its columns are linearly independent, and
the bases found by the greedy circular walk.`,
		Example: `  dhgen analyze matrix.json
  dhgen analyze matrix.toml --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			raw, err := readMatrixFile(args[0])
			if err != nil {
				return err
			}
			h, err := hypergraph.NewDirectionalHypergraph(raw)
			if err != nil {
				return err
			}
			c.Logger.Debug("analyzed matrix", "file", args[0], "arcs", h.NumArcs(), "dropped", len(raw)-h.NumArcs())

			if workers <= 0 {
				workers = runtime.GOMAXPROCS(0)
			}
			r, err := newGraphReport(cmd.Context(), h, workers)
			if err != nil {
				return err
			}
			batch := BatchReport{ID: uuid.NewString(), Graphs: []GraphReport{r}}
			return writeReport(cmd.OutOrStdout(), format, batch)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "report format: text or json")
	cmd.Flags().IntVar(&workers, "workers", 0, "goroutines for the basis search (0 = GOMAXPROCS)")

	return cmd
}

// Package cli implements the dhgen command-line interface.
//
// dhgen generates batches of random directional hypergraphs and analyzes
// incidence matrices read from disk. The CLI is built using cobra and logs
// via the charmbracelet/log library.
//
// # Commands
//
//   - generate: draw a seeded batch and report rank, independence and bases
//   - analyze:  read one matrix (.json or .toml) and report the same values
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// surfaces the generator's retry diagnostics.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "dhgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Report formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a timestamped logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "dhgen generates and analyzes directional hypergraphs",
		Long:         `dhgen builds random vertex-arc incidence matrices of directional hypergraphs and reports their rank, linear independence and greedy column bases.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.analyzeCommand())

	return root
}

// validateFormat rejects unknown --format values before any work is done.
func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatJSON)
	}
}

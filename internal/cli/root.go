// Package cli implements the bomprop command-line interface.
//
// Commands:
//   - rewrite: replace dependency-management versions with property references
//   - inspect: dry-run showing how versions would coalesce
//   - graph:   render the artifact → property mapping as DOT or SVG
//
// All commands accept --verbose (-v) for debug-level logging; loggers travel
// through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. Called by
// the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the bomprop CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   "bomprop",
		Short: "bomprop rewrites BOM versions into shared properties",
		Long: `bomprop rewrites a Maven BOM's dependencyManagement section so that every
pinned version lives in a named property: artifacts of a group that agree on
a version share one property, disagreeing groups get one property per
artifact, and a configurable name mapping can fold related groups together.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the final error
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("bomprop %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRewriteCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newGraphCmd())

	return root.ExecuteContext(ctx)
}

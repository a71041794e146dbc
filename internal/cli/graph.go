package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfessler/bomprop/pkg/coalesce"
	"github.com/mfessler/bomprop/pkg/report"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	mapping string
	format  string // dot or svg
	output  string
}

func newGraphCmd() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <pom.xml>",
		Short: "Render the artifact → property mapping as a diagram",
		Long: `Run the coalescing transformation and emit a Graphviz diagram: group
clusters of artifacts on the left, version properties on the right, edges
showing which property each artifact references.

Examples:
  bomprop graph pom.xml                       # DOT to stdout
  bomprop graph pom.xml --format svg -o bom.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mapping, "mapping", "m", "", "name-mapping file (.toml, .yaml)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format: dot or svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func runGraph(cmd *cobra.Command, pomPath string, opts graphOpts) error {
	logger := loggerFromContext(cmd.Context())

	project, mapping, err := loadInputs(pomPath, opts.mapping)
	if err != nil {
		return err
	}

	c, err := coalesce.New(mapping)
	if err != nil {
		return err
	}
	deps, props, err := c.Transform(project.ManagedDependencies(), project.Properties)
	if err != nil {
		return err
	}

	s, err := report.Build(deps, props)
	if err != nil {
		return err
	}
	dot := report.ToDOT(s)

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		prog := newProgress(logger)
		data, err = report.RenderSVG(dot)
		if err != nil {
			return err
		}
		prog.done("Rendered SVG")
	default:
		return fmt.Errorf("invalid format: %q (must be dot or svg)", opts.format)
	}

	if opts.output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return err
	}
	printFile(opts.output)
	return nil
}

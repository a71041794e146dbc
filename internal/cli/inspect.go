package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfessler/bomprop/pkg/coalesce"
	"github.com/mfessler/bomprop/pkg/report"
)

func newInspectCmd() *cobra.Command {
	var mapping string

	cmd := &cobra.Command{
		Use:   "inspect <pom.xml>",
		Short: "Show how versions would coalesce without writing anything",
		Long: `Run the coalescing transformation and print a per-group summary: which
strategy applies, which property each artifact would reference, and the
resulting property count. Conflicts surface as errors, exactly as they
would during rewrite.

Examples:
  bomprop inspect pom.xml
  bomprop inspect pom.xml --mapping names.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], mapping)
		},
	}

	cmd.Flags().StringVarP(&mapping, "mapping", "m", "", "name-mapping file (.toml, .yaml)")

	return cmd
}

func runInspect(cmd *cobra.Command, pomPath, mappingPath string) error {
	project, mapping, err := loadInputs(pomPath, mappingPath)
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

	printKeyValue("pom", pomPath)
	if mappingPath != "" {
		printKeyValue("mapping", mappingPath)
	}
	fmt.Println(renderSummary(s))
	return nil
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfessler/bomprop/pkg/coalesce"
	"github.com/mfessler/bomprop/pkg/pom"
	"github.com/mfessler/bomprop/pkg/report"
)

// rewriteOpts holds the command-line flags for the rewrite command.
type rewriteOpts struct {
	mapping string // name-mapping config file (TOML or YAML)
	output  string // output POM path (stdout if empty)
	dryRun  bool   // print the summary instead of writing
}

func newRewriteCmd() *cobra.Command {
	var opts rewriteOpts

	cmd := &cobra.Command{
		Use:   "rewrite <pom.xml>",
		Short: "Replace dependencyManagement versions with property references",
		Long: `Rewrite a BOM so each managed dependency's version field references a
property, and the properties section carries the actual values.

Examples:
  bomprop rewrite pom.xml -o bom.xml
  bomprop rewrite pom.xml --mapping names.toml -o bom.xml
  bomprop rewrite pom.xml --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRewrite(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mapping, "mapping", "m", "", "name-mapping file (.toml, .yaml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show the result summary without writing")

	return cmd
}

func runRewrite(cmd *cobra.Command, pomPath string, opts rewriteOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	project, mapping, err := loadInputs(pomPath, opts.mapping)
	if err != nil {
		return err
	}

	deps := project.ManagedDependencies()
	logger.Debugf("loaded %d managed dependencies from %s", len(deps), pomPath)

	c, err := coalesce.New(mapping)
	if err != nil {
		return err
	}
	out, err := c.TransformProject(project)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Coalesced %d dependencies into %d properties",
		len(deps), len(out.Properties)-len(project.Properties)))

	if opts.dryRun {
		s, err := report.Build(out.ManagedDependencies(), out.Properties)
		if err != nil {
			return err
		}
		fmt.Println(renderSummary(s))
		return nil
	}

	if opts.output == "" {
		return out.Write(os.Stdout)
	}
	if err := out.Save(opts.output); err != nil {
		return err
	}
	printSuccess("Rewrote %s", pomPath)
	printFile(opts.output)
	return nil
}

// loadInputs reads the POM and the optional name-mapping file.
func loadInputs(pomPath, mappingPath string) (*pom.Project, map[string]string, error) {
	project, err := pom.Load(pomPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", pomPath, err)
	}
	if project.DependencyManagement == nil {
		return nil, nil, fmt.Errorf("%s has no dependencyManagement section", pomPath)
	}
	mapping, err := loadMapping(mappingPath)
	if err != nil {
		return nil, nil, err
	}
	return project, mapping, nil
}

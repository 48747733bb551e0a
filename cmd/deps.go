package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depscope/depscope/internal/analyzer"
	"github.com/depscope/depscope/internal/reporter"
)

var (
	flagProjectRoot string
	flagManager     string
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Build the declared-dependency graph from installed manifests",
	RunE:  runDeps,
}

func init() {
	depsCmd.Flags().StringVar(&flagProjectRoot, "root", "", "Project root directory (default: current directory)")
	depsCmd.Flags().StringVar(&flagManager, "manager", "", "Package manager: bower, npm")
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	if flagProjectRoot != "" {
		config.ProjectRoot = flagProjectRoot
	}
	if flagManager != "" {
		config.PackageManager = flagManager
	}

	graph, err := analyzer.New(config).BuildDependencyGraph(cmd.Context())
	if err != nil {
		return fmt.Errorf("dependency analysis failed: %w", err)
	}

	output, err := reporter.Get(config.OutputFormat).ReportDependencies(graph)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	return writeOutput(config, output)
}

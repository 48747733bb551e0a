package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/depscope/depscope/internal/analyzer"
	"github.com/depscope/depscope/internal/reporter"
)

var (
	flagEntry      string
	flagSourceRoot string
	flagFollow     bool
)

var importsCmd = &cobra.Command{
	Use:   "imports",
	Short: "Build the import graph by scanning an entry file's markup",
	RunE:  runImports,
}

func init() {
	importsCmd.Flags().StringVar(&flagEntry, "entry", "", "Entry file path, relative to the source root")
	importsCmd.Flags().StringVar(&flagSourceRoot, "source-root", "", "Base directory import paths resolve against")
	importsCmd.Flags().BoolVar(&flagFollow, "follow", false, "Inspect discovered imports transitively")
	rootCmd.AddCommand(importsCmd)
}

func runImports(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	if flagEntry != "" {
		config.Inspect.Entry = flagEntry
	}
	if flagSourceRoot != "" {
		config.Inspect.SourceRoot = flagSourceRoot
	}
	if flagFollow {
		config.Inspect.FollowImports = true
	}

	if config.Inspect.SourceRoot != "" && !filepath.IsAbs(config.Inspect.SourceRoot) {
		abs, err := filepath.Abs(config.Inspect.SourceRoot)
		if err != nil {
			return fmt.Errorf("failed to resolve source root: %w", err)
		}
		config.Inspect.SourceRoot = abs
	}

	graph, err := analyzer.New(config).BuildImportGraph()
	if err != nil {
		return fmt.Errorf("import analysis failed: %w", err)
	}

	output, err := reporter.Get(config.OutputFormat).ReportImports(graph)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	return writeOutput(config, output)
}

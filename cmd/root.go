package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/depscope/depscope/internal/models"
)

var (
	flagConfig  string
	flagOutput  string
	flagFormat  string
	flagVerbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "depscope",
	Short: "Analyze a project's dependency and import structure",
	Long: `depscope statically analyzes a software project in two independent ways:

  deps     build the declared-dependency graph from installed package
           manifests (bower or npm conventions), including implied nodes
           for declared versions no installed package matches exactly
  imports  build the import graph by scanning an entry file's markup for
           configured tag/attribute import references

The analysis is read-only: depscope never installs packages or modifies
the filesystem.

Examples:
  # Dependency graph of a bower project
  depscope deps --root ./app --manager bower

  # Dependency graph as Graphviz DOT
  depscope deps --root ./app --manager npm --format dot

  # Import graph for an entry file, configuration from depscope.toml
  depscope imports --config depscope.toml

  # Follow discovered imports transitively
  depscope imports --config depscope.toml --follow`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to TOML configuration file")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "terminal", "Output format: terminal, json, dot")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig builds the run configuration from defaults, the optional
// configuration file, and flags (highest precedence last).
func loadConfig() (*models.Config, error) {
	config := models.DefaultConfig()
	if flagConfig != "" {
		if err := config.LoadFile(flagConfig); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	config.OutputFormat = flagFormat
	config.OutputFile = flagOutput
	return config, nil
}

// writeOutput sends a rendered report to the configured destination.
func writeOutput(config *models.Config, output []byte) error {
	if config.OutputFile != "" {
		if err := os.WriteFile(config.OutputFile, output, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", config.OutputFile)
		return nil
	}
	fmt.Print(string(output))
	return nil
}

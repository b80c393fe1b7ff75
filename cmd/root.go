// =============================================================================
// Competency Framework Reformatter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'process', 'version') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   reformatter
//   ├── process (reformatter process)
//   └── version (reformatter version)
//
// The root command owns the global flags (--config, --verbose), loads the
// configuration, and builds the logger, so subcommands only contain their
// own behavior.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/acadtools/competency-reformatter/internal/config"
	"github.com/acadtools/competency-reformatter/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// Overridden with the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// cfg is the loaded application configuration, available to subcommands
// after PersistentPreRunE has run.
var cfg *config.Config

// logger is the application logger, available to subcommands after
// PersistentPreRunE has run.
var logger *zap.Logger

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "reformatter",
	Short: "Competency Framework Reformatter - Flatten outcome definitions for bulk import",

	Long: `Competency Framework Reformatter is a CLI tool that reads tabular
competency-framework definitions (CSV or XLSX, one academic program per file)
and reformats them into the flat hierarchical CSV expected by a
competency-management system's bulk importer.

For each source file the tool infers the Major Area / Sub-Area / Outcome
hierarchy from the row names, synthesizes stable identifiers namespaced by a
program prefix, and writes a "Reformatted - {name}.csv" file ready to upload.

Example Usage:
  reformatter process                      # Process all files in the input directory
  reformatter process --root-id 100        # Use one root ID for the whole batch
  reformatter process --config ./my.yaml   # Use a custom configuration file`,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = logging.New(cfg.LogLevel, cfg.LogFile, verbose)
		if err != nil {
			return err
		}
		return nil
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},

	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand given; print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once, by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: path to the configuration file. The file is optional;
	// all settings have defaults.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	// --verbose flag: enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

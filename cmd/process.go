// =============================================================================
// Competency Framework Reformatter - Process Command
// =============================================================================
//
// This file defines the 'process' command, the main command for reformatting
// competency definition files. It is the batch driver around the pure core.
//
// COMMAND USAGE:
//   reformatter process [flags]
//
// FLAGS:
//   --root-id   : Framework root ID for every file (skips the prompt)
//   --file      : Process only the given file instead of scanning the input dir
//   --dry-run   : Reformat without writing output files
//
// PROCESSING PIPELINE:
//   1. Discover input files (.csv, .xls, .xlsx) in the input directory
//   2. For each file, sequentially:
//      a. Obtain a root identifier (prompt, flag, or configured default)
//      b. Read the file into (name, description) records
//      c. Reformat the records into hierarchical output rows
//      d. Serialize to "Reformatted - {basename}.csv" in the output directory
//      e. Optionally archive the source file
//   3. Print a summary report
//
// Files are processed sequentially, not concurrently: the root-ID prompt is
// interactive, and batches are small. A per-file failure is logged and the
// batch continues unless stop_on_error is configured.
//
// =============================================================================

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/acadtools/competency-reformatter/internal/csvwriter"
	"github.com/acadtools/competency-reformatter/internal/reformatter"
	"github.com/acadtools/competency-reformatter/internal/tabreader"
	"github.com/acadtools/competency-reformatter/internal/types"
	"github.com/acadtools/competency-reformatter/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// rootID is a batch-wide framework root ID. When set, the per-file prompt
// is skipped.
var rootID string

// singleFile is the path to one specific file to process instead of
// scanning the input directory.
var singleFile string

// dryRun reformats without writing output files.
var dryRun bool

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Reformat competency definition files for bulk import",
	Long: `The process command scans the input directory for competency definition
files (.csv, .xls, .xlsx), reformats each one into the flat hierarchical
import CSV, and writes the result to the output directory.

For every file the tool needs a framework root ID: the ID number of the
framework row in the target system. By default it is prompted per file, with
the configured default used on empty input. Pass --root-id to use one value
for the whole batch without prompting.

Errors in one file do not stop the batch; the file is skipped and reported
in the final summary.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

// init registers the process command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&rootID,
		"root-id",
		"",
		"Framework root ID for every file in the batch (skips the prompt)",
	)

	processCmd.Flags().StringVar(
		&singleFile,
		"file",
		"",
		"Path to a specific file to process instead of scanning the input directory",
	)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Reformat without writing output files",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// fileResult is the outcome of processing a single file.
type fileResult struct {
	SourcePath string
	OutputFile string
	Rows       int
	Notices    []string
	Err        error
}

// runProcess drives the batch: discovery, per-file reformatting, summary.
func runProcess() error {
	startTime := time.Now()

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir)
	fm.ArchiveOnSuccess = cfg.ArchiveOnSuccess

	if !dryRun {
		if err := fm.EnsureDirectories(); err != nil {
			return err
		}
	}

	// =========================================================================
	// STEP 1: DISCOVER INPUT FILES
	// =========================================================================

	fmt.Println("=== Competency Framework Reformatter ===")

	var inputFiles []string
	if singleFile != "" {
		inputFiles = []string{singleFile}
	} else {
		var err error
		inputFiles, err = fm.DiscoverInputFiles()
		if err != nil {
			return err
		}
	}

	if len(inputFiles) == 0 {
		fmt.Println("No competency definition files found in the input directory.")
		return nil
	}

	fmt.Printf("Found %d file(s) to process\n\n", len(inputFiles))

	// =========================================================================
	// STEP 2: PROCESS FILES SEQUENTIALLY
	// =========================================================================

	prompter := bufio.NewReader(os.Stdin)

	var results []fileResult
	for _, file := range inputFiles {
		result := processFile(file, fm, prompter)
		results = append(results, result)

		if result.Err != nil {
			logger.Error("file failed",
				zap.String("file", file),
				zap.Error(result.Err))
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(file), result.Err)

			if cfg.StopOnError {
				return fmt.Errorf("aborting batch: %s: %w", file, result.Err)
			}
			continue
		}

		for _, notice := range result.Notices {
			logger.Warn("classification notice",
				zap.String("file", file),
				zap.String("notice", notice))
		}
		fmt.Printf("  ✓ %s -> %s (%d rows)\n",
			filepath.Base(file), filepath.Base(result.OutputFile), result.Rows)
	}

	// =========================================================================
	// STEP 3: SUMMARY
	// =========================================================================

	var successCount, errorCount int
	var failures []string
	for _, r := range results {
		if r.Err != nil {
			errorCount++
			failures = append(failures, fmt.Sprintf("%s: %v", r.SourcePath, r.Err))
		} else {
			successCount++
		}
	}

	elapsed := time.Since(startTime)
	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:     %d\n", len(inputFiles))
	fmt.Printf("Successful:      %d\n", successCount)
	fmt.Printf("Errors:          %d\n", errorCount)
	fmt.Printf("Time elapsed:    %s\n", elapsed)

	if errorCount > 0 && !dryRun {
		if logPath, err := fm.WriteErrorLog(failures); err == nil {
			fmt.Printf("\nErrors have been logged to %s\n", logPath)
		} else {
			logger.Error("failed to write error log", zap.Error(err))
		}
	}

	return nil
}

// =============================================================================
// PER-FILE PROCESSING
// =============================================================================

// processFile runs the full pipeline for a single source file.
func processFile(path string, fm *utils.FileManager, prompter *bufio.Reader) fileResult {
	result := fileResult{SourcePath: path}

	programName := utils.ProgramName(path)

	// Read the file into records. A file that parses but contains nothing
	// usable is skipped, the same as an unreadable one.
	records, err := tabreader.Read(path)
	if err != nil {
		result.Err = fmt.Errorf("failed to read: %w", err)
		return result
	}
	if len(records) == 0 {
		result.Err = reformatter.ErrEmptyInput
		return result
	}

	ctx := types.ProgramContext{
		ProgramName: programName,
		RootID:      resolveRootID(programName, prompter),
	}

	logger.Debug("reformatting file",
		zap.String("file", path),
		zap.String("program", programName),
		zap.String("root_id", ctx.RootID),
		zap.Int("records", len(records)))

	ref, err := reformatter.Reformat(records, ctx, reformatter.Options{
		PrefixOverrides: cfg.PrefixOverrides,
	})
	if err != nil {
		result.Err = fmt.Errorf("failed to reformat: %w", err)
		return result
	}

	result.Rows = len(ref.Rows)
	result.Notices = ref.Notices

	if dryRun {
		result.OutputFile = "(dry run)"
		return result
	}

	outputPath := fm.OutputPath(path)
	out, err := os.Create(outputPath)
	if err != nil {
		result.Err = fmt.Errorf("failed to create output file: %w", err)
		return result
	}
	if err := csvwriter.Render(out, ref.Rows); err != nil {
		out.Close()
		result.Err = fmt.Errorf("failed to write output: %w", err)
		return result
	}
	if err := out.Close(); err != nil {
		result.Err = fmt.Errorf("failed to close output file: %w", err)
		return result
	}
	result.OutputFile = outputPath

	if err := fm.Archive(path); err != nil {
		// The output was written; a failed archive move is worth a warning
		// but not a failed file.
		logger.Warn("archive failed", zap.String("file", path), zap.Error(err))
	}

	return result
}

// resolveRootID determines the framework root ID for one file: the --root-id
// flag if given, otherwise an interactive prompt falling back to the
// configured default on empty input.
func resolveRootID(programName string, prompter *bufio.Reader) string {
	if rootID != "" {
		return rootID
	}

	fmt.Printf("Framework root ID for %q [%s]: ", programName, cfg.DefaultRootID)
	line, err := prompter.ReadString('\n')
	if err != nil {
		return cfg.DefaultRootID
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return cfg.DefaultRootID
	}
	return line
}

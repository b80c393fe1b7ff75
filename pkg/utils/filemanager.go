// =============================================================================
// Competency Framework Reformatter - File Manager Utility
// =============================================================================
//
// This module provides file management for the batch driver:
//   - Input file discovery (non-recursive scan for supported extensions)
//   - Output file naming ("Reformatted - {basename}.csv")
//   - Archival of processed source files
//   - Error log generation
//
// ARCHIVAL STRATEGY:
//   Source files are moved to the archive directory only after successful
//   processing. Failed files stay where they are so the run can be repeated
//   after fixing them.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// supportedExtensions are the input file types the batch driver picks up.
var supportedExtensions = map[string]bool{
	".csv":  true,
	".xls":  true,
	".xlsx": true,
}

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the batch driver.
type FileManager struct {
	// InputDir is the directory scanned for source files.
	InputDir string

	// OutputDir is the directory where reformatted files are written.
	OutputDir string

	// ArchiveDir is the directory processed source files are moved to.
	ArchiveDir string

	// ArchiveOnSuccess moves source files to ArchiveDir after successful
	// processing.
	ArchiveOnSuccess bool
}

// NewFileManager creates a FileManager for the given directories.
func NewFileManager(inputDir, outputDir, archiveDir string) *FileManager {
	return &FileManager{
		InputDir:   inputDir,
		OutputDir:  outputDir,
		ArchiveDir: archiveDir,
	}
}

// EnsureDirectories creates the output and archive directories if they do
// not exist. The input directory is left alone: a missing input directory is
// an operator mistake worth surfacing, not something to silently create.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.OutputDir, fm.ArchiveDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// =============================================================================
// DISCOVERY
// =============================================================================

// DiscoverInputFiles scans the input directory, non-recursively, for files
// with a supported extension.
//
// RETURNS:
//   - The matching file paths in directory order.
//   - An error if the directory cannot be read.
func (fm *FileManager) DiscoverInputFiles() ([]string, error) {
	entries, err := os.ReadDir(fm.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(fm.InputDir, entry.Name()))
		}
	}

	return files, nil
}

// =============================================================================
// NAMING
// =============================================================================

// ProgramName derives the program name from a source file path: the base
// name without its extension.
func ProgramName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath returns the output file path for a source file:
// "{OutputDir}/Reformatted - {basename}.csv". If that path already exists a
// short unique suffix keeps the new file from overwriting the old one.
func (fm *FileManager) OutputPath(sourcePath string) string {
	name := fmt.Sprintf("Reformatted - %s.csv", ProgramName(sourcePath))
	path := filepath.Join(fm.OutputDir, name)

	if _, err := os.Stat(path); err == nil {
		suffix := uuid.New().String()[:8]
		name = fmt.Sprintf("Reformatted - %s (%s).csv", ProgramName(sourcePath), suffix)
		path = filepath.Join(fm.OutputDir, name)
	}

	return path
}

// =============================================================================
// ARCHIVAL
// =============================================================================

// Archive moves a successfully processed source file to the archive
// directory. A no-op unless ArchiveOnSuccess is set.
func (fm *FileManager) Archive(sourcePath string) error {
	if !fm.ArchiveOnSuccess {
		return nil
	}

	target := filepath.Join(fm.ArchiveDir, filepath.Base(sourcePath))
	if err := os.Rename(sourcePath, target); err != nil {
		return fmt.Errorf("failed to archive %s: %w", sourcePath, err)
	}
	return nil
}

// =============================================================================
// ERROR LOG
// =============================================================================

// WriteErrorLog writes per-file failure messages to a uniquely named log in
// the output directory.
//
// RETURNS:
//   - The path of the written log file.
//   - An error if the file cannot be written.
func (fm *FileManager) WriteErrorLog(messages []string) (string, error) {
	name := fmt.Sprintf("errors_%s_%s.log",
		time.Now().Format("20060102_150405"),
		uuid.New().String()[:8],
	)
	path := filepath.Join(fm.OutputDir, name)

	content := strings.Join(messages, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write error log: %w", err)
	}

	return path, nil
}

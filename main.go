// =============================================================================
// Competency Framework Reformatter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Competency Framework Reformatter CLI.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   reformatter process       - Reformat all definition files in the input directory
//   reformatter version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/acadtools/competency-reformatter/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}

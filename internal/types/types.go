// =============================================================================
// Competency Framework Reformatter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - tabreader
//   - reformatter
//   - csvwriter
//
// =============================================================================

package types

// =============================================================================
// INPUT TYPES
// =============================================================================

// InputRecord represents a single source row from a competency definition
// file, in original file order. At least one of the two fields is non-empty;
// rows where both are empty are dropped by the tabular reader.
type InputRecord struct {
	// Name is the value of the source row's "Name" column, trimmed.
	Name string

	// Description is the value of the source row's "Description" column, trimmed.
	Description string
}

// ProgramContext carries the per-file parameters for one reformat run.
type ProgramContext struct {
	// ProgramName is derived from the source file's base name (sans extension).
	ProgramName string

	// RootID identifies the framework row in the target system.
	// Supplied by the user; defaults to "2299".
	RootID string
}

// =============================================================================
// OUTPUT TYPES
// =============================================================================

// OutputRow is one row of the target import schema. Fields not explicitly
// assigned by the reformatter stay empty. Rows are created once by the
// reformatter and never mutated afterward; the serializer only reads them.
type OutputRow struct {
	// ParentID is the "Parent ID number" column. Empty for top-level rows.
	ParentID string

	// ID is the "ID number" column, the row's hierarchical identifier.
	ID string

	// ShortName is the source row's name, verbatim.
	ShortName string

	// Description is the source row's description, verbatim.
	Description string

	// DescriptionFormat is "1" for every emitted row.
	DescriptionFormat string

	// ScaleValues is the comma-separated proficiency scale value list.
	// Set on the framework row only; competency rows inherit the
	// framework scale in the target system.
	ScaleValues string

	// ScaleConfiguration is a JSON-array literal encoding the proficiency
	// scale defaults. Set on the framework row only.
	ScaleConfiguration string

	// RuleType is the "Rule type (optional)" column. Always empty.
	RuleType string

	// RuleOutcome is the "Rule outcome (optional)" column. Always empty.
	RuleOutcome string

	// RuleConfig is the "Rule config (optional)" column. Always empty.
	RuleConfig string

	// CrossReferenced is the "Cross-referenced competency ID numbers" column.
	// Always empty.
	CrossReferenced string

	// ExportedID is the "Exported ID (optional)" column. Always empty.
	ExportedID string

	// IsFramework is "1" on the framework row and empty everywhere else.
	IsFramework string

	// Taxonomy is the fixed five-level taxonomy string.
	Taxonomy string
}

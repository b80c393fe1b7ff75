// =============================================================================
// Competency Framework Reformatter - Canonical Area Table
// =============================================================================
//
// This file holds the static classification data for the fixed three-tier
// scheme (Major Area -> Sub-Area -> Leaf Outcome). Competency definition
// files name their areas with a small canonical vocabulary; each label maps
// to a fixed short code and, for sub-areas, to its major area.
//
// =============================================================================

package reformatter

// area describes one canonical area label.
type area struct {
	// Code is the area's fixed short code, compound for sub-areas
	// (e.g. "K" for Knowledge, "K-TU" for Theoretical Understanding).
	Code string

	// Parent is the canonical label of the major area this sub-area nests
	// under. Empty for the three top-level areas.
	Parent string
}

// canonicalAreas maps each canonical area label to its fixed code and parent.
// The three major areas use single-letter codes; sub-area codes are the major
// area's letter joined with the sub-area's acronym.
var canonicalAreas = map[string]area{
	// Major areas.
	"Knowledge":  {Code: "K"},
	"Skills":     {Code: "S"},
	"Competence": {Code: "C"},

	// Sub-areas under Knowledge.
	"Theoretical Understanding": {Code: "K-TU", Parent: "Knowledge"},
	"Applied Knowledge":         {Code: "K-AK", Parent: "Knowledge"},

	// Sub-areas under Skills.
	"Practical Application":   {Code: "S-PA", Parent: "Skills"},
	"Communication Skills":    {Code: "S-CS", Parent: "Skills"},
	"Generic Problem Solving": {Code: "S-GPS", Parent: "Skills"},

	// Sub-areas under Competence.
	"Critical Thinking":         {Code: "C-CT", Parent: "Competence"},
	"Autonomy & Responsibility": {Code: "C-AR", Parent: "Competence"},
}

// defaultSubAreas maps a leaf outcome's letter (K/S/C, uppercased) to the
// canonical label of the sub-area it parents to when the source file gives
// no explicit placement.
var defaultSubAreas = map[string]string{
	"K": "Theoretical Understanding",
	"S": "Generic Problem Solving",
	"C": "Autonomy & Responsibility",
}

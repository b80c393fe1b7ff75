// =============================================================================
// Competency Framework Reformatter - Hierarchy Reformatter
// =============================================================================
//
// This module contains the core reformatting logic. It consumes the ordered
// (name, description) records of one program and emits the flat hierarchical
// rows of the target import schema.
//
// REFORMAT PIPELINE:
//   1. Emit the framework row (the program itself) with the framework-level
//      standard values and the caller-supplied root ID.
//   2. Classify each subsequent record through an ordered, first-match-wins
//      rule list:
//        a. canonical major/sub-area labels resolved from the static area table
//        b. pre-coded leaf outcomes (K1, S2, C3...) parented to their
//           default sub-area
//        c. a generic fallback that synthesizes a code from the name
//   3. Emit one row per classified record, input order preserved.
//
// The classification never fails on malformed names; unrecognized rows fall
// through to the generic fallback and at worst end up orphaned at the top
// level, reported as a notice on the Result rather than an error. The only
// hard failure is an empty record sequence.
//
// CONCURRENCY:
//   Reformat keeps all mutable state (the area table) local to one call, so
//   multiple files can be reformatted concurrently with no coordination.
//
// =============================================================================

package reformatter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/acadtools/competency-reformatter/internal/identifier"
	"github.com/acadtools/competency-reformatter/internal/types"
)

// =============================================================================
// STANDARD VALUES
// =============================================================================

// Fixed column values of the target import schema.
const (
	// descriptionFormat marks descriptions as HTML, the format the importer
	// expects for every row.
	descriptionFormat = "1"

	// frameworkScaleValues is the two-level proficiency scale attached to
	// the framework row.
	frameworkScaleValues = "Not yet competent,Competent"

	// frameworkScaleConfiguration encodes the scale defaults: value 1 is the
	// default, value 2 marks proficiency.
	frameworkScaleConfiguration = `[{"scaleid":"2"},{"id":1,"scaledefault":1,"proficient":0},{"id":2,"scaledefault":0,"proficient":1}]`

	// taxonomyLevels names the taxonomy of all five hierarchy depths the
	// importer supports.
	taxonomyLevels = "competency,competency,competency,competency,competency"
)

// ErrEmptyInput is returned when a file yields no usable records. The batch
// driver treats it as "nothing meaningful parsed" and skips the file.
var ErrEmptyInput = errors.New("no usable records in input")

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result is the outcome of reformatting one program.
type Result struct {
	// Rows are the emitted output rows: the framework row first, then one
	// row per classified input record, input order preserved.
	Rows []types.OutputRow

	// Notices are advisory diagnostics collected during classification,
	// e.g. rows that could not be attached to any area. They never make
	// the run fail.
	Notices []string

	// Skipped counts input records dropped for having an empty name.
	Skipped int
}

// =============================================================================
// CLASSIFICATION RULES
// =============================================================================

// leafPattern matches pre-coded leaf outcomes: a single K/S/C letter
// followed by digits.
var leafPattern = regexp.MustCompile(`^[KkSsCc]\d+$`)

// resolution is the identifier assignment a classification rule produced
// for one record.
type resolution struct {
	id       string
	parentID string
	notice   string
}

// classifier threads the per-invocation state through the rule list: the
// program prefix and the area table accumulated while scanning.
type classifier struct {
	prefix string

	// areaTable maps a canonical area label to its resolved identifiers,
	// built incrementally so later leaf rows can reference earlier areas.
	areaTable map[string]resolution
}

// rule is one entry of the ordered classification list. resolve reports
// whether the rule matched; the first matching rule wins.
type rule struct {
	name    string
	resolve func(c *classifier, recordName string) (resolution, bool)
}

// classificationRules is evaluated in order for every record. The generic
// fallback always matches, so classification is total.
var classificationRules = []rule{
	{name: "canonical-area", resolve: resolveCanonicalArea},
	{name: "leaf-outcome", resolve: resolveLeafOutcome},
	{name: "generic-fallback", resolve: resolveGeneric},
}

// resolveCanonicalArea matches records whose name exactly equals one of the
// fixed canonical area labels. Major areas sit at the top level; sub-areas
// parent to their major area. The resolution is recorded into the area table
// so later leaf rows can reference it.
func resolveCanonicalArea(c *classifier, recordName string) (resolution, bool) {
	a, ok := canonicalAreas[recordName]
	if !ok {
		return resolution{}, false
	}

	res := resolution{id: c.prefix + "-" + a.Code}
	if a.Parent != "" {
		res.parentID = c.prefix + "-" + canonicalAreas[a.Parent].Code
	}

	c.areaTable[recordName] = res
	return res, true
}

// resolveLeafOutcome matches pre-coded leaf outcomes (K1, S2, C3...) and
// parents them to the default sub-area for their letter. A leaf arriving
// before its sub-area keeps the canonical parent identifier but is reported,
// since the parent row will be missing from the output.
func resolveLeafOutcome(c *classifier, recordName string) (resolution, bool) {
	if !leafPattern.MatchString(recordName) {
		return resolution{}, false
	}

	letter := strings.ToUpper(recordName[:1])
	subArea := defaultSubAreas[letter]

	res := resolution{}
	if entry, ok := c.areaTable[subArea]; ok {
		res.parentID = entry.id
	} else {
		res.parentID = c.prefix + "-" + canonicalAreas[subArea].Code
		res.notice = fmt.Sprintf("outcome %q references sub-area %q which is not present in the file", recordName, subArea)
	}

	res.id = res.parentID + "-" + strings.ToUpper(recordName)
	return res, true
}

// resolveGeneric is the catch-all for names no other rule recognized. The
// name is reduced to a synthesized code; if its first letter points at a
// known default sub-area the row attaches there, otherwise it is emitted as
// an orphaned top-level row under the program prefix with a notice.
func resolveGeneric(c *classifier, recordName string) (resolution, bool) {
	code := identifier.Code(recordName)

	first := firstLetter(recordName)
	if subArea, ok := defaultSubAreas[first]; ok {
		if entry, seen := c.areaTable[subArea]; seen {
			return resolution{
				id:       entry.id + "-" + code,
				parentID: entry.id,
			}, true
		}
	}

	return resolution{
		id:     c.prefix + "-" + code,
		notice: fmt.Sprintf("row %q does not match any known area or outcome pattern; emitted at top level", recordName),
	}, true
}

// firstLetter returns the uppercased first rune of s, or "" if s is empty.
func firstLetter(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// =============================================================================
// REFORMAT FUNCTION
// =============================================================================

// Options tunes one reformat run.
type Options struct {
	// PrefixOverrides maps known full program names to curated prefixes,
	// consulted before heuristic prefix derivation. May be nil.
	PrefixOverrides map[string]string
}

// Reformat converts the ordered records of one program into output rows.
//
// PARAMETERS:
//   - records: the program's records in file order. records[0] is the
//     framework root (the program itself) and is never reinterpreted as a
//     competency.
//   - ctx: the program name and user-chosen root identifier.
//   - opts: optional configuration.
//
// RETURNS:
//   - The emitted rows plus any classification notices.
//   - ErrEmptyInput if records is empty. No other input makes Reformat fail.
func Reformat(records []types.InputRecord, ctx types.ProgramContext, opts Options) (*Result, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	result := &Result{
		Rows: make([]types.OutputRow, 0, len(records)),
	}

	// The framework row always comes first so every later parent reference
	// points backwards.
	result.Rows = append(result.Rows, frameworkRow(records[0], ctx.RootID))

	c := &classifier{
		prefix:    identifier.Prefix(ctx.ProgramName, opts.PrefixOverrides),
		areaTable: make(map[string]resolution),
	}

	for _, record := range records[1:] {
		if record.Name == "" {
			result.Skipped++
			continue
		}

		res := classify(c, record.Name)
		if res.notice != "" {
			result.Notices = append(result.Notices, res.notice)
		}

		result.Rows = append(result.Rows, competencyRow(record, res))
	}

	return result, nil
}

// classify runs the ordered rule list for one record name. The generic
// fallback guarantees a match.
func classify(c *classifier, recordName string) resolution {
	for _, r := range classificationRules {
		if res, ok := r.resolve(c, recordName); ok {
			return res
		}
	}
	// Unreachable: resolveGeneric always matches.
	return resolution{id: c.prefix + "-" + identifier.Code(recordName)}
}

// =============================================================================
// ROW CONSTRUCTION
// =============================================================================

// frameworkRow builds the framework root row with the framework-level
// standard values.
func frameworkRow(record types.InputRecord, rootID string) types.OutputRow {
	return types.OutputRow{
		ID:                 rootID,
		ShortName:          record.Name,
		Description:        record.Description,
		DescriptionFormat:  descriptionFormat,
		ScaleValues:        frameworkScaleValues,
		ScaleConfiguration: frameworkScaleConfiguration,
		IsFramework:        "1",
		Taxonomy:           taxonomyLevels,
	}
}

// competencyRow builds a non-framework row with the row-level standard
// values. Scale fields stay blank: competencies inherit the framework scale.
func competencyRow(record types.InputRecord, res resolution) types.OutputRow {
	return types.OutputRow{
		ParentID:          res.parentID,
		ID:                res.id,
		ShortName:         record.Name,
		Description:       record.Description,
		DescriptionFormat: descriptionFormat,
		Taxonomy:          taxonomyLevels,
	}
}

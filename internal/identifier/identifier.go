// =============================================================================
// Competency Framework Reformatter - Identifier Synthesizer
// =============================================================================
//
// This module derives short alphanumeric codes from free-text names. Two
// derivations exist:
//
//   - Code: turns an area or outcome name into a short code, either by
//     passing a pre-coded name through verbatim (e.g. "K1") or by building
//     an acronym from the words of the name.
//
//   - Prefix: turns a program's full name into a short prefix used to
//     namespace every identifier the program emits. Known program names can
//     be mapped to curated prefixes via configuration; everything else goes
//     through heuristics that cope with Arabic program names and embedded
//     English abbreviations.
//
// Both functions are pure and deterministic: the same input always yields
// the same output. No state is kept between calls.
//
// =============================================================================

package identifier

import (
	"regexp"
	"strings"
	"unicode"
)

// =============================================================================
// CODE SYNTHESIS
// =============================================================================

// precodedPattern matches names that already are codes: letters followed by
// digits with no separator, e.g. "K1", "S12", "CO3".
var precodedPattern = regexp.MustCompile(`^[A-Za-z]+\d+$`)

// nonAlphanumeric matches characters stripped from words before taking
// acronym initials.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Code derives a short code from a non-empty trimmed name.
//
// POLICY:
//  1. Pre-coded names (letters followed by digits) pass through verbatim,
//     case preserved.
//  2. Anything else becomes an acronym: split on whitespace, strip
//     non-alphanumeric characters from each word, take the uppercased first
//     character of each non-empty cleaned word.
//  3. If the acronym is empty (the name had no alphanumeric characters),
//     the original name is returned unchanged.
func Code(name string) string {
	if precodedPattern.MatchString(name) {
		return name
	}

	var b strings.Builder
	for _, word := range strings.Fields(name) {
		cleaned := nonAlphanumeric.ReplaceAllString(word, "")
		if cleaned == "" {
			continue
		}
		b.WriteRune(unicode.ToUpper(rune(cleaned[0])))
	}

	if b.Len() == 0 {
		return name
	}
	return b.String()
}

// =============================================================================
// PROGRAM PREFIX SYNTHESIS
// =============================================================================

// boilerplatePhrases are tokens that carry no naming information and are
// stripped from program names before prefix derivation. The Arabic entries
// cover the "outcomes of program" and "department" phrasing that source
// files embed in their metadata row.
var boilerplatePhrases = []string{
	"مخرجات برنامج",
	"مخرجات",
	"برنامج",
	"قسم",
	"Learning Outcomes of",
	"Learning Outcomes",
	"Outcomes of",
	"Department of",
	"Program of",
}

// uppercaseLatin matches embedded uppercase Latin letters, used to detect an
// English abbreviation inside an otherwise non-Latin program name.
var uppercaseLatin = regexp.MustCompile(`[A-Z]`)

// Prefix derives a program-level prefix from a program's full name.
//
// PARAMETERS:
//   - programName: the full program or file name. May be English or another
//     script, possibly containing boilerplate tokens.
//   - overrides: curated full-name-to-prefix mappings consulted before any
//     heuristic. May be nil.
//
// POLICY:
//  1. A curated override for the verbatim name always wins.
//  2. Boilerplate phrases are stripped and the name is truncated at a
//     " - " separator, keeping the portion before it.
//  3. Two or more remaining words: if the cleaned text contains two or more
//     uppercase Latin letters, those letters concatenated in order form the
//     prefix (an embedded English abbreviation). Otherwise the uppercased
//     first characters of the first two words do.
//  4. A single remaining word yields its first three characters, uppercased;
//     shorter words are used as-is.
func Prefix(programName string, overrides map[string]string) string {
	if p, ok := overrides[programName]; ok {
		return p
	}

	cleaned := programName
	for _, phrase := range boilerplatePhrases {
		cleaned = strings.ReplaceAll(cleaned, phrase, " ")
	}
	if idx := strings.Index(cleaned, " - "); idx >= 0 {
		cleaned = cleaned[:idx]
	}

	parts := strings.Fields(cleaned)
	switch {
	case len(parts) >= 2:
		letters := uppercaseLatin.FindAllString(cleaned, -1)
		if len(letters) >= 2 {
			return strings.Join(letters, "")
		}
		return upperFirstRune(parts[0]) + upperFirstRune(parts[1])

	case len(parts) == 1:
		return upperRunes(parts[0], 3)

	default:
		// Nothing survived the boilerplate strip. Fall back to the raw name
		// so the caller still gets a stable, non-empty prefix.
		return upperRunes(strings.TrimSpace(programName), 3)
	}
}

// upperFirstRune returns the uppercased first rune of s.
func upperFirstRune(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// upperRunes returns the first n runes of s, uppercased. Rune-based so that
// multi-byte scripts are not cut mid-character.
func upperRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return strings.ToUpper(string(runes))
}

package usecase

import (
	"regexp"
	"strings"
)

// Compiled regex patterns for OCR text normalization
var (
	// Stray characters OCR tends to hallucinate around table borders
	strayCharsRegex = regexp.MustCompile(`[{}"]`)

	// Runs of horizontal whitespace
	horizontalSpaceRegex = regexp.MustCompile(`[ \t\r\f]+`)

	// Leading whitespace after a line break
	leadingLineSpaceRegex = regexp.MustCompile(`\n +`)

	// The ARA token is a recurring OCR misread of the AR option code
	araTokenRegex = regexp.MustCompile(`\bARA\b`)

	// AR immediately followed by a non-letter (or end of text) lost its
	// separating space during OCR. The single-space case is excluded so the
	// rewrite is a fixed point.
	arSpacingRegex = regexp.MustCompile(`AR([^A-Za-z ]|$)`)
)

// NormalizeOCRText cleans raw spec-sheet text of OCR artifacts before any
// pattern extraction runs. Pure and deterministic; applying it to its own
// output is a no-op.
func NormalizeOCRText(text string) string {
	// Step 1: strip stray braces and quotes
	cleaned := strayCharsRegex.ReplaceAllString(text, "")

	// Step 2: collapse whitespace runs, then drop leading whitespace on
	// continuation lines so line-anchored patterns still match
	cleaned = horizontalSpaceRegex.ReplaceAllString(cleaned, " ")
	cleaned = leadingLineSpaceRegex.ReplaceAllString(cleaned, "\n")

	// Step 3: known OCR confusions around the AR option code
	cleaned = araTokenRegex.ReplaceAllString(cleaned, "AR")
	cleaned = arSpacingRegex.ReplaceAllString(cleaned, "AR $1")

	// Step 4: OCR merges the option-table header with its column labels
	cleaned = strings.ReplaceAll(cleaned, "Options Description", "Description")
	cleaned = strings.ReplaceAll(cleaned, "Options Suffix", "Suffix")

	return cleaned
}

// codeCharsetRegex strips everything except letters, digits, and dash
var codeCharsetRegex = regexp.MustCompile(`[^A-Z0-9-]`)

// codeCorrections maps known OCR misreads of short option codes to their
// canonical form. Tunable data, not business logic: extend it as new misreads
// show up in the field.
var codeCorrections = map[string]string{
	"ARA":  "AR",
	"ARR":  "AR",
	"ARD":  "AR",
	"OASH": "A5H",
	"O5":   "05",
	"O6":   "06",
	"O7":   "07",
	"O8":   "08",
}

// NormalizeCode canonicalizes a raw option/suffix code. Matching is
// case-insensitive (input is upper-cased before the table lookup) and the
// result is a fixed point of the function.
func NormalizeCode(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	code = codeCharsetRegex.ReplaceAllString(code, "")

	if corrected, ok := codeCorrections[code]; ok {
		code = corrected
	}

	// OCR often smears trailing garbage onto the AR code. A long dashless
	// code starting with AR is assumed to be one of those misreads.
	if len(code) > 4 && !strings.Contains(code, "-") && strings.HasPrefix(code, "AR") {
		code = "AR"
	}

	return code
}

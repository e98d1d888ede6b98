package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/attriflow/backend/internal/domain"
)

// Compiled patterns for the tabular/suffix passes
var (
	// "CODE | DESCRIPTION" rows with pipe, colon, or tab delimiters
	delimitedLineRegex = regexp.MustCompile(`^\s*-?([A-Z0-9]{1,4})\s*[|:\t]\s*(\S.*)$`)

	// "-CODE description" option lines
	dashOptionRegex = regexp.MustCompile(`^\s*-\s?([A-Z0-9]{1,4})\s+(\S.*)$`)

	// "Option"/"Suffix" label followed by a code token and a nearby description
	labeledOptionRegex = regexp.MustCompile(`(?i)\b(?:option|suffix)s?\s*(?:code)?\s*[:#]?\s*-?([A-Z0-9]{1,4})\b[\s:,-]*([A-Za-z][^\n]{2,79})`)

	// OCR rescue: separator, short letter code, and a telltale description
	rescueOptionRegex = regexp.MustCompile(`(?m)[-–—]\s*([A-Za-z]{2,4})\s+([^\n]*?(?:Acid Resistant|[A-Za-z ]*Coating|[A-Za-z ]*Finish|[A-Za-z ]*Material)[^\n]*)`)

	// Code shapes for classifying delimited rows
	numericCodeRegex  = regexp.MustCompile(`^[0-9]+$`)
	strainerCodeRegex = regexp.MustCompile(`^[A-Z][0-9]+$`)
	letterCodeRegex   = regexp.MustCompile(`^[A-Z]+$`)
)

// TabularExtractor recovers suffix-code/description pairs from normalized
// text regardless of how the document laid out its option table. Four
// independent passes accumulate candidates before deduplication.
type TabularExtractor struct{}

// NewTabularExtractor creates a tabular/suffix extractor
func NewTabularExtractor() *TabularExtractor {
	return &TabularExtractor{}
}

// Extract runs all four passes in their fixed order and dedupes the result.
// Pass order matters: earlier passes win when the same code appears twice.
func (e *TabularExtractor) Extract(text string) []domain.Attribute {
	var attrs []domain.Attribute
	attrs = append(attrs, e.delimitedLines(text)...)
	attrs = append(attrs, e.dashOptions(text)...)
	attrs = append(attrs, e.labeledOptions(text)...)
	attrs = append(attrs, e.rescueOptions(text, attrs)...)
	return DeduplicateAttributes(attrs)
}

// delimitedLines parses "CODE | DESCRIPTION" rows and classifies the code by
// shape: numeric codes are pipe sizes, letter+digit codes are strainers,
// letter-only codes are outlet types, anything else is a generic option.
func (e *TabularExtractor) delimitedLines(text string) []domain.Attribute {
	var attrs []domain.Attribute
	for _, line := range strings.Split(text, "\n") {
		match := delimitedLineRegex.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		code := NormalizeCode(match[1])
		description := strings.TrimSpace(match[2])
		if code == "" || description == "" || isTableHeaderWord(code) {
			continue
		}

		attrs = append(attrs, domain.Attribute{
			Name:  fmt.Sprintf("%s Suffix: %s", classifyCode(code), code),
			Value: description,
		})
	}
	return attrs
}

// classifyCode labels a normalized code by its shape
func classifyCode(code string) string {
	switch {
	case numericCodeRegex.MatchString(code):
		return "Pipe Size"
	case strainerCodeRegex.MatchString(code):
		return "Strainer"
	case letterCodeRegex.MatchString(code):
		return "Outlet Type"
	default:
		return "Option"
	}
}

// dashOptions parses "-CODE description" option lines. A description runs
// until the next dash-prefixed line or the end of the block.
func (e *TabularExtractor) dashOptions(text string) []domain.Attribute {
	var attrs []domain.Attribute

	lines := strings.Split(text, "\n")
	var code string
	var descParts []string

	flush := func() {
		if code == "" || len(descParts) == 0 {
			return
		}
		attrs = append(attrs, domain.Attribute{
			Name:  fmt.Sprintf("Options Suffix: -%s", code),
			Value: strings.TrimSpace(strings.Join(descParts, " ")),
		})
		code = ""
		descParts = nil
	}

	for _, line := range lines {
		if match := dashOptionRegex.FindStringSubmatch(line); match != nil {
			flush()
			code = NormalizeCode(match[1])
			descParts = []string{strings.TrimSpace(match[2])}
			continue
		}
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if code != "" {
			descParts = append(descParts, strings.TrimSpace(line))
		}
	}
	flush()

	return attrs
}

// labeledOptions scans for "Option"/"Suffix" labels followed by a code and a
// description. The literal header words CODE and DESCRIPTION are rejected:
// they are the table's own column labels, not values.
func (e *TabularExtractor) labeledOptions(text string) []domain.Attribute {
	var attrs []domain.Attribute
	for _, match := range labeledOptionRegex.FindAllStringSubmatch(text, -1) {
		code := NormalizeCode(match[1])
		description := strings.TrimSpace(match[2])
		if code == "" || description == "" {
			continue
		}
		if isTableHeaderWord(code) || isTableHeaderWord(strings.ToUpper(firstWord(description))) {
			continue
		}
		attrs = append(attrs, domain.Attribute{
			Name:  fmt.Sprintf("Options Suffix: -%s", code),
			Value: description,
		})
	}
	return attrs
}

// rescueOptions rescues a recurring OCR failure mode where the option table
// collapses into running text: a separator, a short letter code, and a
// description naming a coating, finish, or material. Codes already captured
// by an earlier pass are skipped.
func (e *TabularExtractor) rescueOptions(text string, captured []domain.Attribute) []domain.Attribute {
	seen := make(map[string]bool)
	for _, attr := range captured {
		if code := suffixCodeOf(attr); code != "" {
			seen[code] = true
		}
	}

	var attrs []domain.Attribute
	for _, match := range rescueOptionRegex.FindAllStringSubmatch(text, -1) {
		code := NormalizeCode(match[1])
		description := strings.TrimSpace(match[2])
		if code == "" || description == "" || seen[code] {
			continue
		}
		seen[code] = true
		attrs = append(attrs, domain.Attribute{
			Name:  fmt.Sprintf("Options Suffix: -%s", code),
			Value: description,
		})
	}
	return attrs
}

// isTableHeaderWord reports whether a candidate code is really a column label
func isTableHeaderWord(word string) bool {
	return word == "CODE" || word == "DESCRIPTION"
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

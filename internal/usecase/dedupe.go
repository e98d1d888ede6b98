package usecase

import (
	"regexp"
	"strings"

	"github.com/attriflow/backend/internal/domain"
)

// suffixCodeRegex extracts the suffix code embedded in an attribute name,
// e.g. "Options Suffix: -AR" or "Pipe Size Suffix: 2"
var suffixCodeRegex = regexp.MustCompile(`Suffix:\s*([-A-Z0-9]+)`)

// suffixCodeOf returns the normalized suffix code carried by an attribute
// name, or "" when the attribute does not reference one.
func suffixCodeOf(attr domain.Attribute) string {
	match := suffixCodeRegex.FindStringSubmatch(attr.Name)
	if match == nil {
		return ""
	}
	code := strings.TrimLeft(match[1], "-")
	return strings.ToUpper(code)
}

// DeduplicateAttributes collapses attributes that reference the same
// normalized suffix code. Order-preserving, first seen wins: earlier
// extraction passes take precedence over later ones for the same code.
// Attributes without a recognizable suffix code are always kept.
func DeduplicateAttributes(attrs []domain.Attribute) []domain.Attribute {
	seen := make(map[string]bool)
	result := make([]domain.Attribute, 0, len(attrs))

	for _, attr := range attrs {
		code := suffixCodeOf(attr)
		if code == "" {
			result = append(result, attr)
			continue
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		result = append(result, attr)
	}

	return result
}

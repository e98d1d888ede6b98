package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/attriflow/backend/internal/domain"
)

// Compiled patterns for technical-data extraction
var (
	// Flow keyword, a numeric value, and a flow unit
	flowRateValueRegex = regexp.MustCompile(`(?i)\b(?:flow(?:\s*rate)?|free area|discharge)\b[^\n0-9]{0,40}(\d+(?:\.\d+)?)\s*(?:gpm|g\.p\.m\.|gallons per minute)`)

	// Bare "<value> GPM" with no keyword ahead of it
	bareGPMRegex = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:gpm|gallons per minute)\b`)

	// "Free Area ... 28 sq. in." tables as an alternate flow-rate source
	freeAreaRegex = regexp.MustCompile(`(?i)\bfree area\b[^\n0-9]{0,40}(\d+(?:\.\d+)?)\s*(?:sq\.?\s*in\.?|square inches)`)

	// Labeled load rating: "Load Rating: Medium Duty"
	loadRatingRegex = regexp.MustCompile(`(?i)\bload\s*(?:rating|class(?:ification)?)\s*[:#]?\s*([A-Za-z][A-Za-z -]{2,40})`)

	// Bare duty keywords, most specific first
	dutyKeywords = []string{"extra heavy duty", "heavy duty", "medium duty", "light duty"}

	// Labeled materials
	bodyMaterialRegex  = regexp.MustCompile(`(?i)\bbody\s*(?:material\s*[:#]?|[:#])\s*([A-Za-z][A-Za-z ,-]{2,40})`)
	grateMaterialRegex = regexp.MustCompile(`(?i)\b(?:grate|top)\s*(?:material\s*[:#]?|[:#])\s*([A-Za-z][A-Za-z ,-]{2,40})`)
)

// TechnicalExtractor scans free text for flow rate, load rating, and material
// fields independent of any manufacturer template.
type TechnicalExtractor struct{}

// NewTechnicalExtractor creates a technical-data extractor
func NewTechnicalExtractor() *TechnicalExtractor {
	return &TechnicalExtractor{}
}

// Extract emits at most one Flow Rate Capacity attribute plus any load
// rating and material fields found. Missing fields are skipped silently.
func (e *TechnicalExtractor) Extract(text string) []domain.Attribute {
	var attrs []domain.Attribute

	flowFound := false
	if match := flowRateValueRegex.FindStringSubmatch(text); match != nil {
		attrs = append(attrs, domain.Attribute{Name: "Flow Rate Capacity", Value: match[1] + " GPM"})
		flowFound = true
	} else if match := bareGPMRegex.FindStringSubmatch(text); match != nil {
		attrs = append(attrs, domain.Attribute{Name: "Flow Rate Capacity", Value: match[1] + " GPM"})
		flowFound = true
	}

	// Free-area tables stand in for a flow rate only when none was found
	if !flowFound {
		if match := freeAreaRegex.FindStringSubmatch(text); match != nil {
			attrs = append(attrs, domain.Attribute{
				Name:  "Flow Rate Capacity",
				Value: match[1] + " sq. in. free area",
			})
		}
	}

	if rating := extractLoadRating(text); rating != "" {
		attrs = append(attrs, domain.Attribute{Name: "Load Rating", Value: rating})
	}

	if match := bodyMaterialRegex.FindStringSubmatch(text); match != nil {
		attrs = append(attrs, domain.Attribute{Name: "Body Material", Value: capitalizeFirst(match[1])})
	}

	if match := grateMaterialRegex.FindStringSubmatch(text); match != nil {
		attrs = append(attrs, domain.Attribute{Name: "Grate Material", Value: capitalizeFirst(match[1])})
	}

	return attrs
}

// extractLoadRating prefers the labeled pattern and falls back to bare duty
// keyword detection
func extractLoadRating(text string) string {
	if match := loadRatingRegex.FindStringSubmatch(text); match != nil {
		return capitalizeFirst(strings.TrimSpace(match[1]))
	}

	lower := strings.ToLower(text)
	for _, keyword := range dutyKeywords {
		if strings.Contains(lower, keyword) {
			return titleCaser.String(keyword)
		}
	}
	return ""
}

// capitalizeFirst upper-cases the first letter of a captured value
func capitalizeFirst(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

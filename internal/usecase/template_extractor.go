package usecase

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/attriflow/backend/internal/domain"
	"github.com/attriflow/backend/internal/templates"
)

// titleCaser title-cases table headers for attribute names
var titleCaser = cases.Title(language.English)

// TemplateExtractor applies a manufacturer template's patterns to normalized
// sheet text and produces the first attribute batch.
type TemplateExtractor struct {
	registry           *templates.Registry
	enableDebugLogging bool
}

// NewTemplateExtractor creates a template-driven extractor
func NewTemplateExtractor(registry *templates.Registry, enableDebugLogging bool) *TemplateExtractor {
	return &TemplateExtractor{
		registry:           registry,
		enableDebugLogging: enableDebugLogging,
	}
}

// Resolve picks the template for the given manufacturer, falling back by
// fixture type when the manufacturer has no registered template.
func (e *TemplateExtractor) Resolve(manufacturer string, categoryType domain.CategoryType) *domain.ManufacturerTemplate {
	if manufacturer != "" {
		if tmpl, ok := e.registry.Get(manufacturer); ok {
			return tmpl
		}
	}

	switch categoryType {
	case domain.CategoryFaucet:
		return e.registry.DefaultForCategory(domain.TemplateCategoryFaucets)
	case domain.CategoryDrain:
		return e.registry.DefaultForCategory(domain.TemplateCategoryDrains)
	default:
		return e.registry.Default()
	}
}

// Extract pulls structured fields from text using the resolved template.
// Patterns that fail to match are skipped silently; the function never fails
// on "no match".
func (e *TemplateExtractor) Extract(text, manufacturer, division, category string, categoryType domain.CategoryType) []domain.Attribute {
	tmpl := e.Resolve(manufacturer, categoryType)

	if e.enableDebugLogging {
		log.Printf("[EXTRACT] manufacturer=%q template=%q categoryType=%s",
			manufacturer, tmpl.ManufacturerName, categoryType)
	}

	var attrs []domain.Attribute

	if match := firstCapture(tmpl.ProductNumberPattern, text); match != "" {
		attrs = append(attrs, domain.Attribute{Name: "Product Number", Value: match})
	}

	if match := firstCapture(tmpl.ProductNamePattern, text); match != "" {
		attrs = append(attrs, domain.Attribute{Name: "Product Name", Value: strings.TrimSpace(match)})
	}

	if match := firstCapture(tmpl.SpecificationPattern, text); match != "" {
		attrs = append(attrs, domain.Attribute{Name: "Specification Number", Value: match})
	}

	attrs = append(attrs, e.extractSuffixSection(text, tmpl)...)
	attrs = append(attrs, extractTableHeaders(text, tmpl)...)

	if flowRate := extractFlowRate(text, tmpl.FlowRatePatterns); flowRate != "" {
		attrs = append(attrs, domain.Attribute{Name: "Flow Rate Capacity", Value: flowRate})
	}

	if manufacturer != "" {
		attrs = append(attrs, domain.Attribute{Name: "Manufacturer", Value: manufacturer})
	}
	if division != "" {
		attrs = append(attrs, domain.Attribute{Name: "Division", Value: division})
	}
	if category != "" {
		attrs = append(attrs, domain.Attribute{Name: "Category", Value: category})
	}

	return attrs
}

// extractSuffixSection locates the options/suffix section by scanning the
// template's markers in order and applies the suffix pattern to the block of
// consecutive non-blank lines following the first marker found.
func (e *TemplateExtractor) extractSuffixSection(text string, tmpl *domain.ManufacturerTemplate) []domain.Attribute {
	block := suffixSectionBlock(text, tmpl.SuffixSectionMarkers)
	if block == "" {
		return nil
	}

	var attrs []domain.Attribute
	for _, match := range tmpl.SuffixPattern.FindAllStringSubmatch(block, -1) {
		if len(match) < 3 {
			continue
		}
		code := strings.TrimSpace(match[1])
		description := strings.TrimSpace(match[2])
		if code == "" || description == "" {
			continue
		}
		attrs = append(attrs, domain.Attribute{
			Name:  fmt.Sprintf("Options Suffix: -%s", code),
			Value: description,
		})
	}
	return attrs
}

// suffixSectionBlock returns the consecutive non-blank lines following the
// first marker found, or "" when no marker is present.
func suffixSectionBlock(text string, markers []string) string {
	lower := strings.ToLower(text)

	markerEnd := -1
	for _, marker := range markers {
		if idx := strings.Index(lower, strings.ToLower(marker)); idx >= 0 {
			markerEnd = idx + len(marker)
			break
		}
	}
	if markerEnd < 0 {
		return ""
	}

	rest := text[markerEnd:]
	if idx := strings.Index(rest, "\n"); idx >= 0 {
		rest = rest[idx+1:]
	} else {
		return ""
	}

	var blockLines []string
	for _, line := range strings.Split(rest, "\n") {
		if strings.TrimSpace(line) == "" {
			break
		}
		blockLines = append(blockLines, line)
	}
	return strings.Join(blockLines, "\n")
}

// extractTableHeaders emits one attribute per table header found in the text.
// The header matchers are precompiled at registry load, index-aligned with
// the header names.
func extractTableHeaders(text string, tmpl *domain.ManufacturerTemplate) []domain.Attribute {
	var attrs []domain.Attribute
	for i, pattern := range tmpl.TableHeaderPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		value := strings.TrimSpace(match[1])
		if value == "" {
			continue
		}
		attrs = append(attrs, domain.Attribute{
			Name:  titleCaser.String(tmpl.TableHeaders[i]),
			Value: value,
		})
	}
	return attrs
}

// extractFlowRate scans the flow-rate matchers in order and formats the
// first numeric value found. First identifier wins; later identifiers are
// not consulted once a value is found.
func extractFlowRate(text string, patterns []*regexp.Regexp) string {
	for _, pattern := range patterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return match[1] + " GPM"
		}
	}
	return ""
}

// firstCapture returns the first captured group of the first match, or the
// whole match when the pattern has no groups.
func firstCapture(pattern *regexp.Regexp, text string) string {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	if len(match) > 1 {
		return match[1]
	}
	return match[0]
}

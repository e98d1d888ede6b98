package domain

import (
	"fmt"
	"regexp"
)

// TemplateCategory groups manufacturer templates by product family
type TemplateCategory string

const (
	TemplateCategoryDrains  TemplateCategory = "drains"
	TemplateCategoryFaucets TemplateCategory = "faucets"
	TemplateCategoryGeneral TemplateCategory = "general"
)

// ManufacturerTemplate bundles the extraction patterns and metadata for one
// manufacturer's spec-sheet layout. Templates are immutable after registry
// load; every list field is non-nil (validated, empty when unused).
type ManufacturerTemplate struct {
	ManufacturerName     string
	ProductNumberPattern *regexp.Regexp
	ProductNamePattern   *regexp.Regexp
	SpecificationPattern *regexp.Regexp
	SuffixSectionMarkers []string
	SuffixPattern        *regexp.Regexp
	TableHeaders         []string
	FlowRateIdentifiers  []string
	SectionOrder         []string // documentation of the sheet layout, not consulted by extractors
	BrandIdentifiers     []string
	Category             TemplateCategory

	// Matchers derived from TableHeaders and FlowRateIdentifiers, built once
	// by Validate at registry load. Index-aligned with their source lists.
	TableHeaderPatterns []*regexp.Regexp
	FlowRatePatterns    []*regexp.Regexp
}

// Validate checks that the template is fully specified. Absent optional
// lists are normalized to empty slices so extractors never see nil.
func (t *ManufacturerTemplate) Validate() error {
	if t.ManufacturerName == "" {
		return fmt.Errorf("template missing manufacturer name")
	}
	if t.ProductNumberPattern == nil {
		return fmt.Errorf("template %q missing product number pattern", t.ManufacturerName)
	}
	if t.ProductNamePattern == nil {
		return fmt.Errorf("template %q missing product name pattern", t.ManufacturerName)
	}
	if t.SpecificationPattern == nil {
		return fmt.Errorf("template %q missing specification pattern", t.ManufacturerName)
	}
	if t.SuffixPattern == nil {
		return fmt.Errorf("template %q missing suffix pattern", t.ManufacturerName)
	}
	if t.Category == "" {
		return fmt.Errorf("template %q missing category", t.ManufacturerName)
	}

	if t.SuffixSectionMarkers == nil {
		t.SuffixSectionMarkers = []string{}
	}
	if t.TableHeaders == nil {
		t.TableHeaders = []string{}
	}
	if t.FlowRateIdentifiers == nil {
		t.FlowRateIdentifiers = []string{}
	}
	if t.SectionOrder == nil {
		t.SectionOrder = []string{}
	}
	if t.BrandIdentifiers == nil {
		t.BrandIdentifiers = []string{}
	}

	t.TableHeaderPatterns = make([]*regexp.Regexp, 0, len(t.TableHeaders))
	for _, header := range t.TableHeaders {
		pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(header) + `[:\s]+([^\n]+)`)
		if err != nil {
			return fmt.Errorf("template %q: table header %q: %v", t.ManufacturerName, header, err)
		}
		t.TableHeaderPatterns = append(t.TableHeaderPatterns, pattern)
	}

	t.FlowRatePatterns = make([]*regexp.Regexp, 0, len(t.FlowRateIdentifiers))
	for _, identifier := range t.FlowRateIdentifiers {
		pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(identifier) + `[:\s]+(\d+(?:\.\d+)?)`)
		if err != nil {
			return fmt.Errorf("template %q: flow rate identifier %q: %v", t.ManufacturerName, identifier, err)
		}
		t.FlowRatePatterns = append(t.FlowRatePatterns, pattern)
	}

	return nil
}

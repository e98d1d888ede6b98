package templates

import (
	"regexp"

	"github.com/attriflow/backend/internal/domain"
)

// Shared pattern fragments. Spec sheets from different manufacturers reuse a
// handful of layouts, so several templates share the generic suffix and
// product-name patterns.
var (
	// A dash-prefixed option line: "-7  Trap Primer Tapping"
	genericSuffixPattern = regexp.MustCompile(`(?m)^\s*-\s?([A-Z0-9]{1,4})\s+(\S.{2,79})$`)

	// A title line ending in a fixture noun: "Heavy Duty Floor Drain"
	drainProductNamePattern = regexp.MustCompile(`(?im)^\s*([A-Z][A-Za-z0-9 ,/()-]{3,60}(?:Drain|Cleanout|Interceptor|Carrier|Sink)s?)\s*$`)

	faucetProductNamePattern = regexp.MustCompile(`(?im)^\s*([A-Z][A-Za-z0-9 ,/()-]{3,60}(?:Faucet|Lavatory|Valve|Fitting)s?)\s*$`)

	// "Specification No. ES-1234" or "Spec Sheet: FD-100"
	genericSpecificationPattern = regexp.MustCompile(`(?i)spec(?:ification)?\.?\s*(?:sheet|no\.?|number)?\s*[:#]?\s*([A-Z]{1,3}-?\d{2,5}(?:\.\d+)?)`)
)

var (
	genericSuffixMarkers = []string{"Suffix", "Options", "Variations"}

	drainTableHeaders  = []string{"Outlet Size", "Outlet Type", "Pipe Size", "Top Size", "Material", "Finish"}
	faucetTableHeaders = []string{"Spout Reach", "Spout Height", "Inlet Size", "Material", "Finish", "Handle Type"}

	drainFlowIdentifiers  = []string{"Flow Rate", "GPM", "Free Area"}
	faucetFlowIdentifiers = []string{"Flow Rate", "GPM"}

	drainSectionOrder  = []string{"header", "product", "options", "dimensions", "technical"}
	faucetSectionOrder = []string{"header", "product", "finishes", "options", "technical"}
)

// builtinTemplates returns the static per-manufacturer templates in registry
// order. Registry order is load-bearing: the detector's tie-break and the
// per-category default both follow it.
func builtinTemplates() []*domain.ManufacturerTemplate {
	return []*domain.ManufacturerTemplate{
		{
			ManufacturerName:     "Wade Drains",
			ProductNumberPattern: regexp.MustCompile(`\b((?:FD|RD|FS|CO|W)-?\d{3,5}(?:-[A-Z0-9]{1,4})?)\b`),
			ProductNamePattern:   drainProductNamePattern,
			SpecificationPattern: genericSpecificationPattern,
			SuffixSectionMarkers: genericSuffixMarkers,
			SuffixPattern:        genericSuffixPattern,
			TableHeaders:         drainTableHeaders,
			FlowRateIdentifiers:  drainFlowIdentifiers,
			SectionOrder:         drainSectionOrder,
			BrandIdentifiers:     []string{"Wade Drains", "wadedrains", "Wade USA"},
			Category:             domain.TemplateCategoryDrains,
		},
		{
			ManufacturerName:     "Zurn",
			ProductNumberPattern: regexp.MustCompile(`\b(Z-?\d{3,5}(?:-[A-Z0-9]{1,4})?)\b`),
			ProductNamePattern:   drainProductNamePattern,
			SpecificationPattern: genericSpecificationPattern,
			SuffixSectionMarkers: genericSuffixMarkers,
			SuffixPattern:        genericSuffixPattern,
			TableHeaders:         drainTableHeaders,
			FlowRateIdentifiers:  drainFlowIdentifiers,
			SectionOrder:         drainSectionOrder,
			BrandIdentifiers:     []string{"Zurn Industries", "zurn.com"},
			Category:             domain.TemplateCategoryDrains,
		},
		{
			ManufacturerName:     "Watts",
			ProductNumberPattern: regexp.MustCompile(`\b((?:FD|RD|CO|HD|FS)-\d{3,4}(?:-[A-Z0-9]{1,4})?)\b`),
			ProductNamePattern:   drainProductNamePattern,
			SpecificationPattern: genericSpecificationPattern,
			SuffixSectionMarkers: genericSuffixMarkers,
			SuffixPattern:        genericSuffixPattern,
			TableHeaders:         drainTableHeaders,
			FlowRateIdentifiers:  drainFlowIdentifiers,
			SectionOrder:         drainSectionOrder,
			BrandIdentifiers:     []string{"Watts Drainage", "watts.com"},
			Category:             domain.TemplateCategoryDrains,
		},
		{
			ManufacturerName:     "Josam",
			ProductNumberPattern: regexp.MustCompile(`\b(\d{5}(?:-[A-Z0-9]{1,4})?)\b`),
			ProductNamePattern:   drainProductNamePattern,
			SpecificationPattern: genericSpecificationPattern,
			SuffixSectionMarkers: genericSuffixMarkers,
			SuffixPattern:        genericSuffixPattern,
			TableHeaders:         drainTableHeaders,
			FlowRateIdentifiers:  drainFlowIdentifiers,
			SectionOrder:         drainSectionOrder,
			BrandIdentifiers:     []string{"Josam Company", "josam.com"},
			Category:             domain.TemplateCategoryDrains,
		},
		{
			ManufacturerName:     "MIFAB",
			ProductNumberPattern: regexp.MustCompile(`\b(F1?\d{3}(?:-[A-Z0-9]{1,4})?)\b`),
			ProductNamePattern:   drainProductNamePattern,
			SpecificationPattern: genericSpecificationPattern,
			SuffixSectionMarkers: genericSuffixMarkers,
			SuffixPattern:        genericSuffixPattern,
			TableHeaders:         drainTableHeaders,
			FlowRateIdentifiers:  drainFlowIdentifiers,
			SectionOrder:         drainSectionOrder,
			BrandIdentifiers:     []string{"MIFAB", "mifab.com"},
			Category:             domain.TemplateCategoryDrains,
		},
		{
			ManufacturerName:     "Jay R. Smith",
			ProductNumberPattern: regexp.MustCompile(`\b(\d{4}(?:-[A-Z0-9]{1,4})?)\b`),
			ProductNamePattern:   drainProductNamePattern,
			SpecificationPattern: genericSpecificationPattern,
			SuffixSectionMarkers: genericSuffixMarkers,
			SuffixPattern:        genericSuffixPattern,
			TableHeaders:         drainTableHeaders,
			FlowRateIdentifiers:  drainFlowIdentifiers,
			SectionOrder:         drainSectionOrder,
			BrandIdentifiers:     []string{"Jay R. Smith", "Smith Mfg"},
			Category:             domain.TemplateCategoryDrains,
		},
		{
			ManufacturerName:     "American Standard",
			ProductNumberPattern: regexp.MustCompile(`\b(\d{4}\.\d{3})\b`),
			ProductNamePattern:   faucetProductNamePattern,
			SpecificationPattern: genericSpecificationPattern,
			SuffixSectionMarkers: genericSuffixMarkers,
			SuffixPattern:        genericSuffixPattern,
			TableHeaders:         faucetTableHeaders,
			FlowRateIdentifiers:  faucetFlowIdentifiers,
			SectionOrder:         faucetSectionOrder,
			BrandIdentifiers:     []string{"American Standard", "Colony", "Cadet"},
			Category:             domain.TemplateCategoryFaucets,
		},
		{
			ManufacturerName:     "Kohler",
			ProductNumberPattern: regexp.MustCompile(`\b(K-\d{3,5}(?:-[A-Z0-9]{1,4})?)\b`),
			ProductNamePattern:   faucetProductNamePattern,
			SpecificationPattern: genericSpecificationPattern,
			SuffixSectionMarkers: genericSuffixMarkers,
			SuffixPattern:        genericSuffixPattern,
			TableHeaders:         faucetTableHeaders,
			FlowRateIdentifiers:  faucetFlowIdentifiers,
			SectionOrder:         faucetSectionOrder,
			BrandIdentifiers:     []string{"Kohler Co", "kohler.com"},
			Category:             domain.TemplateCategoryFaucets,
		},
		{
			ManufacturerName:     "Moen",
			ProductNumberPattern: regexp.MustCompile(`\b((?:T|TS|L)?\d{4}(?:F\d{2})?)\b`),
			ProductNamePattern:   faucetProductNamePattern,
			SpecificationPattern: genericSpecificationPattern,
			SuffixSectionMarkers: genericSuffixMarkers,
			SuffixPattern:        genericSuffixPattern,
			TableHeaders:         faucetTableHeaders,
			FlowRateIdentifiers:  faucetFlowIdentifiers,
			SectionOrder:         faucetSectionOrder,
			BrandIdentifiers:     []string{"Moen Incorporated", "moen.com"},
			Category:             domain.TemplateCategoryFaucets,
		},
		{
			ManufacturerName:     "Delta",
			ProductNumberPattern: regexp.MustCompile(`\b([A-Z]?\d{3,4}(?:LF|WF)(?:-[A-Z0-9]{1,4})?)\b`),
			ProductNamePattern:   faucetProductNamePattern,
			SpecificationPattern: genericSpecificationPattern,
			SuffixSectionMarkers: genericSuffixMarkers,
			SuffixPattern:        genericSuffixPattern,
			TableHeaders:         faucetTableHeaders,
			FlowRateIdentifiers:  faucetFlowIdentifiers,
			SectionOrder:         faucetSectionOrder,
			BrandIdentifiers:     []string{"Delta Faucet", "deltafaucet.com"},
			Category:             domain.TemplateCategoryFaucets,
		},
		{
			ManufacturerName:     "Sloan",
			ProductNumberPattern: regexp.MustCompile(`\b((?:EBV|EAF|ETF|SF)-?\d{2,4}(?:-[A-Z0-9]{1,4})?)\b`),
			ProductNamePattern:   faucetProductNamePattern,
			SpecificationPattern: genericSpecificationPattern,
			SuffixSectionMarkers: genericSuffixMarkers,
			SuffixPattern:        genericSuffixPattern,
			TableHeaders:         faucetTableHeaders,
			FlowRateIdentifiers:  faucetFlowIdentifiers,
			SectionOrder:         faucetSectionOrder,
			BrandIdentifiers:     []string{"Sloan Valve", "sloan.com"},
			Category:             domain.TemplateCategoryFaucets,
		},
		{
			ManufacturerName:     "Chicago Faucets",
			ProductNumberPattern: regexp.MustCompile(`\b(\d{3,4}-[A-Z0-9]{1,6})\b`),
			ProductNamePattern:   faucetProductNamePattern,
			SpecificationPattern: genericSpecificationPattern,
			SuffixSectionMarkers: genericSuffixMarkers,
			SuffixPattern:        genericSuffixPattern,
			TableHeaders:         faucetTableHeaders,
			FlowRateIdentifiers:  faucetFlowIdentifiers,
			SectionOrder:         faucetSectionOrder,
			BrandIdentifiers:     []string{"Chicago Faucets", "The Chicago Faucet Company"},
			Category:             domain.TemplateCategoryFaucets,
		},
	}
}

// defaultTemplate is the fixed final fallback when neither the manufacturer
// nor the category resolves to a registered template.
func defaultTemplate() *domain.ManufacturerTemplate {
	return &domain.ManufacturerTemplate{
		ManufacturerName:     "Generic",
		ProductNumberPattern: regexp.MustCompile(`\b([A-Z]{1,3}-?\d{2,5}(?:[-.][A-Z0-9]{1,4})?)\b`),
		ProductNamePattern:   regexp.MustCompile(`(?im)^\s*([A-Z][A-Za-z0-9 ,/()-]{3,60})\s*$`),
		SpecificationPattern: genericSpecificationPattern,
		SuffixSectionMarkers: genericSuffixMarkers,
		SuffixPattern:        genericSuffixPattern,
		TableHeaders:         []string{"Material", "Finish", "Size", "Connection"},
		FlowRateIdentifiers:  []string{"Flow Rate", "GPM"},
		SectionOrder:         []string{"header", "product", "options"},
		BrandIdentifiers:     []string{},
		Category:             domain.TemplateCategoryGeneral,
	}
}

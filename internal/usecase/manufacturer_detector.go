package usecase

import (
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/attriflow/backend/internal/domain"
	"github.com/attriflow/backend/internal/templates"
)

// DetectionConfig holds the manufacturer-detection tuning knobs. The default
// values are long-standing behavior; treat them as calibration data and
// change them together with the detector tests.
type DetectionConfig struct {
	KeywordScore       float64 // per keyword found anywhere in the text
	EarlyKeywordBonus  float64 // extra when the keyword appears near the top of the sheet
	BrandScore         float64 // per brand identifier from the manufacturer's template
	SeriesScore        float64 // family-specific product-series pattern plus domain phrase
	PatternScore       float64 // the template's product number pattern matches
	MinConfidence      float64 // below this the top candidate is never returned
	StrongConfidence   float64 // at or above this the top candidate wins outright
	LeadMargin         float64 // otherwise the top must lead the runner-up by this factor
	EarlyWindow        int     // character window counted as "near the top"
	EnableDebugLogging bool
}

// DefaultDetectionConfig returns the calibrated detection constants
func DefaultDetectionConfig() DetectionConfig {
	return DetectionConfig{
		KeywordScore:      30,
		EarlyKeywordBonus: 15,
		BrandScore:        40,
		SeriesScore:       50,
		PatternScore:      50,
		MinConfidence:     30,
		StrongConfidence:  50,
		LeadMargin:        1.5,
		EarlyWindow:       500,
	}
}

// manufacturerCandidate pairs a manufacturer name with the keywords that
// identify it in free text. Candidates without a registered template are
// legal; they simply score on keywords alone.
type manufacturerCandidate struct {
	name     string
	keywords []string
}

// detectionCandidates lists every manufacturer the detector considers, in
// registry order. Order is the tie-break for equal scores.
var detectionCandidates = []manufacturerCandidate{
	{name: "Wade Drains", keywords: []string{"wade"}},
	{name: "Zurn", keywords: []string{"zurn"}},
	{name: "Watts", keywords: []string{"watts"}},
	{name: "Josam", keywords: []string{"josam"}},
	{name: "MIFAB", keywords: []string{"mifab"}},
	{name: "Jay R. Smith", keywords: []string{"jay r. smith", "smith mfg"}},
	{name: "American Standard", keywords: []string{"american standard"}},
	{name: "Kohler", keywords: []string{"kohler"}},
	{name: "Moen", keywords: []string{"moen"}},
	{name: "Delta", keywords: []string{"delta"}},
	{name: "Sloan", keywords: []string{"sloan"}},
	{name: "Chicago Faucets", keywords: []string{"chicago faucet"}},
}

// Drain-series product codes (FD-100, RD-2350, ...) combined with a drainage
// phrase identify Wade sheets whose branding was lost to OCR.
var (
	drainSeriesRegex             = regexp.MustCompile(`(?i)\b(?:FD|RD|FS|CO)-?\d{3,5}\b`)
	drainPhraseRegex             = regexp.MustCompile(`(?i)\b(?:floor drain|roof drain|floor sink)\b`)
	drainSeriesBonusManufacturer = "Wade Drains"
)

// ManufacturerDetector scores candidate manufacturers against raw sheet text
// and returns the best match when the lead is convincing
type ManufacturerDetector struct {
	config   DetectionConfig
	registry *templates.Registry
}

// NewManufacturerDetector creates a detector backed by the template registry
func NewManufacturerDetector(registry *templates.Registry, config DetectionConfig) *ManufacturerDetector {
	if config.MinConfidence <= 0 {
		config = DefaultDetectionConfig()
	}
	return &ManufacturerDetector{
		config:   config,
		registry: registry,
	}
}

// scoredCandidate is a transient per-request scoring record
type scoredCandidate struct {
	name       string
	confidence float64
}

// Detect returns the detected manufacturer name, or "" when no candidate
// scores a convincing lead. Weak ambiguous matches are deliberately rejected;
// the caller falls back to PostProcess.
func (d *ManufacturerDetector) Detect(text string) string {
	lower := strings.ToLower(text)

	head := lower
	if len(head) > d.config.EarlyWindow {
		head = head[:d.config.EarlyWindow]
	}

	scored := make([]scoredCandidate, 0, len(detectionCandidates))
	for _, candidate := range detectionCandidates {
		confidence := d.score(candidate, text, lower, head)
		scored = append(scored, scoredCandidate{name: candidate.name, confidence: confidence})

		if d.config.EnableDebugLogging && confidence > 0 {
			log.Printf("[DETECT] %s: confidence=%.0f", candidate.name, confidence)
		}
	}

	// Stable sort keeps registry order for equal scores
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].confidence > scored[j].confidence
	})

	top := scored[0]
	if top.confidence < d.config.MinConfidence {
		return ""
	}

	if len(scored) == 1 || top.confidence >= d.config.StrongConfidence {
		return top.name
	}

	runnerUp := scored[1]
	if top.confidence >= d.config.LeadMargin*runnerUp.confidence {
		return top.name
	}

	if d.config.EnableDebugLogging {
		log.Printf("[DETECT] rejected %s: %.0f vs runner-up %s: %.0f (no margin)",
			top.name, top.confidence, runnerUp.name, runnerUp.confidence)
	}
	return ""
}

// score computes the additive confidence for one candidate
func (d *ManufacturerDetector) score(candidate manufacturerCandidate, text, lower, head string) float64 {
	var confidence float64

	for _, keyword := range candidate.keywords {
		if strings.Contains(lower, keyword) {
			confidence += d.config.KeywordScore
			if strings.Contains(head, keyword) {
				confidence += d.config.EarlyKeywordBonus
			}
		}
	}

	tmpl, hasTemplate := d.registry.Get(candidate.name)
	if hasTemplate {
		for _, brand := range tmpl.BrandIdentifiers {
			if strings.Contains(lower, strings.ToLower(brand)) {
				confidence += d.config.BrandScore
			}
		}
	}

	if candidate.name == drainSeriesBonusManufacturer &&
		drainSeriesRegex.MatchString(text) && drainPhraseRegex.MatchString(text) {
		confidence += d.config.SeriesScore
	}

	if hasTemplate && tmpl.ProductNumberPattern.MatchString(text) {
		confidence += d.config.PatternScore
	}

	return confidence
}

// PostProcess is the category/division-aware secondary manufacturer hint,
// consulted only when Detect was inconclusive. Runs ordered keyword checks
// scoped to the fixture type; the first rule that fires wins.
func (d *ManufacturerDetector) PostProcess(text, division, category string) string {
	if !domain.IsPlumbingDivision(division) {
		return ""
	}

	lower := strings.ToLower(text)

	switch domain.ClassifyCategory(category) {
	case domain.CategoryFaucet:
		return firstKeywordMatch(lower, []keywordRule{
			{keywords: []string{"american standard", "colony", "cadet"}, manufacturer: "American Standard"},
			{keywords: []string{"moen"}, manufacturer: "Moen"},
			{keywords: []string{"delta"}, manufacturer: "Delta"},
			{keywords: []string{"kohler"}, manufacturer: "Kohler"},
			{keywords: []string{"sloan"}, manufacturer: "Sloan"},
			{keywords: []string{"chicago faucet"}, manufacturer: "Chicago Faucets"},
		})

	case domain.CategoryDrain:
		// The Wade rule is compound (series code AND drainage phrase) while
		// the rest are single keywords. That asymmetry is long-standing
		// behavior; keep both shapes as they are.
		if drainSeriesRegex.MatchString(text) && drainPhraseRegex.MatchString(text) {
			return "Wade Drains"
		}
		return firstKeywordMatch(lower, []keywordRule{
			{keywords: []string{"zurn"}, manufacturer: "Zurn"},
			{keywords: []string{"josam"}, manufacturer: "Josam"},
			{keywords: []string{"mifab"}, manufacturer: "MIFAB"},
			{keywords: []string{"watts"}, manufacturer: "Watts"},
			{keywords: []string{"smith"}, manufacturer: "Jay R. Smith"},
		})

	case domain.CategoryToilet:
		return firstKeywordMatch(lower, []keywordRule{
			{keywords: []string{"american standard", "cadet"}, manufacturer: "American Standard"},
			{keywords: []string{"kohler"}, manufacturer: "Kohler"},
			{keywords: []string{"toto"}, manufacturer: "TOTO"},
			{keywords: []string{"sloan"}, manufacturer: "Sloan"},
		})

	case domain.CategorySink:
		return firstKeywordMatch(lower, []keywordRule{
			{keywords: []string{"elkay"}, manufacturer: "Elkay"},
			{keywords: []string{"kohler"}, manufacturer: "Kohler"},
			{keywords: []string{"american standard"}, manufacturer: "American Standard"},
		})

	case domain.CategoryShower:
		return firstKeywordMatch(lower, []keywordRule{
			{keywords: []string{"symmons"}, manufacturer: "Symmons"},
			{keywords: []string{"delta"}, manufacturer: "Delta"},
			{keywords: []string{"moen"}, manufacturer: "Moen"},
		})
	}

	return ""
}

// keywordRule maps any-of keywords to a manufacturer name
type keywordRule struct {
	keywords     []string
	manufacturer string
}

func firstKeywordMatch(lower string, rules []keywordRule) string {
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.manufacturer
			}
		}
	}
	return ""
}

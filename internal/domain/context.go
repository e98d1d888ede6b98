package domain

import "strings"

// CategoryType is a coarse fixture classification derived from the free-text
// category field. It drives fallback template selection and the secondary
// manufacturer rules.
type CategoryType string

const (
	CategoryDrain   CategoryType = "drain"
	CategoryToilet  CategoryType = "toilet"
	CategorySink    CategoryType = "sink"
	CategoryShower  CategoryType = "shower"
	CategoryFaucet  CategoryType = "faucet"
	CategoryUnknown CategoryType = "unknown"
)

// ExtractionContext carries the user-supplied classification through the
// extraction pipeline. It is read-only once built.
type ExtractionContext struct {
	Division     string
	Category     string
	CategoryType CategoryType
}

// NewExtractionContext builds the context for one request
func NewExtractionContext(division, category string) ExtractionContext {
	return ExtractionContext{
		Division:     division,
		Category:     category,
		CategoryType: ClassifyCategory(category),
	}
}

// ClassifyCategory maps a free-text category to a fixture type.
// Checks run in a fixed order so compound categories like "shower drain"
// classify as drain.
func ClassifyCategory(category string) CategoryType {
	lower := strings.ToLower(category)

	switch {
	case strings.Contains(lower, "drain"):
		return CategoryDrain
	case strings.Contains(lower, "toilet"), strings.Contains(lower, "water closet"):
		return CategoryToilet
	case strings.Contains(lower, "sink"), strings.Contains(lower, "lavatory"):
		return CategorySink
	case strings.Contains(lower, "shower"):
		return CategoryShower
	case strings.Contains(lower, "faucet"):
		return CategoryFaucet
	default:
		return CategoryUnknown
	}
}

// IsPlumbingDivision reports whether the division text indicates the
// plumbing domain (CSI division 22)
func IsPlumbingDivision(division string) bool {
	lower := strings.ToLower(division)
	return strings.Contains(lower, "plumbing") || strings.Contains(lower, "22")
}

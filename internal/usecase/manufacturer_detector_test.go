package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attriflow/backend/internal/templates"
)

func newTestDetector(t *testing.T) *ManufacturerDetector {
	t.Helper()
	registry, err := templates.NewRegistry()
	require.NoError(t, err)
	return NewManufacturerDetector(registry, DefaultDetectionConfig())
}

func TestDetect_SingleKeyword(t *testing.T) {
	detector := newTestDetector(t)

	// Keyword plus early bonus, no competing candidate
	got := detector.Detect("wade floor fixture catalog page")
	assert.Equal(t, "Wade Drains", got)
}

func TestDetect_TieReturnsNone(t *testing.T) {
	detector := newTestDetector(t)

	// Both candidates score identically; no margin, no winner
	got := detector.Detect("comparing wade against zurn pricing")
	assert.Equal(t, "", got)
}

func TestDetect_BrandIdentifierBreaksTie(t *testing.T) {
	detector := newTestDetector(t)

	// Keywords appear past the early window so neither gets the bonus.
	// Wade scores keyword + brand identifier, Zurn keyword only.
	padding := strings.Repeat("lorem ipsum specification text ", 20)
	text := padding + "manufactured by Wade Drains, compared against zurn"

	got := detector.Detect(text)
	assert.Equal(t, "Wade Drains", got)
}

func TestDetect_EmptyText(t *testing.T) {
	detector := newTestDetector(t)
	assert.Equal(t, "", detector.Detect(""))
}

func TestDetect_NoKeywordsNoPattern(t *testing.T) {
	detector := newTestDetector(t)
	assert.Equal(t, "", detector.Detect("a completely unrelated document about gardening"))
}

func TestDetect_SeriesPatternBonus(t *testing.T) {
	detector := newTestDetector(t)

	// No branding at all, but the drain-series code plus the drainage
	// phrase plus the product number pattern identify the sheet
	got := detector.Detect("FD-100-A Heavy Duty Floor Drain with sediment bucket")
	assert.Equal(t, "Wade Drains", got)
}

func TestDetect_Deterministic(t *testing.T) {
	detector := newTestDetector(t)
	text := "wade drains FD-100-A floor drain"

	first := detector.Detect(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, detector.Detect(text))
	}
}

func TestPostProcess_RequiresPlumbingDivision(t *testing.T) {
	detector := newTestDetector(t)

	got := detector.PostProcess("kohler faucet spec", "Electrical - div 26", "Faucets")
	assert.Equal(t, "", got)
}

func TestPostProcess_FaucetRuleOrder(t *testing.T) {
	detector := newTestDetector(t)

	testCases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "american standard by brand line",
			text: "colony pro lavatory fitting",
			want: "American Standard",
		},
		{
			name: "american standard outranks kohler",
			text: "cadet series compared to kohler",
			want: "American Standard",
		},
		{
			name: "moen outranks delta",
			text: "moen and delta commercial lines",
			want: "Moen",
		},
		{
			name: "chicago faucets",
			text: "the chicago faucet company fitting 897",
			want: "Chicago Faucets",
		},
		{
			name: "no faucet keywords",
			text: "unbranded fitting",
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := detector.PostProcess(tc.text, "Plumbing - div 22", "Faucets")
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPostProcess_DrainCompoundRule(t *testing.T) {
	detector := newTestDetector(t)

	// Series code AND drainage phrase together imply Wade
	got := detector.PostProcess("FD-1100 cast iron floor drain", "Plumbing", "Drainage")
	assert.Equal(t, "Wade Drains", got)

	// Series code alone does not
	got = detector.PostProcess("FD-1100 cast iron body", "Plumbing", "Drainage")
	assert.Equal(t, "", got)

	// Phrase alone does not
	got = detector.PostProcess("generic floor drain description", "Plumbing", "Drainage")
	assert.Equal(t, "", got)
}

func TestPostProcess_DrainSingleKeywords(t *testing.T) {
	detector := newTestDetector(t)

	assert.Equal(t, "Zurn", detector.PostProcess("zurn light commercial", "Plumbing", "Drains"))
	assert.Equal(t, "Josam", detector.PostProcess("josam series", "22 05 00", "Floor Drains"))
	assert.Equal(t, "Watts", detector.PostProcess("watts drainage products", "Plumbing", "Drains"))
}

func TestPostProcess_UnknownCategory(t *testing.T) {
	detector := newTestDetector(t)
	assert.Equal(t, "", detector.PostProcess("kohler", "Plumbing", "Widgets"))
}

package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attriflow/backend/internal/domain"
)

func TestTabularExtract_DelimitedLineClassification(t *testing.T) {
	extractor := NewTabularExtractor()

	text := `CODE | DESCRIPTION
2 | 2 inch pipe connection
A5 | Nickel bronze strainer
AR | Acid resistant epoxy interior`

	attrs := extractor.Extract(text)
	require.Len(t, attrs, 3)

	assert.Equal(t, "Pipe Size Suffix: 2", attrs[0].Name)
	assert.Equal(t, "2 inch pipe connection", attrs[0].Value)
	assert.Equal(t, "Strainer Suffix: A5", attrs[1].Name)
	assert.Equal(t, "Nickel bronze strainer", attrs[1].Value)
	assert.Equal(t, "Outlet Type Suffix: AR", attrs[2].Name)
	assert.Equal(t, "Acid resistant epoxy interior", attrs[2].Value)
}

func TestTabularExtract_DashOptionsMultiLineDescription(t *testing.T) {
	extractor := NewTabularExtractor()

	text := `Options
-7 Trap primer tapping
   for 1/2 inch connection
-AR Acid resisting porcelain
   enamel coated interior

Notes follow.`

	attrs := extractor.Extract(text)
	require.Len(t, attrs, 2)

	assert.Equal(t, "Options Suffix: -7", attrs[0].Name)
	assert.Equal(t, "Trap primer tapping for 1/2 inch connection", attrs[0].Value)
	assert.Equal(t, "Options Suffix: -AR", attrs[1].Name)
	assert.Equal(t, "Acid resisting porcelain enamel coated interior", attrs[1].Value)
}

func TestTabularExtract_LabeledOptions(t *testing.T) {
	extractor := NewTabularExtractor()

	text := "Suffix Code: -B7 Vandal proof secured top"

	attrs := extractor.Extract(text)
	require.Len(t, attrs, 1)
	assert.Equal(t, "Options Suffix: -B7", attrs[0].Name)
	assert.Equal(t, "Vandal proof secured top", attrs[0].Value)
}

func TestTabularExtract_LabeledOptionsRejectsHeaderWords(t *testing.T) {
	extractor := NewTabularExtractor()

	attrs := extractor.Extract("Option: CODE Description listing")
	assert.Empty(t, attrs)
}

func TestTabularExtract_RescuePass(t *testing.T) {
	extractor := NewTabularExtractor()

	attrs := extractor.Extract("Furnished with – AR Acid Resistant epoxy interior")
	require.Len(t, attrs, 1)
	assert.Equal(t, "Options Suffix: -AR", attrs[0].Name)
	assert.Contains(t, attrs[0].Value, "Acid Resistant")
}

func TestTabularExtract_RescueSkipsCapturedCodes(t *testing.T) {
	extractor := NewTabularExtractor()

	text := `-AR Acid proof enamel

See also – AR Acid Resistant Coating upgrade`

	attrs := extractor.Extract(text)
	require.Len(t, attrs, 1)
	assert.Equal(t, "Options Suffix: -AR", attrs[0].Name)
	assert.Equal(t, "Acid proof enamel", attrs[0].Value)
}

func TestTabularExtract_EarlierPassWinsAcrossPasses(t *testing.T) {
	extractor := NewTabularExtractor()

	text := `AR | Epoxy coated interior
-AR Acid resisting enamel`

	attrs := extractor.Extract(text)
	require.Len(t, attrs, 1)
	assert.Equal(t, "Outlet Type Suffix: AR", attrs[0].Name)
	assert.Equal(t, "Epoxy coated interior", attrs[0].Value)
}

func TestTabularExtract_NormalizesCodes(t *testing.T) {
	extractor := NewTabularExtractor()

	// OCR misreads: ARA collapses to AR, O5 to 05
	text := `-ARA Acid resisting enamel
-O5 Five inch outlet`

	attrs := extractor.Extract(text)
	require.Len(t, attrs, 2)
	assert.Equal(t, "Options Suffix: -AR", attrs[0].Name)
	assert.Equal(t, "Options Suffix: -05", attrs[1].Name)
}

func TestTabularExtract_EmptyText(t *testing.T) {
	extractor := NewTabularExtractor()
	assert.Empty(t, extractor.Extract(""))
}

func TestTabularExtract_Deterministic(t *testing.T) {
	extractor := NewTabularExtractor()

	text := `2 | 2 inch pipe connection
-7 Trap primer tapping`

	var first []domain.Attribute
	for i := 0; i < 3; i++ {
		attrs := extractor.Extract(text)
		if first == nil {
			first = attrs
			continue
		}
		assert.Equal(t, first, attrs)
	}
}

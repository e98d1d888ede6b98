package completion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/attriflow/backend/internal/domain"
)

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := BuildExtractionPrompt("FD-100-A Floor Drain", "Plumbing - div 22", "Drainage", "Wade Drains")

	assert.Contains(t, prompt, "FD-100-A Floor Drain")
	assert.Contains(t, prompt, "Plumbing - div 22")
	assert.Contains(t, prompt, "Drainage")
	assert.Contains(t, prompt, "The manufacturer is Wade Drains.")
	assert.Contains(t, prompt, "JSON object")
}

func TestBuildExtractionPrompt_OmitsUnknownManufacturer(t *testing.T) {
	prompt := BuildExtractionPrompt("some text", "", "", "")
	assert.NotContains(t, prompt, "The manufacturer is")
}

func TestBuildExtractionPrompt_TruncatesLongText(t *testing.T) {
	text := strings.Repeat("a", maxPromptTextLength) + "OVERFLOW"
	prompt := BuildExtractionPrompt(text, "", "", "")
	assert.NotContains(t, prompt, "OVERFLOW")
}

func TestBuildChatPrompt(t *testing.T) {
	attrs := []domain.Attribute{{Name: "Material", Value: "Cast Iron"}}

	prompt := BuildChatPrompt("is this suitable for outdoor use?", attrs, "roof installation")

	assert.Contains(t, prompt, "is this suitable for outdoor use?")
	assert.Contains(t, prompt, `"name":"Material"`)
	assert.Contains(t, prompt, "roof installation")
}

func TestBuildUpdatePrompt(t *testing.T) {
	prompt := BuildUpdatePrompt("remove the finish attribute", nil, "Plumbing", "Faucets")

	assert.Contains(t, prompt, "remove the finish attribute")
	assert.Contains(t, prompt, "Current attributes: [].")
	assert.Contains(t, prompt, "Plumbing")
	assert.Contains(t, prompt, "Faucets")
}

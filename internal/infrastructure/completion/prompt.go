package completion

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/attriflow/backend/internal/domain"
)

// maxPromptTextLength bounds how much sheet text is sent to the completion
// service. Spec sheets front-load the identifying content, so truncation
// rarely costs attributes.
const maxPromptTextLength = 4000

// BuildExtractionPrompt asks the model for structured product attributes
func BuildExtractionPrompt(text, division, category, manufacturer string) string {
	var b strings.Builder

	b.WriteString("Extract key product attributes from the following specification text")
	if division != "" || category != "" {
		fmt.Fprintf(&b, " for a %s product in the %s category", division, category)
	}
	b.WriteString(". Return the attributes as a JSON object of name/value pairs.")
	if manufacturer != "" {
		fmt.Fprintf(&b, " The manufacturer is %s.", manufacturer)
	}
	b.WriteString(" Include any option or suffix codes with their descriptions.\n\nText: ")
	b.WriteString(truncateText(text))

	return b.String()
}

// BuildChatPrompt frames a user question about previously extracted attributes
func BuildChatPrompt(message string, attrs []domain.Attribute, context string) string {
	var b strings.Builder

	b.WriteString("You are a product information assistant. Help the user review and modify product attributes.")
	fmt.Fprintf(&b, " Current attributes: %s.", encodeAttributes(attrs))
	if context != "" {
		fmt.Fprintf(&b, " Context: %s.", truncateText(context))
	}
	fmt.Fprintf(&b, " User message: %s", message)

	return b.String()
}

// BuildUpdatePrompt asks the model for a revised attribute list
func BuildUpdatePrompt(message string, attrs []domain.Attribute, division, category string) string {
	var b strings.Builder

	b.WriteString("Update the product attributes based on the user's request.")
	fmt.Fprintf(&b, " Current attributes: %s.", encodeAttributes(attrs))
	if division != "" || category != "" {
		fmt.Fprintf(&b, " The product belongs to the %s division, %s category.", division, category)
	}
	fmt.Fprintf(&b, " User request: %s.", message)
	b.WriteString(" Return only the updated attributes as a JSON object of name/value pairs.")

	return b.String()
}

func truncateText(text string) string {
	if len(text) <= maxPromptTextLength {
		return text
	}
	return text[:maxPromptTextLength]
}

func encodeAttributes(attrs []domain.Attribute) string {
	if len(attrs) == 0 {
		return "[]"
	}
	encoded, err := json.Marshal(attrs)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

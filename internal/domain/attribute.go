package domain

// Attribute represents a single extracted name/value pair from a spec sheet
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ExtractionRequest represents an attribute extraction request
type ExtractionRequest struct {
	Text     string `json:"text" binding:"required"`
	Division string `json:"division,omitempty"`
	Category string `json:"category,omitempty"`
}

// ExtractionResult is the full response for one extraction request
type ExtractionResult struct {
	Attributes   []Attribute `json:"attributes"`
	RawText      string      `json:"rawText"`
	Template     string      `json:"template"`
	CategoryType string      `json:"categoryType"`
}

// ChatRequest represents a chat message about previously extracted attributes
type ChatRequest struct {
	Message    string      `json:"message" binding:"required"`
	Attributes []Attribute `json:"attributes,omitempty"`
	Context    string      `json:"context,omitempty"`
}

// UpdateAttributesRequest asks the assistant to revise the attribute list
type UpdateAttributesRequest struct {
	Message    string      `json:"message" binding:"required"`
	Attributes []Attribute `json:"attributes,omitempty"`
	Division   string      `json:"division,omitempty"`
	Category   string      `json:"category,omitempty"`
}

package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/attriflow/backend/internal/domain"
)

// aiSuffixRegex finds suffix/option codes mentioned anywhere in a completion
// response, outside any JSON payload
var aiSuffixRegex = regexp.MustCompile(`(?i)\b(?:suffix|option)s?\s*(?:code)?\s*[:\-]?\s*-([A-Z0-9]{1,4})\b\s*[:,\-]?\s*([A-Za-z][^\n]{2,60})?`)

// ParseCompletionAttributes parses a text-completion response into attribute
// pairs. It prefers the first JSON object span in the text; when none parses,
// it falls back to line-by-line "Name: Value" extraction. Suffix codes
// mentioned anywhere in the response are appended when not already present.
// On total failure the result is empty, never an error.
func ParseCompletionAttributes(text string) []domain.Attribute {
	attrs := parseJSONSpan(text)
	if len(attrs) == 0 {
		attrs = parseColonLines(text)
	}
	return appendResponseSuffixes(text, attrs)
}

// ParseResponseAttributes parses a completion response and tags the result
// with the division and category the request was made for. A response that
// yields no attributes stays empty: the tags qualify parsed content, they do
// not stand in for it.
func ParseResponseAttributes(text, division, category string) []domain.Attribute {
	attrs := ParseCompletionAttributes(text)
	if len(attrs) == 0 {
		return nil
	}
	if division != "" {
		attrs = append(attrs, domain.Attribute{Name: "Division", Value: division})
	}
	if category != "" {
		attrs = append(attrs, domain.Attribute{Name: "Category", Value: category})
	}
	return attrs
}

// parseJSONSpan locates the first {...} span and flattens it one level deep.
// Nested objects become "<outerKey> - <innerKey>" attribute names.
func parseJSONSpan(text string) []domain.Attribute {
	span := firstJSONObject(text)
	if span == "" {
		return nil
	}

	dec := json.NewDecoder(strings.NewReader(span))
	dec.UseNumber()

	value, err := readJSONValue(dec)
	if err != nil {
		return nil
	}
	obj, ok := value.(*orderedObject)
	if !ok {
		return nil
	}

	var attrs []domain.Attribute
	for _, key := range obj.keys {
		switch inner := obj.values[key].(type) {
		case *orderedObject:
			for _, innerKey := range inner.keys {
				attrs = append(attrs, domain.Attribute{
					Name:  fmt.Sprintf("%s - %s", key, innerKey),
					Value: stringifyJSONValue(inner.values[innerKey]),
				})
			}
		case nil:
			continue
		default:
			attrs = append(attrs, domain.Attribute{
				Name:  key,
				Value: stringifyJSONValue(inner),
			})
		}
	}
	return attrs
}

// firstJSONObject returns the first balanced {...} span, respecting string
// literals and escapes, or "" when the text contains none.
func firstJSONObject(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// orderedObject preserves JSON object key order, which map decoding loses
type orderedObject struct {
	keys   []string
	values map[string]interface{}
}

// MarshalJSON re-encodes the object with its original key order
func (o *orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		encodedValue, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// readJSONValue reads one JSON value from the decoder token stream
func readJSONValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := &orderedObject{values: make(map[string]interface{})}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key token %v", keyTok)
			}
			value, err := readJSONValue(dec)
			if err != nil {
				return nil, err
			}
			obj.keys = append(obj.keys, key)
			obj.values[key] = value
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return nil, err
		}
		return obj, nil

	case '[':
		var arr []interface{}
		for dec.More() {
			value, err := readJSONValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		if _, err := dec.Token(); err != nil { // consume ']'
			return nil, err
		}
		return arr, nil
	}

	return nil, fmt.Errorf("unexpected delimiter %v", delim)
}

// stringifyJSONValue renders any parsed JSON value as an attribute value
func stringifyJSONValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringifyJSONValue(item))
		}
		return strings.Join(parts, ", ")
	case *orderedObject:
		// Deeper than one level of nesting: render the subtree as JSON
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// parseColonLines is the fallback for non-JSON responses: every
// "Name: Value" line becomes an attribute.
func parseColonLines(text string) []domain.Attribute {
	var attrs []domain.Attribute
	for _, line := range strings.Split(text, "\n") {
		idx := strings.Index(line, ":")
		if idx <= 0 {
			continue
		}
		name := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if name == "" || value == "" {
			continue
		}
		attrs = append(attrs, domain.Attribute{Name: name, Value: value})
	}
	return attrs
}

// appendResponseSuffixes scans the whole response (not just the JSON span)
// for suffix codes and appends any not already present by code substring.
func appendResponseSuffixes(text string, attrs []domain.Attribute) []domain.Attribute {
	for _, match := range aiSuffixRegex.FindAllStringSubmatch(text, -1) {
		code := NormalizeCode(match[1])
		if code == "" || containsCode(attrs, code) {
			continue
		}
		value := strings.TrimSpace(match[2])
		if value == "" {
			value = code
		}
		attrs = append(attrs, domain.Attribute{
			Name:  fmt.Sprintf("Options Suffix: -%s", code),
			Value: value,
		})
	}
	return attrs
}

// containsCode reports whether any attribute already references the code
func containsCode(attrs []domain.Attribute, code string) bool {
	for _, attr := range attrs {
		if strings.Contains(strings.ToUpper(attr.Name), code) {
			return true
		}
	}
	return false
}

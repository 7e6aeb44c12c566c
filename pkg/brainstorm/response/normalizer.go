package response

import (
	"bytes"
	"encoding/json"
	"strings"

	"ai-brainstorm-be/internal/entity"
)

// ParsedSuggestion is the canonical suggestion record coerced out of
// whatever the model returned.
type ParsedSuggestion struct {
	Name              string
	Description       string
	Perspective       entity.Perspective
	SuggestedCategory entity.Category
}

// ParseResult tags the outcome of normalization. The fallback table is
// consumed only on the Malformed branch; callers never see an error.
type ParseResult struct {
	Suggestions []ParsedSuggestion
	Malformed   bool
	Raw         string
}

const (
	defaultName        = "Unnamed Feature"
	defaultDescription = "No description provided"
)

// Normalize parses raw model output into canonical suggestions.
// Shape priority:
//  1. object with a `suggestions` array
//  2. bare array
//  3. first own property whose value is a non-empty array
//  4. otherwise Malformed
//
// requestedPerspective, when set, overrides whatever the model claimed:
// perspective is a caller-supplied constraint, category is the model's
// judgment call and only gets defaulted.
func Normalize(raw string, requestedPerspective entity.Perspective) ParseResult {
	cleaned := cleanResponse(raw)
	if cleaned == "" {
		return ParseResult{Malformed: true, Raw: raw}
	}

	items, ok := locateItems([]byte(cleaned))
	if !ok || len(items) == 0 {
		return ParseResult{Malformed: true, Raw: raw}
	}

	suggestions := make([]ParsedSuggestion, 0, len(items))
	for _, item := range items {
		suggestions = append(suggestions, coerce(item, requestedPerspective))
	}

	return ParseResult{Suggestions: suggestions}
}

// cleanResponse strips markdown fences and isolates the JSON payload.
func cleanResponse(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	// Whichever opens first wins; models sometimes wrap JSON in prose.
	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		end := strings.LastIndex(s, "]")
		if end > arrStart {
			return s[arrStart : end+1]
		}
	}
	if objStart != -1 {
		end := strings.LastIndex(s, "}")
		if end > objStart {
			return s[objStart : end+1]
		}
	}
	return ""
}

// locateItems finds the array of suggestion objects inside the payload.
func locateItems(data []byte) ([]map[string]interface{}, bool) {
	// Shape 2: bare array
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		var arr []map[string]interface{}
		if err := json.Unmarshal(data, &arr); err != nil {
			return nil, false
		}
		return arr, true
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, false
	}

	// Shape 1: named `suggestions` field
	if rawArr, ok := obj["suggestions"]; ok {
		var arr []map[string]interface{}
		if err := json.Unmarshal(rawArr, &arr); err == nil {
			return arr, true
		}
	}

	// Shape 3: first property (in document order) holding a non-empty array.
	// Map iteration is unordered, so walk the tokens instead.
	for _, key := range orderedKeys(data) {
		rawVal, ok := obj[key]
		if !ok {
			continue
		}
		var arr []map[string]interface{}
		if err := json.Unmarshal(rawVal, &arr); err == nil && len(arr) > 0 {
			return arr, true
		}
	}

	return nil, false
}

// orderedKeys returns the top-level property names in document order.
func orderedKeys(data []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := keyTok.(string)
		if !ok {
			return keys
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return keys
		}
	}
	return keys
}

func coerce(item map[string]interface{}, requested entity.Perspective) ParsedSuggestion {
	s := ParsedSuggestion{
		Name:        stringField(item, "name", defaultName),
		Description: stringField(item, "description", defaultDescription),
	}

	if requested != "" {
		// Never trust the model on a caller-supplied constraint
		s.Perspective = requested
	} else {
		p := entity.Perspective(strings.ToLower(stringField(item, "perspective", "")))
		if !p.Valid() {
			p = entity.PerspectiveTechnical
		}
		s.Perspective = p
	}

	c := entity.Category(strings.ToLower(stringField(item, "suggestedCategory", "")))
	if !entity.ValidSuggestedCategory(c) {
		c = entity.CategoryMVP
	}
	s.SuggestedCategory = c

	return s
}

func stringField(item map[string]interface{}, key, fallback string) string {
	if v, ok := item[key]; ok {
		if str, ok := v.(string); ok && strings.TrimSpace(str) != "" {
			return strings.TrimSpace(str)
		}
	}
	return fallback
}

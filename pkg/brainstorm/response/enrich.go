package response

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseEnhancedDescription extracts {"enhancedDescription": "..."} from
// model output. Falls back to the raw text when it is non-empty prose,
// since an unfenced rewrite is still a usable rewrite.
func ParseEnhancedDescription(raw string) (string, bool) {
	cleaned := cleanResponse(raw)
	if cleaned != "" {
		var payload struct {
			EnhancedDescription string `json:"enhancedDescription"`
		}
		if err := json.Unmarshal([]byte(cleaned), &payload); err == nil && strings.TrimSpace(payload.EnhancedDescription) != "" {
			return strings.TrimSpace(payload.EnhancedDescription), true
		}
	}

	text := strings.TrimSpace(raw)
	if text != "" && !strings.ContainsAny(text, "{}") {
		return text, true
	}
	return "", false
}

// FallbackEnhancedDescription is the local rewrite used when the model
// is unavailable.
func FallbackEnhancedDescription(name, description string) string {
	if strings.TrimSpace(description) == "" {
		return fmt.Sprintf("%s: a focused capability that delivers clear user value and can be scoped, built and validated independently.", name)
	}
	return fmt.Sprintf("%s. This feature should be scoped with explicit acceptance criteria and validated with users before expanding it further.", strings.TrimRight(strings.TrimSpace(description), "."))
}

// ParseTags extracts {"tags": [...]} or a bare string array from model
// output, lowercasing and de-duplicating entries.
func ParseTags(raw string) ([]string, bool) {
	cleaned := cleanResponse(raw)
	if cleaned == "" {
		return nil, false
	}

	var candidates []string

	var payload struct {
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err == nil && len(payload.Tags) > 0 {
		candidates = payload.Tags
	} else {
		var arr []string
		if err := json.Unmarshal([]byte(cleaned), &arr); err == nil && len(arr) > 0 {
			candidates = arr
		}
	}

	if len(candidates) == 0 {
		return nil, false
	}

	seen := make(map[string]bool)
	tags := make([]string, 0, len(candidates))
	for _, t := range candidates {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}

	if len(tags) == 0 {
		return nil, false
	}
	return tags, true
}

// FallbackTags is the canned tag set.
func FallbackTags() []string {
	return []string{"feature", "enhancement", "user-value"}
}

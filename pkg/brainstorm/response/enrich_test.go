package response

import (
	"reflect"
	"testing"
)

func TestParseEnhancedDescription(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOk bool
	}{
		{
			name:   "json payload",
			raw:    `{"enhancedDescription": "A better description."}`,
			want:   "A better description.",
			wantOk: true,
		},
		{
			name:   "fenced json",
			raw:    "```json\n{\"enhancedDescription\": \"Fenced.\"}\n```",
			want:   "Fenced.",
			wantOk: true,
		},
		{
			name:   "plain prose is acceptable",
			raw:    "Users can search recipes by ingredient and save favorites.",
			want:   "Users can search recipes by ingredient and save favorites.",
			wantOk: true,
		},
		{
			name:   "empty",
			raw:    "",
			wantOk: false,
		},
		{
			name:   "json with empty field",
			raw:    `{"enhancedDescription": "  "}`,
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEnhancedDescription(tt.raw)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFallbackEnhancedDescription(t *testing.T) {
	withDesc := FallbackEnhancedDescription("Search", "find recipes fast")
	if withDesc == "" {
		t.Fatal("empty fallback")
	}

	withoutDesc := FallbackEnhancedDescription("Search", "")
	if withoutDesc == "" {
		t.Fatal("empty fallback")
	}
	if withDesc == withoutDesc {
		t.Error("fallback should incorporate the existing description when present")
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   []string
		wantOk bool
	}{
		{
			name:   "tags field",
			raw:    `{"tags": ["Search", "recipes"]}`,
			want:   []string{"search", "recipes"},
			wantOk: true,
		},
		{
			name:   "bare array",
			raw:    `["a", "b"]`,
			want:   []string{"a", "b"},
			wantOk: true,
		},
		{
			name:   "duplicates and blanks removed",
			raw:    `{"tags": ["api", "API", " ", "api"]}`,
			want:   []string{"api"},
			wantOk: true,
		},
		{
			name:   "prose",
			raw:    "here are some tags",
			wantOk: false,
		},
		{
			name:   "empty list",
			raw:    `{"tags": []}`,
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTags(tt.raw)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFallbackTags(t *testing.T) {
	tags := FallbackTags()
	if len(tags) == 0 {
		t.Fatal("fallback tag set must not be empty")
	}
}

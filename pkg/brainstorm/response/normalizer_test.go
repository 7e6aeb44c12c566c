package response

import (
	"testing"

	"ai-brainstorm-be/internal/entity"
)

func TestNormalizeShapes(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantCount int
		malformed bool
	}{
		{
			name:      "named suggestions field",
			raw:       `{"suggestions": [{"name": "A", "description": "a", "perspective": "technical", "suggestedCategory": "mvp"}]}`,
			wantCount: 1,
		},
		{
			name:      "bare array",
			raw:       `[{"name": "A"}, {"name": "B"}]`,
			wantCount: 2,
		},
		{
			name:      "first array-valued property",
			raw:       `{"note": "here you go", "features": [{"name": "A"}], "ideas": [{"name": "B"}, {"name": "C"}]}`,
			wantCount: 1,
		},
		{
			name:      "markdown fenced",
			raw:       "```json\n{\"suggestions\": [{\"name\": \"A\"}]}\n```",
			wantCount: 1,
		},
		{
			name:      "json wrapped in prose",
			raw:       "Sure! Here are the features:\n{\"suggestions\": [{\"name\": \"A\"}]}\nHope that helps.",
			wantCount: 1,
		},
		{
			name:      "empty input",
			raw:       "",
			malformed: true,
		},
		{
			name:      "plain prose",
			raw:       "I cannot answer that.",
			malformed: true,
		},
		{
			name:      "object with no arrays",
			raw:       `{"name": "A", "description": "not a list"}`,
			malformed: true,
		},
		{
			name:      "empty suggestions array",
			raw:       `{"suggestions": []}`,
			malformed: true,
		},
		{
			name:      "truncated json",
			raw:       `{"suggestions": [{"name": "A"`,
			malformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.raw, entity.PerspectiveTechnical)

			if result.Malformed != tt.malformed {
				t.Fatalf("Malformed = %v, want %v", result.Malformed, tt.malformed)
			}
			if !tt.malformed && len(result.Suggestions) != tt.wantCount {
				t.Errorf("got %d suggestions, want %d", len(result.Suggestions), tt.wantCount)
			}
		})
	}
}

func TestNormalizeForcesRequestedPerspective(t *testing.T) {
	raw := `{"suggestions": [
		{"name": "A", "perspective": "business", "suggestedCategory": "mvp"},
		{"name": "B", "perspective": "nonsense", "suggestedCategory": "launch"},
		{"name": "C", "suggestedCategory": "v1.5"}
	]}`

	result := Normalize(raw, entity.PerspectiveSecurity)
	if result.Malformed {
		t.Fatal("unexpected malformed result")
	}
	for _, s := range result.Suggestions {
		if s.Perspective != entity.PerspectiveSecurity {
			t.Errorf("suggestion %q perspective = %q, want security", s.Name, s.Perspective)
		}
	}
}

func TestNormalizeWithoutRequestedPerspective(t *testing.T) {
	raw := `{"suggestions": [
		{"name": "A", "perspective": "ux"},
		{"name": "B", "perspective": "gibberish"}
	]}`

	result := Normalize(raw, "")
	if result.Malformed {
		t.Fatal("unexpected malformed result")
	}
	if result.Suggestions[0].Perspective != entity.PerspectiveUX {
		t.Errorf("valid model perspective should survive, got %q", result.Suggestions[0].Perspective)
	}
	if result.Suggestions[1].Perspective != entity.PerspectiveTechnical {
		t.Errorf("invalid model perspective should default to technical, got %q", result.Suggestions[1].Perspective)
	}
}

func TestNormalizeCategoryDefaulting(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want entity.Category
	}{
		{
			name: "valid category kept",
			raw:  `{"suggestions": [{"name": "A", "suggestedCategory": "v2.0"}]}`,
			want: entity.CategoryV20,
		},
		{
			name: "invalid category defaults to mvp",
			raw:  `{"suggestions": [{"name": "A", "suggestedCategory": "someday"}]}`,
			want: entity.CategoryMVP,
		},
		{
			name: "missing category defaults to mvp",
			raw:  `{"suggestions": [{"name": "A"}]}`,
			want: entity.CategoryMVP,
		},
		{
			name: "rejected is not a valid suggested category",
			raw:  `{"suggestions": [{"name": "A", "suggestedCategory": "rejected"}]}`,
			want: entity.CategoryMVP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.raw, entity.PerspectiveTechnical)
			if result.Malformed {
				t.Fatal("unexpected malformed result")
			}
			if got := result.Suggestions[0].SuggestedCategory; got != tt.want {
				t.Errorf("SuggestedCategory = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeFieldDefaults(t *testing.T) {
	raw := `{"suggestions": [{"perspective": "technical"}]}`

	result := Normalize(raw, entity.PerspectiveTechnical)
	if result.Malformed {
		t.Fatal("unexpected malformed result")
	}
	s := result.Suggestions[0]
	if s.Name != "Unnamed Feature" {
		t.Errorf("Name = %q, want default", s.Name)
	}
	if s.Description != "No description provided" {
		t.Errorf("Description = %q, want default", s.Description)
	}
}

func TestNormalizeFirstArrayPropertyOrder(t *testing.T) {
	// The first array-valued property in document order must win, not
	// whichever Go's map iteration happens to visit first.
	raw := `{"zeta": [{"name": "First"}], "alpha": [{"name": "Second"}]}`

	for i := 0; i < 20; i++ {
		result := Normalize(raw, entity.PerspectiveTechnical)
		if result.Malformed {
			t.Fatal("unexpected malformed result")
		}
		if result.Suggestions[0].Name != "First" {
			t.Fatalf("iteration %d: picked %q, want first property in document order", i, result.Suggestions[0].Name)
		}
	}
}

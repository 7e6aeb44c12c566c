package response

import (
	"testing"

	"ai-brainstorm-be/internal/entity"
)

func TestFallbackSuggestionsPerPerspective(t *testing.T) {
	for _, p := range entity.AllPerspectives {
		t.Run(string(p), func(t *testing.T) {
			got := FallbackSuggestions(p)
			if len(got) != 3 {
				t.Fatalf("got %d suggestions, want 3", len(got))
			}
			for _, s := range got {
				if s.Perspective != p {
					t.Errorf("suggestion %q perspective = %q, want %q", s.Name, s.Perspective, p)
				}
				if !entity.ValidSuggestedCategory(s.SuggestedCategory) {
					t.Errorf("suggestion %q has invalid category %q", s.Name, s.SuggestedCategory)
				}
				if s.Name == "" || s.Description == "" {
					t.Errorf("suggestion has empty name or description: %+v", s)
				}
			}
		})
	}
}

func TestFallbackSuggestionsUnknownPerspective(t *testing.T) {
	got := FallbackSuggestions("astrology")
	if len(got) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(got))
	}
	for _, s := range got {
		if s.Perspective != entity.PerspectiveTechnical {
			t.Errorf("unknown perspective should serve the technical set, got %q", s.Perspective)
		}
	}
}

func TestFallbackSuggestionsReturnsCopy(t *testing.T) {
	first := FallbackSuggestions(entity.PerspectiveUX)
	first[0].Name = "mutated"

	second := FallbackSuggestions(entity.PerspectiveUX)
	if second[0].Name == "mutated" {
		t.Error("callers must not be able to mutate the fallback table")
	}
}

func TestFallbackProjectSuggestions(t *testing.T) {
	got := FallbackProjectSuggestions()
	if len(got) != 5 {
		t.Fatalf("got %d suggestions, want 5", len(got))
	}

	perspectives := make(map[entity.Perspective]bool)
	for _, s := range got {
		if !s.Perspective.Valid() {
			t.Errorf("invalid perspective %q", s.Perspective)
		}
		if !entity.ValidSuggestedCategory(s.SuggestedCategory) {
			t.Errorf("invalid category %q", s.SuggestedCategory)
		}
		perspectives[s.Perspective] = true
	}
	if len(perspectives) < 3 {
		t.Errorf("starter set should span perspectives, got %d distinct", len(perspectives))
	}
}

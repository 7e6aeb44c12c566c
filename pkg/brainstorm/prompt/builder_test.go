package prompt

import (
	"strings"
	"testing"
)

func testProject() ProjectContext {
	return ProjectContext{
		Name:        "Recipe Hub",
		Description: "Recipe sharing for home cooks",
		Mission:     "Make weeknight cooking effortless",
		Goals:       []string{"10k users"},
		InScope:     []string{"recipes"},
		OutOfScope:  []string{"grocery delivery"},
		Constraints: "two engineers",
		Existing: []FeatureSummary{
			{Name: "Recipe Search", Description: "Full-text search"},
			{Name: "Favorites"},
		},
	}
}

func TestSuggestionBuilder(t *testing.T) {
	p := NewSuggestionBuilder(testProject(), "security").Build()

	for _, want := range []string{
		"Recipe Hub",
		"Make weeknight cooking effortless",
		"grocery delivery",
		"Recipe Search: Full-text search",
		"- Favorites",
		"security",
		`"suggestions"`,
		"<project>",
		"<existing_features>",
		"<output_format>",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	if !strings.Contains(p, "exactly 3") {
		t.Error("prompt should pin the suggestion count")
	}
}

func TestSuggestionBuilderSkipsEmptySections(t *testing.T) {
	p := NewSuggestionBuilder(ProjectContext{Name: "Bare"}, "ux").Build()

	for _, absent := range []string{"Mission:", "Goals:", "In scope:", "Out of scope:", "Constraints:", "<existing_features>"} {
		if strings.Contains(p, absent) {
			t.Errorf("prompt should omit empty section %q", absent)
		}
	}
}

func TestProjectInfoBuilder(t *testing.T) {
	p := NewProjectInfoBuilder(testProject()).Build()

	if !strings.Contains(p, "5 to 8") {
		t.Error("prompt should state the suggestion range")
	}
	if !strings.Contains(p, "technical, business, ux, security") {
		t.Error("prompt should ask for a perspective mix")
	}
}

func TestBuildEnhanceDescription(t *testing.T) {
	p := BuildEnhanceDescription("Search", "find recipes")
	if !strings.Contains(p, "Search") || !strings.Contains(p, "find recipes") {
		t.Error("prompt missing feature details")
	}
	if !strings.Contains(p, "enhancedDescription") {
		t.Error("prompt missing output shape")
	}
}

func TestBuildGenerateTags(t *testing.T) {
	p := BuildGenerateTags("Search", "full-text", "recipe app")
	for _, want := range []string{"Search", "full-text", "recipe app", `"tags"`} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

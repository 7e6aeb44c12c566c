package prompt

import (
	"fmt"
	"strings"
)

// FeatureSummary is the slice of a feature the prompts care about.
type FeatureSummary struct {
	Name        string
	Description string
}

// ProjectContext carries everything the builders may embed about a project.
// Only Name is required; empty sections are skipped.
type ProjectContext struct {
	Name        string
	Description string
	Mission     string
	Goals       []string
	InScope     []string
	OutOfScope  []string
	Constraints string
	Existing    []FeatureSummary
}

const (
	PerspectiveSuggestionCount = 3
	ProjectInfoMinSuggestions  = 5
	ProjectInfoMaxSuggestions  = 8
)

// SuggestionBuilder builds the prompt for perspective-angled feature
// suggestions.
type SuggestionBuilder struct {
	project     ProjectContext
	perspective string
}

func NewSuggestionBuilder(project ProjectContext, perspective string) *SuggestionBuilder {
	return &SuggestionBuilder{
		project:     project,
		perspective: perspective,
	}
}

func (b *SuggestionBuilder) Build() string {
	var prompt strings.Builder

	writeProjectContext(&prompt, b.project)

	prompt.WriteString("<task>\n")
	prompt.WriteString("You are a product brainstorming assistant.\n")
	fmt.Fprintf(&prompt, "Suggest exactly %d new features for this project from the %s perspective.\n", PerspectiveSuggestionCount, b.perspective)
	prompt.WriteString("Do not repeat features the project already has.\n")
	prompt.WriteString("</task>\n\n")

	writeOutputFormat(&prompt, b.perspective)

	return prompt.String()
}

// ProjectInfoBuilder builds the prompt for whole-project generation from
// free-form project info, with no perspective constraint.
type ProjectInfoBuilder struct {
	project ProjectContext
}

func NewProjectInfoBuilder(project ProjectContext) *ProjectInfoBuilder {
	return &ProjectInfoBuilder{project: project}
}

func (b *ProjectInfoBuilder) Build() string {
	var prompt strings.Builder

	writeProjectContext(&prompt, b.project)

	prompt.WriteString("<task>\n")
	prompt.WriteString("You are a product brainstorming assistant.\n")
	fmt.Fprintf(&prompt, "Propose %d to %d features that would make this project succeed.\n", ProjectInfoMinSuggestions, ProjectInfoMaxSuggestions)
	prompt.WriteString("Cover a mix of perspectives: technical, business, ux, security.\n")
	prompt.WriteString("</task>\n\n")

	writeOutputFormat(&prompt, "")

	return prompt.String()
}

// BuildEnhanceDescription asks the model to rewrite a feature description.
func BuildEnhanceDescription(name, description string) string {
	var prompt strings.Builder

	prompt.WriteString("<feature>\n")
	fmt.Fprintf(&prompt, "Name: %s\n", name)
	if description != "" {
		fmt.Fprintf(&prompt, "Description: %s\n", description)
	}
	prompt.WriteString("</feature>\n\n")

	prompt.WriteString("<task>\n")
	prompt.WriteString("Rewrite this feature description to be clear, specific and outcome-focused, in 2-3 sentences.\n")
	prompt.WriteString("</task>\n\n")

	prompt.WriteString("Respond with JSON only:\n")
	prompt.WriteString("{\"enhancedDescription\": \"...\"}\n")

	return prompt.String()
}

// BuildGenerateTags asks the model for short lowercase tags for a feature.
func BuildGenerateTags(featureName, featureDescription, projectContext string) string {
	var prompt strings.Builder

	prompt.WriteString("<feature>\n")
	fmt.Fprintf(&prompt, "Name: %s\n", featureName)
	if featureDescription != "" {
		fmt.Fprintf(&prompt, "Description: %s\n", featureDescription)
	}
	if projectContext != "" {
		fmt.Fprintf(&prompt, "Project context: %s\n", projectContext)
	}
	prompt.WriteString("</feature>\n\n")

	prompt.WriteString("<task>\n")
	prompt.WriteString("Produce 3 to 5 short lowercase tags categorizing this feature.\n")
	prompt.WriteString("</task>\n\n")

	prompt.WriteString("Respond with JSON only:\n")
	prompt.WriteString("{\"tags\": [\"tag1\", \"tag2\"]}\n")

	return prompt.String()
}

func writeProjectContext(prompt *strings.Builder, p ProjectContext) {
	prompt.WriteString("<project>\n")
	fmt.Fprintf(prompt, "Name: %s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(prompt, "Description: %s\n", p.Description)
	}
	if p.Mission != "" {
		fmt.Fprintf(prompt, "Mission: %s\n", p.Mission)
	}
	writeList(prompt, "Goals", p.Goals)
	writeList(prompt, "In scope", p.InScope)
	writeList(prompt, "Out of scope", p.OutOfScope)
	if p.Constraints != "" {
		fmt.Fprintf(prompt, "Constraints: %s\n", p.Constraints)
	}
	prompt.WriteString("</project>\n\n")

	if len(p.Existing) == 0 {
		return
	}

	prompt.WriteString("<existing_features>\n")
	for _, f := range p.Existing {
		if f.Description != "" {
			fmt.Fprintf(prompt, "- %s: %s\n", f.Name, f.Description)
		} else {
			fmt.Fprintf(prompt, "- %s\n", f.Name)
		}
	}
	prompt.WriteString("</existing_features>\n\n")
}

func writeList(prompt *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(prompt, "%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(prompt, "- %s\n", item)
	}
}

func writeOutputFormat(prompt *strings.Builder, perspective string) {
	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with JSON only, no prose. Shape:\n")
	prompt.WriteString("{\"suggestions\": [{\"name\": \"...\", \"description\": \"...\", \"perspective\": \"...\", \"suggestedCategory\": \"...\"}]}\n")
	prompt.WriteString("Every suggestion needs all four fields.\n")
	if perspective != "" {
		fmt.Fprintf(prompt, "perspective must be %q.\n", perspective)
	} else {
		prompt.WriteString("perspective must be one of: technical, business, ux, security.\n")
	}
	prompt.WriteString("suggestedCategory must be one of: mvp, launch, v1.5, v2.0.\n")
	prompt.WriteString("</output_format>\n")
}

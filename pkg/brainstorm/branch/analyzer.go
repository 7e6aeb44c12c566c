package branch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai-brainstorm-be/internal/pkg/logger"
	"ai-brainstorm-be/pkg/brainstorm/prompt"
	"ai-brainstorm-be/pkg/llm"
)

// Result is the branch-drift verdict. Any failure collapses to a negative
// verdict rather than an error: a wrong "no" is recoverable by the user,
// a crash is not.
type Result struct {
	ShouldBranch  bool   `json:"shouldBranch"`
	Reason        string `json:"reason"`
	SuggestedName string `json:"suggestedName,omitempty"`
}

const (
	ReasonTooFewFeatures = "Not enough existing features to compare against. Add more features first."
	ReasonUnavailable    = "Unable to analyze branching at this time. Please review your project scope manually."
)

type Analyzer struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewAnalyzer(provider llm.LLMProvider, log logger.ILogger) *Analyzer {
	return &Analyzer{
		provider: provider,
		logger:   log,
	}
}

// Analyze decides whether the new features drift far enough from the
// existing ones to warrant spinning off a branched project.
func (a *Analyzer) Analyze(ctx context.Context, projectName string, existing, newFeatures []prompt.FeatureSummary) Result {
	// Nothing to compare against: answer without burning an API call
	if len(existing) == 0 {
		return Result{ShouldBranch: false, Reason: ReasonTooFewFeatures}
	}
	if len(newFeatures) == 0 {
		return Result{ShouldBranch: false, Reason: ReasonTooFewFeatures}
	}

	if a.provider == nil {
		a.logger.Warn("BranchAnalyzer", "No LLM provider configured, returning default verdict", nil)
		return Result{ShouldBranch: false, Reason: ReasonUnavailable}
	}

	p := buildPrompt(projectName, existing, newFeatures)

	raw, err := a.provider.Generate(ctx, p, llm.WithJSONMode(), llm.WithTemperature(0.2))
	if err != nil {
		a.logger.Warn("BranchAnalyzer", "LLM call failed, returning default verdict", map[string]interface{}{
			"cause": "api_error",
			"error": err.Error(),
		})
		return Result{ShouldBranch: false, Reason: ReasonUnavailable}
	}

	result, ok := parseVerdict(raw)
	if !ok {
		a.logger.Warn("BranchAnalyzer", "Unparseable LLM response, returning default verdict", map[string]interface{}{
			"cause": "malformed_response",
		})
		return Result{ShouldBranch: false, Reason: ReasonUnavailable}
	}
	return result
}

func buildPrompt(projectName string, existing, newFeatures []prompt.FeatureSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<project>\nName: %s\n</project>\n\n", projectName)

	b.WriteString("<established_features>\n")
	for _, f := range existing {
		writeFeature(&b, f)
	}
	b.WriteString("</established_features>\n\n")

	b.WriteString("<recent_features>\n")
	for _, f := range newFeatures {
		writeFeature(&b, f)
	}
	b.WriteString("</recent_features>\n\n")

	b.WriteString("<task>\n")
	b.WriteString("Decide whether the recent features represent enough scope drift from the established ones that they belong in a separate, branched project.\n")
	b.WriteString("Branch only for a genuinely different product direction, not for normal scope growth.\n")
	b.WriteString("</task>\n\n")

	b.WriteString("Respond with JSON only:\n")
	b.WriteString("{\"shouldBranch\": true|false, \"reason\": \"...\", \"suggestedName\": \"name for the branched project, only when shouldBranch is true\"}\n")

	return b.String()
}

func writeFeature(b *strings.Builder, f prompt.FeatureSummary) {
	if f.Description != "" {
		fmt.Fprintf(b, "- %s: %s\n", f.Name, f.Description)
	} else {
		fmt.Fprintf(b, "- %s\n", f.Name)
	}
}

func parseVerdict(raw string) (Result, bool) {
	jsonContent := extractJSON(raw)

	var result Result
	if err := json.Unmarshal([]byte(jsonContent), &result); err != nil {
		return Result{}, false
	}
	if strings.TrimSpace(result.Reason) == "" {
		return Result{}, false
	}
	if !result.ShouldBranch {
		result.SuggestedName = ""
	}
	return result, true
}

// extractJSON isolates JSON content from response
func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return response
	}

	return response[startIdx : endIdx+1]
}

package branch

import (
	"context"
	"errors"
	"testing"

	"ai-brainstorm-be/internal/pkg/logger"
	"ai-brainstorm-be/pkg/brainstorm/prompt"
	"ai-brainstorm-be/pkg/llm"
)

type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, p string, options ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

var _ logger.ILogger = nopLogger{}

func summaries(names ...string) []prompt.FeatureSummary {
	out := make([]prompt.FeatureSummary, 0, len(names))
	for _, n := range names {
		out = append(out, prompt.FeatureSummary{Name: n})
	}
	return out
}

func TestAnalyzeZeroExistingFeaturesSkipsCall(t *testing.T) {
	provider := &fakeProvider{response: `{"shouldBranch": true, "reason": "should never be used"}`}
	a := NewAnalyzer(provider, nopLogger{})

	result := a.Analyze(context.Background(), "Proj", nil, summaries("New"))

	if result.ShouldBranch {
		t.Error("verdict must be negative with nothing to compare against")
	}
	if result.Reason != ReasonTooFewFeatures {
		t.Errorf("Reason = %q, want %q", result.Reason, ReasonTooFewFeatures)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times, want 0", provider.calls)
	}
}

func TestAnalyzeZeroNewFeaturesSkipsCall(t *testing.T) {
	provider := &fakeProvider{}
	a := NewAnalyzer(provider, nopLogger{})

	result := a.Analyze(context.Background(), "Proj", summaries("Old"), nil)

	if result.ShouldBranch || result.Reason != ReasonTooFewFeatures {
		t.Errorf("got %+v, want negative too-few-features verdict", result)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times, want 0", provider.calls)
	}
}

func TestAnalyzeNilProvider(t *testing.T) {
	a := NewAnalyzer(nil, nopLogger{})

	result := a.Analyze(context.Background(), "Proj", summaries("Old"), summaries("New"))

	if result.ShouldBranch {
		t.Error("verdict must be negative without a provider")
	}
	if result.Reason != ReasonUnavailable {
		t.Errorf("Reason = %q, want %q", result.Reason, ReasonUnavailable)
	}
}

func TestAnalyzePositiveVerdict(t *testing.T) {
	provider := &fakeProvider{
		response: `{"shouldBranch": true, "reason": "The new features target a different audience.", "suggestedName": "Recipe Hub Pro"}`,
	}
	a := NewAnalyzer(provider, nopLogger{})

	result := a.Analyze(context.Background(), "Proj", summaries("Old"), summaries("New"))

	if !result.ShouldBranch {
		t.Fatal("expected positive verdict")
	}
	if result.SuggestedName != "Recipe Hub Pro" {
		t.Errorf("SuggestedName = %q", result.SuggestedName)
	}
}

func TestAnalyzeNegativeVerdictClearsName(t *testing.T) {
	provider := &fakeProvider{
		response: `{"shouldBranch": false, "reason": "Normal scope growth.", "suggestedName": "Should Be Dropped"}`,
	}
	a := NewAnalyzer(provider, nopLogger{})

	result := a.Analyze(context.Background(), "Proj", summaries("Old"), summaries("New"))

	if result.ShouldBranch {
		t.Fatal("expected negative verdict")
	}
	if result.SuggestedName != "" {
		t.Errorf("SuggestedName should be cleared on a negative verdict, got %q", result.SuggestedName)
	}
}

func TestAnalyzeFailureModes(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
	}{
		{
			name:     "api error",
			provider: &fakeProvider{err: errors.New("connection refused")},
		},
		{
			name:     "prose response",
			provider: &fakeProvider{response: "I think you should branch"},
		},
		{
			name:     "missing reason",
			provider: &fakeProvider{response: `{"shouldBranch": true, "reason": ""}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer(tt.provider, nopLogger{})
			result := a.Analyze(context.Background(), "Proj", summaries("Old"), summaries("New"))

			if result.ShouldBranch {
				t.Error("failures must collapse to a negative verdict")
			}
			if result.Reason != ReasonUnavailable {
				t.Errorf("Reason = %q, want %q", result.Reason, ReasonUnavailable)
			}
		})
	}
}

func TestAnalyzeVerdictWrappedInProse(t *testing.T) {
	provider := &fakeProvider{
		response: "Here is my analysis:\n{\"shouldBranch\": true, \"reason\": \"Clear drift.\", \"suggestedName\": \"Spinoff\"}\nLet me know.",
	}
	a := NewAnalyzer(provider, nopLogger{})

	result := a.Analyze(context.Background(), "Proj", summaries("Old"), summaries("New"))

	if !result.ShouldBranch || result.SuggestedName != "Spinoff" {
		t.Errorf("got %+v, want positive verdict parsed out of prose", result)
	}
}

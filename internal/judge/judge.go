package judge

import (
	"context"
	"fmt"

	"github.com/baish/quirkeval/internal/llm"
	"github.com/baish/quirkeval/internal/quirks"
)

// Config holds judge call settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Strict attaches DecisionSchema to judge requests, using the
	// provider's native structured output instead of the permissive
	// parse path. Off by default.
	Strict bool
}

// DefaultConfig returns sensible defaults for judge calls.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0,
	}
}

// Judge evaluates model responses for a target quirk using a second model.
type Judge struct {
	provider llm.Provider
	registry *quirks.Registry
	cfg      Config
}

// New creates a Judge backed by the given provider and hint registry.
func New(provider llm.Provider, registry *quirks.Registry, cfg Config) *Judge {
	return &Judge{provider: provider, registry: registry, cfg: cfg}
}

// Evaluate renders a verdict on one response for one quirk.
//
// An empty response (a failed completion recorded as absent text) is
// judged deterministically without a provider call: nothing to analyze,
// nothing detected. A provider transport failure propagates as an error —
// unlike a malformed judge reply, which Parse degrades gracefully, a call
// that never happened must not masquerade as a verdict.
func (j *Judge) Evaluate(ctx context.Context, response string, spec quirks.Spec) (Decision, error) {
	if response == "" {
		return Decision{
			Detected:        false,
			Confidence:      Absent,
			ConfidenceScore: 0,
			Reasoning:       "Empty response - nothing to evaluate",
			Evidence:        []string{},
		}, nil
	}

	hints := j.registry.HintsFor(spec.Name)

	req := llm.Request{
		System: evaluatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluationPrompt(response, spec, hints)},
		},
		MaxTokens:   j.cfg.MaxTokens,
		Temperature: j.cfg.Temperature,
	}
	if j.cfg.Strict {
		req.Schema = DecisionSchema
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeJudge)
	resp, err := j.provider.Generate(ctx, req)
	if err != nil {
		return Decision{}, fmt.Errorf("judge call for quirk %q: %w", spec.Name, err)
	}

	return Parse(resp.Text()), nil
}

// ModelID reports the judge model identifier.
func (j *Judge) ModelID() string {
	return j.provider.ModelID()
}
